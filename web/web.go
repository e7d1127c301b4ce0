// Package web holds the site's HTML templates and static assets, embedded
// into the server binary.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Templates parses every page template together with the shared layout.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"year": func() int { return time.Now().Year() },
	}).ParseFS(templateFiles, "templates/*.html")
}

// MustTemplates is Templates for program start-up, panicking on a broken template.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}

// Static returns the embedded static asset tree rooted at static/.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// The static directory is embedded at compile time.
		panic(err)
	}
	return http.FS(sub)
}
