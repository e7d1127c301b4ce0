package cli

import (
	"fmt"
	"io"
	"portfolio/resizer"

	"github.com/dustin/go-humanize"
)

// consoleReporter prints batch progress, one line per event.
type consoleReporter struct {
	out io.Writer
}

func (r consoleReporter) DirectoryReady(kind, path string) {
	switch kind {
	case resizer.BackupDirName:
		fmt.Fprintln(r.out, FormatInfo("Backup directory: "+path))
	case resizer.PreviewDirName:
		fmt.Fprintln(r.out, FormatInfo("Preview directory: "+path))
	case resizer.SliderDirName:
		fmt.Fprintln(r.out, FormatInfo("Slider directory: "+path))
	default:
		fmt.Fprintln(r.out, FormatInfo(kind+" directory: "+path))
	}
}

func (r consoleReporter) BackedUp(filename, path string) {
	fmt.Fprintln(r.out, FormatMuted("Backed up: "+filename))
}

func (r consoleReporter) Resized(input, output string, size resizer.Size, bytes int64) {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Resized %s to %s -> %s (%s)",
		input, size, output, humanize.Bytes(uint64(bytes)))))
}

func (r consoleReporter) Failed(input string, err error) {
	fmt.Fprintln(r.out, FormatError(fmt.Sprintf("Error processing %s: %v", input, err)))
}
