package resizer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// Subdirectories created inside the portfolio directory
const (
	BackupDirName  = "backup_original"
	PreviewDirName = "preview"
	SliderDirName  = "slider"
)

var (
	// PreviewSize is the 4:3 grid thumbnail size
	PreviewSize = Size{Width: 800, Height: 600}
	// SliderSize is the 3:2 project slider size
	SliderSize = Size{Width: 1200, Height: 800}
)

// ErrDirNotFound is returned when the portfolio directory does not exist.
var ErrDirNotFound = errors.New("portfolio directory does not exist")

// imageExtensions are the lower-cased extensions the batch job picks up.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

// IsImageFile reports whether name has a recognized image extension.
func IsImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// Variant is one derivative produced per source image
type Variant struct {
	Name   string
	Dir    string
	Suffix string
	Size   Size
}

// Variants lists the derivatives in the order they are produced.
var Variants = []Variant{
	{Name: "preview", Dir: PreviewDirName, Suffix: "_preview", Size: PreviewSize},
	{Name: "slider", Dir: SliderDirName, Suffix: "_slider", Size: SliderSize},
}

// OutputName is the derivative file name: the source base name plus suffix,
// keeping the source extension as written.
func (v Variant) OutputName(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + v.Suffix + ext
}

// Reporter receives progress from a Processor. Calls happen on the
// goroutine running the batch, in processing order.
type Reporter interface {
	DirectoryReady(kind, path string)
	BackedUp(filename, path string)
	Resized(input, output string, size Size, bytes int64)
	Failed(input string, err error)
}

type nopReporter struct{}

func (nopReporter) DirectoryReady(string, string) {}
func (nopReporter) BackedUp(string, string) {}
func (nopReporter) Resized(string, string, Size, int64) {}
func (nopReporter) Failed(string, error) {}

// Summary counts what a batch run did
type Summary struct {
	Images   int // recognized image files found
	BackedUp int // backups newly created
	Written  int // derivatives written
	Failed   int // images with at least one failed step
}

// Processor runs the portfolio batch job over Dir.
type Processor struct {
	Dir      string
	Backup   bool
	Quality  int
	Mode     Mode
	Reporter Reporter
}

// ProcessPortfolioImages runs the batch job with default quality in crop mode.
func ProcessPortfolioImages(dir string, backup bool, reporter Reporter) (Summary, error) {
	p := &Processor{Dir: dir, Backup: backup, Quality: DefaultQuality, Mode: ModeCrop, Reporter: reporter}
	return p.Run()
}

// Run processes every recognized image directly inside Dir, in name order.
// Per-file failures go to the Reporter and are counted; the returned error is
// only set when the batch could not start.
func (p *Processor) Run() (Summary, error) {
	var summary Summary
	reporter := p.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	info, err := os.Stat(p.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return summary, fmt.Errorf("%w: %s", ErrDirNotFound, p.Dir)
		}
		return summary, err
	}
	if !info.IsDir() {
		return summary, fmt.Errorf("%s is not a directory", p.Dir)
	}

	dirs := make([]string, 0, len(Variants)+1)
	if p.Backup {
		dirs = append(dirs, BackupDirName)
	}
	for _, v := range Variants {
		dirs = append(dirs, v.Dir)
	}
	for _, name := range dirs {
		path := filepath.Join(p.Dir, name)
		if err := os.MkdirAll(path, 0755); err != nil {
			return summary, fmt.Errorf("failed to create %s: %w", path, err)
		}
		reporter.DirectoryReady(name, path)
	}

	entries, err := os.ReadDir(p.Dir)
	if err != nil {
		return summary, fmt.Errorf("failed to list %s: %w", p.Dir, err)
	}

	for _, entry := range entries {
		input := filepath.Join(p.Dir, entry.Name())
		if !IsImageFile(entry.Name()) || !isRegularFile(input) {
			continue
		}
		summary.Images++

		failed := false
		if p.Backup {
			dst := filepath.Join(p.Dir, BackupDirName, entry.Name())
			created, err := backupFile(input, dst)
			switch {
			case err != nil:
				reporter.Failed(input, err)
				failed = true
			case created:
				reporter.BackedUp(entry.Name(), dst)
				summary.BackedUp++
			}
		}

		for _, v := range Variants {
			output := filepath.Join(p.Dir, v.Dir, v.OutputName(entry.Name()))
			if err := ResizeImage(input, output, v.Size, p.Quality, p.Mode); err != nil {
				reporter.Failed(input, err)
				failed = true
				continue
			}
			var written int64
			if fi, err := os.Stat(output); err == nil {
				written = fi.Size()
			}
			reporter.Resized(input, output, v.Size, written)
			summary.Written++
		}

		if failed {
			summary.Failed++
		}
	}

	return summary, nil
}

// isRegularFile follows symlinks, so a link to an image counts as an image.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// backupFile copies src to dst unless dst already exists, keeping the
// permission bits and modification time. It reports whether a copy was made.
func backupFile(src, dst string) (bool, error) {
	if _, err := os.Stat(dst); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to check backup %s: %w", dst, err)
	}

	info, err := os.Stat(src)
	if err != nil {
		return false, err
	}

	f, err := os.Open(src)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer f.Close()

	if err := atomic.WriteFile(dst, f); err != nil {
		return false, fmt.Errorf("failed to back up %s: %w", src, err)
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return true, fmt.Errorf("failed to copy mode to %s: %w", dst, err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return true, fmt.Errorf("failed to copy times to %s: %w", dst, err)
	}
	return true, nil
}
