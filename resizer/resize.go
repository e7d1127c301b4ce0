package resizer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/natefinch/atomic"

	// WebP is not among the formats imaging registers itself.
	_ "golang.org/x/image/webp"
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 85

// Size is a width and height in pixels
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Mode selects how an image is brought to the target aspect ratio
type Mode int

const (
	// ModeCrop scales to fill the target box and trims the overflow from the center.
	ModeCrop Mode = iota
	// ModePad scales to fit inside the target box and centers it on white.
	ModePad
)

func (m Mode) String() string {
	switch m {
	case ModeCrop:
		return "crop"
	case ModePad:
		return "pad"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ResizeImage reads input, brings it to exactly target using mode and writes
// the result to output. quality applies to JPEG output only.
func ResizeImage(input, output string, target Size, quality int, mode Mode) error {
	if target.Width <= 0 || target.Height <= 0 {
		return fmt.Errorf("invalid target size %s", target)
	}

	src, err := imaging.Open(input)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", input, err)
	}

	return Save(Transform(src, target, mode), output, quality)
}

// Transform returns a target-sized, fully opaque copy of img.
func Transform(img image.Image, target Size, mode Mode) *image.NRGBA {
	rgb := toRGB(img)
	src := Size{Width: rgb.Bounds().Dx(), Height: rgb.Bounds().Dy()}

	if mode == ModePad {
		fit, offset := padGeometry(src, target)
		resized := imaging.Resize(rgb, fit.Width, fit.Height, imaging.Lanczos)
		canvas := imaging.New(target.Width, target.Height, color.White)
		return imaging.Paste(canvas, resized, offset)
	}

	scaled, offset := cropGeometry(src, target)
	resized := imaging.Resize(rgb, scaled.Width, scaled.Height, imaging.Lanczos)
	return imaging.Crop(resized, image.Rect(offset.X, offset.Y, offset.X+target.Width, offset.Y+target.Height))
}

// cropGeometry returns the size src is scaled to before cropping, and the
// top-left corner of the centered target-sized crop. Aspect ratios are
// compared by cross-multiplying so the scaled size never falls short of target.
func cropGeometry(src, target Size) (Size, image.Point) {
	if src.Width*target.Height > target.Width*src.Height {
		// Wider than target: match heights, trim width.
		scaled := Size{Width: target.Height * src.Width / src.Height, Height: target.Height}
		return scaled, image.Pt((scaled.Width-target.Width)/2, 0)
	}
	// Taller or equal: match widths, trim height.
	scaled := Size{Width: target.Width, Height: target.Width * src.Height / src.Width}
	return scaled, image.Pt(0, (scaled.Height-target.Height)/2)
}

// padGeometry returns the size src is scaled to so it fits inside target, and
// where it is pasted to be centered.
func padGeometry(src, target Size) (Size, image.Point) {
	var fit Size
	if src.Width*target.Height > target.Width*src.Height {
		fit = Size{Width: target.Width, Height: max(target.Width*src.Height/src.Width, 1)}
	} else {
		fit = Size{Width: max(target.Height*src.Width/src.Height, 1), Height: target.Height}
	}
	return fit, image.Pt((target.Width-fit.Width)/2, (target.Height-fit.Height)/2)
}

// toRGB copies img into NRGBA and discards any alpha channel, keeping the
// stored color values rather than blending them against a background.
func toRGB(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// FormatFor picks the output encoding from the file extension:
// JPEG for .jpg/.jpeg, PNG for everything else.
func FormatFor(path string) imaging.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return imaging.JPEG
	default:
		return imaging.PNG
	}
}

// Save encodes img for path's extension and replaces path atomically.
func Save(img image.Image, path string, quality int) error {
	if quality <= 0 {
		quality = DefaultQuality
	}

	var buf bytes.Buffer
	var err error
	switch FormatFor(path) {
	case imaging.JPEG:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality))
	default:
		err = imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	// The temp file behind atomic.WriteFile is private; derivatives are served publicly.
	if err := os.Chmod(path, 0644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", path, err)
	}
	return nil
}
