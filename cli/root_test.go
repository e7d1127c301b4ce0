package cli

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"portfolio/resizer"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := NewRootCmd()
	if cmd.Use != "resize-portfolio" {
		t.Fatalf("unexpected Use %q", cmd.Use)
	}

	tests := map[string]string{
		"portfolio-dir": DefaultPortfolioDir,
		"no-backup":     "false",
		"quality":       "85",
	}
	for name, def := range tests {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			t.Fatalf("flag --%s not registered", name)
		}
		if flag.DefValue != def {
			t.Fatalf("flag --%s default = %q, want %q", name, flag.DefValue, def)
		}
	}
}

func TestRootCmd_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nope")

	out, err := runCmd(t, "--portfolio-dir", dir)
	if !errors.Is(err, resizer.ErrDirNotFound) {
		t.Fatalf("expected ErrDirNotFound, got %v", err)
	}
	if !strings.Contains(out, "does not exist") {
		t.Fatalf("expected user-facing message, got %q", out)
	}
	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Fatalf("directory must not be created")
	}
	for _, sub := range []string{resizer.BackupDirName, resizer.PreviewDirName, resizer.SliderDirName} {
		if _, statErr := os.Stat(filepath.Join(dir, sub)); !os.IsNotExist(statErr) {
			t.Fatalf("%s must not be created", sub)
		}
	}
}

func TestRootCmd_ProcessesDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := imaging.Save(imaging.New(1600, 1000, color.NRGBA{R: 40, G: 120, B: 200, A: 255}), filepath.Join(dir, "shot.jpg")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("garbage"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := runCmd(t, "--portfolio-dir", dir, "--no-backup", "--quality", "70")
	if err != nil {
		t.Fatalf("expected success despite a broken file, got %v", err)
	}

	for _, want := range []string{"Portfolio Image Resizer", "Backup original images: false", "Error processing", "Resizing complete!", "shot_slider.jpg"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, resizer.BackupDirName)); !os.IsNotExist(err) {
		t.Fatalf("--no-backup must not create the backup directory")
	}
	if _, err := os.Stat(filepath.Join(dir, resizer.PreviewDirName, "shot_preview.jpg")); err != nil {
		t.Fatalf("expected preview output: %v", err)
	}
}

func TestRootCmd_InvalidQuality(t *testing.T) {
	if _, err := runCmd(t, "--portfolio-dir", t.TempDir(), "--quality", "0"); err == nil {
		t.Fatalf("expected error for quality 0")
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	if _, err := runCmd(t, "extra"); err == nil {
		t.Fatalf("expected error for positional arguments")
	}
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "Hi", 10)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "╔"+strings.Repeat("═", 8)+"╗" {
		t.Fatalf("unexpected top edge %q", lines[0])
	}
	if !strings.Contains(lines[1], "Hi") {
		t.Fatalf("expected title in banner, got %q", lines[1])
	}
}

func TestPadCenter(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"abc", 6, " abc  "},
		{"toolong", 3, "toolong"},
	}
	for _, tt := range tests {
		if got := padCenter(tt.text, tt.width); got != tt.want {
			t.Fatalf("padCenter(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
