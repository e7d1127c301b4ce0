package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"portfolio/resizer"
	"portfolio/version"

	"github.com/spf13/cobra"
)

// DefaultPortfolioDir is where the site serves portfolio images from.
const DefaultPortfolioDir = "static/img/portfolio"

type resizeOptions struct {
	portfolioDir string
	noBackup     bool
	quality      int
}

// NewRootCmd builds the resize-portfolio command
func NewRootCmd() *cobra.Command {
	opts := &resizeOptions{}

	cmd := &cobra.Command{
		Use:   "resize-portfolio",
		Short: "Resize portfolio images to preview and slider sizes",
		Long: StyleTitle.Render("Portfolio Image Resizer") + "\n\n" +
			"Creates a preview (800x600, 4:3) and a slider (1200x800, 3:2) version of\n" +
			"every image in the portfolio directory, cropped from the center.\n" +
			"Originals are copied to backup_original/ first unless --no-backup is given.",
		Example: `  resize-portfolio
  resize-portfolio --portfolio-dir ./photos --no-backup`,
		Args:          cobra.NoArgs,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResize(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.portfolioDir, "portfolio-dir", DefaultPortfolioDir, "Path to portfolio images directory")
	cmd.Flags().BoolVar(&opts.noBackup, "no-backup", false, "Skip creating backup of original images")
	cmd.Flags().IntVar(&opts.quality, "quality", resizer.DefaultQuality, "JPEG quality (1-100)")

	return cmd
}

// Execute runs the command against os.Args and exits non-zero on failure.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		// The missing-directory message is printed by the command itself.
		if !errors.Is(err, resizer.ErrDirNotFound) {
			fmt.Fprintln(cmd.ErrOrStderr(), FormatError("Error: "+err.Error()))
		}
		os.Exit(1)
	}
}

func runResize(out io.Writer, opts *resizeOptions) error {
	if opts.quality < 1 || opts.quality > 100 {
		return fmt.Errorf("--quality must be between 1 and 100, got %d", opts.quality)
	}

	if _, err := os.Stat(opts.portfolioDir); err != nil {
		fmt.Fprintln(out, FormatError(fmt.Sprintf("Error: Directory '%s' does not exist!", opts.portfolioDir)))
		fmt.Fprintln(out, FormatInfo("Please provide the correct path to your portfolio images directory."))
		return fmt.Errorf("%w: %s", resizer.ErrDirNotFound, opts.portfolioDir)
	}

	backup := !opts.noBackup

	PrintBanner(out, "Portfolio Image Resizer - Dual Version (Smart Cropping)", bannerDefaultWidth)
	fmt.Fprintf(out, "Processing images in: %s\n", opts.portfolioDir)
	fmt.Fprintf(out, "Preview size: %spx (4:3 ratio) - Smart cropped\n", resizer.PreviewSize)
	fmt.Fprintf(out, "Slider size: %spx (3:2 ratio) - Smart cropped\n", resizer.SliderSize)
	fmt.Fprintf(out, "Backup original images: %t\n\n", backup)

	p := &resizer.Processor{
		Dir:      opts.portfolioDir,
		Backup:   backup,
		Quality:  opts.quality,
		Mode:     resizer.ModeCrop,
		Reporter: consoleReporter{out: out},
	}
	summary, err := p.Run()
	if err != nil {
		return err
	}

	printSummary(out, opts.portfolioDir, summary)
	return nil
}

func printSummary(out io.Writer, dir string, summary resizer.Summary) {
	fmt.Fprintln(out)
	PrintBanner(out, "Resizing complete!", bannerDefaultWidth)
	fmt.Fprintf(out, "Images found: %d, derivatives written: %d, backups created: %d\n",
		summary.Images, summary.Written, summary.BackedUp)
	if summary.Failed > 0 {
		fmt.Fprintln(out, FormatError(fmt.Sprintf("%d image(s) could not be fully processed; see errors above", summary.Failed)))
	}

	fmt.Fprintln(out, "\nFile structure created:")
	fmt.Fprintf(out, "├── %s/\n", dir)
	fmt.Fprintln(out, "│   ├── backup_original/     # Original images")
	fmt.Fprintln(out, "│   ├── preview/             # 800x600px for grid (cropped)")
	fmt.Fprintln(out, "│   └── slider/              # 1200x800px for detail pages (cropped)")

	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "1. Update templates to use preview/ and slider/ images")
	fmt.Fprintln(out, "2. Test the portfolio display")
	fmt.Fprintln(out, "3. Delete original images if satisfied")
}
