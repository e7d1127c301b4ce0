package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerDefaultWidth = 60

// PrintBanner renders a box-drawing banner around title. The box grows when
// the title does not fit in width.
func PrintBanner(w io.Writer, title string, width int) {
	if width < 10 {
		width = bannerDefaultWidth
	}

	inner := width - 2
	if tw := lipgloss.Width(title); tw+2 > inner {
		inner = tw + 2
	}

	edge := strings.Repeat("═", inner)
	fmt.Fprintf(w, "╔%s╗\n", edge)
	fmt.Fprintf(w, "║%s║\n", StyleTitle.Render(padCenter(title, inner)))
	fmt.Fprintf(w, "╚%s╝\n", edge)
}

func padCenter(text string, width int) string {
	tw := lipgloss.Width(text)
	if tw >= width {
		return text
	}
	left := (width - tw) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-tw-left)
}
