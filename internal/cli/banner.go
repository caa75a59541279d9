package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss/v2"
)

const banner = ` _____   ___    ____
|  ___| |_ _|  / ___|
| |_     | |  | |  _
|  _|    | |  | |_| |
|_|     |___|  \____|`

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("205")).
	MarginTop(1).
	MarginBottom(1)

// printBanner writes the banner to w, downsampling colors to what w supports.
func printBanner(w io.Writer) {
	lipgloss.Fprintln(w, bannerStyle.Render(banner))
}
