package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// bannerAnnouncer prints the serving URL. Styling is dropped automatically
// when out is not a terminal.
type bannerAnnouncer struct {
	out   io.Writer
	label lipgloss.Style
	link  lipgloss.Style
}

func newBannerAnnouncer(out io.Writer) *bannerAnnouncer {
	r := lipgloss.NewRenderer(out)
	return &bannerAnnouncer{
		out:   out,
		label: r.NewStyle().Bold(true),
		link:  r.NewStyle().Underline(true).Foreground(lipgloss.Color("63")),
	}
}

func (b *bannerAnnouncer) Announce(url string) error {
	_, err := fmt.Fprintf(b.out, "%s %s\n", b.label.Render("Serving on"), b.link.Render(url))
	return err
}
