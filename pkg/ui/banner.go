package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// 256-colour palette indexes.
const (
	outlineGray = lipgloss.Color("244")
	beeYellow   = lipgloss.Color("226")
	honeyOrange = lipgloss.Color("214")
	mint        = lipgloss.Color("121")
	cobalt      = lipgloss.Color("33")
	deepIndigo  = lipgloss.Color("61")
	fuchsia     = lipgloss.Color("177")
	flame       = lipgloss.Color("208")
)

var gradient = []lipgloss.Color{flame, honeyOrange, beeYellow, mint, cobalt, deepIndigo, fuchsia}

// Styler decorates report titles. Without colour it returns text unchanged.
type Styler struct {
	renderer *lipgloss.Renderer
}

// NewStyler returns a Styler for output written to w. Colour is forced on or off
// rather than probed so piped output stays plain.
func NewStyler(w io.Writer, color bool) *Styler {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Styler{renderer: r}
}

// Header renders a section title.
func (s *Styler) Header(title string) string {
	return s.renderer.NewStyle().Bold(true).Foreground(flame).Render(title)
}

// Banner renders the program wordmark with one gradient colour per letter and a tagline.
func (s *Styler) Banner() string {
	var b strings.Builder
	for i, r := range "syssnapshot" {
		color := gradient[i%len(gradient)]
		b.WriteString(s.renderer.NewStyle().Bold(true).Foreground(color).Render(string(r)))
	}
	b.WriteString("  ")
	b.WriteString(s.renderer.NewStyle().Foreground(outlineGray).Render("•  one-shot host snapshot"))
	b.WriteString("\n")
	return b.String()
}
