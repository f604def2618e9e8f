package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	PassGlyph = "✅"
	FailGlyph = "❌"
	RuleWidth = 40
)

// Printer writes status lines, colored when the destination supports it
type Printer struct {
	w         io.Writer
	passStyle lipgloss.Style
	failStyle lipgloss.Style
	dimStyle  lipgloss.Style
	boldStyle lipgloss.Style
}

// NewPrinter creates a Printer for w. Color is detected from w unless noColor is set.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:         w,
		passStyle: r.NewStyle().Foreground(lipgloss.Color("#a6e3a1")),
		failStyle: r.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
		dimStyle:  r.NewStyle().Foreground(lipgloss.Color("#6c7086")),
		boldStyle: r.NewStyle().Bold(true),
	}
}

// Line writes an unstyled line
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Pass writes a success line
func (p *Printer) Pass(msg string) {
	fmt.Fprintln(p.w, p.passStyle.Render(PassGlyph+" "+msg))
}

// Fail writes a failure line
func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.w, p.failStyle.Render(FailGlyph+" "+msg))
}

// Rule writes a horizontal separator
func (p *Printer) Rule() {
	fmt.Fprintln(p.w, p.dimStyle.Render(strings.Repeat("-", RuleWidth)))
}

// Banner writes a bold closing line
func (p *Printer) Banner(msg string) {
	fmt.Fprintln(p.w, p.boldStyle.Render(msg))
}
