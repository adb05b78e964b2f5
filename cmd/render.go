package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

const defaultWidth = 80

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// renderer formats headings and wrapped prose. Styling is only applied when
// the output is a terminal.
type renderer struct {
	styled bool
	width  int
}

func newRenderer(w io.Writer) renderer {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return renderer{width: defaultWidth}
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		width = defaultWidth
	}
	return renderer{styled: true, width: width}
}

func (r renderer) heading(s string) string {
	if !r.styled {
		return s
	}
	return headingStyle.Render(s)
}

func (r renderer) muted(s string) string {
	if !r.styled {
		return s
	}
	return mutedStyle.Render(s)
}

// wrap word-wraps text to the renderer width with every line indented.
func (r renderer) wrap(text string, indent int) string {
	pad := strings.Repeat(" ", indent)
	limit := r.width - indent
	if limit < 20 {
		limit = 20
	}
	lines := strings.Split(ansi.Wordwrap(strings.TrimSpace(text), limit, ""), "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
