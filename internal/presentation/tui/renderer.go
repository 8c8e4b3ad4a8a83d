// Package tui renders engine replies for the terminal REPL.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/rankery/rankery/pkg/domain"
)

// NewRenderer returns a markdown renderer for reply text using glamour.
// It auto-detects light/dark terminal backgrounds.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// RenderChoices formats a reply keyboard as a numbered menu. Numbers map
// to buttons row by row; the REPL translates a typed number back into the
// button's token.
func RenderChoices(reply domain.Reply, styled bool) string {
	if !reply.HasChoices() {
		return ""
	}
	p := termenv.Ascii
	if styled {
		p = termenv.ColorProfile()
	}

	var b strings.Builder
	n := 0
	for _, row := range reply.Choices {
		for _, c := range row {
			n++
			num := p.String(fmt.Sprintf("[%d]", n)).Foreground(p.Color("6")).Bold()
			b.WriteString(fmt.Sprintf("  %s %s\n", num, c.Label))
		}
	}
	return b.String()
}

// ChoiceAt returns the token for the n-th button (1-based, row by row).
func ChoiceAt(reply domain.Reply, n int) (string, bool) {
	if n < 1 {
		return "", false
	}
	i := 0
	for _, row := range reply.Choices {
		for _, c := range row {
			i++
			if i == n {
				return c.Token, true
			}
		}
	}
	return "", false
}
