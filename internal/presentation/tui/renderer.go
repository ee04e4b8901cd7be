package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Summary is the data shown by RenderSummary.
type Summary struct {
	Source     string
	Numbers    int
	Factorized int
	Cached     int
	Seconds    float64
}

// NewRenderer returns a function that renders markdown using glamour.
// Styled output follows the terminal background; otherwise the notty style is used.
func NewRenderer(styled bool) func(string) (string, error) {
	opt := glamour.WithStandardStyle("notty")
	if styled {
		opt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(80))

	return func(markdown string) (string, error) {
		if err != nil {
			return markdown, err
		}
		return r.Render(markdown)
	}
}

// SummaryMarkdown formats a run summary as a markdown table.
func SummaryMarkdown(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Run summary: `%s`\n\n", s.Source)
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| Numbers | %d |\n", s.Numbers)
	fmt.Fprintf(&b, "| Factorized | %d |\n", s.Factorized)
	fmt.Fprintf(&b, "| Without factors | %d |\n", s.Numbers-s.Factorized)
	fmt.Fprintf(&b, "| Cache hits | %d |\n", s.Cached)
	fmt.Fprintf(&b, "| Seconds | %.3f |\n", s.Seconds)
	return b.String()
}

// RenderSummary renders the summary table, falling back to raw markdown on error.
func RenderSummary(s Summary, styled bool) string {
	md := SummaryMarkdown(s)
	out, err := NewRenderer(styled)(md)
	if err != nil {
		return md
	}
	return out
}
