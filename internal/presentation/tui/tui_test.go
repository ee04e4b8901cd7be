package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestPrintBanner_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "factors HTTP server", "1.2.3")

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "no escape codes outside a terminal")
	assert.Contains(t, out, "factors HTTP server v1.2.3")
}

func TestSummaryMarkdown(t *testing.T) {
	md := SummaryMarkdown(Summary{Source: "in.txt", Numbers: 3, Factorized: 2, Cached: 1, Seconds: 0.0021})

	assert.Contains(t, md, "`in.txt`")
	assert.Contains(t, md, "| Numbers | 3 |")
	assert.Contains(t, md, "| Without factors | 1 |")
	assert.Contains(t, md, "| Seconds | 0.002 |")
}

func TestRenderSummary_Plain(t *testing.T) {
	out := RenderSummary(Summary{Source: "in.txt", Numbers: 5, Factorized: 4}, false)

	assert.Contains(t, out, "Factorized")
	assert.Contains(t, out, "4")
}
