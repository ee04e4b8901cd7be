package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PrintBanner writes the server banner to w.
// Colors are only used when w is a terminal.
func PrintBanner(w io.Writer, title, version string) {
	lines := []string{
		"  __            _                ",
		" / _| __ _  ___| |_ ___  _ __ ___",
		"| |_ / _` |/ __| __/ _ \\| '__/ __|",
		"|  _| (_| | (__| || (_) | |  \\__ \\",
		"|_|  \\__,_|\\___|\\__\\___/|_|  |___/",
	}
	// Teal to indigo.
	palette := []string{"#2dd4bf", "#22d3ee", "#38bdf8", "#60a5fa", "#818cf8"}

	p := termenv.Ascii
	if IsTerminal(w) {
		p = termenv.ColorProfile()
	}

	fmt.Fprintln(w)
	for i, line := range lines {
		fmt.Fprintln(w, termenv.String(line).Foreground(p.Color(palette[i])))
	}
	fmt.Fprintf(w, "  %s v%s\n\n", title, version)
}
