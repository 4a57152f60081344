package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the sigcast banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Teal to blue, one shade per line
	lines := []struct {
		text, color string
	}{
		{"      _                     _   ", "#2dd4bf"},
		{"  ___(_) __ _  ___ __ _ ___| |_ ", "#22d3ee"},
		{" (_-<| |/ _` |/ __/ _` (_-<|  _|", "#38bdf8"},
		{" /__/|_|\\__, |\\___\\__,_/__/ \\__|", "#60a5fa"},
		{"        |___/                   ", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
