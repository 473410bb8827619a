package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the traits banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"  _             _ _       ", "#818cf8"},
		{" | |_ _ __ __ _(_) |_ ___ ", "#a78bfa"},
		{" | __| '__/ _` | | __/ __|", "#c084fc"},
		{" | |_| | | (_| | | |_\\__ \\", "#e879f9"},
		{"  \\__|_|  \\__,_|_|\\__|___/", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintf(w, "  %s\n\n", out.String("v"+version).Faint())
}
