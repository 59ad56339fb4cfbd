package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"  _____          _ _           ", "#f87171"},
	{" |_   _| __ ___ | | | ___ _ __ ", "#fb923c"},
	{"   | || '__/ _ \\| | |/ _ \\ '__|", "#facc15"},
	{"   | || | | (_) | | |  __/ |   ", "#a3e635"},
	{"   |_||_|  \\___/|_|_|\\___|_|   ", "#34d399"},
}

// PrintBanner writes the ASCII art banner and version to w.
func PrintBanner(w io.Writer, p termenv.Profile, version string) {
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, p.String("   v"+version).Faint())
	fmt.Fprintln(w)
}
