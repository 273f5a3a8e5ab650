package stats

import (
	"os"

	"golang.org/x/term"
)

const (
	terminalWidthBackup = 80
	sparklineMargin     = 16
	minSparklineWidth   = 10
)

// SparklineWidthFor returns the sparkline width that fits the terminal behind f.
func SparklineWidthFor(f *os.File) int {
	width := terminalWidthBackup
	if f != nil && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	width -= sparklineMargin
	if width < minSparklineWidth {
		width = minSparklineWidth
	}
	return width
}
