package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// field is one labelled line of the result report.
type field struct {
	label string
	value string
	// numeric values are right-aligned against each other.
	numeric bool
}

// alignFields renders fields as "label  value" lines. Labels share one
// display width; numeric values are padded to the widest numeric value.
func alignFields(fields []field) []string {
	labelWidth, numWidth := 0, 0
	for _, f := range fields {
		labelWidth = max(labelWidth, displayWidth(f.label))
		if f.numeric {
			numWidth = max(numWidth, displayWidth(f.value))
		}
	}
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		value := f.value
		if f.numeric {
			value = runewidth.FillLeft(value, numWidth)
		}
		line := runewidth.FillRight(f.label, labelWidth) + "  " + value
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return lines
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
