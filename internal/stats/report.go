package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/verte-zerg/typerush/internal/model"
)

const timelineWindow = 3

// RenderResult prints a finished session as aligned label/value lines.
func RenderResult(w io.Writer, result model.Result, width int) error {
	if _, err := fmt.Fprintln(w, "Result"); err != nil {
		return err
	}
	fields := []field{
		{label: "WPM", value: fmt.Sprintf("%d", result.Stats.WPM), numeric: true},
		{label: "Accuracy", value: fmt.Sprintf("%d%%", result.Stats.Accuracy), numeric: true},
		{label: "Correct", value: fmt.Sprintf("%d", result.Stats.CorrectChars), numeric: true},
		{label: "Incorrect", value: fmt.Sprintf("%d", result.Stats.IncorrectChars), numeric: true},
		{label: "Total", value: fmt.Sprintf("%d", result.Stats.TotalChars), numeric: true},
		{label: "Time", value: fmt.Sprintf("%ds / %ds", result.Elapsed, result.Duration)},
	}
	if result.Topic != "" {
		fields = append(fields, field{label: "Topic", value: result.Topic})
	}
	if len(result.WeakChars) > 0 {
		fields = append(fields, field{label: "Weak keys", value: strings.Join(result.WeakChars, " ")})
	}
	if result.ImageRef != "" {
		fields = append(fields, field{label: "Image", value: result.ImageRef})
	}
	for _, line := range alignFields(fields) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if len(result.Timeline) > 1 {
		if _, err := fmt.Fprintf(w, "WPM over time: %s\n", TimelineSparkline(result.Timeline, timelineWindow, width)); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON encodes a finished session as indented JSON.
func WriteJSON(w io.Writer, result model.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
