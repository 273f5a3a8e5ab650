// Package stats turns session counters into WPM and accuracy and renders
// finished results.
package stats

import (
	"math"

	"github.com/verte-zerg/typerush/internal/model"
)

// CharsPerWord is the standard word length used for WPM.
const CharsPerWord = 5

// ComputeStats maps session counters and a time base in seconds to final metrics.
// A zero time base yields zero WPM; a session without characters reports 100% accuracy.
func ComputeStats(correct, incorrect, seconds int) model.TestStats {
	total := correct + incorrect
	out := model.TestStats{
		Accuracy:       100,
		CorrectChars:   correct,
		IncorrectChars: incorrect,
		TotalChars:     total,
	}
	if seconds > 0 {
		minutes := float64(seconds) / 60.0
		out.WPM = roundHalfUp((float64(correct) / CharsPerWord) / minutes)
	}
	if total > 0 {
		out.Accuracy = roundHalfUp(float64(correct) / float64(total) * 100)
	}
	return out
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
