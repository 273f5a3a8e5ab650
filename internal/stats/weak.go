package stats

import (
	"cmp"
	"slices"

	"github.com/verte-zerg/typerush/internal/model"
)

// SelectWeakChars ranks characters that were mistyped at least once by
// error rate, highest first, then by mistake count and character. top <= 0
// returns all of them.
func SelectWeakChars(aggs []model.CharAggregate, top int) []string {
	missed := slices.DeleteFunc(slices.Clone(aggs), func(a model.CharAggregate) bool {
		return a.Incorrect == 0
	})
	slices.SortFunc(missed, func(a, b model.CharAggregate) int {
		return cmp.Or(
			cmp.Compare(errorRate(b), errorRate(a)),
			cmp.Compare(b.Incorrect, a.Incorrect),
			cmp.Compare(a.Char, b.Char),
		)
	})
	if top > 0 && top < len(missed) {
		missed = missed[:top]
	}
	out := make([]string, len(missed))
	for i, a := range missed {
		out[i] = a.Char
	}
	return out
}

func errorRate(a model.CharAggregate) float64 {
	return float64(a.Incorrect) / float64(a.Correct+a.Incorrect)
}
