// Package engine implements the typing session: keystroke classification,
// word submission scoring and the timed session state machine.
package engine

// Verdict classifies one typed character against the target word.
type Verdict int

const (
	// Correct means the typed rune matches the target rune at the same index.
	Correct Verdict = iota + 1
	// Incorrect means the typed rune differs from the target rune.
	Incorrect
	// Extra means the rune was typed past the end of the target word.
	// It is scored as incorrect.
	Extra
)

func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Extra:
		return "extra"
	default:
		return "unknown"
	}
}

// IsCorrect reports whether the verdict counts toward correct characters.
func (v Verdict) IsCorrect() bool {
	return v == Correct
}

// Classify returns one verdict per rune of input.
func Classify(target, input string) []Verdict {
	targetRunes := []rune(target)
	inputRunes := []rune(input)
	out := make([]Verdict, len(inputRunes))
	for i, r := range inputRunes {
		out[i] = verdictAt(targetRunes, i, r)
	}
	return out
}

// Cursor returns the rune index where the next character will be inserted.
func Cursor(input string) int {
	return len([]rune(input))
}

// Keystroke is the verdict for the most recently typed character.
type Keystroke struct {
	Rune    rune
	Index   int
	Verdict Verdict
}

// LastKeystroke classifies the final rune of value against target.
// It returns false for an empty value.
func LastKeystroke(target, value string) (Keystroke, bool) {
	valueRunes := []rune(value)
	if len(valueRunes) == 0 {
		return Keystroke{}, false
	}
	idx := len(valueRunes) - 1
	r := valueRunes[idx]
	return Keystroke{Rune: r, Index: idx, Verdict: verdictAt([]rune(target), idx, r)}, true
}

func verdictAt(target []rune, i int, typed rune) Verdict {
	if i >= len(target) {
		return Extra
	}
	if typed == target[i] {
		return Correct
	}
	return Incorrect
}

// WordScore is the contribution of one submitted word to the session counters.
// The delimiter is included: it is correct only when the input matches exactly.
type WordScore struct {
	Correct   int
	Incorrect int
	Missed    int
	Exact     bool
}

// ScoreWord scores a submitted word.
func ScoreWord(target, input string) WordScore {
	targetRunes := []rune(target)
	inputRunes := []rune(input)

	common := min(len(targetRunes), len(inputRunes))
	correctInWord := 0
	for i := 0; i < common; i++ {
		if inputRunes[i] == targetRunes[i] {
			correctInWord++
		}
	}
	incorrectTyped := len(inputRunes) - correctInWord
	missed := max(0, len(targetRunes)-len(inputRunes))

	score := WordScore{
		Correct:   correctInWord,
		Incorrect: incorrectTyped + missed,
		Missed:    missed,
		Exact:     target == input,
	}
	if score.Exact {
		score.Correct++
	} else {
		score.Incorrect++
	}
	return score
}

// ScorePartial scores an unsubmitted word: typed runes only, no missed
// characters and no delimiter.
func ScorePartial(target, input string) WordScore {
	var score WordScore
	for _, v := range Classify(target, input) {
		if v.IsCorrect() {
			score.Correct++
		} else {
			score.Incorrect++
		}
	}
	return score
}
