package engine

// WordState is the display state of a word in the current line.
type WordState int

const (
	// WordUntyped is a word after the current one.
	WordUntyped WordState = iota
	// WordCurrent is the word being typed.
	WordCurrent
	// WordCorrect is a completed word whose submitted input matched exactly.
	WordCorrect
	// WordIncorrect is a completed word with any deviation.
	WordIncorrect
)

// Snapshot is a read-only view of the session after an event.
type Snapshot struct {
	Line         []string
	WordIndex    int
	Input        string
	History      []string
	Remaining    int
	Duration     int
	Phase        Phase
	Epoch        uint64
	LiveWPM      int
	LiveAccuracy int
}

// Snapshot copies the presentation state of the session.
func (s *Session) Snapshot() Snapshot {
	live := s.liveStats()
	if s.finalized {
		live = s.final
	}
	return Snapshot{
		Line:         append([]string(nil), s.line...),
		WordIndex:    s.wordIndex,
		Input:        s.input,
		History:      append([]string(nil), s.history...),
		Remaining:    s.remaining,
		Duration:     s.opts.Duration,
		Phase:        s.phase,
		Epoch:        s.epoch,
		LiveWPM:      live.WPM,
		LiveAccuracy: live.Accuracy,
	}
}

// WordState derives the state of the word at index i.
func (sn Snapshot) WordState(i int) WordState {
	switch {
	case i > sn.WordIndex:
		return WordUntyped
	case i == sn.WordIndex:
		return WordCurrent
	case i < len(sn.History) && i < len(sn.Line) && sn.History[i] == sn.Line[i]:
		return WordCorrect
	default:
		return WordIncorrect
	}
}

// CurrentWord returns the target word being typed.
func (sn Snapshot) CurrentWord() string {
	if sn.WordIndex < len(sn.Line) {
		return sn.Line[sn.WordIndex]
	}
	return ""
}

// Progress returns the fraction of the countdown consumed, in [0, 1].
func (sn Snapshot) Progress() float64 {
	if sn.Duration <= 0 {
		return 0
	}
	return float64(sn.Duration-sn.Remaining) / float64(sn.Duration)
}
