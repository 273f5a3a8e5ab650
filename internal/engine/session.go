package engine

import (
	"sort"
	"strings"

	"github.com/verte-zerg/typerush/internal/model"
	"github.com/verte-zerg/typerush/internal/stats"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	// Idle is the state before the first keystroke.
	Idle Phase = iota
	// Running means the countdown is active.
	Running
	// Ended is terminal; stats have been produced.
	Ended
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// LineSource supplies lines of target words.
type LineSource interface {
	NextLine() []string
}

// Options configures a session.
type Options struct {
	// Duration is the countdown length in seconds.
	Duration int
	// PartialWord decides how an unsubmitted word is scored at the end:
	// model.PartialDiscard or model.PartialScore.
	PartialWord string
}

type charCount struct {
	correct   int
	incorrect int
}

// Session is the typing session state machine. It is not safe for
// concurrent use; a single owner must serialize all events.
type Session struct {
	src  LineSource
	opts Options

	line      []string
	wordIndex int
	input     string
	history   []string

	correct   int
	incorrect int
	chars     map[rune]*charCount

	remaining int
	phase     Phase
	epoch     uint64

	finalized bool
	final     model.TestStats
	timeline  []int
}

// New starts a session in the Idle phase with the first line loaded.
func New(src LineSource, opts Options) *Session {
	s := &Session{}
	s.reset(src, opts)
	return s
}

func (s *Session) reset(src LineSource, opts Options) {
	s.src = src
	s.opts = opts
	s.line = src.NextLine()
	s.wordIndex = 0
	s.input = ""
	s.history = nil
	s.correct = 0
	s.incorrect = 0
	s.chars = map[rune]*charCount{}
	s.remaining = opts.Duration
	s.phase = Idle
	s.finalized = false
	s.final = model.TestStats{}
	s.timeline = nil
}

// Restart discards all state and begins a fresh session over src.
// Ticks scheduled for the previous session are ignored afterwards.
func (s *Session) Restart(src LineSource) {
	s.RestartWith(src, s.opts)
}

// RestartWith is Restart with new options.
func (s *Session) RestartWith(src LineSource, opts Options) {
	s.epoch++
	s.reset(src, opts)
}

// Epoch identifies the current session for tick delivery.
func (s *Session) Epoch() uint64 {
	return s.epoch
}

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Input returns the unsubmitted text of the current word.
func (s *Session) Input() string {
	return s.input
}

// InputChange replaces the current input. A value ending in a space is
// ignored since the delimiter is handled by SubmitWord. When the value grew,
// the verdict of the newly typed character is returned.
func (s *Session) InputChange(value string) (Keystroke, bool) {
	if s.phase == Ended || strings.HasSuffix(value, " ") {
		return Keystroke{}, false
	}
	if s.phase == Idle && value != "" {
		s.phase = Running
	}
	grew := len([]rune(value)) > len([]rune(s.input))
	s.input = value
	if !grew {
		return Keystroke{}, false
	}
	return LastKeystroke(s.currentWord(), value)
}

// SubmitWord scores the current input against the current word and
// advances. It is a no-op for empty input or outside the Running phase.
func (s *Session) SubmitWord() bool {
	if s.phase != Running || s.input == "" {
		return false
	}
	target := s.currentWord()
	score := ScoreWord(target, s.input)
	s.correct += score.Correct
	s.incorrect += score.Incorrect
	s.countChars(target, s.input, true)

	if s.wordIndex == len(s.line)-1 {
		s.line = s.src.NextLine()
		s.wordIndex = 0
		s.history = nil
	} else {
		s.history = append(s.history, s.input)
		s.wordIndex++
	}
	s.input = ""
	return true
}

// Tick advances the countdown by one second. Ticks from another epoch or
// outside the Running phase are ignored. When the countdown reaches zero
// the session ends and the final stats are returned with true.
func (s *Session) Tick(epoch uint64) (model.TestStats, bool) {
	if epoch != s.epoch || s.phase != Running {
		return model.TestStats{}, false
	}
	if s.remaining > 0 {
		s.remaining--
	}
	s.timeline = append(s.timeline, s.liveStats().WPM)
	if s.remaining == 0 {
		return s.finalize()
	}
	return model.TestStats{}, false
}

// End requests an early finish. Only the first call produces stats.
func (s *Session) End() (model.TestStats, bool) {
	return s.finalize()
}

func (s *Session) finalize() (model.TestStats, bool) {
	if s.finalized {
		return s.final, false
	}
	s.finalized = true
	if s.opts.PartialWord == model.PartialScore && s.input != "" {
		score := ScorePartial(s.currentWord(), s.input)
		s.correct += score.Correct
		s.incorrect += score.Incorrect
		s.countChars(s.currentWord(), s.input, false)
	}
	s.phase = Ended
	s.final = stats.ComputeStats(s.correct, s.incorrect, s.Elapsed())
	return s.final, true
}

// Result returns the final stats once the session has ended.
func (s *Session) Result() (model.TestStats, bool) {
	return s.final, s.finalized
}

// Elapsed returns the seconds counted down so far.
func (s *Session) Elapsed() int {
	return s.opts.Duration - s.remaining
}

// Timeline returns the live WPM sampled at every tick.
func (s *Session) Timeline() []int {
	return append([]int(nil), s.timeline...)
}

// CharAggregates returns per-character outcomes for scored target characters.
func (s *Session) CharAggregates() []model.CharAggregate {
	out := make([]model.CharAggregate, 0, len(s.chars))
	for r, c := range s.chars {
		out = append(out, model.CharAggregate{Char: string(r), Correct: c.correct, Incorrect: c.incorrect})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Char < out[j].Char })
	return out
}

func (s *Session) countChars(target, input string, withMissed bool) {
	targetRunes := []rune(target)
	inputRunes := []rune(input)
	for i, want := range targetRunes {
		if i >= len(inputRunes) && !withMissed {
			break
		}
		entry, ok := s.chars[want]
		if !ok {
			entry = &charCount{}
			s.chars[want] = entry
		}
		if i < len(inputRunes) && inputRunes[i] == want {
			entry.correct++
		} else {
			entry.incorrect++
		}
	}
}

func (s *Session) currentWord() string {
	if s.wordIndex < len(s.line) {
		return s.line[s.wordIndex]
	}
	return ""
}

func (s *Session) liveStats() model.TestStats {
	elapsed := s.Elapsed()
	if s.phase != Running {
		elapsed = 0
	}
	return stats.ComputeStats(s.correct, s.incorrect, elapsed)
}
