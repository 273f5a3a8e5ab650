package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/typerush/internal/generator"
	"github.com/verte-zerg/typerush/internal/model"
)

type fixedLines struct {
	lines [][]string
	calls int
}

func (f *fixedLines) NextLine() []string {
	line := f.lines[f.calls%len(f.lines)]
	f.calls++
	return append([]string(nil), line...)
}

func newTestSession(duration int, partial string) (*Session, *fixedLines) {
	src := &fixedLines{lines: [][]string{
		{"the", "quick", "fox"},
		{"jumps", "over", "dogs"},
	}}
	return New(src, Options{Duration: duration, PartialWord: partial}), src
}

func typeWord(s *Session, word string) {
	value := ""
	for _, r := range word {
		value += string(r)
		s.InputChange(value)
	}
}

func TestSessionStartsIdle(t *testing.T) {
	s, _ := newTestSession(30, model.PartialDiscard)
	snap := s.Snapshot()
	assert.Equal(t, Idle, snap.Phase)
	assert.Equal(t, 30, snap.Remaining)
	assert.Equal(t, []string{"the", "quick", "fox"}, snap.Line)
	assert.Equal(t, 0, snap.LiveWPM)
	assert.Equal(t, 100, snap.LiveAccuracy)
}

func TestSessionEmptyInputDoesNotStart(t *testing.T) {
	s, _ := newTestSession(30, model.PartialDiscard)
	s.InputChange("")
	assert.Equal(t, Idle, s.Phase())

	_, ended := s.Tick(s.Epoch())
	assert.False(t, ended)
	assert.Equal(t, 30, s.Snapshot().Remaining)
}

func TestSessionFirstKeystrokeStarts(t *testing.T) {
	s, _ := newTestSession(30, model.PartialDiscard)
	ks, ok := s.InputChange("t")
	require.True(t, ok)
	assert.Equal(t, Correct, ks.Verdict)
	assert.Equal(t, Running, s.Phase())

	ks, ok = s.InputChange("tx")
	require.True(t, ok)
	assert.Equal(t, Incorrect, ks.Verdict)

	_, ok = s.InputChange("t")
	assert.False(t, ok, "deletions carry no verdict")
	assert.Equal(t, "t", s.Snapshot().Input)
}

func TestSessionIgnoresTrailingSpace(t *testing.T) {
	s, _ := newTestSession(30, model.PartialDiscard)
	s.InputChange("th")
	_, ok := s.InputChange("th ")
	assert.False(t, ok)
	assert.Equal(t, "th", s.Snapshot().Input)
}

func TestSubmitExactWordAddsLengthPlusOne(t *testing.T) {
	s, _ := newTestSession(30, model.PartialDiscard)
	typeWord(s, "the")
	require.True(t, s.SubmitWord())

	final, ok := s.End()
	require.True(t, ok)
	assert.Equal(t, 4, final.CorrectChars)
	assert.Equal(t, 0, final.IncorrectChars)
}

func TestSubmitRequiresInput(t *testing.T) {
	s, _ := newTestSession(30, model.PartialDiscard)
	assert.False(t, s.SubmitWord())
	s.InputChange("t")
	s.InputChange("")
	assert.False(t, s.SubmitWord())
	assert.Equal(t, 0, s.Snapshot().WordIndex)
}

func TestSubmitAdvancesAndRecordsHistory(t *testing.T) {
	s, _ := newTestSession(30, model.PartialDiscard)
	typeWord(s, "the")
	require.True(t, s.SubmitWord())
	typeWord(s, "quack")
	require.True(t, s.SubmitWord())

	snap := s.Snapshot()
	assert.Equal(t, 2, snap.WordIndex)
	assert.Equal(t, "", snap.Input)
	assert.Equal(t, []string{"the", "quack"}, snap.History)
	assert.Equal(t, WordCorrect, snap.WordState(0))
	assert.Equal(t, WordIncorrect, snap.WordState(1))
	assert.Equal(t, WordCurrent, snap.WordState(2))
	assert.Equal(t, "fox", snap.CurrentWord())
}

func TestLastWordLoadsFreshLine(t *testing.T) {
	s, src := newTestSession(30, model.PartialDiscard)
	for _, w := range []string{"the", "quick", "fox"} {
		typeWord(s, w)
		require.True(t, s.SubmitWord())
	}

	snap := s.Snapshot()
	assert.Equal(t, 2, src.calls)
	assert.Equal(t, []string{"jumps", "over", "dogs"}, snap.Line)
	assert.Equal(t, 0, snap.WordIndex)
	assert.Empty(t, snap.History)
	assert.Equal(t, WordUntyped, snap.WordState(1))

	final, ok := s.End()
	require.True(t, ok)
	assert.Equal(t, 4+6+4, final.CorrectChars, "counters survive the history reset")
}

func TestTickCountsDownAndFinalizesOnce(t *testing.T) {
	s, _ := newTestSession(3, model.PartialDiscard)
	typeWord(s, "the")
	s.SubmitWord()

	epoch := s.Epoch()
	_, ended := s.Tick(epoch)
	assert.False(t, ended)
	_, ended = s.Tick(epoch)
	assert.False(t, ended)
	final, ended := s.Tick(epoch)
	require.True(t, ended)
	assert.Equal(t, Ended, s.Phase())
	assert.Equal(t, 0, s.Snapshot().Remaining)
	assert.Equal(t, 4, final.CorrectChars)
	assert.Equal(t, 16, final.WPM)

	_, ended = s.Tick(epoch)
	assert.False(t, ended)
	again, ended := s.End()
	assert.False(t, ended, "second end is a no-op")
	assert.Equal(t, final, again)

	got, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, final, got)
	assert.Len(t, s.Timeline(), 3)
}

func TestEndedSessionIgnoresInput(t *testing.T) {
	s, _ := newTestSession(1, model.PartialDiscard)
	typeWord(s, "the")
	_, ended := s.Tick(s.Epoch())
	require.True(t, ended)

	_, ok := s.InputChange("thex")
	assert.False(t, ok)
	assert.False(t, s.SubmitWord())
	assert.Equal(t, "the", s.Snapshot().Input)
}

func TestExplicitEndUsesElapsedTime(t *testing.T) {
	s, _ := newTestSession(60, model.PartialDiscard)
	for _, w := range []string{"the", "quick", "fox"} {
		typeWord(s, w)
		s.SubmitWord()
	}
	for i := 0; i < 6; i++ {
		s.Tick(s.Epoch())
	}
	final, ok := s.End()
	require.True(t, ok)
	assert.Equal(t, 6, s.Elapsed())
	// 14 correct chars over 6 seconds: (14/5) / 0.1 = 28
	assert.Equal(t, 28, final.WPM)
}

func TestEndWhileIdle(t *testing.T) {
	s, _ := newTestSession(60, model.PartialDiscard)
	final, ok := s.End()
	require.True(t, ok)
	assert.Equal(t, model.TestStats{WPM: 0, Accuracy: 100}, final)
	assert.Equal(t, Ended, s.Phase())
}

func TestPartialWordDiscardedAtExpiry(t *testing.T) {
	s, _ := newTestSession(1, model.PartialDiscard)
	typeWord(s, "the")
	s.SubmitWord()
	typeWord(s, "qui")

	final, ended := s.Tick(s.Epoch())
	require.True(t, ended)
	assert.Equal(t, 4, final.CorrectChars)
	assert.Equal(t, 0, final.IncorrectChars)
}

func TestPartialWordScoredAtExpiry(t *testing.T) {
	s, _ := newTestSession(1, model.PartialScore)
	typeWord(s, "the")
	s.SubmitWord()
	typeWord(s, "qux")

	final, ended := s.Tick(s.Epoch())
	require.True(t, ended)
	assert.Equal(t, 4+2, final.CorrectChars)
	assert.Equal(t, 1, final.IncorrectChars, "no missed chars or delimiter for the pending word")

	_, again := s.End()
	assert.False(t, again)
	got, _ := s.Result()
	assert.Equal(t, final, got, "partial word is scored only once")
}

func TestRestartIgnoresStaleTicks(t *testing.T) {
	s, _ := newTestSession(5, model.PartialDiscard)
	typeWord(s, "the")
	stale := s.Epoch()
	s.Tick(stale)

	fresh := &fixedLines{lines: [][]string{{"new", "line"}}}
	s.Restart(fresh)
	snap := s.Snapshot()
	assert.NotEqual(t, stale, snap.Epoch)
	assert.Equal(t, Idle, snap.Phase)
	assert.Equal(t, 5, snap.Remaining)
	assert.Equal(t, []string{"new", "line"}, snap.Line)
	assert.Equal(t, "", snap.Input)

	typeWord(s, "new")
	_, ended := s.Tick(stale)
	assert.False(t, ended)
	assert.Equal(t, 5, s.Snapshot().Remaining, "stale tick must not touch the new session")

	s.Tick(s.Epoch())
	assert.Equal(t, 4, s.Snapshot().Remaining)
}

func TestRestartAfterEndAllowsNewFinalization(t *testing.T) {
	s, _ := newTestSession(1, model.PartialDiscard)
	typeWord(s, "the")
	_, ended := s.Tick(s.Epoch())
	require.True(t, ended)

	s.Restart(&fixedLines{lines: [][]string{{"a"}}})
	_, ok := s.Result()
	assert.False(t, ok)
	typeWord(s, "a")
	require.True(t, s.SubmitWord())
	final, ended := s.Tick(s.Epoch())
	require.True(t, ended)
	assert.Equal(t, 2, final.CorrectChars)
}

func TestRestartWithNewDuration(t *testing.T) {
	s, _ := newTestSession(30, model.PartialDiscard)
	typeWord(s, "th")
	before := s.Epoch()

	s.RestartWith(&fixedLines{lines: [][]string{{"a", "b"}}}, Options{Duration: 15, PartialWord: model.PartialScore})
	assert.Greater(t, s.Epoch(), before)
	assert.Equal(t, 15, s.Snapshot().Remaining)
	assert.Equal(t, "", s.Input())

	typeWord(s, "x")
	final, ok := s.End()
	require.True(t, ok)
	assert.Equal(t, 1, final.IncorrectChars, "new partial policy applies")
}

func TestLiveStatsUseElapsedTime(t *testing.T) {
	s, _ := newTestSession(60, model.PartialDiscard)
	typeWord(s, "the")
	s.SubmitWord()
	assert.Equal(t, 0, s.Snapshot().LiveWPM, "no elapsed time yet")

	s.Tick(s.Epoch())
	snap := s.Snapshot()
	// 4 correct chars in one second: (4/5) / (1/60) = 48
	assert.Equal(t, 48, snap.LiveWPM)
	assert.Equal(t, 100, snap.LiveAccuracy)
	assert.InDelta(t, 1.0/60.0, snap.Progress(), 1e-9)
}

func TestCharAggregates(t *testing.T) {
	s, _ := newTestSession(60, model.PartialDiscard)
	typeWord(s, "tha")
	s.SubmitWord()

	aggs := s.CharAggregates()
	assert.Equal(t, []model.CharAggregate{
		{Char: "e", Correct: 0, Incorrect: 1},
		{Char: "h", Correct: 1, Incorrect: 0},
		{Char: "t", Correct: 1, Incorrect: 0},
	}, aggs)
}

func TestCountersMonotonic(t *testing.T) {
	vocab := generator.NewVocabulary([]string{"one", "two", "three", "four", "five"})
	src := generator.NewSource("seed words come first here", vocab, generator.NewWithSeed(3), 4)
	s := New(src, Options{Duration: 60, PartialWord: model.PartialDiscard})
	rnd := rand.New(rand.NewSource(9))

	prevCorrect, prevIncorrect := 0, 0
	for i := 0; i < 200; i++ {
		target := s.Snapshot().CurrentWord()
		input := target
		switch rnd.Intn(4) {
		case 0:
			input = target[:1]
		case 1:
			input = target + "x"
		case 2:
			input = strings.ToUpper(target)
		}
		typeWord(s, input)
		require.True(t, s.SubmitWord())

		s.mustCountersAtLeast(t, prevCorrect, prevIncorrect)
		prevCorrect, prevIncorrect = s.correct, s.incorrect
	}
}

func (s *Session) mustCountersAtLeast(t *testing.T, correct, incorrect int) {
	t.Helper()
	require.GreaterOrEqual(t, s.correct, correct)
	require.GreaterOrEqual(t, s.incorrect, incorrect)
	require.Greater(t, s.correct+s.incorrect, correct+incorrect)
}
