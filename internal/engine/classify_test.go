package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		target string
		input  string
		want   []Verdict
	}{
		{name: "empty input", target: "cat", input: "", want: []Verdict{}},
		{name: "all correct", target: "cat", input: "cat", want: []Verdict{Correct, Correct, Correct}},
		{name: "one wrong", target: "cat", input: "cut", want: []Verdict{Correct, Incorrect, Correct}},
		{name: "prefix", target: "cat", input: "ca", want: []Verdict{Correct, Correct}},
		{name: "extra runes", target: "cat", input: "cats!", want: []Verdict{Correct, Correct, Correct, Extra, Extra}},
		{name: "empty target", target: "", input: "ab", want: []Verdict{Extra, Extra}},
		{name: "multibyte runes", target: "café", input: "cafe", want: []Verdict{Correct, Correct, Correct, Incorrect}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.target, tt.input))
		})
	}
}

func TestCursor(t *testing.T) {
	assert.Equal(t, 0, Cursor(""))
	assert.Equal(t, 4, Cursor("café"))
}

func TestLastKeystroke(t *testing.T) {
	ks, ok := LastKeystroke("cat", "cu")
	require.True(t, ok)
	assert.Equal(t, Keystroke{Rune: 'u', Index: 1, Verdict: Incorrect}, ks)

	ks, ok = LastKeystroke("cat", "cats")
	require.True(t, ok)
	assert.Equal(t, Extra, ks.Verdict)
	assert.False(t, ks.Verdict.IsCorrect())

	_, ok = LastKeystroke("cat", "")
	assert.False(t, ok)
}

func TestScoreWord(t *testing.T) {
	tests := []struct {
		name   string
		target string
		input  string
		want   WordScore
	}{
		{name: "exact", target: "hello", input: "hello", want: WordScore{Correct: 6, Exact: true}},
		{name: "one typo", target: "hello", input: "hallo", want: WordScore{Correct: 4, Incorrect: 2}},
		{name: "short", target: "hello", input: "he", want: WordScore{Correct: 2, Incorrect: 4, Missed: 3}},
		{name: "extra", target: "hi", input: "hiya", want: WordScore{Correct: 2, Incorrect: 3}},
		{name: "all wrong", target: "ab", input: "xy", want: WordScore{Incorrect: 3}},
		{name: "multibyte exact", target: "naïve", input: "naïve", want: WordScore{Correct: 6, Exact: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreWord(tt.target, tt.input))
		})
	}
}

func TestScoreWordDelimiterNeverSplit(t *testing.T) {
	for _, input := range []string{"a", "ab", "abc", "abcd", "xbc", "abx"} {
		score := ScoreWord("abc", input)
		typed := len(input) + score.Missed
		assert.Equal(t, typed+1, score.Correct+score.Incorrect, "input %q", input)
	}
}

func TestScorePartial(t *testing.T) {
	assert.Equal(t, WordScore{Correct: 2, Incorrect: 1}, ScorePartial("hello", "hex"))
	assert.Equal(t, WordScore{Correct: 2, Incorrect: 1}, ScorePartial("hi", "hiy"))
	assert.Equal(t, WordScore{}, ScorePartial("hi", ""))
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "correct", Correct.String())
	assert.Equal(t, "extra", Extra.String())
	assert.Equal(t, "unknown", Verdict(0).String())
}
