package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testVocab = NewVocabulary([]string{"alpha", "beta", "gamma"})

func seedText(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = "w" + string(rune('a'+i%26)) + strings.Repeat("x", i/26)
	}
	return strings.Join(words, " ")
}

func TestNextLineAlwaysFull(t *testing.T) {
	for _, n := range []int{0, 5, DefaultLineSize, DefaultLineSize + 7, 3 * DefaultLineSize} {
		src := NewSource(seedText(n), testVocab, NewWithSeed(1), DefaultLineSize)
		for i := 0; i < 5; i++ {
			assert.Len(t, src.NextLine(), DefaultLineSize, "seed size %d line %d", n, i)
		}
	}
}

func TestNextLineConsumesSeedInOrder(t *testing.T) {
	text := seedText(30)
	want := strings.Fields(text)
	src := NewSource(text, testVocab, NewWithSeed(1), DefaultLineSize)

	var got []string
	for i := 0; i < 3; i++ {
		line := src.NextLine()
		for _, w := range line {
			if strings.HasPrefix(w, "w") {
				got = append(got, w)
			}
		}
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 30, src.Seed().Consumed())
	assert.Zero(t, src.Seed().Remaining())
}

func TestNextLineFillsAfterSeedWords(t *testing.T) {
	src := NewSource("one two three", testVocab, NewWithSeed(7), 5)
	line := src.NextLine()
	require.Len(t, line, 5)
	assert.Equal(t, []string{"one", "two", "three"}, line[:3])
	for _, w := range line[3:] {
		assert.Contains(t, []string{"alpha", "beta", "gamma"}, w)
	}

	next := src.NextLine()
	for _, w := range next {
		assert.Contains(t, []string{"alpha", "beta", "gamma"}, w)
	}
}

func TestNextLineSplitsOnAnyWhitespace(t *testing.T) {
	src := NewSource("  one\ttwo\n\nthree  ", testVocab, NewWithSeed(1), 3)
	assert.Equal(t, []string{"one", "two", "three"}, src.NextLine())
}

func TestSeedQueueTake(t *testing.T) {
	q := NewSeedQueue("a b c")
	assert.Equal(t, []string{"a", "b"}, q.Take(2))
	assert.Equal(t, []string{"c"}, q.Take(2))
	assert.Nil(t, q.Take(2))
	assert.Nil(t, q.Take(0))
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := NewWithSeed(42).Generate(testVocab, 20)
	b := NewWithSeed(42).Generate(testVocab, 20)
	assert.Equal(t, a, b)
}

func TestNewSourceDefaultsLineSize(t *testing.T) {
	src := NewSource("", testVocab, NewWithSeed(1), 0)
	assert.Equal(t, DefaultLineSize, src.LineSize())
}

func TestNewVocabularyCopiesInput(t *testing.T) {
	words := []string{"x"}
	vocab := NewVocabulary(words)
	words[0] = "y"
	assert.Equal(t, []string{"x"}, NewWithSeed(1).Generate(vocab, 1))
	assert.Equal(t, 1, vocab.Len())
}
