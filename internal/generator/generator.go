// Package generator builds the lines of target words for a typing session.
package generator

import (
	"math/rand"
	"strings"
	"time"
)

// DefaultLineSize is the number of words per line.
const DefaultLineSize = 12

// Vocabulary is an immutable pool of filler words.
type Vocabulary struct {
	words []string
}

// NewVocabulary copies words into a vocabulary. Callers must pass a non-empty list.
func NewVocabulary(words []string) Vocabulary {
	return Vocabulary{words: append([]string(nil), words...)}
}

// Len returns the number of words in the pool.
func (v Vocabulary) Len() int {
	return len(v.words)
}

// SeedQueue is a one-shot cursor over the words of a seed text.
type SeedQueue struct {
	words []string
	next  int
}

// NewSeedQueue splits text on whitespace.
func NewSeedQueue(text string) *SeedQueue {
	return &SeedQueue{words: strings.Fields(text)}
}

// Take removes and returns up to n words in original order.
func (q *SeedQueue) Take(n int) []string {
	if n <= 0 || q.next >= len(q.words) {
		return nil
	}
	end := q.next + n
	if end > len(q.words) {
		end = len(q.words)
	}
	out := append([]string(nil), q.words[q.next:end]...)
	q.next = end
	return out
}

// Consumed returns how many seed words have been dequeued.
func (q *SeedQueue) Consumed() int {
	return q.next
}

// Remaining returns how many seed words are left.
func (q *SeedQueue) Remaining() int {
	return len(q.words) - q.next
}

// Generator picks random words from a vocabulary.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a deterministic seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate selects count words uniformly with replacement.
func (g *Generator) Generate(vocab Vocabulary, count int) []string {
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, vocab.words[g.rnd.Intn(len(vocab.words))])
	}
	return result
}

// Source produces fixed-size lines, seed words first and random filler after.
type Source struct {
	seed     *SeedQueue
	vocab    Vocabulary
	gen      *Generator
	lineSize int
}

// NewSource builds a word source over seed text. A non-positive lineSize uses DefaultLineSize.
func NewSource(seedText string, vocab Vocabulary, gen *Generator, lineSize int) *Source {
	if lineSize <= 0 {
		lineSize = DefaultLineSize
	}
	return &Source{
		seed:     NewSeedQueue(seedText),
		vocab:    vocab,
		gen:      gen,
		lineSize: lineSize,
	}
}

// NextLine returns exactly LineSize words.
func (s *Source) NextLine() []string {
	line := s.seed.Take(s.lineSize)
	if missing := s.lineSize - len(line); missing > 0 {
		line = append(line, s.gen.Generate(s.vocab, missing)...)
	}
	return line
}

// LineSize returns the number of words per line.
func (s *Source) LineSize() int {
	return s.lineSize
}

// Seed exposes the seed queue for inspection.
func (s *Source) Seed() *SeedQueue {
	return s.seed
}
