// Package textgen produces the seed text a typing session starts with.
package textgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"strings"
	"sync"
)

// DefaultTopic replaces a blank topic.
const DefaultTopic = "random facts"

// MinTextLength is the shortest generated text accepted, in runes.
const MinTextLength = 50

// FillerWords is the length of locally generated filler text.
const FillerWords = 50

var (
	// ErrTooShort is returned when generated text is below MinTextLength.
	ErrTooShort = errors.New("generated text is too short")
	// ErrNoAPIKey is returned when a remote provider has no credentials.
	ErrNoAPIKey = errors.New("api key is not set")
)

// Request describes the text to generate.
type Request struct {
	Topic      string
	Difficulty string
	Complexity string
	Words      int
}

// NewRequest builds a request sized for a session of durationSeconds.
func NewRequest(topic, difficulty, complexity string, durationSeconds int) Request {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = DefaultTopic
	}
	return Request{
		Topic:      topic,
		Difficulty: difficulty,
		Complexity: complexity,
		Words:      WordCount(durationSeconds),
	}
}

// WordCount estimates the words needed for a session: 50 per minute plus
// ten spare.
func WordCount(durationSeconds int) int {
	return int(math.Floor(float64(durationSeconds)/60*50+0.5)) + 10
}

// Provider generates seed text.
type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, req Request) (string, error)

// Generate calls f.
func (f ProviderFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Clean flattens text into one line and strips markdown emphasis and quotes.
func Clean(text string) string {
	text = strings.Map(func(r rune) rune {
		switch r {
		case '*', '"':
			return -1
		case '\n', '\r', '\t':
			return ' '
		}
		return r
	}, text)
	return strings.Join(strings.Fields(text), " ")
}

func checkLength(text string) error {
	if n := len([]rune(text)); n < MinTextLength {
		return fmt.Errorf("%w: %d < %d", ErrTooShort, n, MinTextLength)
	}
	return nil
}

// Filler produces random words from a vocabulary. It never fails.
type Filler struct {
	mu    sync.Mutex
	words []string
	rnd   *rand.Rand
	count int
}

// NewFiller returns a filler over words using rnd. Count defaults to FillerWords.
func NewFiller(words []string, rnd *rand.Rand, count int) *Filler {
	if count <= 0 {
		count = FillerWords
	}
	return &Filler{words: append([]string(nil), words...), rnd: rnd, count: count}
}

// Generate ignores the request and returns count random words.
func (f *Filler) Generate(_ context.Context, _ Request) (string, error) {
	if len(f.words) == 0 {
		return "", fmt.Errorf("filler vocabulary is empty")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, f.count)
	for i := range out {
		out[i] = f.words[f.rnd.Intn(len(f.words))]
	}
	return strings.Join(out, " "), nil
}

// File reads seed text from a local file.
type File struct {
	Path string
}

// Generate returns the cleaned file contents.
func (f File) Generate(_ context.Context, _ Request) (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	text := Clean(string(data))
	if text == "" {
		return "", fmt.Errorf("text file %s is empty", f.Path)
	}
	return text, nil
}

type fallback struct {
	primary  Provider
	fallback Provider
	logger   *slog.Logger
}

// WithFallback returns a provider that uses fallback whenever primary fails.
func WithFallback(primary, fb Provider, logger *slog.Logger) Provider {
	return &fallback{primary: primary, fallback: fb, logger: logger}
}

func (p *fallback) Generate(ctx context.Context, req Request) (string, error) {
	text, err := p.primary.Generate(ctx, req)
	if err == nil {
		return text, nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	p.logger.Warn("text generation failed, using fallback", "topic", req.Topic, "error", err)
	return p.fallback.Generate(ctx, req)
}
