package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/verte-zerg/typerush/internal/model"
)

// Environment holds the TYPERUSH_* overrides and API credentials. Only
// variables that are present replace the values already in the struct.
type Environment struct {
	Lang        string `env:"TYPERUSH_LANG"`
	Duration    int    `env:"TYPERUSH_DURATION"`
	LineSize    int    `env:"TYPERUSH_LINE_SIZE"`
	Topic       string `env:"TYPERUSH_TOPIC"`
	Difficulty  string `env:"TYPERUSH_DIFFICULTY"`
	Complexity  string `env:"TYPERUSH_COMPLEXITY"`
	TextFile    string `env:"TYPERUSH_TEXT_FILE"`
	Sound       bool   `env:"TYPERUSH_SOUND"`
	Seed        int64  `env:"TYPERUSH_SEED"`
	PartialWord string `env:"TYPERUSH_PARTIAL_WORD"`
	Model       string `env:"TYPERUSH_MODEL"`
	Image       bool   `env:"TYPERUSH_IMAGE"`
	Offline     bool   `env:"TYPERUSH_OFFLINE"`

	OpenAIKey string `env:"OPENAI_API_KEY"`
}

// LoadDotenv loads a .env file from the working directory when present.
// Variables already set in the process environment win.
func LoadDotenv(paths ...string) {
	_ = godotenv.Load(paths...)
}

// ApplyEnv overlays environment variables onto cfg and returns the
// credentials found alongside them.
func ApplyEnv(cfg *model.Config) (Environment, error) {
	e := Environment{
		Lang:        cfg.Lang,
		Duration:    cfg.Duration,
		LineSize:    cfg.LineSize,
		Topic:       cfg.Topic,
		Difficulty:  cfg.Difficulty,
		Complexity:  cfg.Complexity,
		TextFile:    cfg.TextFile,
		Sound:       cfg.Sound,
		Seed:        cfg.Seed,
		PartialWord: cfg.PartialWord,
		Model:       cfg.Model,
		Image:       cfg.Image,
		Offline:     cfg.Offline,
	}
	if err := env.Parse(&e); err != nil {
		return Environment{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.Lang = e.Lang
	cfg.Duration = e.Duration
	cfg.LineSize = e.LineSize
	cfg.Topic = e.Topic
	cfg.Difficulty = e.Difficulty
	cfg.Complexity = e.Complexity
	cfg.TextFile = e.TextFile
	cfg.Sound = e.Sound
	cfg.Seed = e.Seed
	cfg.PartialWord = e.PartialWord
	cfg.Model = e.Model
	cfg.Image = e.Image
	cfg.Offline = e.Offline
	return e, nil
}
