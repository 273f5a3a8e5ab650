// Package config resolves practice settings from defaults, the TOML config
// file, the environment and CLI flags.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/typerush/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
}

// PracticeConfig maps practice-related settings. Nil fields were not set.
type PracticeConfig struct {
	Lang        *string `toml:"lang"`
	Duration    *int    `toml:"duration"`
	LineSize    *int    `toml:"line-size"`
	Topic       *string `toml:"topic"`
	Difficulty  *string `toml:"difficulty"`
	Complexity  *string `toml:"complexity"`
	TextFile    *string `toml:"text-file"`
	Sound       *bool   `toml:"sound"`
	PartialWord *string `toml:"partial-word"`
	Model       *string `toml:"model"`
	Image       *bool   `toml:"image"`
	Offline     *bool   `toml:"offline"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Apply copies every set field onto cfg.
func (p PracticeConfig) Apply(cfg *model.Config) {
	setIf(&cfg.Lang, p.Lang)
	setIf(&cfg.Duration, p.Duration)
	setIf(&cfg.LineSize, p.LineSize)
	setIf(&cfg.Topic, p.Topic)
	setIf(&cfg.Difficulty, p.Difficulty)
	setIf(&cfg.Complexity, p.Complexity)
	setIf(&cfg.TextFile, p.TextFile)
	setIf(&cfg.Sound, p.Sound)
	setIf(&cfg.PartialWord, p.PartialWord)
	setIf(&cfg.Model, p.Model)
	setIf(&cfg.Image, p.Image)
	setIf(&cfg.Offline, p.Offline)
}

func setIf[T any](target, value *T) {
	if value != nil {
		*target = *value
	}
}
