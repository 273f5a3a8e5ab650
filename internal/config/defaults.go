package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/typerush/internal/model"
)

// Defaults for practice settings.
const (
	DefaultLang        = "en"
	DefaultDuration    = 60
	DefaultLineSize    = 12
	DefaultTopic       = "space exploration"
	DefaultDifficulty  = "intermediate"
	DefaultComplexity  = "medium"
	DefaultPartialWord = model.PartialDiscard
	DefaultModel       = "gpt-4o-mini"
)

// Durations offered on the setup screen, in seconds.
var Durations = []int{15, 30, 60, 120}

// Difficulties and Complexities list the accepted values in display order.
var (
	Difficulties = []string{"beginner", "intermediate", "advanced"}
	Complexities = []string{"simple", "medium", "complex"}
)

// Defaults returns the built-in practice settings.
func Defaults() model.Config {
	return model.Config{
		Lang:        DefaultLang,
		Duration:    DefaultDuration,
		LineSize:    DefaultLineSize,
		Topic:       DefaultTopic,
		Difficulty:  DefaultDifficulty,
		Complexity:  DefaultComplexity,
		Sound:       true,
		PartialWord: DefaultPartialWord,
		Model:       DefaultModel,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// flagNames maps struct fields to the flag a user would fix.
var flagNames = map[string]string{
	"Lang":        "lang",
	"Duration":    "duration",
	"LineSize":    "line-size",
	"Topic":       "topic",
	"Difficulty":  "difficulty",
	"Complexity":  "complexity",
	"PartialWord": "partial-word",
	"Model":       "model",
}

// Validate checks the merged settings and reports violations in flag terms.
func Validate(cfg model.Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	name := flagNames[fe.Field()]
	if name == "" {
		name = strings.ToLower(fe.Field())
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("--%s must not be empty", name)
	case "min":
		return fmt.Sprintf("--%s must be >= %s", name, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("--%s must be at most %s characters", name, fe.Param())
		}
		return fmt.Sprintf("--%s must be <= %s", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("--%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("--%s is invalid (%s)", name, fe.Tag())
	}
}
