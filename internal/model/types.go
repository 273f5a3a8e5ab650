// Package model defines shared data structures.
package model

import "time"

// Partial word policies applied when a session ends mid-word.
const (
	PartialDiscard = "discard"
	PartialScore   = "score"
)

// Config defines practice settings.
type Config struct {
	Lang        string `validate:"required"`
	Duration    int    `validate:"min=1,max=3600"`
	LineSize    int    `validate:"min=1,max=64"`
	Topic       string `validate:"max=200"`
	Difficulty  string `validate:"oneof=beginner intermediate advanced"`
	Complexity  string `validate:"oneof=simple medium complex"`
	TextFile    string
	Sound       bool
	Seed        int64
	PartialWord string `validate:"oneof=discard score"`
	Model       string `validate:"required"`
	Image       bool
	Offline     bool
}

// TestStats is the final score of a typing session.
type TestStats struct {
	WPM            int `json:"wpm"`
	Accuracy       int `json:"accuracy"`
	CorrectChars   int `json:"correctChars"`
	IncorrectChars int `json:"incorrectChars"`
	TotalChars     int `json:"totalChars"`
}

// Result captures a finished session for presentation.
type Result struct {
	Stats     TestStats `json:"stats"`
	Duration  int       `json:"durationSeconds"`
	Elapsed   int       `json:"elapsedSeconds"`
	Topic     string    `json:"topic,omitempty"`
	Timeline  []int     `json:"timeline,omitempty"`
	WeakChars []string  `json:"weakChars,omitempty"`
	ImageRef  string    `json:"imageRef,omitempty"`
	StartedAt time.Time `json:"startedAt"`
	EndedAt   time.Time `json:"endedAt"`
}

// CharAggregate counts per-character outcomes against the target text.
type CharAggregate struct {
	Char      string `json:"char"`
	Correct   int    `json:"correct"`
	Incorrect int    `json:"incorrect"`
}
