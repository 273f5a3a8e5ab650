package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typerush/internal/config"
	"github.com/verte-zerg/typerush/internal/model"
)

type setupField int

const (
	fieldTopic setupField = iota
	fieldDifficulty
	fieldComplexity
	fieldDuration
	fieldCount
)

type setupForm struct {
	topic      textinput.Model
	field      setupField
	difficulty int
	complexity int
	duration   int

	// durationSet is true once the duration row was changed.
	durationSet bool
}

func newSetupForm(cfg model.Config) setupForm {
	ti := textinput.New()
	ti.Placeholder = "e.g. space exploration"
	ti.CharLimit = 200
	ti.Width = 40
	ti.SetValue(cfg.Topic)
	return setupForm{
		topic:      ti,
		difficulty: indexOf(config.Difficulties, cfg.Difficulty),
		complexity: indexOf(config.Complexities, cfg.Complexity),
		duration:   nearestDuration(cfg.Duration),
	}
}

func indexOf(values []string, v string) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return 0
}

func nearestDuration(seconds int) int {
	best := 0
	for i, d := range config.Durations {
		if abs(d-seconds) < abs(config.Durations[best]-seconds) {
			best = i
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (f *setupForm) focus() tea.Cmd {
	if f.field == fieldTopic {
		return f.topic.Focus()
	}
	f.topic.Blur()
	return nil
}

func (f *setupForm) move(delta int) tea.Cmd {
	f.field = setupField((int(f.field) + delta + int(fieldCount)) % int(fieldCount))
	return f.focus()
}

func (f *setupForm) cycle(delta int) {
	step := func(v, n int) int { return (v + delta + n) % n }
	switch f.field {
	case fieldDifficulty:
		f.difficulty = step(f.difficulty, len(config.Difficulties))
	case fieldComplexity:
		f.complexity = step(f.complexity, len(config.Complexities))
	case fieldDuration:
		f.duration = step(f.duration, len(config.Durations))
		f.durationSet = true
	}
}

// apply copies the form selection onto cfg. A custom duration from the
// command line is kept until another one is picked.
func (f *setupForm) apply(cfg *model.Config) {
	cfg.Topic = strings.TrimSpace(f.topic.Value())
	cfg.Difficulty = config.Difficulties[f.difficulty]
	cfg.Complexity = config.Complexities[f.complexity]
	if f.durationSet {
		cfg.Duration = config.Durations[f.duration]
	}
}

func (m *Model) updateSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Start):
		m.setup.apply(&m.cfg)
		return m, m.startLoading()
	case key.Matches(msg, m.keys.Next):
		return m, m.setup.move(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.setup.move(-1)
	}

	if m.setup.field == fieldTopic {
		var cmd tea.Cmd
		m.setup.topic, cmd = m.setup.topic.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(msg, m.keys.Left):
		m.setup.cycle(-1)
	case key.Matches(msg, m.keys.Right):
		m.setup.cycle(1)
	}
	return m, nil
}

func (m *Model) viewSetup() string {
	f := m.setup
	rows := []string{
		titleStyle.Render("typerush"),
		"",
		fieldLabel("Topic", f.field == fieldTopic),
		f.topic.View(),
		"",
		fieldLabel("Sentence structure", f.field == fieldDifficulty),
		renderOptions(config.Difficulties, f.difficulty),
		"",
		fieldLabel("Word complexity", f.field == fieldComplexity),
		renderOptions(config.Complexities, f.complexity),
		"",
		fieldLabel("Duration", f.field == fieldDuration),
		renderOptions(durationLabels(), f.duration),
	}
	if m.err != nil {
		rows = append(rows, "", errorStyle.Render(fmt.Sprintf("Could not prepare text: %v", m.err)))
	}
	rows = append(rows, "", m.help.ShortHelpView(m.keys.setupHelp()))
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func fieldLabel(label string, focused bool) string {
	if focused {
		return focusStyle.Render("> " + label)
	}
	return labelStyle.Render("  " + label)
}

func renderOptions(values []string, selected int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		if i == selected {
			parts[i] = selectedStyle.Render(v)
		} else {
			parts[i] = optionStyle.Render(v)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func durationLabels() []string {
	out := make([]string, len(config.Durations))
	for i, d := range config.Durations {
		out[i] = fmt.Sprintf("%ds", d)
	}
	return out
}
