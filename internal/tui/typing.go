package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typerush/internal/engine"
	"github.com/verte-zerg/typerush/internal/model"
	"github.com/verte-zerg/typerush/internal/stats"
)

const weakCharsShown = 5

func tickCmd(epoch uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{epoch: epoch}
	})
}

func (m *Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = screenSetup
		return m, m.setup.focus()
	case key.Matches(msg, m.keys.Restart):
		m.session.Restart(m.newSource())
		m.startedAt = time.Time{}
		return m, nil
	case key.Matches(msg, m.keys.End):
		if final, ok := m.session.End(); ok {
			m.finish(final)
		}
		return m, nil
	case key.Matches(msg, m.keys.Sound):
		enabled := m.sound.Toggle()
		m.logger.Debug("sound toggled", "enabled", enabled)
		return m, nil
	}

	wasIdle := m.session.Phase() == engine.Idle
	switch msg.Type {
	case tea.KeyBackspace:
		input := []rune(m.session.Input())
		if len(input) > 0 {
			m.session.InputChange(string(input[:len(input)-1]))
		}
	case tea.KeyCtrlW:
		m.session.InputChange("")
	case tea.KeySpace:
		m.session.SubmitWord()
	case tea.KeyRunes:
		m.typeRunes(msg.Runes)
	default:
		return m, nil
	}

	if wasIdle && m.session.Phase() == engine.Running {
		m.startedAt = m.now()
		m.logger.Debug("session started", "epoch", m.session.Epoch())
		return m, tickCmd(m.session.Epoch())
	}
	return m, nil
}

// typeRunes feeds runes one at a time so each produces its own verdict.
// Pasted spaces submit the current word.
func (m *Model) typeRunes(runes []rune) {
	for _, r := range runes {
		if r == ' ' {
			m.session.SubmitWord()
			continue
		}
		ks, ok := m.session.InputChange(m.session.Input() + string(r))
		if ok {
			m.sound.OnKeystroke(ks)
		}
	}
}

func (m *Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if m.screen != screenTyping || m.session == nil {
		return m, nil
	}
	final, ended := m.session.Tick(msg.epoch)
	if ended {
		m.finish(final)
		return m, nil
	}
	if msg.epoch == m.session.Epoch() && m.session.Phase() == engine.Running {
		return m, tickCmd(msg.epoch)
	}
	return m, nil
}

func (m *Model) finish(final model.TestStats) {
	started := m.startedAt
	if started.IsZero() {
		started = m.now()
	}
	result := model.Result{
		Stats:     final,
		Duration:  m.cfg.Duration,
		Elapsed:   m.session.Elapsed(),
		Topic:     m.cfg.Topic,
		Timeline:  m.session.Timeline(),
		WeakChars: stats.SelectWeakChars(m.session.CharAggregates(), weakCharsShown),
		ImageRef:  m.imageRef,
		StartedAt: started,
		EndedAt:   m.now(),
	}
	m.result = &result
	m.screen = screenResults
	m.logger.Info("session finished", "wpm", final.WPM, "accuracy", final.Accuracy, "elapsed", result.Elapsed)
}

func (m *Model) viewLoading() string {
	topic := strings.TrimSpace(m.cfg.Topic)
	if topic == "" {
		topic = "random facts"
	}
	return fmt.Sprintf("%s Preparing a text about %s...\n\n%s",
		m.spinner.View(), statStyle.Render(topic), footerStyle.Render("esc cancel"))
}

func (m *Model) viewTyping() string {
	sn := m.session.Snapshot()
	width := m.contentWidth()

	soundState := "off"
	if m.sound.Enabled() {
		soundState = "on"
	}
	bar := strings.Join([]string{
		labelStyle.Render("Time ") + statStyle.Render(fmt.Sprintf("%ds", sn.Remaining)),
		labelStyle.Render("WPM ") + statStyle.Render(fmt.Sprintf("%d", sn.LiveWPM)),
		labelStyle.Render("Accuracy ") + statStyle.Render(fmt.Sprintf("%d%%", sn.LiveAccuracy)),
		labelStyle.Render("Sound ") + statStyle.Render(soundState),
	}, "   ")

	text := wrapStyledRunes(buildLineRunes(sn), width)
	hint := ""
	if sn.Phase == engine.Idle {
		hint = footerStyle.Render("Start typing to begin the countdown.")
	}

	rows := []string{bar, "", lipgloss.NewStyle().Width(width).Render(text), "", m.progress.ViewAs(sn.Progress())}
	if hint != "" {
		rows = append(rows, hint)
	}
	rows = append(rows, "", m.help.ShortHelpView(m.keys.typingHelp()))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
