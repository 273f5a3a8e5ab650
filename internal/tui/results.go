package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typerush/internal/stats"
)

func (m *Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Start):
		return m, m.startLoading()
	case key.Matches(msg, m.keys.Back):
		m.screen = screenSetup
		return m, m.setup.focus()
	case msg.String() == "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) viewResults() string {
	if m.result == nil {
		return ""
	}
	r := m.result
	headline := lipgloss.JoinHorizontal(lipgloss.Top,
		bigStat("WPM", fmt.Sprintf("%d", r.Stats.WPM)),
		bigStat("Accuracy", fmt.Sprintf("%d%%", r.Stats.Accuracy)),
	)
	details := []string{
		labelStyle.Render("Correct ") + statStyle.Render(fmt.Sprintf("%d", r.Stats.CorrectChars)) + "   " +
			labelStyle.Render("Incorrect ") + statStyle.Render(fmt.Sprintf("%d", r.Stats.IncorrectChars)) + "   " +
			labelStyle.Render("Total ") + statStyle.Render(fmt.Sprintf("%d", r.Stats.TotalChars)),
		labelStyle.Render("Time ") + statStyle.Render(fmt.Sprintf("%ds of %ds", r.Elapsed, r.Duration)),
	}
	if len(r.Timeline) > 1 {
		spark := stats.TimelineSparkline(r.Timeline, 3, min(m.contentWidth()-10, 60))
		details = append(details, labelStyle.Render("WPM  ")+currentWordStyle.Render(spark))
	}
	if len(r.WeakChars) > 0 {
		details = append(details, labelStyle.Render("Weak keys ")+incorrectStyle.Render(strings.Join(r.WeakChars, " ")))
	}
	if r.ImageRef != "" {
		details = append(details, labelStyle.Render("Image ")+footerStyle.Render(r.ImageRef))
	}

	rows := []string{titleStyle.Render("Results"), "", headline, ""}
	rows = append(rows, details...)
	rows = append(rows, "", m.help.ShortHelpView(m.keys.resultsHelp()))
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func bigStat(label, value string) string {
	return lipgloss.NewStyle().PaddingRight(6).Render(
		lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(label), titleStyle.Render(value)),
	)
}
