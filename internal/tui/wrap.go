package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typerush/internal/engine"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

func styled(style lipgloss.Style, r rune) styledRune {
	return styledRune{s: style.Render(string(r)), width: runewidth.RuneWidth(r), isSpace: r == ' '}
}

// buildLineRunes renders the words of the current line. Completed words are
// colored by outcome, the current word per character with extra input shown
// after it, and later words as pending.
func buildLineRunes(sn engine.Snapshot) []styledRune {
	out := make([]styledRune, 0, 8*len(sn.Line))
	cursorAfter := false
	for i, word := range sn.Line {
		if i > 0 {
			sep := pendingStyle
			if cursorAfter {
				sep = cursorStyle
				cursorAfter = false
			}
			out = append(out, styled(sep, ' '))
		}
		switch sn.WordState(i) {
		case engine.WordCorrect:
			out = appendWord(out, word, correctStyle)
		case engine.WordIncorrect:
			out = appendWord(out, word, incorrectStyle)
		case engine.WordCurrent:
			out, cursorAfter = appendCurrentWord(out, word, sn.Input)
		default:
			out = appendWord(out, word, pendingStyle)
		}
	}
	if cursorAfter {
		out = append(out, styled(cursorStyle, ' '))
	}
	return out
}

func appendWord(out []styledRune, word string, style lipgloss.Style) []styledRune {
	for _, r := range word {
		out = append(out, styled(style, r))
	}
	return out
}

func appendCurrentWord(out []styledRune, word, input string) ([]styledRune, bool) {
	target := []rune(word)
	typed := []rune(input)
	verdicts := engine.Classify(word, input)
	cursor := engine.Cursor(input)

	for i, r := range target {
		style := currentWordStyle
		switch {
		case i < len(verdicts) && verdicts[i] == engine.Correct:
			style = correctStyle
		case i < len(verdicts):
			style = incorrectStyle
		case i == cursor:
			style = cursorStyle
		}
		out = append(out, styled(style, r))
	}
	for _, r := range typed[min(len(typed), len(target)):] {
		out = append(out, styled(extraStyle, r))
	}
	return out, cursor >= len(target)
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// token is a word with the space that precedes it, if any.
type token struct {
	sep  *styledRune
	body []styledRune
}

func (t token) width() int {
	w := 0
	if t.sep != nil {
		w = t.sep.width
	}
	for _, r := range t.body {
		w += r.width
	}
	return w
}

func tokenize(runes []styledRune) []token {
	var out []token
	for i := range runes {
		switch {
		case runes[i].isSpace:
			out = append(out, token{sep: &runes[i]})
		case len(out) == 0:
			out = append(out, token{body: []styledRune{runes[i]}})
		default:
			out[len(out)-1].body = append(out[len(out)-1].body, runes[i])
		}
	}
	return out
}

// wrapStyledRunes fills lines word by word up to width display columns.
// The space in front of a wrapped word is dropped unless it is all that is
// left (the trailing cursor). Words wider than a line are split.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var lines []string
	var cur []styledRune
	curWidth := 0
	flush := func() {
		lines = append(lines, renderStyledRunes(cur))
		cur, curWidth = nil, 0
	}
	for _, tok := range tokenize(runes) {
		if len(cur) > 0 && curWidth+tok.width() > width {
			flush()
			if len(tok.body) > 0 {
				tok.sep = nil
			}
		}
		if tok.sep != nil {
			cur = append(cur, *tok.sep)
			curWidth += tok.sep.width
		}
		for _, r := range tok.body {
			if len(cur) > 0 && curWidth+r.width > width {
				flush()
			}
			cur = append(cur, r)
			curWidth += r.width
		}
	}
	if len(cur) > 0 || len(lines) == 0 {
		flush()
	}
	return strings.Join(lines, "\n")
}
