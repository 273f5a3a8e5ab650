package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Back    key.Binding
	Start   key.Binding
	Next    key.Binding
	Prev    key.Binding
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	End     key.Binding
	Sound   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "setup")),
		Start:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "change")),
		Right:   key.NewBinding(key.WithKeys("right")),
		Restart: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "restart")),
		End:     key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "end")),
		Sound:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "sound")),
	}
}

func (k keyMap) setupHelp() []key.Binding {
	return []key.Binding{k.Start, k.Next, k.Left, k.Quit}
}

func (k keyMap) typingHelp() []key.Binding {
	return []key.Binding{k.Restart, k.End, k.Sound, k.Back, k.Quit}
}

func (k keyMap) resultsHelp() []key.Binding {
	start := k.Start
	start.SetHelp("enter", "new test")
	return []key.Binding{start, k.Back, k.Quit}
}
