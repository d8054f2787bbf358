package ui

import "github.com/charmbracelet/bubbles/key"

// navigationKeys are active while Navigating.
type navigationKeys struct {
	InsertAfter  key.Binding
	InsertBefore key.Binding
	Delete       key.Binding
	Up           key.Binding
	Down         key.Binding
	Quit         key.Binding
}

// composeKeys are active while composing a new entry. Printable characters are
// not bindings; they go straight into the buffer.
type composeKeys struct {
	Commit    key.Binding
	Cancel    key.Binding
	Backspace key.Binding
}

type keyMap struct {
	Nav     navigationKeys
	Compose composeKeys
}

func defaultKeyMap() keyMap {
	return keyMap{
		Nav: navigationKeys{
			InsertAfter:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "insert after")),
			InsertBefore: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "insert before")),
			Delete:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
			Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
			Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
			Quit:         key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc/ctrl+c", "quit")),
		},
		Compose: composeKeys{
			Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "insert")),
			Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
			Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete char")),
		},
	}
}

// ShortHelp lists the navigation bindings in display order.
func (k navigationKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.InsertAfter, k.InsertBefore, k.Delete, k.Up, k.Down, k.Quit}
}

// ShortHelp lists the compose bindings in display order.
func (k composeKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Cancel, k.Backspace}
}
