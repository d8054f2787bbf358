package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sonirico/pathctl/internal/logging/events"
	"github.com/sonirico/pathctl/internal/pathlist"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.quitting {
		return nil
	}
	m.status = ""
	if _, composing := m.session.Composing(); composing {
		m.handleComposeKey(keyMsg)
		return nil
	}
	return m.handleNavigationKey(keyMsg)
}

func (m *Model) handleNavigationKey(msg tea.KeyMsg) tea.Cmd {
	keys := m.keys.Nav
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		events.App.Quit(m.session.List().Len())
		return tea.Quit
	case key.Matches(msg, keys.InsertAfter):
		m.startInsert(pathlist.After)
	case key.Matches(msg, keys.InsertBefore):
		m.startInsert(pathlist.Before)
	case key.Matches(msg, keys.Delete):
		if m.session.Delete() {
			m.refreshNotes()
		}
	case key.Matches(msg, keys.Up):
		m.session.Move(pathlist.Up)
	case key.Matches(msg, keys.Down):
		m.session.Move(pathlist.Down)
	}
	return nil
}

func (m *Model) startInsert(side pathlist.Side) {
	if m.session.StartInsert(side) {
		m.caretDirty = true
	}
}
