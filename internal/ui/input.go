package ui

import (
	"fmt"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateCaret(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.caret, cmd = m.caret.Update(msg)
	return cmd
}

func (m *Model) handleComposeKey(msg tea.KeyMsg) {
	keys := m.keys.Compose
	switch {
	case key.Matches(msg, keys.Commit):
		res, ok := m.session.Commit()
		if !ok {
			return
		}
		if res.Inserted {
			m.refreshNotes()
		} else if res.Path != "" {
			m.status = fmt.Sprintf("not found: %s", res.Path)
		}
		return
	case key.Matches(msg, keys.Cancel):
		m.session.Cancel()
		return
	case key.Matches(msg, keys.Backspace):
		if m.session.Backspace() {
			m.caretDirty = true
		}
		return
	}
	if text := printableText(msg); text != "" {
		if m.session.Append(text) {
			m.caretDirty = true
		}
	}
}

// printableText extracts the characters a key press would type. Alt chords
// and control characters type nothing.
func printableText(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeySpace:
		return " "
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return ""
		}
		runes := make([]rune, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				continue
			}
			runes = append(runes, r)
		}
		return string(runes)
	}
	return ""
}

// composePrompt renders the live buffer with the caret after its last
// character.
func (m *Model) composePrompt(buffer string) string {
	prompt := "» "
	if styles.InputPrompt != nil {
		prompt = styles.InputPrompt.Render(prompt)
	}
	if styles.Cursor != nil {
		m.caret.Style = *styles.Cursor
	}
	if styles.Input != nil {
		m.caret.TextStyle = *styles.Input
	} else {
		m.caret.TextStyle = lipgloss.Style{}
	}
	text := buffer
	if styles.Input != nil && text != "" {
		text = styles.Input.Render(text)
	}
	return prompt + text + m.renderCaret(" ")
}

func (m *Model) renderCaret(char string) string {
	if char == "" {
		char = " "
	}
	m.caret.SetChar(char)

	base := m.caret.TextStyle.Inline(true)

	if m.caret.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
