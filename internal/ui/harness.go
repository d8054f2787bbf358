package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for tests. Commands returned by
// Update are recorded rather than executed, since redraw ticks and caret
// blinks would otherwise keep re-arming forever.
type Harness struct {
	model *Model
	cmds  []tea.Cmd
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
}

// Type sends one key press per rune of text.
func (h *Harness) Type(text string) {
	for _, r := range text {
		if r == ' ' {
			h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Press sends a special key such as tea.KeyEnter or tea.KeyEsc.
func (h *Harness) Press(kt tea.KeyType) {
	h.Send(tea.KeyMsg{Type: kt})
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

// Commands returns every command the model produced so far.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}
