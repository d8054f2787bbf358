package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sonirico/pathctl/internal/session"
	"github.com/sonirico/pathctl/internal/theme"
)

// RedrawInterval is how long the loop waits for input before redrawing anyway.
const RedrawInterval = 100 * time.Millisecond

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// tickMsg fires every RedrawInterval so the view is refreshed even when no key
// arrives.
type tickMsg time.Time

// Options configures the model.
type Options struct {
	Var    string
	Width  int
	Height int
}

// Model implements the Bubble Tea model for the path editor.
type Model struct {
	session     *session.Session
	keys        keyMap
	help        help.Model
	caret       cursor.Model
	caretDirty  bool
	varName     string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	status      string
	notes       []session.Note
	quitting    bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps sess for display. The session stays owned by the caller so the
// final list can be read back after the program exits.
func NewModel(sess *session.Session, opts Options) *Model {
	m := &Model{
		session: sess,
		keys:    defaultKeyMap(),
		help:    help.New(),
		varName: opts.Var,
	}
	if m.varName == "" {
		m.varName = "PATH"
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Input != nil {
		c.TextStyle = *styles.Input
	}
	c.SetChar(" ")
	m.caret = c
	m.refreshNotes()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick()}
	if cmd := m.caret.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 3)
	if cmd := m.updateCaret(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Session exposes the edited session.
func (m *Model) Session() *session.Session { return m.session }

// Quitting reports whether the operator asked to leave.
func (m *Model) Quitting() bool { return m.quitting }

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.caretDirty {
		m.caretDirty = false
		m.caret.Blink = false
		if cmd := m.caret.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(RedrawInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	if m.quitting {
		return nil
	}
	return tick()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

// refreshNotes recomputes entry annotations. It runs only when the list
// changes so the probe is not hit on every redraw.
func (m *Model) refreshNotes() {
	m.notes = session.Annotate(m.session.Entries(), m.session.Probe())
}
