// Package session drives the edit session: the path list plus the input mode
// the operator is in.
//
// There are exactly three reachable states: Navigating, and Composing with
// Side Before or After. The text buffer only exists inside Composing, so a
// buffer while navigating cannot be represented. Entering Composing always
// starts from an empty buffer; leaving it always drops the buffer.
package session

import (
	"strings"

	"github.com/sonirico/pathctl/internal/logging/events"
	"github.com/sonirico/pathctl/internal/pathlist"
)

// Mode is the input mode. It is implemented by Navigating and Composing only.
type Mode interface {
	isMode()
}

// Navigating accepts movement, delete, insert and quit commands.
type Navigating struct{}

// Composing collects the text of a new entry to insert on Side.
type Composing struct {
	Side   pathlist.Side
	Buffer string
}

func (Navigating) isMode() {}
func (Composing) isMode()  {}

// Probe reports whether a path names an existing filesystem entry.
type Probe interface {
	Exists(path string) bool
}

// ProbeFunc adapts a plain function to Probe.
type ProbeFunc func(path string) bool

// Exists calls f(path).
func (f ProbeFunc) Exists(path string) bool { return f(path) }

// CommitResult describes what a commit did.
type CommitResult struct {
	Path     string
	Inserted bool
	Index    int
}

// Session owns the list and the current mode for one run of the editor.
type Session struct {
	list  *pathlist.List
	mode  Mode
	probe Probe
}

// New starts a session over entries in Navigating mode.
func New(entries []string, probe Probe) *Session {
	return &Session{
		list:  pathlist.New(entries),
		mode:  Navigating{},
		probe: probe,
	}
}

// List exposes the underlying list for read access.
func (s *Session) List() *pathlist.List { return s.list }

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Entries returns the current entries in order.
func (s *Session) Entries() []string { return s.list.Entries() }

// Probe returns the existence probe the session was built with.
func (s *Session) Probe() Probe { return s.probe }

// Composing reports whether a text entry is in progress.
func (s *Session) Composing() (Composing, bool) {
	c, ok := s.mode.(Composing)
	return c, ok
}

// Move shifts the selection. Ignored outside Navigating.
func (s *Session) Move(dir pathlist.Direction) bool {
	if !s.navigating() {
		return false
	}
	if !s.list.Move(dir) {
		return false
	}
	idx, _ := s.list.Selected()
	events.List.Move(dir.String(), idx)
	return true
}

// Delete removes the selected entry. Ignored outside Navigating.
func (s *Session) Delete() bool {
	if !s.navigating() {
		return false
	}
	removed, ok := s.list.DeleteSelected()
	if !ok {
		return false
	}
	idx, has := s.list.Selected()
	if !has {
		idx = -1
	}
	events.List.Delete(removed, idx)
	return true
}

// StartInsert enters Composing for side with an empty buffer. Ignored outside
// Navigating.
func (s *Session) StartInsert(side pathlist.Side) bool {
	if !s.navigating() {
		return false
	}
	s.mode = Composing{Side: side}
	events.Compose.Start(side.String())
	return true
}

// Append adds text to the buffer. Ignored outside Composing.
func (s *Session) Append(text string) bool {
	c, ok := s.Composing()
	if !ok || text == "" {
		return false
	}
	c.Buffer += text
	s.mode = c
	events.Compose.Append(c.Side.String(), c.Buffer)
	return true
}

// Backspace drops the last character of the buffer. It is a no-op on an empty
// buffer and outside Composing.
func (s *Session) Backspace() bool {
	c, ok := s.Composing()
	if !ok || c.Buffer == "" {
		return false
	}
	runes := []rune(c.Buffer)
	c.Buffer = string(runes[:len(runes)-1])
	s.mode = c
	events.Compose.Backspace(c.Side.String(), c.Buffer)
	return true
}

// Cancel discards the buffer and returns to Navigating.
func (s *Session) Cancel() bool {
	c, ok := s.Composing()
	if !ok {
		return false
	}
	s.mode = Navigating{}
	events.Compose.Cancel(c.Side.String(), events.ComposeReasonEscape)
	return true
}

// Commit trims the buffer and inserts it when the probe confirms the path
// exists. A path that does not exist is dropped without error. Either way the
// session returns to Navigating.
func (s *Session) Commit() (CommitResult, bool) {
	c, ok := s.Composing()
	if !ok {
		return CommitResult{}, false
	}
	s.mode = Navigating{}
	path := strings.TrimSpace(c.Buffer)
	result := CommitResult{Path: path, Index: -1}
	side := c.Side.String()
	if path == "" {
		events.Compose.Discard(side, path, events.ComposeReasonEmpty)
		return result, true
	}
	if s.probe == nil || !s.probe.Exists(path) {
		events.Compose.Discard(side, path, events.ComposeReasonNotFound)
		return result, true
	}
	events.Compose.Commit(side, path)
	result.Index = s.list.Insert(path, c.Side)
	result.Inserted = true
	events.List.Insert(path, side, result.Index)
	return result, true
}

func (s *Session) navigating() bool {
	_, ok := s.mode.(Navigating)
	return ok
}

// Note flags an entry that is worth a second look. It never changes the list.
type Note struct {
	Missing   bool
	Duplicate bool
	// Empty marks a zero-length entry, which shells read as the current
	// directory. It is never probed.
	Empty bool
}

// Annotate probes every entry once. Later repeats of an earlier entry are
// marked Duplicate. A nil probe marks nothing as missing.
func Annotate(entries []string, probe Probe) []Note {
	notes := make([]Note, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for i, entry := range entries {
		if entry == "" {
			notes[i].Empty = true
		} else if probe != nil && !probe.Exists(entry) {
			notes[i].Missing = true
		}
		if _, ok := seen[entry]; ok {
			notes[i].Duplicate = true
		}
		seen[entry] = struct{}{}
	}
	return notes
}
