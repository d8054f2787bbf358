// Package pathlist holds the ordered search-path entries being edited and the
// selection cursor that points into them.
//
// Every mutation re-validates the selection: a non-empty list always has a
// selected index in [0, Len), an empty list never has one.
package pathlist

// Direction is a cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Side says where an insertion lands relative to the selection.
type Side int

const (
	Before Side = iota
	After
)

func (s Side) String() string {
	if s == Before {
		return "before"
	}
	return "after"
}

// List is an ordered sequence of path entries plus an optional selection.
type List struct {
	entries  []string
	selected int
}

// New copies entries into a list. The first entry is selected when present.
func New(entries []string) *List {
	l := &List{
		entries:  append([]string(nil), entries...),
		selected: -1,
	}
	if len(l.entries) > 0 {
		l.selected = 0
	}
	return l
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries in search order.
func (l *List) Entries() []string {
	return append([]string(nil), l.entries...)
}

// At returns the entry at index i.
func (l *List) At(i int) string {
	return l.entries[i]
}

// Selected returns the selected index, or false when the list is empty.
func (l *List) Selected() (int, bool) {
	if l.selected < 0 {
		return 0, false
	}
	return l.selected, true
}

// Select sets the selection, clamped to the list bounds.
func (l *List) Select(i int) {
	l.selected = i
	l.normalize()
}

// Move shifts the selection one step. It clamps at both ends and reports
// whether the selection changed.
func (l *List) Move(dir Direction) bool {
	if len(l.entries) == 0 {
		return false
	}
	old := l.selected
	switch dir {
	case Up:
		if l.selected > 0 {
			l.selected--
		}
	case Down:
		if l.selected < len(l.entries)-1 {
			l.selected++
		}
	}
	return old != l.selected
}

// DeleteSelected removes the selected entry and returns it. The selection stays
// on the same index when that index is still valid, otherwise it falls back to
// the new last entry.
func (l *List) DeleteSelected() (string, bool) {
	if l.selected < 0 {
		return "", false
	}
	idx := l.selected
	removed := l.entries[idx]
	l.entries = append(l.entries[:idx], l.entries[idx+1:]...)
	l.normalize()
	return removed, true
}

// Insert places path before or after the selection (index 0 on an empty list)
// and selects it. It returns the index the entry landed on.
func (l *List) Insert(path string, side Side) int {
	base := 0
	if l.selected >= 0 {
		base = l.selected
	}
	idx := base
	if side == After {
		idx = base + 1
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(l.entries) {
		idx = len(l.entries)
	}
	l.entries = append(l.entries, "")
	copy(l.entries[idx+1:], l.entries[idx:])
	l.entries[idx] = path
	l.selected = idx
	return idx
}

func (l *List) normalize() {
	n := len(l.entries)
	if n == 0 {
		l.selected = -1
		return
	}
	if l.selected < 0 {
		l.selected = 0
	}
	if l.selected >= n {
		l.selected = n - 1
	}
}
