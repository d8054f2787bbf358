package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestViewShowsEntriesAndKeys(t *testing.T) {
	m := newTestModel([]string{"/usr/bin", "/bin"}, existsAll, Options{Width: 60})
	view := m.View()
	for _, want := range []string{"PATH Entries", "/usr/bin", "/bin", "Keys", "insert after", "1/2"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Insert ") {
		t.Fatalf("input panel should be hidden while navigating:\n%s", view)
	}
}

func TestViewEmptyList(t *testing.T) {
	m := newTestModel(nil, nil, Options{Width: 40})
	if view := m.View(); !strings.Contains(view, "(no entries)") {
		t.Fatalf("expected empty placeholder:\n%s", view)
	}
}

func TestViewAnnotatesEntries(t *testing.T) {
	m := newTestModel([]string{"/a", "/gone", "/a"}, func(p string) bool { return p != "/gone" }, Options{Width: 60})
	view := m.View()
	if !strings.Contains(view, "/gone  (missing)") {
		t.Fatalf("expected missing annotation:\n%s", view)
	}
	if !strings.Contains(view, "(dup)") {
		t.Fatalf("expected duplicate annotation:\n%s", view)
	}
}

func TestViewComposePanel(t *testing.T) {
	h := NewHarness(newTestModel([]string{"/a"}, existsAll, Options{Width: 60}))
	h.Type("b/opt")
	view := h.View()
	for _, want := range []string{"Insert Before", "» /opt", "cancel"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q:\n%s", want, view)
		}
	}
	h.Press(tea.KeyEsc)
	h.Type("a")
	if view := h.View(); !strings.Contains(view, "Insert After") {
		t.Fatalf("expected insert after title:\n%s", view)
	}
}

func TestViewFitsFixedSize(t *testing.T) {
	entries := make([]string, 40)
	for i := range entries {
		entries[i] = "/dir/" + strings.Repeat("x", i%5)
	}
	m := newTestModel(entries, existsAll, Options{Width: 30, Height: 12})
	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 12 {
		t.Fatalf("expected 12 rows, got %d:\n%s", len(lines), view)
	}
	for _, line := range lines {
		if w := lipgloss.Width(line); w != 30 {
			t.Fatalf("expected width 30, got %d for %q", w, line)
		}
	}
}

func TestViewStatusLine(t *testing.T) {
	h := NewHarness(newTestModel(nil, func(string) bool { return false }, Options{Width: 60}))
	h.Type("a/missing")
	h.Press(tea.KeyEnter)
	if view := h.View(); !strings.Contains(view, "not found: /missing") {
		t.Fatalf("expected status line:\n%s", view)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("abcdef", 4); got != "abc…" {
		t.Fatalf("expected abc…, got %q", got)
	}
	if got := truncateText("abc", 4); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
}

func TestViewShowsEmptyEntryPlaceholder(t *testing.T) {
	m := newTestModel([]string{"/a", ""}, existsAll, Options{Width: 60})
	view := m.View()
	if !strings.Contains(view, `""  (empty: current dir)`) {
		t.Fatalf("expected empty entry placeholder:\n%s", view)
	}
	if strings.Contains(view, "(missing)") {
		t.Fatalf("empty entry must not be flagged missing:\n%s", view)
	}
}
