package table

import (
	"reflect"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"1", "/usr/bin", ""},
		{"10", "/b", "missing"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignLeft, AlignLeft})
	want := []string{
		" 1  /usr/bin",
		"10  /b        missing",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatRaggedRows(t *testing.T) {
	got := Format([][]string{{"a"}, {"bb", "c"}}, nil)
	want := []string{"a", "bb  c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
}
