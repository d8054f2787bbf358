package state

import "fmt"

// Window returns the half-open range [start, end) of rows to draw so that the
// cursor row is visible. The cursor is kept near the middle of the window once
// the list is longer than the window, and the window never runs past either
// end of the list. A non-positive visible count shows every row.
func Window(total, cursor, visible int) (int, int) {
	if total <= 0 {
		return 0, 0
	}
	if visible <= 0 || visible >= total {
		return 0, total
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= total {
		cursor = total - 1
	}
	start := cursor - visible/2
	maxStart := total - visible
	if start > maxStart {
		start = maxStart
	}
	if start < 0 {
		start = 0
	}
	return start, start + visible
}

// PageInfo formats the position indicator shown in a panel border, e.g.
// "3/12". It returns an empty string when nothing is selected.
func PageInfo(cursor, total int) string {
	if total <= 0 || cursor < 0 || cursor >= total {
		return ""
	}
	return fmt.Sprintf("%d/%d", cursor+1, total)
}
