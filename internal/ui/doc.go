// Package ui contains the Bubble Tea program that edits the search path.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Update routes each
//     tea.Msg through a typed handler registry: key presses, window resizes and
//     the redraw tick each have one focused handler.
//   - A tick fires every RedrawInterval and re-arms itself, so the view is
//     redrawn even when no key arrives. Bubble Tea calls View after every
//     Update.
//   - Key presses are dispatched on the session mode. While navigating,
//     navigation.go maps bindings to list operations or to the start of an
//     insertion. While composing, input.go feeds printable characters into the
//     buffer and handles commit, cancel and backspace.
//
// State ownership:
//   - The path list, the selection and the input mode live in
//     internal/session. The model only holds display state: terminal size, the
//     caret, the transient status line and per-entry annotations.
//   - View (view.go) is a projection of the session. Scrolling is computed from
//     the selection by internal/ui/state.Window, so nothing is remembered
//     between frames.
//
// The quit binding is only honoured while navigating. A pending insertion has
// to be committed or cancelled first.
package ui
