package events

import "github.com/sonirico/pathctl/internal/logging"

type ComposeTracer struct{}

type composeReason string

const (
	ComposeReasonEscape   composeReason = "escape"
	ComposeReasonEmpty    composeReason = "empty"
	ComposeReasonNotFound composeReason = "not-found"
)

var Compose = ComposeTracer{}

func (ComposeTracer) Start(side string) {
	logging.Trace("compose.start", map[string]interface{}{"side": side})
}

func (ComposeTracer) Append(side, buffer string) {
	logging.Trace("compose.append", map[string]interface{}{"side": side, "buffer": buffer})
}

func (ComposeTracer) Backspace(side, buffer string) {
	logging.Trace("compose.backspace", map[string]interface{}{"side": side, "buffer": buffer})
}

func (ComposeTracer) Cancel(side string, reason composeReason) {
	logging.Trace("compose.cancel", map[string]interface{}{"side": side, "reason": string(reason)})
}

func (ComposeTracer) Commit(side, path string) {
	logging.Trace("compose.commit", map[string]interface{}{"side": side, "path": path})
}

func (ComposeTracer) Discard(side, path string, reason composeReason) {
	logging.Trace("compose.discard", map[string]interface{}{"side": side, "path": path, "reason": string(reason)})
}
