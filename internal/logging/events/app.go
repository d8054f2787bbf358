package events

import "github.com/sonirico/pathctl/internal/logging"

type AppTracer struct{}

type CommandTracer struct{}

var (
	App     = AppTracer{}
	Command = CommandTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Quit(entries int) {
	logging.Trace("app.quit", map[string]interface{}{"entries": entries})
}

func (CommandTracer) Generate(shell string, entries int) {
	logging.Trace("command.generate", map[string]interface{}{"shell": shell, "entries": entries})
}

func (CommandTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("command.error", map[string]interface{}{"error": err.Error()})
}
