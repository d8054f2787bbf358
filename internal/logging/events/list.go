package events

import "github.com/sonirico/pathctl/internal/logging"

type ListTracer struct{}

var List = ListTracer{}

func (ListTracer) Move(direction string, selected int) {
	logging.Trace("list.move", map[string]interface{}{"direction": direction, "selected": selected})
}

func (ListTracer) Delete(path string, selected int) {
	logging.Trace("list.delete", map[string]interface{}{"path": path, "selected": selected})
}

func (ListTracer) Insert(path, side string, index int) {
	logging.Trace("list.insert", map[string]interface{}{"path": path, "side": side, "index": index})
}
