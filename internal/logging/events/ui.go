package events

import "github.com/atomicstack/sdmenu/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type KeyTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Key    = KeyTracer{}
)

func (UITracer) Render(rows, queryRows, width int) {
	logging.Trace("ui.render", map[string]interface{}{"rows": rows, "queryRows": queryRows, "width": width})
}

func (UITracer) Resize(cols int) {
	logging.Trace("ui.resize", map[string]interface{}{"cols": cols})
}

func (UITracer) Cursor(cursor, matches int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor, "matches": matches})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Append(query string) {
	logging.Trace("filter.append", map[string]interface{}{"query": query})
}

func (FilterTracer) Overflow(capacity int) {
	logging.Trace("filter.overflow", map[string]interface{}{"capacity": capacity})
}

func (FilterTracer) Refilter(query string, matches, total int) {
	logging.Trace("filter.refilter", map[string]interface{}{"query": query, "matches": matches, "total": total})
}

func (KeyTracer) Read(c byte) {
	logging.Trace("key.read", map[string]interface{}{"byte": int(c)})
}
