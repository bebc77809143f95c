package events

import "github.com/atomicstack/sdmenu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) RawMode(enabled bool, err error) {
	payload := map[string]interface{}{"enabled": enabled}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.raw-mode", payload)
}

func (AppTracer) Finish(action string, output string) {
	logging.Trace("app.finish", map[string]interface{}{"action": action, "output": output})
}

func (AppTracer) Signal(sig string, code int) {
	logging.Trace("app.signal", map[string]interface{}{"signal": sig, "code": code})
}
