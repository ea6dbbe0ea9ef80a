package status

import (
	"sync"

	"go.uber.org/zap"
)

// DiagnosticKind separates driver warnings from resource misuse.
type DiagnosticKind string

const (
	// DiagnosticWarning is a warning status returned by the driver.
	DiagnosticWarning DiagnosticKind = "warning"
	// DiagnosticDuplicateClose is a close on an already closed resource.
	DiagnosticDuplicateClose DiagnosticKind = "duplicate_close"
	// DiagnosticLeak is a resource that was never closed.
	DiagnosticLeak DiagnosticKind = "leak"
)

// Diagnostic is a non-fatal condition. Reporting one never interrupts the
// caller.
type Diagnostic struct {
	Kind     DiagnosticKind
	Status   Code
	Op       string
	Resource string
	Message  string
}

// Handler receives diagnostics.
type Handler func(Diagnostic)

var (
	handlerMu sync.RWMutex
	handler   Handler = logDiagnostic
)

// SetHandler replaces the diagnostics handler and returns a function that
// restores the previous one. A nil handler restores the default logger sink.
func SetHandler(h Handler) (restore func()) {
	if h == nil {
		h = logDiagnostic
	}
	handlerMu.Lock()
	prev := handler
	handler = h
	handlerMu.Unlock()
	return func() {
		handlerMu.Lock()
		handler = prev
		handlerMu.Unlock()
	}
}

// Report delivers d to the current handler.
func Report(d Diagnostic) {
	handlerMu.RLock()
	h := handler
	handlerMu.RUnlock()
	h(d)
}

func logDiagnostic(d Diagnostic) {
	fields := []zap.Field{zap.String("kind", string(d.Kind))}
	if d.Status != Success {
		fields = append(fields,
			zap.Int32("status", int32(d.Status)),
			zap.String("status_kind", string(d.Status.Kind())))
	}
	if d.Op != "" {
		fields = append(fields, zap.String("op", d.Op))
	}
	if d.Resource != "" {
		fields = append(fields, zap.String("resource", d.Resource))
	}
	Logger().Warn(d.Message, fields...)
}
