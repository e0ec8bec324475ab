package errors

import (
	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that writes each report as one zerolog
// entry. Create it with NewLogHandler.
type LogHandler struct {
	logger  zerolog.Logger
	verbose bool
}

// NewLogHandler returns a LogHandler writing to logger. When verbose is set
// every entry carries the captured stack.
func NewLogHandler(logger zerolog.Logger, verbose bool) *LogHandler {
	return &LogHandler{logger: logger, verbose: verbose}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	ev := h.logger.Error().Interface("value", err.Value)
	if err.Op != "" {
		ev = ev.Str("op", err.Op)
	}
	if h.verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("recovered panic")
}

// HandleBuildError logs a BuildError.
func (h *LogHandler) HandleBuildError(err *BuildError) {
	if err == nil {
		return
	}
	ev := h.logger.Error().
		Str("widget", err.Widget).
		Str("element", err.Element)
	if err.Recovered != nil {
		ev = ev.Interface("recovered", err.Recovered)
	}
	if err.Err != nil {
		ev = ev.Err(err.Err)
	}
	if h.verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("build failed")
}
