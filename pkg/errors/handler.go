package errors

import (
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// handlerSlot boxes the interface so it can live in an atomic.Pointer.
type handlerSlot struct {
	handler ErrorHandler
}

var installed atomic.Pointer[handlerSlot]

func init() {
	SetHandler(nil)
}

// stderrHandler is the handler in place until the CLI installs its own.
func stderrHandler() *LogHandler {
	return NewLogHandler(zerolog.New(os.Stderr).With().Timestamp().Logger(), false)
}

// SetHandler installs the handler that receives recovered panics and failed
// builds. Pass nil to restore the stderr LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = stderrHandler()
	}
	installed.Store(&handlerSlot{handler: h})
}

// Handler returns the installed handler. It is never nil.
func Handler() ErrorHandler {
	return installed.Load().handler
}

// ReportBuildError hands a failed build to the installed handler.
// A zero Timestamp is set to the current time.
func ReportBuildError(err *BuildError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleBuildError(err)
}

func reportPanic(err *PanicError) {
	if err == nil {
		return
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in op to the installed handler and lets the
// caller carry on. Use it directly with defer:
//
//	defer errors.Recover("engine.Dispatch")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback is Recover followed by callback(r), which lets the
// caller turn the panic into a returned error.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
		if callback != nil {
			callback(r)
		}
	}
}

func reportRecovered(op string, r any) {
	reportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack returns the stack of its caller, one function and file:line
// per frame, at most 32 frames deep.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(2, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
