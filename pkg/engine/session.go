package engine

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-drift/counter/pkg/core"
	"github.com/go-drift/counter/pkg/errors"
	"github.com/go-drift/counter/pkg/layout"
)

const tracerName = "github.com/go-drift/counter/pkg/engine"

// Activation failures. Activate wraps them in a KindInput CounterError, so
// test with errors.Is.
var (
	ErrUnknownControl  = stderrors.New("no control labelled")
	ErrControlDisabled = stderrors.New("control is disabled")
	ErrClosed          = stderrors.New("session is closed")
)

// Session mounts a root widget and runs frames against it.
type Session struct {
	id      ulid.ULID
	owner   *core.BuildOwner
	root    core.Element
	logger  zerolog.Logger
	tracer  trace.Tracer
	onPaint PaintHandler
	stats   *FrameStatsBuffer
	frames  int
	closed  bool

	dispatchMu    sync.Mutex
	dispatchQueue []func()
}

// NewSession mounts root and runs the first frame, so the paint handler has
// already seen the initial render tree when NewSession returns.
func NewSession(root core.Widget, opts ...Option) (*Session, error) {
	if root == nil {
		return nil, errors.Wrap("engine.NewSession", errors.KindInput, stderrors.New("root widget is nil"))
	}

	s := &Session{
		id:     ulid.Make(),
		owner:  core.NewBuildOwner(),
		logger: zerolog.Nop(),
		tracer: otel.Tracer(tracerName),
		stats:  NewFrameStatsBuffer(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("session", s.id.String()).Logger()

	s.root = core.MountRoot(root, s.owner)
	if s.root == nil {
		return nil, errors.Wrap("engine.NewSession", errors.KindBuild, fmt.Errorf("root widget %T produced no element", root))
	}
	s.logger.Debug().Str("widget", fmt.Sprintf("%T", root)).Msg("mounted root")

	if _, err := s.frame(context.Background()); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// ID returns the unique session id.
func (s *Session) ID() string {
	return s.id.String()
}

// Root returns the root element, or nil after Close.
func (s *Session) Root() core.Element {
	return s.root
}

// RenderRoot returns the root of the render tree, or nil after Close.
func (s *Session) RenderRoot() layout.RenderObject {
	return core.RenderObjectOf(s.root)
}

// Frames returns the number of frames that painted.
func (s *Session) Frames() int {
	return s.frames
}

// FrameStats returns recent frames, oldest first.
func (s *Session) FrameStats() []FrameStat {
	return s.stats.Samples()
}

// Dispatch queues callback to run at the start of the next frame. It is
// safe to call from any goroutine.
func (s *Session) Dispatch(callback func()) {
	if callback == nil {
		return
	}
	s.dispatchMu.Lock()
	s.dispatchQueue = append(s.dispatchQueue, callback)
	s.dispatchMu.Unlock()
}

func (s *Session) drainDispatchQueue() []func() {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()
	callbacks := s.dispatchQueue
	s.dispatchQueue = nil
	return callbacks
}

// NeedsFrame reports whether queued callbacks, dirty elements or pending
// paint are waiting for a frame.
func (s *Session) NeedsFrame() bool {
	if s.closed {
		return false
	}
	s.dispatchMu.Lock()
	queued := len(s.dispatchQueue) > 0
	s.dispatchMu.Unlock()
	return queued || s.owner.NeedsWork()
}

// Frame runs dispatched callbacks, rebuilds dirty elements and paints if
// anything visible changed. It reports whether the frame painted.
func (s *Session) Frame() (bool, error) {
	return s.frame(context.Background())
}

func (s *Session) frame(ctx context.Context) (painted bool, err error) {
	if s.closed {
		return false, errClosed("engine.Frame")
	}
	_, span := s.tracer.Start(ctx, "engine.Frame")
	defer span.End()

	start := time.Now()
	callbacks := s.drainDispatchQueue()
	for _, cb := range callbacks {
		s.runCallback(cb)
	}

	s.owner.FlushBuild()
	painted = s.owner.Pipeline().FlushPaint()
	if painted {
		s.frames++
		if s.onPaint != nil {
			if perr := s.onPaint(s.RenderRoot()); perr != nil {
				err = errors.Wrap("engine.Frame", errors.KindRender, perr)
				span.RecordError(err)
				span.SetStatus(codes.Error, "paint failed")
			}
		}
	}

	stat := FrameStat{Duration: time.Since(start), Painted: painted, Callbacks: len(callbacks)}
	s.stats.Add(stat)
	span.SetAttributes(
		attribute.Bool("frame.painted", painted),
		attribute.Int("frame.callbacks", stat.Callbacks),
	)
	s.logger.Debug().
		Int("frame", s.frames).
		Bool("painted", painted).
		Int("callbacks", stat.Callbacks).
		Dur("took", stat.Duration).
		Msg("frame")
	return painted, err
}

func (s *Session) runCallback(cb func()) {
	defer errors.Recover("engine.Dispatch")
	cb()
}

// Activate taps the control labelled label and runs a frame. Unknown or
// disabled controls return a KindInput error; a panicking handler is
// recovered and returned as a KindPanic error.
func (s *Session) Activate(ctx context.Context, label string) error {
	ctx, span := s.tracer.Start(ctx, "engine.Activate", trace.WithAttributes(
		attribute.String("control.label", label),
		attribute.String("session.id", s.id.String()),
	))
	defer span.End()

	fail := func(err error) error {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if s.closed {
		return fail(errClosed("engine.Activate"))
	}

	button := layout.FindButton(s.RenderRoot(), label)
	if button == nil {
		return fail(errors.Wrap("engine.Activate", errors.KindInput,
			fmt.Errorf("%w %q", ErrUnknownControl, label)))
	}

	tapped, err := s.tap(button)
	if err != nil {
		return fail(err)
	}
	if !tapped {
		return fail(errors.Wrap("engine.Activate", errors.KindInput,
			fmt.Errorf("%w: %q", ErrControlDisabled, label)))
	}
	s.logger.Debug().Str("control", label).Msg("activated")

	if _, err := s.frame(ctx); err != nil {
		return fail(err)
	}
	return nil
}

func (s *Session) tap(button *layout.RenderButton) (tapped bool, err error) {
	defer errors.RecoverWithCallback("engine.Activate", func(r any) {
		err = errors.Wrap("engine.Activate", errors.KindPanic,
			fmt.Errorf("handler for %q panicked: %v", button.Label(), r))
	})
	return button.Tap(), nil
}

// Close unmounts the tree, disposing every state and the resources they
// registered. Close is idempotent.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.root != nil {
		s.root.Unmount()
		s.root = nil
	}
	s.logger.Debug().Int("frames", s.frames).Msg("closed")
}

func errClosed(op string) error {
	return errors.Wrap(op, errors.KindInput, ErrClosed)
}
