package engine

import (
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-drift/counter/pkg/layout"
)

// PaintHandler receives the render tree after every frame that painted.
type PaintHandler func(root layout.RenderObject) error

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. Frames and activations are logged at
// debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithTracer sets the tracer used for activation spans. Defaults to the
// global otel tracer provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Session) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// WithPaintHandler registers a handler called after frames that painted.
func WithPaintHandler(handler PaintHandler) Option {
	return func(s *Session) {
		s.onPaint = handler
	}
}

// WithFrameStats sets how many recent frames are kept for FrameStats.
func WithFrameStats(capacity int) Option {
	return func(s *Session) {
		s.stats = NewFrameStatsBuffer(capacity)
	}
}
