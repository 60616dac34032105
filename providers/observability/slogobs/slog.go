package slogobs

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/bedrockgo/bedrockgo/providers/observability"
)

// LevelTrace is the slog level used for Trace output. slog has no built-in
// trace level, so one step below Debug is used.
const LevelTrace = slog.LevelDebug - 4

// Observer implements observability.Provider using Go's standard library
// slog. It routes tracing and log events through a structured slog.Logger,
// making it suitable for lightweight observability without external
// dependencies.
type Observer struct {
	logger *slog.Logger
}

// Option configures an [Observer].
type Option func(*Observer)

// WithLogger routes all observer output through an existing slog.Logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Observer) {
		o.logger = logger
	}
}

// WithLevel creates a default text handler on stderr filtered at the given
// level. Ignored when [WithLogger] is also supplied.
func WithLevel(level slog.Level) Option {
	return func(o *Observer) {
		if o.logger == nil {
			o.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		}
	}
}

// New creates a new slog-based observer. Without options it logs through
// slog.Default().
//
// Example usage:
//
//	// Use the process-wide default logger
//	observer := slogobs.New()
//
//	// Use an existing logger
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	observer := slogobs.New(slogobs.WithLogger(logger))
func New(opts ...Option) *Observer {
	o := &Observer{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// Ensure Observer implements observability.Provider
var _ observability.Provider = (*Observer)(nil)

// --- TRACING ---

// StartSpan begins a new named span and emits a debug log event at its
// start. The returned Span's End method logs the elapsed duration. Use
// SetAttributes, SetStatus, RecordError, and AddEvent on the Span to enrich
// it before calling End.
func (o *Observer) StartSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	span := &slogSpan{
		name:      name,
		startTime: time.Now(),
		logger:    o.logger,
		attrs:     attrs,
	}

	o.logger.Debug("span started", append([]any{slog.String("span", name)}, attrsToArgs(attrs)...)...)

	return observability.ContextWithSpan(ctx, span), span
}

// --- LOGGING ---

func (o *Observer) Trace(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Log(ctx, LevelTrace, msg, attrsToArgs(attrs)...)
}

func (o *Observer) Debug(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Log(ctx, slog.LevelDebug, msg, attrsToArgs(attrs)...)
}

func (o *Observer) Info(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Log(ctx, slog.LevelInfo, msg, attrsToArgs(attrs)...)
}

func (o *Observer) Warn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Log(ctx, slog.LevelWarn, msg, attrsToArgs(attrs)...)
}

func (o *Observer) Error(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Log(ctx, slog.LevelError, msg, attrsToArgs(attrs)...)
}

// --- SPAN ---

// slogSpan is the Span implementation backing [Observer.StartSpan]. All
// mutation methods are safe for concurrent use.
type slogSpan struct {
	name      string
	startTime time.Time
	logger    *slog.Logger

	mu     sync.Mutex
	attrs  []observability.Attribute
	status observability.StatusCode
	desc   string
}

func (s *slogSpan) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	args := append([]any{
		slog.String("span", s.name),
		slog.Duration("duration", time.Since(s.startTime)),
	}, attrsToArgs(s.attrs)...)

	if s.status == observability.StatusError {
		args = append(args, slog.String("status", "error"), slog.String("status_description", s.desc))
		s.logger.Warn("span ended", args...)
		return
	}
	s.logger.Debug("span ended", args...)
}

func (s *slogSpan) SetAttributes(attrs ...observability.Attribute) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, attrs...)
}

func (s *slogSpan) SetStatus(code observability.StatusCode, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = code
	s.desc = description
}

func (s *slogSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, observability.Error(err))
	s.status = observability.StatusError
	s.desc = err.Error()
}

func (s *slogSpan) AddEvent(name string, attrs ...observability.Attribute) {
	s.logger.Debug(name, append([]any{slog.String("span", s.name)}, attrsToArgs(attrs)...)...)
}

// attrsToArgs converts observability attributes to alternating key/value
// arguments in the form slog.Logger methods expect.
func attrsToArgs(attrs []observability.Attribute) []any {
	args := make([]any, 0, len(attrs)*2)
	for _, attr := range attrs {
		args = append(args, attr.Key, attr.Value)
	}
	return args
}
