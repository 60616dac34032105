package observability

import (
	"context"
	"testing"
)

// noopSpan is a minimal Span used to exercise context carriage.
type noopSpan struct{}

func (noopSpan) End()                          {}
func (noopSpan) SetAttributes(...Attribute)    {}
func (noopSpan) SetStatus(StatusCode, string)  {}
func (noopSpan) RecordError(error)             {}
func (noopSpan) AddEvent(string, ...Attribute) {}

// noopProvider is a minimal Provider used to exercise context carriage.
type noopProvider struct{}

func (noopProvider) StartSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span) {
	return ctx, noopSpan{}
}
func (noopProvider) Trace(context.Context, string, ...Attribute) {}
func (noopProvider) Debug(context.Context, string, ...Attribute) {}
func (noopProvider) Info(context.Context, string, ...Attribute)  {}
func (noopProvider) Warn(context.Context, string, ...Attribute)  {}
func (noopProvider) Error(context.Context, string, ...Attribute) {}

// TestSpanContextRoundTrip verifies span storage and retrieval through a
// context, plus the nil-safety of both directions.
func TestSpanContextRoundTrip(t *testing.T) {
	span := noopSpan{}

	ctx := ContextWithSpan(context.Background(), span)
	if got := SpanFromContext(ctx); got != span {
		t.Errorf("SpanFromContext: got %v, want the stored span", got)
	}

	if got := SpanFromContext(context.Background()); got != nil {
		t.Errorf("SpanFromContext on empty context: got %v, want nil", got)
	}
	if got := SpanFromContext(nil); got != nil { //nolint:staticcheck // nil context is part of the contract
		t.Errorf("SpanFromContext(nil): got %v, want nil", got)
	}
	if ctx := ContextWithSpan(nil, span); SpanFromContext(ctx) != span { //nolint:staticcheck // nil context is part of the contract
		t.Error("ContextWithSpan(nil, span) should still carry the span")
	}
}

// TestObserverContextRoundTrip verifies observer storage and retrieval
// through a context.
func TestObserverContextRoundTrip(t *testing.T) {
	observer := noopProvider{}

	ctx := ContextWithObserver(context.Background(), observer)
	if got := ObserverFromContext(ctx); got != observer {
		t.Errorf("ObserverFromContext: got %v, want the stored observer", got)
	}

	if got := ObserverFromContext(context.Background()); got != nil {
		t.Errorf("ObserverFromContext on empty context: got %v, want nil", got)
	}
}

// TestAttributeConstructors verifies the key/value pairs produced by the
// attribute helpers, including the nil-error case.
func TestAttributeConstructors(t *testing.T) {
	if attr := String("k", "v"); attr.Key != "k" || attr.Value != "v" {
		t.Errorf("String: got %+v", attr)
	}
	if attr := Int("n", 3); attr.Value != 3 {
		t.Errorf("Int: got %+v", attr)
	}
	if attr := Bool("b", true); attr.Value != true {
		t.Errorf("Bool: got %+v", attr)
	}
	if attr := Error(nil); attr.Key != "error" || attr.Value != "" {
		t.Errorf("Error(nil): got %+v", attr)
	}
}
