// Package observability defines the core interfaces and semantic conventions
// used for distributed tracing and structured logging throughout the
// bedrockgo library.
//
// The central entry point is [Provider], which composes [Tracer] and
// [Logger] into a single injectable dependency. Callers propagate an active
// [Provider] and [Span] through a [context.Context] using
// [ContextWithObserver] and [ContextWithSpan]; they can be retrieved with
// [ObserverFromContext] and [SpanFromContext]. Library code treats a missing
// observer or span as "observability disabled" and carries no overhead
// beyond the context lookup.
//
// The semconv.go file contains all standard attribute-key, span-name, and
// event-name constants that should be used when recording observations. A
// ready-to-use slog-backed implementation lives in the slogobs subpackage.
package observability
