// Package slogobs provides an [observability.Provider] implementation backed
// by the standard library's log/slog. It is the zero-setup way to get span
// and log output from bedrockgo: attach slogobs.New() to a context with
// observability.ContextWithObserver and the invoke path starts reporting.
package slogobs
