// Package parse converts raw model completions into typed Go values.
//
// The main entry point is [As], a generic parser that handles primitives by
// direct conversion and structured types by JSON unmarshaling with automatic
// repair of the malformed JSON language models tend to produce (unquoted
// keys, single quotes, trailing commas, Markdown code fences).
package parse
