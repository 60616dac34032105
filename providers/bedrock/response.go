package bedrock

import (
	"fmt"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/bedrockgo/bedrockgo/internal/utils"
)

// Bedrock reports token usage through response headers rather than the body,
// uniformly across all model families.
const (
	headerInputTokenCount  = "x-amzn-bedrock-input-token-count"
	headerOutputTokenCount = "x-amzn-bedrock-output-token-count"
)

// RawResponse is the transport-level envelope handed to [NewResponse]: the
// HTTP status line and headers, the request ID assigned by Bedrock, and the
// fully materialized response body bytes. The normalizer reads the envelope
// but never mutates it.
type RawResponse struct {
	StatusCode int
	Status     string
	Headers    http.Header
	RequestID  string
	Body       []byte
}

// Response is the normalized view over a family-native InvokeModel response.
// All derived fields are computed exactly once, in [NewResponse]; a Response
// is immutable afterwards and safe for concurrent reads.
type Response struct {
	completions  []string
	finishReason *string
	id           *string
	statusCode   int
	status       string
	headers      http.Header
	requestID    string
}

// NewResponse decodes raw.Body and normalizes it according to the command's
// model family. The body must be valid UTF-8 encoding a JSON document;
// anything else fails construction. Fields the family's dialect does not
// carry (or that the body happens to omit) are left unset rather than
// treated as errors.
//
// A command whose family is [FamilyUnknown] produces a Response with no
// completions and no finish reason; this mirrors the classifier contract,
// where an unrecognized model is the caller's problem at request-build time,
// not at decode time.
func NewResponse(raw RawResponse, cmd *Command) (*Response, error) {
	if !utf8.Valid(raw.Body) {
		return nil, fmt.Errorf("response body is not valid UTF-8")
	}
	if !gjson.ValidBytes(raw.Body) {
		return nil, fmt.Errorf("response body is not valid JSON: %s", utils.TruncateString(string(raw.Body), 120))
	}

	r := &Response{
		statusCode: raw.StatusCode,
		status:     raw.Status,
		headers:    raw.Headers,
		requestID:  raw.RequestID,
	}

	// Fixed per-family extraction table. Every nested lookup goes through
	// gjson paths, so an absent field or an empty array uniformly yields
	// "unset" instead of an out-of-range failure.
	switch cmd.Family() {
	case FamilyAI21:
		r.completions = ai21Completions(raw.Body)
		r.finishReason = optString(raw.Body, "completions.0.finishReason.reason")
		r.id = optString(raw.Body, "id")
	case FamilyClaude:
		r.completions = claudeCompletions(raw.Body)
		r.finishReason = optString(raw.Body, "stop_reason")
	case FamilyCohere:
		r.completions = cohereCompletions(raw.Body)
		r.finishReason = optString(raw.Body, "generations.0.finish_reason")
		r.id = optString(raw.Body, "id")
	case FamilyTitan:
		r.completions = titanCompletions(raw.Body)
		r.finishReason = optString(raw.Body, "results.0.completionReason")
	}

	// Completions is a never-nil sequence, even for FamilyUnknown.
	if r.completions == nil {
		r.completions = []string{}
	}

	return r, nil
}

// optString resolves a gjson path against body and returns the value as a
// string pointer, or nil when the path matches nothing. It is the single
// safe-accessor mechanism behind every optional field in the extraction
// table above.
func optString(body []byte, path string) *string {
	if result := gjson.GetBytes(body, path); result.Exists() {
		return utils.Ptr(result.String())
	}
	return nil
}

// Completions returns the ordered candidate texts extracted from the
// response body. The slice is never nil; it is empty when the body carried
// no completions. Callers must treat it as read-only.
func (r *Response) Completions() []string { return r.completions }

// FinishReason returns the provider-supplied reason generation stopped and
// whether one was present in the body.
func (r *Response) FinishReason() (string, bool) {
	if r.finishReason == nil {
		return "", false
	}
	return *r.finishReason, true
}

// ID returns the provider-supplied response ID and whether one was present.
// Only the AI21 and Cohere dialects carry a response ID.
func (r *Response) ID() (string, bool) {
	if r.id == nil {
		return "", false
	}
	return *r.id, true
}

// Headers returns the HTTP response headers verbatim.
func (r *Response) Headers() http.Header { return r.headers }

// StatusCode returns the HTTP status code of the InvokeModel call.
func (r *Response) StatusCode() int { return r.statusCode }

// Status returns the HTTP status line reason, e.g. "200 OK".
func (r *Response) Status() string { return r.status }

// RequestID returns the request ID Bedrock assigned to the InvokeModel call.
func (r *Response) RequestID() string { return r.requestID }

// InputTokenCount returns the prompt token count reported in the
// x-amzn-bedrock-input-token-count header, or 0 when the header is absent
// or not a base-10 integer.
func (r *Response) InputTokenCount() int { return r.tokenCount(headerInputTokenCount) }

// OutputTokenCount returns the generated token count reported in the
// x-amzn-bedrock-output-token-count header, or 0 when the header is absent
// or not a base-10 integer.
func (r *Response) OutputTokenCount() int { return r.tokenCount(headerOutputTokenCount) }

func (r *Response) tokenCount(key string) int {
	// Atoi leaves the result at 0 on malformed input, which is exactly the
	// default we want for a missing or garbled header.
	count, _ := strconv.Atoi(r.headers.Get(key))
	return count
}
