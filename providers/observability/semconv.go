package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- Model Invocation Attributes ---

const (
	// AttrModelID is the Bedrock model identifier (e.g., "anthropic.claude-v2")
	AttrModelID = "bedrock.model_id"

	// AttrModelFamily is the resolved model family (e.g., "claude", "titan")
	AttrModelFamily = "bedrock.model_family"

	// AttrEndpoint is the InvokeModel endpoint URL
	AttrEndpoint = "bedrock.endpoint"

	// AttrRequestID is the request identifier Bedrock assigned to the call
	AttrRequestID = "bedrock.request_id"

	// AttrResponseID is the response identifier from the model provider
	AttrResponseID = "bedrock.response_id"

	// AttrFinishReason is the reason the generation finished
	AttrFinishReason = "bedrock.finish_reason"

	// AttrCompletionsCount is the number of completions in the response
	AttrCompletionsCount = "bedrock.completions_count"
)

// --- Token Usage Attributes ---

const (
	// AttrTokensInput is the number of prompt tokens reported by Bedrock
	AttrTokensInput = "bedrock.tokens.input" // #nosec G101 -- Not a credential, token refers to LLM tokens

	// AttrTokensOutput is the number of generated tokens reported by Bedrock
	AttrTokensOutput = "bedrock.tokens.output" // #nosec G101 -- Not a credential, token refers to LLM tokens
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP method (GET, POST, etc.)
	AttrHTTPMethod = "http.method"

	// AttrHTTPStatusCode is the HTTP response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPURL is the full request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body.size"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrDuration is the operation duration
	AttrDuration = "duration"
)

// --- Span Names ---

const (
	// SpanInvokeModel is the span name for Bedrock InvokeModel calls
	SpanInvokeModel = "bedrock.invoke_model"
)

// --- Event Names ---

const (
	// EventInvokeStart marks the start of an InvokeModel request
	EventInvokeStart = "bedrock.invoke.start"

	// EventInvokeEnd marks the end of an InvokeModel request
	EventInvokeEnd = "bedrock.invoke.end"

	// EventTokensReceived marks when token counts are received from Bedrock
	EventTokensReceived = "bedrock.tokens.received" // #nosec G101 -- Not a credential, token refers to LLM tokens
)
