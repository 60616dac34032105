// Package bedrock implements a client for the AWS Bedrock InvokeModel API
// covering the text-completion model families hosted there: AI21 Jurassic,
// Anthropic Claude, Cohere Command, and Amazon Titan.
//
// Each family speaks its own JSON dialect on both sides of the wire. The
// package converts a generic [InvokeRequest] into the family-native request
// body (see [NewCommand]) and normalizes the family-native response body back
// into a uniform [Response] with a fixed accessor surface: completions,
// finish reason, response id, token counts, request id, status code, and
// headers.
//
// The primary entry point is [New], which reads AWS_REGION (or
// AWS_DEFAULT_REGION), AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, and
// AWS_SESSION_TOKEN from the environment. Use [NewFromConfig] to build a
// client from a resolved aws.Config, or [Client.WithRegion],
// [Client.WithCredentials], [Client.WithBaseURL], and [Client.WithHttpClient]
// to configure the client programmatically.
package bedrock
