package utils

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"

	"github.com/bedrockgo/bedrockgo/providers/observability"
)

// DoPostSigned performs a SigV4-signed HTTP POST with a pre-serialized JSON
// body and returns the response together with its fully read body bytes.
// It handles observability tracing, request signing, and proper resource
// cleanup.
//
// Error handling strategy:
//   - Context errors (timeout, cancellation) are propagated immediately
//   - Signing failures and connection failures return an error
//   - A non-2xx status is NOT an error here: the caller receives the
//     response and body and applies its own policy
//   - Response body close errors are logged but don't override primary errors
//
// The response body is always fully materialized before returning, so the
// caller never owns an open stream.
func DoPostSigned(ctx context.Context, client *http.Client, creds aws.Credentials, region, service, url string, body []byte) (*http.Response, []byte, error) {
	// Get the active span from context if available
	span := observability.SpanFromContext(ctx)

	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// SigV4 signs over an explicit hash of the payload; the signer never
	// reads the request body itself.
	sum := sha256.Sum256(body)
	payloadHash := hex.EncodeToString(sum[:])

	signer := v4.NewSigner()
	if err := signer.SignHTTP(ctx, creds, req, payloadHash, service, region, time.Now().UTC()); err != nil {
		return nil, nil, fmt.Errorf("error signing request: %w", err)
	}

	if span != nil {
		span.AddEvent("http.request.prepared",
			observability.String(observability.AttrHTTPMethod, http.MethodPost),
			observability.String(observability.AttrHTTPURL, url),
			observability.Int(observability.AttrHTTPRequestBodySize, len(body)),
		)
	}

	requestStart := time.Now()
	res, err := httpClient.Do(req)
	requestDuration := time.Since(requestStart)

	if err != nil {
		if span != nil {
			span.AddEvent("http.request.error",
				observability.Error(err),
				observability.Duration("http.request.duration", requestDuration),
			)
		}
		return res, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer func(responseBody io.ReadCloser) {
		if closeErr := responseBody.Close(); closeErr != nil {
			// Log the close error, but don't override the main error
			slog.Warn("failed to close response body", "error", closeErr.Error(), "url", url)
		}
	}(res.Body)

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return res, nil, fmt.Errorf("error reading response body: %w", err)
	}

	if span != nil {
		span.AddEvent("http.response.received",
			observability.Int(observability.AttrHTTPStatusCode, res.StatusCode),
			observability.Int(observability.AttrHTTPResponseBodySize, len(respBody)),
			observability.Duration("http.request.duration", requestDuration),
		)
	}

	return res, respBody, nil
}
