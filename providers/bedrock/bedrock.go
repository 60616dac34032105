package bedrock

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/bedrockgo/bedrockgo/internal/utils"
	"github.com/bedrockgo/bedrockgo/providers/observability"
)

const (
	// signingService is the service name Bedrock expects in the SigV4
	// credential scope. The runtime endpoint is bedrock-runtime.* but the
	// signing name is plain "bedrock".
	signingService = "bedrock"

	// headerRequestID carries the request ID Bedrock assigns to every
	// InvokeModel call.
	headerRequestID = "x-amzn-requestid"
)

// Client invokes Bedrock text models over the InvokeModel REST API and
// normalizes their family-native responses. Use [New] or [NewFromConfig] to
// construct a ready-to-use instance.
type Client struct {
	region  string
	creds   aws.CredentialsProvider
	baseURL string
	client  *http.Client
}

// New returns a [Client] initialized from environment variables. It reads
// AWS_REGION (falling back to AWS_DEFAULT_REGION) for the target region and
// AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY / AWS_SESSION_TOKEN for static
// credentials. Use [Client.WithRegion] and [Client.WithCredentials] to
// override these values after construction, or [NewFromConfig] to reuse a
// resolved aws.Config (shared config files, SSO, assumed roles).
func New() *Client {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = os.Getenv("AWS_DEFAULT_REGION")
	}

	var creds aws.CredentialsProvider
	if accessKey := os.Getenv("AWS_ACCESS_KEY_ID"); accessKey != "" {
		creds = credentials.NewStaticCredentialsProvider(
			accessKey,
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			os.Getenv("AWS_SESSION_TOKEN"),
		)
	}

	return &Client{
		region: region,
		creds:  creds,
		client: &http.Client{},
	}
}

// NewFromConfig returns a [Client] that takes its region and credentials
// provider from a resolved aws.Config, typically obtained via
// config.LoadDefaultConfig.
func NewFromConfig(cfg aws.Config) *Client {
	return &Client{
		region: cfg.Region,
		creds:  cfg.Credentials,
		client: &http.Client{},
	}
}

// WithRegion sets the AWS region and returns the client so calls can be
// chained. It overrides the value read from AWS_REGION.
func (c *Client) WithRegion(region string) *Client {
	c.region = region
	return c
}

// WithCredentials sets static AWS credentials and returns the client so
// calls can be chained. sessionToken may be empty for long-lived keys.
func (c *Client) WithCredentials(accessKey, secretKey, sessionToken string) *Client {
	c.creds = credentials.NewStaticCredentialsProvider(accessKey, secretKey, sessionToken)
	return c
}

// WithBaseURL overrides the regional Bedrock runtime endpoint and returns
// the client so calls can be chained. Use this when targeting a VPC
// endpoint or a local testing server.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// WithHttpClient replaces the default [http.Client] used for API calls and
// returns the client so calls can be chained. Useful for injecting custom
// timeouts, transport layers, or test doubles.
func (c *Client) WithHttpClient(httpClient *http.Client) *Client {
	c.client = httpClient
	return c
}

// endpoint returns the base URL for InvokeModel calls, defaulting to the
// regional bedrock-runtime endpoint when no override is set.
func (c *Client) endpoint() string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return fmt.Sprintf("https://bedrock-runtime.%s.amazonaws.com", c.region)
}

// Invoke sends a synchronous InvokeModel request for the model named in the
// request and returns the normalized [Response]. It returns an error if the
// region or credentials are unset, the model family is unknown, the HTTP
// round trip fails, or the response body cannot be decoded.
//
// A non-2xx status from Bedrock is not an error by itself: the status code
// is available via [Response.StatusCode] and the caller decides how to
// treat it.
func (c *Client) Invoke(ctx context.Context, request InvokeRequest) (*Response, error) {
	// Enrich span if observability is wired into the context.
	span := observability.SpanFromContext(ctx)
	observer := observability.ObserverFromContext(ctx)

	cmd, err := NewCommand(request)
	if err != nil {
		return nil, err
	}

	if span != nil {
		span.AddEvent(observability.EventInvokeStart)
		span.SetAttributes(
			observability.String(observability.AttrModelID, cmd.ModelID()),
			observability.String(observability.AttrModelFamily, cmd.Family().String()),
			observability.String(observability.AttrEndpoint, c.endpoint()),
		)
		defer span.AddEvent(observability.EventInvokeEnd)
	}

	if observer != nil {
		observer.Trace(ctx, "Bedrock client preparing request",
			observability.String(observability.AttrModelID, cmd.ModelID()),
			observability.String(observability.AttrModelFamily, cmd.Family().String()),
			observability.String(observability.AttrEndpoint, c.endpoint()),
		)
	}

	// Guard against missing configuration before making a network call.
	if c.region == "" {
		return nil, fmt.Errorf("AWS region is not set: set AWS_REGION or use WithRegion")
	}
	if c.creds == nil {
		return nil, fmt.Errorf("AWS credentials are not set: set AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY or use WithCredentials")
	}

	creds, err := c.creds.Retrieve(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve AWS credentials: %w", err)
	}

	invokeURL := c.endpoint() + "/model/" + url.PathEscape(cmd.ModelID()) + "/invoke"

	timer := utils.NewTimer()
	httpResponse, body, err := utils.DoPostSigned(ctx, c.client, creds, c.region, signingService, invokeURL, cmd.Body())
	timer.Stop()
	if err != nil {
		if observer != nil {
			observer.Trace(ctx, "HTTP request failed", observability.Error(err))
		}
		return nil, err
	}

	raw := RawResponse{
		StatusCode: httpResponse.StatusCode,
		Status:     httpResponse.Status,
		Headers:    httpResponse.Header,
		RequestID:  httpResponse.Header.Get(headerRequestID),
		Body:       body,
	}

	response, err := NewResponse(raw, cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", cmd.Family(), err)
	}

	if observer != nil {
		observer.Info(ctx, "Bedrock invoke completed",
			observability.String(observability.AttrModelID, cmd.ModelID()),
			observability.String(observability.AttrRequestID, response.RequestID()),
			observability.Int(observability.AttrHTTPStatusCode, response.StatusCode()),
			observability.Duration(observability.AttrDuration, timer.GetDuration()),
		)
	}

	// Enrich span with response details now that we have a decoded result.
	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrRequestID, response.RequestID()),
			observability.Int(observability.AttrHTTPStatusCode, response.StatusCode()),
			observability.Int(observability.AttrCompletionsCount, len(response.Completions())),
		)
		span.AddEvent(observability.EventTokensReceived,
			observability.Int(observability.AttrTokensInput, response.InputTokenCount()),
			observability.Int(observability.AttrTokensOutput, response.OutputTokenCount()),
		)
	}

	return response, nil
}
