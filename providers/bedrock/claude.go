package bedrock

import "github.com/tidwall/gjson"

const (
	// claudeAnthropicVersion pins the Anthropic wire format used by Bedrock.
	// Bedrock versions the body format through this field rather than an
	// anthropic-version header.
	claudeAnthropicVersion = "bedrock-2023-05-31"

	// claudeDefaultMaxTokens is applied when the caller does not set
	// MaxTokens; the Claude text-completion API rejects requests without
	// max_tokens_to_sample.
	claudeDefaultMaxTokens = 4096
)

// claudeRequest is the native request body for Anthropic Claude
// text-completion models on Bedrock.
type claudeRequest struct {
	Prompt            string   `json:"prompt"`
	MaxTokensToSample int      `json:"max_tokens_to_sample"`
	Temperature       float64  `json:"temperature,omitempty"`
	TopP              float64  `json:"top_p,omitempty"`
	StopSequences     []string `json:"stop_sequences,omitempty"`
	AnthropicVersion  string   `json:"anthropic_version"`
}

// buildClaudeRequest converts an InvokeRequest into the Claude wire format.
// The prompt is wrapped in the Human/Assistant turn markers the
// text-completion API requires; callers supply only the bare prompt text.
func buildClaudeRequest(request InvokeRequest) claudeRequest {
	req := claudeRequest{
		Prompt:            "\n\nHuman: " + request.Prompt + "\n\nAssistant:",
		MaxTokensToSample: claudeDefaultMaxTokens,
		AnthropicVersion:  claudeAnthropicVersion,
	}

	if cfg := request.GenerationConfig; cfg != nil {
		if cfg.MaxTokens > 0 {
			req.MaxTokensToSample = cfg.MaxTokens
		}
		req.Temperature = float64(cfg.Temperature)
		req.TopP = float64(cfg.TopP)
		req.StopSequences = cfg.StopSequences
	}

	return req
}

// claudeCompletions extracts the completion from a Claude response body.
// The text-completion API returns at most one candidate in the top-level
// "completion" field; an absent or empty field yields no completions.
func claudeCompletions(body []byte) []string {
	if completion := gjson.GetBytes(body, "completion"); completion.Exists() && completion.String() != "" {
		return []string{completion.String()}
	}
	return nil
}
