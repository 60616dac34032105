package bedrock

import "github.com/tidwall/gjson"

// cohereRequest is the native request body for Cohere Command models.
// Cohere names the nucleus-sampling parameter "p" rather than "top_p".
type cohereRequest struct {
	Prompt         string   `json:"prompt"`
	MaxTokens      int      `json:"max_tokens,omitempty"`
	Temperature    float64  `json:"temperature,omitempty"`
	P              float64  `json:"p,omitempty"`
	StopSequences  []string `json:"stop_sequences,omitempty"`
	NumGenerations int      `json:"num_generations,omitempty"`
}

// buildCohereRequest converts an InvokeRequest into the Command wire format.
func buildCohereRequest(request InvokeRequest) cohereRequest {
	req := cohereRequest{Prompt: request.Prompt}

	if cfg := request.GenerationConfig; cfg != nil {
		req.MaxTokens = cfg.MaxTokens
		req.Temperature = float64(cfg.Temperature)
		req.P = float64(cfg.TopP)
		req.StopSequences = cfg.StopSequences
		req.NumGenerations = cfg.NumGenerations
	}

	return req
}

// cohereCompletions extracts the candidate texts from a Command response
// body. Cohere is the only family that returns multiple candidates by
// default; each entry of "generations" carries its text directly under
// "text". A missing or null array yields no completions.
func cohereCompletions(body []byte) []string {
	var completions []string
	for _, entry := range gjson.GetBytes(body, "generations").Array() {
		completions = append(completions, entry.Get("text").String())
	}
	return completions
}
