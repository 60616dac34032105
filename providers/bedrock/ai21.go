package bedrock

import "github.com/tidwall/gjson"

// ai21Request is the native request body for AI21 Jurassic models.
// AI21 uses camelCase field names, unlike the other families.
type ai21Request struct {
	Prompt        string   `json:"prompt"`
	MaxTokens     int      `json:"maxTokens,omitempty"`
	Temperature   float64  `json:"temperature,omitempty"`
	TopP          float64  `json:"topP,omitempty"`
	StopSequences []string `json:"stopSequences,omitempty"`
}

// buildAI21Request converts an InvokeRequest into the Jurassic wire format.
func buildAI21Request(request InvokeRequest) ai21Request {
	req := ai21Request{Prompt: request.Prompt}

	if cfg := request.GenerationConfig; cfg != nil {
		req.MaxTokens = cfg.MaxTokens
		req.Temperature = float64(cfg.Temperature)
		req.TopP = float64(cfg.TopP)
		req.StopSequences = cfg.StopSequences
	}

	return req
}

// ai21Completions extracts the candidate texts from a Jurassic response body.
// Each entry of the top-level "completions" array carries its text under
// "data.text". A missing or null array yields no completions.
func ai21Completions(body []byte) []string {
	var completions []string
	for _, entry := range gjson.GetBytes(body, "completions").Array() {
		completions = append(completions, entry.Get("data.text").String())
	}
	return completions
}
