package bedrock

import "github.com/tidwall/gjson"

// titanRequest is the native request body for Amazon Titan text models.
// Titan nests all sampling parameters under "textGenerationConfig".
type titanRequest struct {
	InputText            string           `json:"inputText"`
	TextGenerationConfig *titanTextGenCfg `json:"textGenerationConfig,omitempty"`
}

type titanTextGenCfg struct {
	MaxTokenCount int      `json:"maxTokenCount,omitempty"`
	Temperature   float64  `json:"temperature,omitempty"`
	TopP          float64  `json:"topP,omitempty"`
	StopSequences []string `json:"stopSequences,omitempty"`
}

// buildTitanRequest converts an InvokeRequest into the Titan wire format.
// The textGenerationConfig object is omitted entirely when no sampling
// parameter is set.
func buildTitanRequest(request InvokeRequest) titanRequest {
	req := titanRequest{InputText: request.Prompt}

	if cfg := request.GenerationConfig; cfg != nil {
		req.TextGenerationConfig = &titanTextGenCfg{
			MaxTokenCount: cfg.MaxTokens,
			Temperature:   float64(cfg.Temperature),
			TopP:          float64(cfg.TopP),
			StopSequences: cfg.StopSequences,
		}
	}

	return req
}

// titanCompletions extracts the candidate texts from a Titan response body.
// Each entry of the top-level "results" array carries its text under
// "outputText". A missing or null array yields no completions.
func titanCompletions(body []byte) []string {
	var completions []string
	for _, entry := range gjson.GetBytes(body, "results").Array() {
		completions = append(completions, entry.Get("outputText").String())
	}
	return completions
}
