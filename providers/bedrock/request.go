package bedrock

/*
	##### CLIENT INPUT #####
*/

// InvokeRequest represents a request to invoke a Bedrock text model.
type InvokeRequest struct {
	Model            string            `json:"model"`                       // Bedrock model ID, e.g. "anthropic.claude-v2"
	Prompt           string            `json:"prompt"`                      // Plain-text prompt; family-specific framing is applied automatically
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"` // Optional generation configuration
}

// GenerationConfig carries the sampling parameters shared across model
// families. Zero values mean "not set" and are omitted from the native
// request body, letting the model apply its own defaults.
type GenerationConfig struct {
	MaxTokens      int      `json:"max_tokens,omitempty"`      // Maximum tokens to generate
	Temperature    float32  `json:"temperature,omitempty"`     // Sampling temperature. Higher => more random; lower => more deterministic.
	TopP           float32  `json:"top_p,omitempty"`           // Nucleus (top-p) sampling [0..1]
	StopSequences  []string `json:"stop_sequences,omitempty"`  // Sequences that stop generation when emitted
	NumGenerations int      `json:"num_generations,omitempty"` // Cohere only: number of candidate generations to return
}
