package bedrock

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

// TestNewCommand_AI21Body verifies the Jurassic wire format, including the
// camelCase field names AI21 uses.
func TestNewCommand_AI21Body(t *testing.T) {
	cmd, err := NewCommand(InvokeRequest{
		Model:  "ai21.j2-mid-v1",
		Prompt: "write a haiku",
		GenerationConfig: &GenerationConfig{
			MaxTokens:     200,
			Temperature:   0.7,
			TopP:          0.9,
			StopSequences: []string{"##"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body struct {
		Prompt        string   `json:"prompt"`
		MaxTokens     int      `json:"maxTokens"`
		Temperature   float64  `json:"temperature"`
		TopP          float64  `json:"topP"`
		StopSequences []string `json:"stopSequences"`
	}
	if err := json.Unmarshal(cmd.Body(), &body); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}

	if body.Prompt != "write a haiku" {
		t.Errorf("prompt: got %q, want %q", body.Prompt, "write a haiku")
	}
	if body.MaxTokens != 200 {
		t.Errorf("maxTokens: got %d, want 200", body.MaxTokens)
	}
	if body.TopP != 0.9 {
		t.Errorf("topP: got %v, want 0.9", body.TopP)
	}
	if len(body.StopSequences) != 1 || body.StopSequences[0] != "##" {
		t.Errorf("stopSequences: got %v, want [##]", body.StopSequences)
	}
}

// TestNewCommand_ClaudeBody verifies the Claude text-completion wire format:
// Human/Assistant prompt framing, the pinned anthropic_version, and the
// default max_tokens_to_sample when the caller sets none.
func TestNewCommand_ClaudeBody(t *testing.T) {
	cmd, err := NewCommand(InvokeRequest{
		Model:  "anthropic.claude-v2",
		Prompt: "write a haiku",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body struct {
		Prompt            string `json:"prompt"`
		MaxTokensToSample int    `json:"max_tokens_to_sample"`
		AnthropicVersion  string `json:"anthropic_version"`
	}
	if err := json.Unmarshal(cmd.Body(), &body); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}

	if !strings.HasPrefix(body.Prompt, "\n\nHuman: ") || !strings.HasSuffix(body.Prompt, "\n\nAssistant:") {
		t.Errorf("prompt framing missing: %q", body.Prompt)
	}
	if !strings.Contains(body.Prompt, "write a haiku") {
		t.Errorf("prompt does not contain the caller text: %q", body.Prompt)
	}
	if body.MaxTokensToSample != claudeDefaultMaxTokens {
		t.Errorf("max_tokens_to_sample: got %d, want default %d", body.MaxTokensToSample, claudeDefaultMaxTokens)
	}
	if body.AnthropicVersion != claudeAnthropicVersion {
		t.Errorf("anthropic_version: got %q, want %q", body.AnthropicVersion, claudeAnthropicVersion)
	}
}

// TestNewCommand_CohereBody verifies the Command wire format, in particular
// that TopP maps to Cohere's "p" parameter and NumGenerations is carried.
func TestNewCommand_CohereBody(t *testing.T) {
	cmd, err := NewCommand(InvokeRequest{
		Model:  "cohere.command-text-v14",
		Prompt: "write a haiku",
		GenerationConfig: &GenerationConfig{
			TopP:           0.8,
			NumGenerations: 3,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(cmd.Body(), &body); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}

	if body["p"] != 0.8 {
		t.Errorf("p: got %v, want 0.8", body["p"])
	}
	if body["num_generations"] != float64(3) {
		t.Errorf("num_generations: got %v, want 3", body["num_generations"])
	}
	if _, present := body["top_p"]; present {
		t.Error("body must not contain top_p; Cohere names the parameter p")
	}
}

// TestNewCommand_TitanBody verifies the Titan wire format: inputText plus
// the nested textGenerationConfig object, which is omitted entirely when no
// sampling parameter is set.
func TestNewCommand_TitanBody(t *testing.T) {
	t.Run("with generation config", func(t *testing.T) {
		cmd, err := NewCommand(InvokeRequest{
			Model:  "amazon.titan-text-express-v1",
			Prompt: "write a haiku",
			GenerationConfig: &GenerationConfig{
				MaxTokens:   100,
				Temperature: 0.5,
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var body struct {
			InputText            string `json:"inputText"`
			TextGenerationConfig *struct {
				MaxTokenCount int     `json:"maxTokenCount"`
				Temperature   float64 `json:"temperature"`
			} `json:"textGenerationConfig"`
		}
		if err := json.Unmarshal(cmd.Body(), &body); err != nil {
			t.Fatalf("body is not valid JSON: %v", err)
		}

		if body.InputText != "write a haiku" {
			t.Errorf("inputText: got %q, want %q", body.InputText, "write a haiku")
		}
		if body.TextGenerationConfig == nil {
			t.Fatal("textGenerationConfig missing")
		}
		if body.TextGenerationConfig.MaxTokenCount != 100 {
			t.Errorf("maxTokenCount: got %d, want 100", body.TextGenerationConfig.MaxTokenCount)
		}
	})

	t.Run("without generation config", func(t *testing.T) {
		cmd, err := NewCommand(InvokeRequest{
			Model:  "amazon.titan-text-express-v1",
			Prompt: "write a haiku",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var body map[string]any
		if err := json.Unmarshal(cmd.Body(), &body); err != nil {
			t.Fatalf("body is not valid JSON: %v", err)
		}
		if _, present := body["textGenerationConfig"]; present {
			t.Error("textGenerationConfig must be omitted when no sampling parameter is set")
		}
	})
}

// TestNewCommand_UnknownModel verifies that request building is strict:
// unknown model IDs are an error, not a silent fallback.
func TestNewCommand_UnknownModel(t *testing.T) {
	_, err := NewCommand(InvokeRequest{Model: "meta.llama2-13b-chat-v1", Prompt: "hi"})
	if err == nil {
		t.Fatal("expected error for unknown model family, got nil")
	}
	if !strings.Contains(err.Error(), "meta.llama2-13b-chat-v1") {
		t.Errorf("error should name the offending model ID, got: %v", err)
	}
}

// TestCommand_FamilyPredicates verifies that exactly one predicate is true
// per known family.
func TestCommand_FamilyPredicates(t *testing.T) {
	tests := []struct {
		modelID string
		want    ModelFamily
	}{
		{"ai21.j2-mid-v1", FamilyAI21},
		{"anthropic.claude-v2", FamilyClaude},
		{"cohere.command-text-v14", FamilyCohere},
		{"amazon.titan-text-express-v1", FamilyTitan},
	}

	for _, tt := range tests {
		t.Run(tt.modelID, func(t *testing.T) {
			cmd := mustCommand(t, tt.modelID)

			trueCount := 0
			for _, predicate := range []bool{cmd.IsAI21(), cmd.IsClaude(), cmd.IsCohere(), cmd.IsTitan()} {
				if predicate {
					trueCount++
				}
			}
			if trueCount != 1 {
				t.Errorf("expected exactly one true predicate, got %d", trueCount)
			}
			if cmd.Family() != tt.want {
				t.Errorf("Family(): got %v, want %v", cmd.Family(), tt.want)
			}
			if cmd.ModelID() != tt.modelID {
				t.Errorf("ModelID(): got %q, want %q", cmd.ModelID(), tt.modelID)
			}
		})
	}
}
