package bedrock

import "strings"

// ModelFamily identifies which Bedrock model family a model ID belongs to.
// The family determines both the native request body layout and how the
// response body is normalized, so every code path that touches a wire format
// switches exhaustively over this type.
type ModelFamily int

const (
	// FamilyUnknown is the zero value, returned for model IDs that do not
	// match any supported family.
	FamilyUnknown ModelFamily = iota

	// FamilyAI21 covers AI21 Labs Jurassic models (model IDs prefixed "ai21.").
	FamilyAI21

	// FamilyClaude covers Anthropic Claude text-completion models
	// (model IDs prefixed "anthropic.").
	FamilyClaude

	// FamilyCohere covers Cohere Command models (model IDs prefixed "cohere.").
	FamilyCohere

	// FamilyTitan covers Amazon Titan text models
	// (model IDs prefixed "amazon.titan").
	FamilyTitan
)

// String returns the lowercase family name, or "unknown" for unclassified IDs.
func (f ModelFamily) String() string {
	switch f {
	case FamilyAI21:
		return "ai21"
	case FamilyClaude:
		return "claude"
	case FamilyCohere:
		return "cohere"
	case FamilyTitan:
		return "titan"
	default:
		return "unknown"
	}
}

// FamilyOf classifies a Bedrock model ID into its [ModelFamily] by vendor
// prefix. Bedrock model IDs follow the "vendor.model-name-version" scheme,
// e.g. "anthropic.claude-v2" or "amazon.titan-text-express-v1".
//
// IDs that match no supported vendor prefix yield [FamilyUnknown]; callers
// decide whether that is an error (request building) or a silent no-op
// (response normalization).
func FamilyOf(modelID string) ModelFamily {
	switch {
	case strings.HasPrefix(modelID, "ai21."):
		return FamilyAI21
	case strings.HasPrefix(modelID, "anthropic."):
		return FamilyClaude
	case strings.HasPrefix(modelID, "cohere."):
		return FamilyCohere
	case strings.HasPrefix(modelID, "amazon.titan"):
		return FamilyTitan
	default:
		return FamilyUnknown
	}
}
