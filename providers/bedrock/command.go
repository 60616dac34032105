package bedrock

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Command is a fully built InvokeModel call: the target model ID, its
// resolved [ModelFamily], and the serialized family-native request body.
// A Command is immutable once built; [NewCommand] is the only constructor.
//
// The family predicates (IsAI21, IsClaude, IsCohere, IsTitan) are the
// classifier surface consumed by [NewResponse]: for a known family exactly
// one of them is true.
type Command struct {
	modelID string
	family  ModelFamily
	body    []byte
}

// NewCommand classifies request.Model into a [ModelFamily] and serializes
// the family-native request body. It returns an error when the model ID
// belongs to no supported family: unlike response normalization, request
// building has nothing sensible to send for an unknown dialect.
func NewCommand(request InvokeRequest) (*Command, error) {
	family := FamilyOf(request.Model)

	var native any
	switch family {
	case FamilyAI21:
		native = buildAI21Request(request)
	case FamilyClaude:
		native = buildClaudeRequest(request)
	case FamilyCohere:
		native = buildCohereRequest(request)
	case FamilyTitan:
		native = buildTitanRequest(request)
	default:
		return nil, fmt.Errorf("unsupported model %q: not an AI21, Claude, Cohere, or Titan model ID", request.Model)
	}

	body, err := json.Marshal(native)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request body: %w", family, err)
	}

	return &Command{
		modelID: request.Model,
		family:  family,
		body:    body,
	}, nil
}

// ModelID returns the Bedrock model ID this command targets.
func (c *Command) ModelID() string { return c.modelID }

// Family returns the resolved [ModelFamily] of the target model.
func (c *Command) Family() ModelFamily { return c.family }

// Body returns the serialized family-native request body.
func (c *Command) Body() []byte { return c.body }

// IsAI21 reports whether the command targets an AI21 Jurassic model.
func (c *Command) IsAI21() bool { return c.family == FamilyAI21 }

// IsClaude reports whether the command targets an Anthropic Claude model.
func (c *Command) IsClaude() bool { return c.family == FamilyClaude }

// IsCohere reports whether the command targets a Cohere Command model.
func (c *Command) IsCohere() bool { return c.family == FamilyCohere }

// IsTitan reports whether the command targets an Amazon Titan model.
func (c *Command) IsTitan() bool { return c.family == FamilyTitan }
