package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/kaptinlin/jsonrepair"
)

// As parses a model completion string into the specified type T.
// For primitive types (string, bool, int, uint, float), it performs direct
// conversion. For complex types (structs, maps, slices), it strips Markdown
// code fences, attempts JSON unmarshaling, and on failure repairs the JSON
// with jsonrepair and retries. Bedrock text models regularly emit fenced or
// slightly malformed JSON, so the repair pass is the common path, not the
// exception.
//
// Example usage:
//
//	type Person struct {
//	    Name string `json:"name"`
//	    Age  int    `json:"age"`
//	}
//
//	// Parse a valid JSON completion
//	person, err := parse.As[Person](`{"name":"John","age":30}`)
//
//	// Parse a sloppy completion (auto-repaired)
//	person, err := parse.As[Person]("```json\n{name: 'John', age: 30}\n```")
//
//	// Parse primitive completions
//	num, err := parse.As[int]("42")
//	flag, err := parse.As[bool]("true")
func As[T any](content string) (T, error) {
	var result T

	switch out := any(&result).(type) {
	case *string:
		*out = content
		return result, nil

	case *bool:
		val, err := strconv.ParseBool(strings.TrimSpace(content))
		if err != nil {
			return result, fmt.Errorf("failed to parse completion as bool: %w", err)
		}
		*out = val
		return result, nil

	case *int:
		val, err := strconv.ParseInt(strings.TrimSpace(content), 10, 0)
		if err != nil {
			return result, fmt.Errorf("failed to parse completion as int: %w", err)
		}
		*out = int(val)
		return result, nil

	case *int64:
		val, err := strconv.ParseInt(strings.TrimSpace(content), 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse completion as int64: %w", err)
		}
		*out = val
		return result, nil

	case *uint:
		val, err := strconv.ParseUint(strings.TrimSpace(content), 10, 0)
		if err != nil {
			return result, fmt.Errorf("failed to parse completion as uint: %w", err)
		}
		*out = uint(val)
		return result, nil

	case *uint64:
		val, err := strconv.ParseUint(strings.TrimSpace(content), 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse completion as uint64: %w", err)
		}
		*out = val
		return result, nil

	case *float32:
		val, err := strconv.ParseFloat(strings.TrimSpace(content), 32)
		if err != nil {
			return result, fmt.Errorf("failed to parse completion as float32: %w", err)
		}
		*out = float32(val)
		return result, nil

	case *float64:
		val, err := strconv.ParseFloat(strings.TrimSpace(content), 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse completion as float64: %w", err)
		}
		*out = val
		return result, nil

	default:
		// Structs, maps, and slices go through JSON unmarshaling.
		stripped := StripFences(content)

		if err := json.Unmarshal([]byte(stripped), &result); err != nil {
			// Unmarshal failed; repair the JSON and retry once.
			repaired, repairErr := jsonrepair.JSONRepair(stripped)
			if repairErr != nil {
				return result, fmt.Errorf("failed to unmarshal completion as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
			}
			if err := json.Unmarshal([]byte(repaired), &result); err != nil {
				return result, fmt.Errorf("failed to unmarshal repaired completion as %T: %w", result, err)
			}
		}
		return result, nil
	}
}

// StripFences removes a surrounding Markdown code fence (``` or ```json)
// from a completion, returning the inner text trimmed of whitespace. Content
// without a fence is returned trimmed but otherwise unchanged.
func StripFences(content string) string {
	trimmed := strings.TrimSpace(content)

	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	// Drop the opening fence line, including any language tag after the
	// backticks.
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	} else {
		return strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
	}

	// Drop the closing fence when present.
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}

	return strings.TrimSpace(trimmed)
}
