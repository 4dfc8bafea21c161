package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
)

// ErrNoJSONFound is returned when a model reply contains no JSON object
// boundaries at all.
var ErrNoJSONFound = errors.New("no JSON object found in model response")

// ExtractJSONObject pulls a JSON object out of a free-text model reply.
// A fenced block labeled json is preferred, then any fenced block, then the
// full text; within the chosen text the substring from the first '{' to the
// last '}' is parsed.
func ExtractJSONObject(text string) (map[string]any, error) {
	candidate := stripCodeFences(text)

	start := strings.Index(candidate, "{")
	end := strings.LastIndex(candidate, "}")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoJSONFound
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(candidate[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return result, nil
}

// ParseModelResponse is the lossy layer: it never fails. Replies that carry
// no parseable JSON degrade to an empty mapping, with the error and the raw
// text logged for diagnosis.
func ParseModelResponse(text string) map[string]any {
	result, err := ExtractJSONObject(text)
	if err != nil {
		log.Printf("⚠️  Failed to parse model response: %v\nRaw response: %s\n", err, text)
		return map[string]any{}
	}
	return result
}

// stripCodeFences returns the interior of the first fenced code block,
// preferring one labeled json, or the input unchanged when no fence is
// present.
func stripCodeFences(text string) string {
	if interior, ok := fenceInterior(text, "```json"); ok {
		return interior
	}
	if interior, ok := fenceInterior(text, "```"); ok {
		return interior
	}
	return text
}

func fenceInterior(text, marker string) (string, bool) {
	start := strings.Index(text, marker)
	if start == -1 {
		return "", false
	}

	rest := text[start+len(marker):]
	end := strings.Index(rest, "```")
	if end == -1 {
		return strings.TrimSpace(rest), true
	}

	return strings.TrimSpace(rest[:end]), true
}
