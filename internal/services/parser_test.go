package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]any
	}{
		{
			name:     "plain JSON",
			input:    `{"score": 7}`,
			expected: map[string]any{"score": float64(7)},
		},
		{
			name:     "JSON inside prose",
			input:    "Here is the result:\n{\"score\": 7}\nLet me know if you need anything else.",
			expected: map[string]any{"score": float64(7)},
		},
		{
			name:     "json-labeled fence",
			input:    "```json\n{\"score\": 7}\n```",
			expected: map[string]any{"score": float64(7)},
		},
		{
			name:     "unlabeled fence",
			input:    "```\n{\"score\": 7}\n```",
			expected: map[string]any{"score": float64(7)},
		},
		{
			name:     "fence surrounded by prose",
			input:    "Sure! Here you go:\n```json\n{\"score\": 7}\n```\nHope that helps.",
			expected: map[string]any{"score": float64(7)},
		},
		{
			name:     "nested object",
			input:    `{"criteria_scores": {"Skills Match": {"score": 8}}}`,
			expected: map[string]any{"criteria_scores": map[string]any{"Skills Match": map[string]any{"score": float64(8)}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExtractJSONObject(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExtractJSONObject_RoundTrip(t *testing.T) {
	original := map[string]any{
		"overall_match_percentage": float64(75),
		"strengths":                []any{"Strength 1", "Strength 2", "Strength 3"},
		"evaluation_summary":       "Solid resume overall",
	}

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	wrappers := []struct {
		name string
		wrap func(string) string
	}{
		{"bare", func(s string) string { return s }},
		{"prose", func(s string) string { return "Analysis complete. " + s + " End of analysis." }},
		{"json fence", func(s string) string { return "```json\n" + s + "\n```" }},
		{"fence in prose", func(s string) string { return "Here it is:\n```\n" + s + "\n```\nDone." }},
	}

	for _, w := range wrappers {
		t.Run(w.name, func(t *testing.T) {
			result, err := ExtractJSONObject(w.wrap(string(encoded)))
			require.NoError(t, err)
			assert.Equal(t, original, result)
		})
	}
}

func TestExtractJSONObject_NoJSON(t *testing.T) {
	_, err := ExtractJSONObject("I could not produce a structured answer, sorry.")
	assert.ErrorIs(t, err, ErrNoJSONFound)
}

func TestExtractJSONObject_InvalidJSON(t *testing.T) {
	_, err := ExtractJSONObject(`{"score": 7, "truncated`)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoJSONFound)
}

func TestParseModelResponse_NeverFails(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no braces", "plain prose with nothing structured"},
		{"empty string", ""},
		{"unbalanced JSON", `{"score": 7, "feedback": `},
		{"invalid JSON between braces", "leading { not json at all } trailing"},
		{"only closing brace", "}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseModelResponse(tt.input)
			require.NotNil(t, result)
			assert.Empty(t, result)
		})
	}
}

func TestParseModelResponse_ValidInput(t *testing.T) {
	result := ParseModelResponse("```json\n{\"summary\": \"ok\"}\n```")
	assert.Equal(t, map[string]any{"summary": "ok"}, result)
}

func TestStripCodeFences_PrefersJSONLabel(t *testing.T) {
	input := "```\nnot the payload\n```\n```json\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, stripCodeFences(input))
}
