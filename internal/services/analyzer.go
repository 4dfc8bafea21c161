package services

import (
	"context"
	"fmt"
	"log"
)

// KeywordCategories are the fixed categories the keyword-extraction prompt
// asks for. The fallback keyword set carries exactly these, each empty.
var KeywordCategories = []string{
	"technical_skills",
	"soft_skills",
	"industry_terms",
	"action_verbs",
}

// EvaluationRequest carries one user submission. Immutable once constructed.
type EvaluationRequest struct {
	ResumeText     string
	JobDescription string
	CompanyName    string
	RoleName       string
}

// EvaluationResult is the combined output of the keyword and evaluation
// calls. Data is nil when the evaluation reply was not parseable JSON; in
// that case RawText and Keywords are all the caller gets.
type EvaluationResult struct {
	RawText  string
	Data     map[string]any
	Keywords map[string][]string
}

type AnalyzerService interface {
	ExtractKeywords(ctx context.Context, jobDescription string) map[string][]string
	EvaluateResume(ctx context.Context, req EvaluationRequest) (*EvaluationResult, error)
	SuggestImprovements(ctx context.Context, resumeText, jobDescription string, evaluation map[string]any) (map[string]any, error)
}

type analyzerService struct {
	model         ModelClient
	promptBuilder *PromptBuilder
	criteria      []string
}

func NewAnalyzerService(model ModelClient, criteria []string) AnalyzerService {
	return &analyzerService{
		model:         model,
		promptBuilder: NewPromptBuilder(),
		criteria:      criteria,
	}
}

// ExtractKeywords extracts categorized keywords from a job description.
// It never fails: when the model call or the JSON parse fails, the result is
// the four fixed categories with empty lists.
func (a *analyzerService) ExtractKeywords(ctx context.Context, jobDescription string) map[string][]string {
	prompt := a.promptBuilder.BuildKeywordExtractionPrompt(jobDescription)

	parsed, _, err := a.generateAndParse(ctx, prompt, func(string) map[string]any { return nil })
	if err != nil {
		log.Printf("⚠️  Keyword extraction failed: %v\n", err)
		return emptyKeywordSet()
	}
	if parsed == nil {
		return emptyKeywordSet()
	}

	return keywordSetFromParsed(parsed)
}

// EvaluateResume runs the keyword-extraction and evaluation calls in order
// and assembles the combined result. A model-call failure on the evaluation
// call propagates; a parse failure degrades to a raw-text-only result.
func (a *analyzerService) EvaluateResume(ctx context.Context, req EvaluationRequest) (*EvaluationResult, error) {
	keywords := a.ExtractKeywords(ctx, req.JobDescription)

	prompt := a.promptBuilder.BuildEvaluationPrompt(
		req.ResumeText,
		req.JobDescription,
		req.CompanyName,
		req.RoleName,
		a.criteria,
	)

	parsed, raw, err := a.generateAndParse(ctx, prompt, func(string) map[string]any { return nil })
	if err != nil {
		return nil, fmt.Errorf("failed to generate evaluation: %w", err)
	}

	return &EvaluationResult{
		RawText:  raw,
		Data:     parsed,
		Keywords: keywords,
	}, nil
}

// SuggestImprovements runs the improvement-suggestions call. A parse failure
// degrades to {"summary": <raw completion>}.
func (a *analyzerService) SuggestImprovements(ctx context.Context, resumeText, jobDescription string, evaluation map[string]any) (map[string]any, error) {
	prompt := a.promptBuilder.BuildSuggestionsPrompt(resumeText, jobDescription, evaluation)

	parsed, _, err := a.generateAndParse(ctx, prompt, func(raw string) map[string]any {
		return map[string]any{"summary": raw}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate suggestions: %w", err)
	}

	return parsed, nil
}

// generateAndParse is the call/parse/fallback triad shared by all three
// model interactions. Model-call errors propagate; parse failures are
// replaced by the supplied fallback, which receives the raw completion.
func (a *analyzerService) generateAndParse(ctx context.Context, prompt string, fallback func(raw string) map[string]any) (map[string]any, string, error) {
	raw, err := a.model.GenerateText(ctx, prompt)
	if err != nil {
		return nil, "", err
	}

	parsed := ParseModelResponse(raw)
	if len(parsed) == 0 {
		return fallback(raw), raw, nil
	}

	return parsed, raw, nil
}

func emptyKeywordSet() map[string][]string {
	keywords := make(map[string][]string, len(KeywordCategories))
	for _, category := range KeywordCategories {
		keywords[category] = []string{}
	}
	return keywords
}

// keywordSetFromParsed shapes a parsed keyword reply into the fixed four
// categories, tolerating missing categories and non-string entries.
func keywordSetFromParsed(parsed map[string]any) map[string][]string {
	keywords := emptyKeywordSet()

	for _, category := range KeywordCategories {
		items, ok := parsed[category].([]any)
		if !ok {
			continue
		}
		for _, item := range items {
			if s, ok := item.(string); ok {
				keywords[category] = append(keywords[category], s)
			}
		}
	}

	return keywords
}
