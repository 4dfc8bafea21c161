package services

import (
	"fmt"
	"sort"
	"strings"
)

var defaultStrengths = []string{
	"Clear presentation of professional experience",
	"Relevant educational background",
	"Good organization of information",
}

var defaultImprovements = []string{
	"Add more quantifiable achievements",
	"Tailor skills section to match job requirements",
	"Enhance keywords related to the job description",
}

var defaultActionItems = []string{
	"Quantify achievements with specific metrics and results",
	"Tailor your resume to highlight skills relevant to the job description",
	"Use industry-specific keywords throughout your resume",
	"Improve formatting for better readability and visual appeal",
	"Add a strong professional summary highlighting your key qualifications",
}

var defaultMissingKeywords = map[string][]string{
	"technical_skills": {"Python", "SQL", "Data Analysis"},
	"soft_skills":      {"Communication", "Leadership"},
	"industry_terms":   {"Machine Learning"},
	"action_verbs":     {"Implemented", "Developed"},
}

// Recommendations is the presentation-ready advice block assembled from the
// evaluation mapping, the metrics, and the suggestions call.
type Recommendations struct {
	Strengths           []string            `json:"strengths"`
	Improvements        []string            `json:"improvements"`
	MissingKeywords     map[string][]string `json:"missing_keywords"`
	ActionItems         []string            `json:"action_items"`
	DetailedSuggestions string              `json:"detailed_suggestions"`
}

type RecommendationsBuilder struct{}

func NewRecommendationsBuilder() *RecommendationsBuilder {
	return &RecommendationsBuilder{}
}

// Build assembles recommendations. All inputs may be nil or partial; every
// field is padded with sensible defaults so the results view always has
// something to show.
func (rb *RecommendationsBuilder) Build(evaluation map[string]any, metrics *Metrics, suggestions map[string]any) *Recommendations {
	strengths, improvements := rb.ExtractStrengthsAndImprovements(evaluation)

	return &Recommendations{
		Strengths:           strengths,
		Improvements:        improvements,
		MissingKeywords:     rb.ExtractMissingKeywords(metrics),
		ActionItems:         rb.GenerateActionItems(evaluation, metrics),
		DetailedSuggestions: rb.FormatDetailedSuggestions(suggestions),
	}
}

// ExtractStrengthsAndImprovements returns exactly three of each, padding
// with defaults when the evaluation provides fewer.
func (rb *RecommendationsBuilder) ExtractStrengthsAndImprovements(evaluation map[string]any) ([]string, []string) {
	strengths := padWithDefaults(stringList(evaluation["strengths"]), defaultStrengths, 3)
	improvements := padWithDefaults(stringList(evaluation["improvements"]), defaultImprovements, 3)
	return capAt(strengths, 3), capAt(improvements, 3)
}

// ExtractMissingKeywords collects the missing keywords per category from the
// metrics, falling back to defaults when nothing is known.
func (rb *RecommendationsBuilder) ExtractMissingKeywords(metrics *Metrics) map[string][]string {
	missing := make(map[string][]string)

	if metrics != nil {
		for category, data := range metrics.KeywordMetrics {
			missing[category] = data.Missing
		}
	}

	if len(missing) == 0 {
		return defaultMissingKeywords
	}

	return missing
}

// GenerateActionItems returns up to five prioritized action items: the
// model's own first, then items derived from the weakest criteria and the
// sparsest keyword categories, then defaults.
func (rb *RecommendationsBuilder) GenerateActionItems(evaluation map[string]any, metrics *Metrics) []string {
	actionItems := stringList(evaluation["action_items"])

	if len(actionItems) < 3 && metrics != nil {
		for _, criterion := range lowestScoredCriteria(metrics.Scores, 2) {
			action := fmt.Sprintf("Improve %s in your resume", strings.ToLower(criterion))
			actionItems = appendUnique(actionItems, action)
		}

		categories := make([]string, 0, len(metrics.KeywordMetrics))
		for category := range metrics.KeywordMetrics {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		for _, category := range categories {
			if metrics.KeywordMetrics[category].Percentage < 50 {
				action := fmt.Sprintf("Add missing %s to your resume", strings.ReplaceAll(category, "_", " "))
				actionItems = appendUnique(actionItems, action)
			}
		}
	}

	if len(actionItems) < 5 {
		for _, action := range defaultActionItems {
			actionItems = appendUnique(actionItems, action)
			if len(actionItems) >= 5 {
				break
			}
		}
	}

	if len(actionItems) > 5 {
		actionItems = actionItems[:5]
	}

	return actionItems
}

// FormatDetailedSuggestions renders the structured suggestions mapping as
// markdown text for the results view. The summary field wins when present;
// otherwise the individual sections are laid out.
func (rb *RecommendationsBuilder) FormatDetailedSuggestions(suggestions map[string]any) string {
	if summary, ok := suggestions["summary"].(string); ok && summary != "" {
		return summary
	}

	var sections []string

	if items := stringList(suggestions["content_suggestions"]); len(items) > 0 {
		sections = append(sections, "## Content Suggestions\n\n"+bulletList(items))
	}
	if items := stringList(suggestions["structural_improvements"]); len(items) > 0 {
		sections = append(sections, "## Structural Improvements\n\n"+bulletList(items))
	}
	if items := stringList(suggestions["wording_changes"]); len(items) > 0 {
		sections = append(sections, "## Wording Changes\n\n"+bulletList(items))
	}

	if example, ok := suggestions["before_after_example"].(map[string]any); ok {
		sectionName, _ := example["section_name"].(string)
		if sectionName == "" {
			sectionName = "Section"
		}
		before, _ := example["before"].(string)
		after, _ := example["after"].(string)

		if before != "" && after != "" {
			sections = append(sections, fmt.Sprintf(
				"## Example Improvement: %s\n\n### Before:\n\n%s\n\n### After:\n\n%s",
				sectionName, before, after))
		}
	}

	return strings.Join(sections, "\n\n")
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}

func lowestScoredCriteria(scores map[string]int, n int) []string {
	criteria := make([]string, 0, len(scores))
	for criterion := range scores {
		criteria = append(criteria, criterion)
	}

	sort.Slice(criteria, func(i, j int) bool {
		if scores[criteria[i]] != scores[criteria[j]] {
			return scores[criteria[i]] < scores[criteria[j]]
		}
		return criteria[i] < criteria[j]
	})

	if len(criteria) > n {
		criteria = criteria[:n]
	}
	return criteria
}

func stringList(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}

	var result []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

func padWithDefaults(values, defaults []string, minimum int) []string {
	for _, def := range defaults {
		if len(values) >= minimum {
			break
		}
		values = appendUnique(values, def)
	}
	return values
}

func capAt(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

func appendUnique(values []string, value string) []string {
	for _, existing := range values {
		if existing == value {
			return values
		}
	}
	return append(values, value)
}
