package services

import (
	"strings"

	"resumelens/resume-evaluator/internal/config"
)

const defaultCriterionScore = 5

// KeywordCategoryMetrics reports which keywords of one category appear in
// the resume text.
type KeywordCategoryMetrics struct {
	Present    []string `json:"present"`
	Missing    []string `json:"missing"`
	Percentage float64  `json:"percentage"`
}

type KeywordOverallMetrics struct {
	TotalKeywords int     `json:"total_keywords"`
	PresentCount  int     `json:"present_count"`
	Percentage    float64 `json:"percentage"`
}

// Metrics holds the numeric fields derived from an evaluation for chart
// rendering. Recomputed on every evaluation, never persisted on its own.
type Metrics struct {
	Scores          map[string]int                    `json:"scores"`
	MatchPercentage int                               `json:"match_percentage"`
	KeywordMetrics  map[string]KeywordCategoryMetrics `json:"keyword_metrics"`
	KeywordOverall  KeywordOverallMetrics             `json:"keyword_overall"`
}

type MetricsCalculator struct {
	criteria []string
	weights  map[string]float64
}

func NewMetricsCalculator(cfg config.EvaluationConfig) *MetricsCalculator {
	return &MetricsCalculator{
		criteria: cfg.Criteria,
		weights:  cfg.Weights,
	}
}

// Calculate derives chart metrics from a (possibly nil or partial)
// evaluation mapping, the extracted keywords, and the resume text.
func (m *MetricsCalculator) Calculate(evaluation map[string]any, keywords map[string][]string, resumeText string) *Metrics {
	scores := m.ExtractScores(evaluation)
	perCategory, overall := m.calculateKeywordMetrics(resumeText, keywords)

	return &Metrics{
		Scores:          scores,
		MatchPercentage: m.ExtractOverallMatch(evaluation),
		KeywordMetrics:  perCategory,
		KeywordOverall:  overall,
	}
}

// ExtractScores pulls per-criterion scores out of the evaluation mapping.
// Only integer scores between 1 and 10 are accepted; every configured
// criterion not covered by the mapping gets the default score.
func (m *MetricsCalculator) ExtractScores(evaluation map[string]any) map[string]int {
	scores := make(map[string]int)

	if criteriaScores, ok := evaluation["criteria_scores"].(map[string]any); ok {
		for criterion, data := range criteriaScores {
			entry, ok := data.(map[string]any)
			if !ok {
				continue
			}
			if score, ok := intInRange(entry["score"], 1, 10); ok {
				scores[criterion] = score
			}
		}
	}

	for _, criterion := range m.criteria {
		if _, ok := scores[criterion]; !ok {
			scores[criterion] = defaultCriterionScore
		}
	}

	return scores
}

// ExtractOverallMatch returns the overall match percentage reported by the
// model, falling back to a weighted average of the per-criterion scores
// scaled to 0-100, and to 50 when nothing usable is present.
func (m *MetricsCalculator) ExtractOverallMatch(evaluation map[string]any) int {
	if match, ok := intInRange(evaluation["overall_match_percentage"], 0, 100); ok {
		return match
	}

	scores := m.ExtractScores(evaluation)

	weightedSum := 0.0
	totalWeight := 0.0
	for criterion, score := range scores {
		weight := m.weights[criterion]
		weightedSum += float64(score) * weight
		totalWeight += weight
	}

	if totalWeight > 0 {
		return int(weightedSum / totalWeight * 10)
	}

	return 50
}

func (m *MetricsCalculator) calculateKeywordMetrics(resumeText string, keywords map[string][]string) (map[string]KeywordCategoryMetrics, KeywordOverallMetrics) {
	resumeLower := strings.ToLower(resumeText)

	perCategory := make(map[string]KeywordCategoryMetrics, len(keywords))
	totalKeywords := 0
	presentCount := 0

	for category, keywordList := range keywords {
		metrics := KeywordCategoryMetrics{
			Present: []string{},
			Missing: []string{},
		}

		for _, keyword := range keywordList {
			if strings.Contains(resumeLower, strings.ToLower(keyword)) {
				metrics.Present = append(metrics.Present, keyword)
			} else {
				metrics.Missing = append(metrics.Missing, keyword)
			}
		}

		if len(keywordList) > 0 {
			metrics.Percentage = float64(len(metrics.Present)) / float64(len(keywordList)) * 100
		}

		perCategory[category] = metrics
		totalKeywords += len(keywordList)
		presentCount += len(metrics.Present)
	}

	overall := KeywordOverallMetrics{
		TotalKeywords: totalKeywords,
		PresentCount:  presentCount,
	}
	if totalKeywords > 0 {
		overall.Percentage = float64(presentCount) / float64(totalKeywords) * 100
	}

	return perCategory, overall
}

// intInRange accepts JSON numbers that are whole and within [min, max].
func intInRange(value any, min, max int) (int, bool) {
	f, ok := value.(float64)
	if !ok || f != float64(int(f)) {
		return 0, false
	}

	n := int(f)
	if n < min || n > max {
		return 0, false
	}

	return n, true
}
