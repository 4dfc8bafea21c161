package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildKeywordExtractionPrompt creates the prompt for extracting the most
// important keywords from a job description, grouped into four fixed
// categories.
func (pb *PromptBuilder) BuildKeywordExtractionPrompt(jobDescription string) string {
	return fmt.Sprintf(`You are an expert in technical recruitment and keyword optimization for job applications.

TASK: Extract the most important keywords and skills from the following job description.

JOB DESCRIPTION:
%s

Return ONLY a JSON object with the following structure:
{
    "technical_skills": ["skill1", "skill2", ...],
    "soft_skills": ["skill1", "skill2", ...],
    "industry_terms": ["term1", "term2", ...],
    "action_verbs": ["verb1", "verb2", ...]
}

IMPORTANT REQUIREMENTS:
1. You MUST provide EXACTLY 15 technical skills
2. You MUST provide EXACTLY 10 soft skills
3. You MUST provide EXACTLY 5 industry-specific terms
4. You MUST provide EXACTLY 5 action verbs
5. Return ONLY valid JSON with no additional text, markdown formatting, or code blocks
6. If the job description doesn't explicitly mention enough items, infer relevant ones based on the industry and role`,
		jobDescription)
}

// BuildEvaluationPrompt creates the prompt for the full resume evaluation
// against the job description, scored on the configured criteria.
func (pb *PromptBuilder) BuildEvaluationPrompt(resumeText, jobDescription, companyName, roleName string, criteria []string) string {
	var criteriaLines []string
	for _, criterion := range criteria {
		criteriaLines = append(criteriaLines, fmt.Sprintf("- %s", criterion))
	}

	return fmt.Sprintf(`You are an expert resume reviewer and career coach with extensive experience in technical hiring.

TASK: Evaluate the provided resume for the %s position at %s based on the job description.

RESUME:
%s

JOB DESCRIPTION:
%s

EVALUATION CRITERIA:
%s

Evaluate the resume and return ONLY a JSON object with the following structure:
{
    "criteria_scores": {
        "Relevance to Job Description": {
            "score": 7,
            "explanation": "Brief explanation for the score",
            "suggestion": "Specific suggestion for improvement"
        }
    },
    "overall_match_percentage": 75,
    "strengths": ["Strength 1", "Strength 2", "Strength 3"],
    "improvements": ["Area for improvement 1", "Area for improvement 2", "Area for improvement 3"],
    "missing_keywords": ["keyword1", "keyword2", "keyword3"],
    "action_items": ["Action item 1", "Action item 2", "Action item 3", "Action item 4", "Action item 5"],
    "evaluation_summary": "A brief overall evaluation summary of the resume"
}

IMPORTANT REQUIREMENTS:
1. Include ALL evaluation criteria in criteria_scores with their scores (1-10), explanations, and suggestions
2. You MUST provide EXACTLY 3 strengths and 3 areas for improvement
3. You MUST provide at least 5 action items prioritized by impact
4. Return ONLY valid JSON with no additional text, markdown formatting, or code blocks
5. Ensure all scores are integers between 1 and 10
6. Overall match percentage must be an integer between 0 and 100`,
		roleName, companyName, resumeText, jobDescription, strings.Join(criteriaLines, "\n"))
}

// BuildSuggestionsPrompt creates the prompt for detailed improvement
// suggestions, embedding the prior evaluation results.
func (pb *PromptBuilder) BuildSuggestionsPrompt(resumeText, jobDescription string, evaluation map[string]any) string {
	evaluationJSON, err := json.Marshal(evaluation)
	if err != nil || evaluation == nil {
		evaluationJSON = []byte("{}")
	}

	return fmt.Sprintf(`You are an expert resume writer with extensive experience helping candidates optimize their resumes for specific job applications.

TASK: Provide detailed, actionable suggestions to improve the resume for the specific job.

RESUME:
%s

JOB DESCRIPTION:
%s

PREVIOUS EVALUATION RESULTS:
%s

Return ONLY a JSON object with the following structure:
{
    "content_suggestions": ["Specific content suggestion 1", "Specific content suggestion 2", "Specific content suggestion 3", "Specific content suggestion 4", "Specific content suggestion 5"],
    "structural_improvements": ["Structural improvement 1", "Structural improvement 2", "Structural improvement 3"],
    "wording_changes": ["Wording change 1", "Wording change 2", "Wording change 3"],
    "before_after_example": {
        "section_name": "Experience",
        "before": "Original text from the resume",
        "after": "Improved version of the text"
    },
    "summary": "A brief summary of the key improvements recommended"
}

IMPORTANT REQUIREMENTS:
1. You MUST provide EXACTLY 5 content suggestions
2. You MUST provide EXACTLY 3 structural improvements
3. You MUST provide EXACTLY 3 wording changes
4. Return ONLY valid JSON with no additional text, markdown formatting, or code blocks
5. Make all suggestions specific and actionable`,
		resumeText, jobDescription, string(evaluationJSON))
}
