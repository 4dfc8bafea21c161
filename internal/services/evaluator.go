package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"resumelens/resume-evaluator/internal/models"
	"resumelens/resume-evaluator/internal/repositories"
)

type EvaluatorService interface {
	EvaluateSubmission(ctx context.Context, evalID uuid.UUID) error
}

type evaluatorService struct {
	evalRepo        repositories.EvaluationRepository
	docRepo         repositories.DocumentRepository
	analyzer        AnalyzerService
	extractor       DocumentExtractorService
	metrics         *MetricsCalculator
	recommendations *RecommendationsBuilder
}

func NewEvaluatorService(
	evalRepo repositories.EvaluationRepository,
	docRepo repositories.DocumentRepository,
	analyzer AnalyzerService,
	extractor DocumentExtractorService,
	metrics *MetricsCalculator,
) EvaluatorService {
	return &evaluatorService{
		evalRepo:        evalRepo,
		docRepo:         docRepo,
		analyzer:        analyzer,
		extractor:       extractor,
		metrics:         metrics,
		recommendations: NewRecommendationsBuilder(),
	}
}

// EvaluateSubmission runs the full pipeline for one queued evaluation:
// extract the resume text, analyze it against the job description, derive
// metrics and recommendations, and store everything on the evaluation row.
// The stages run strictly in sequence.
func (e *evaluatorService) EvaluateSubmission(ctx context.Context, evalID uuid.UUID) error {
	if err := e.evalRepo.UpdateStatus(evalID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting evaluation for job ID: %s\n", evalID)

	evaluation, err := e.evalRepo.FindByID(evalID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, err.Error())
		return fmt.Errorf("failed to get evaluation: %w", err)
	}

	doc, err := e.docRepo.FindByID(evaluation.ResumeDocumentID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("Resume document not found: %v", err))
		return fmt.Errorf("failed to get resume document: %w", err)
	}

	// Step 1: Extract resume text
	log.Println("📄 Extracting resume text...")
	resumeText, err := e.extractor.ExtractResumeText(doc.FilePath, doc.FileType)
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("Failed to extract resume text: %v", err))
		return fmt.Errorf("failed to extract resume text: %w", err)
	}
	resumeText = CleanText(resumeText)

	// Step 2: Keywords + evaluation
	log.Println("🤖 Evaluating resume with LLM...")
	result, err := e.analyzer.EvaluateResume(ctx, EvaluationRequest{
		ResumeText:     resumeText,
		JobDescription: evaluation.JobDescription,
		CompanyName:    evaluation.CompanyName,
		RoleName:       evaluation.RoleName,
	})
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("Failed to evaluate resume: %v", err))
		return fmt.Errorf("failed to evaluate resume: %w", err)
	}

	// Step 3: Metrics
	metrics := e.metrics.Calculate(result.Data, result.Keywords, resumeText)

	// Step 4: Improvement suggestions
	log.Println("🤖 Generating improvement suggestions...")
	priorEvaluation := result.Data
	if priorEvaluation == nil {
		priorEvaluation = map[string]any{"evaluation": result.RawText}
	}

	suggestions, err := e.analyzer.SuggestImprovements(ctx, resumeText, evaluation.JobDescription, priorEvaluation)
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("Failed to generate suggestions: %v", err))
		return fmt.Errorf("failed to generate suggestions: %w", err)
	}

	recommendations := e.recommendations.Build(result.Data, metrics, suggestions)

	// Step 5: Save results
	log.Println("💾 Saving evaluation results...")
	updateData := &repositories.EvaluationUpdateData{
		RawEvaluation:   &result.RawText,
		Keywords:        mustJSON(result.Keywords),
		Metrics:         mustJSON(metrics),
		Recommendations: mustJSON(recommendations),
		Suggestions:     mustJSON(suggestions),
	}
	if result.Data != nil {
		updateData.EvaluationData = mustJSON(result.Data)
	}

	if err := e.evalRepo.UpdateResult(evalID, updateData); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	log.Printf("✅ Evaluation completed successfully for job ID: %s\n", evalID)
	return nil
}

func mustJSON(value any) datatypes.JSON {
	data, err := json.Marshal(value)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(data)
}
