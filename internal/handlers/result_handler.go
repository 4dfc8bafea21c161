package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumelens/resume-evaluator/internal/models"
	"resumelens/resume-evaluator/internal/repositories"
)

type ResultHandler struct {
	evalRepo repositories.EvaluationRepository
}

func NewResultHandler(evalRepo repositories.EvaluationRepository) *ResultHandler {
	return &ResultHandler{
		evalRepo: evalRepo,
	}
}

// HandleGetResult handles GET /evaluations/:id
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	evalID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid evaluation ID format",
		})
	}

	evaluation, err := h.evalRepo.FindByID(evalID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Evaluation not found",
		})
	}

	response := models.ResultResponse{
		ID:     evaluation.ID.String(),
		Status: string(evaluation.Status),
	}

	// If completed, include results. Evaluation stays empty when the model
	// reply never parsed; the raw text is still returned.
	if evaluation.Status == models.StatusCompleted {
		rawEvaluation := ""
		if evaluation.RawEvaluation != nil {
			rawEvaluation = *evaluation.RawEvaluation
		}

		response.Result = &models.EvaluationData{
			RawEvaluation:   rawEvaluation,
			Evaluation:      evaluation.EvaluationData,
			Keywords:        evaluation.Keywords,
			Metrics:         evaluation.Metrics,
			Recommendations: evaluation.Recommendations,
			Suggestions:     evaluation.Suggestions,
		}
	}

	// If failed, include error message
	if evaluation.Status == models.StatusFailed && evaluation.ErrorMessage != "" {
		response.ErrorMessage = &evaluation.ErrorMessage
	}

	return c.JSON(response)
}
