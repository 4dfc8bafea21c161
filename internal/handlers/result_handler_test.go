package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"resumelens/resume-evaluator/internal/models"
)

func newResultTestApp(evalRepo *stubEvaluationRepo) *fiber.App {
	app := fiber.New()
	handler := NewResultHandler(evalRepo)
	app.Get("/api/v1/evaluations/:id", handler.HandleGetResult)
	return app
}

func getResult(t *testing.T, app *fiber.App, id string) (int, map[string]any) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/evaluations/"+id, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestHandleGetResultPending(t *testing.T) {
	evalID := uuid.New()
	evalRepo := &stubEvaluationRepo{evaluations: map[uuid.UUID]*models.Evaluation{
		evalID: {ID: evalID, Status: models.StatusProcessing},
	}}
	app := newResultTestApp(evalRepo)

	status, body := getResult(t, app, evalID.String())

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, evalID.String(), body["id"])
	assert.Equal(t, "processing", body["status"])
	assert.NotContains(t, body, "result")
	assert.NotContains(t, body, "error_message")
}

func TestHandleGetResultCompleted(t *testing.T) {
	evalID := uuid.New()
	raw := "The resume is a strong match."
	evalRepo := &stubEvaluationRepo{evaluations: map[uuid.UUID]*models.Evaluation{
		evalID: {
			ID:             evalID,
			Status:         models.StatusCompleted,
			RawEvaluation:  &raw,
			EvaluationData: datatypes.JSON(`{"overall_match_percentage": 82}`),
			Keywords:       datatypes.JSON(`{"technical_skills": ["Go"]}`),
			Metrics:        datatypes.JSON(`{"match_percentage": 82}`),
			Recommendations: datatypes.JSON(
				`{"strengths": ["Clear formatting"]}`),
			Suggestions: datatypes.JSON(`{"summary": "Add metrics to bullets."}`),
		},
	}}
	app := newResultTestApp(evalRepo)

	status, body := getResult(t, app, evalID.String())

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "completed", body["status"])

	result, ok := body["result"].(map[string]any)
	require.True(t, ok, "completed response must carry a result payload")
	assert.Equal(t, raw, result["raw_evaluation"])

	evaluation, ok := result["evaluation"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(82), evaluation["overall_match_percentage"])

	keywords, ok := result["keywords"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"Go"}, keywords["technical_skills"])
}

func TestHandleGetResultCompletedWithoutParsedEvaluation(t *testing.T) {
	evalID := uuid.New()
	raw := "Plain prose reply, no JSON in it."
	evalRepo := &stubEvaluationRepo{evaluations: map[uuid.UUID]*models.Evaluation{
		evalID: {
			ID:            evalID,
			Status:        models.StatusCompleted,
			RawEvaluation: &raw,
			Keywords:      datatypes.JSON(`{}`),
			Metrics:       datatypes.JSON(`{}`),
		},
	}}
	app := newResultTestApp(evalRepo)

	status, body := getResult(t, app, evalID.String())

	require.Equal(t, fiber.StatusOK, status)
	result, ok := body["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, raw, result["raw_evaluation"])
	assert.NotContains(t, result, "evaluation")
}

func TestHandleGetResultFailed(t *testing.T) {
	evalID := uuid.New()
	evalRepo := &stubEvaluationRepo{evaluations: map[uuid.UUID]*models.Evaluation{
		evalID: {
			ID:           evalID,
			Status:       models.StatusFailed,
			ErrorMessage: "failed to extract text from resume",
		},
	}}
	app := newResultTestApp(evalRepo)

	status, body := getResult(t, app, evalID.String())

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "failed", body["status"])
	assert.Equal(t, "failed to extract text from resume", body["error_message"])
	assert.NotContains(t, body, "result")
}

func TestHandleGetResultInvalidID(t *testing.T) {
	app := newResultTestApp(&stubEvaluationRepo{})

	status, body := getResult(t, app, "not-a-uuid")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid evaluation ID format", body["error"])
}

func TestHandleGetResultUnknownID(t *testing.T) {
	app := newResultTestApp(&stubEvaluationRepo{})

	status, body := getResult(t, app, uuid.New().String())

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Evaluation not found", body["error"])
}
