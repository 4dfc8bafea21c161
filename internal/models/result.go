package models

import "gorm.io/datatypes"

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
}

type EvaluateRequest struct {
	ResumeDocumentID string `json:"resume_document_id" validate:"required,uuid"`
	JobDescription   string `json:"job_description" validate:"required"`
	CompanyName      string `json:"company_name" validate:"required"`
	RoleName         string `json:"role_name" validate:"required"`
}

type EvaluateResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	Result       *EvaluationData `json:"result,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
}

// EvaluationData is the completed-evaluation payload. Evaluation is absent
// when the model's evaluation reply was not parseable JSON; RawEvaluation
// always carries the reply text so nothing is lost in that case.
type EvaluationData struct {
	RawEvaluation   string         `json:"raw_evaluation"`
	Evaluation      datatypes.JSON `json:"evaluation,omitempty"`
	Keywords        datatypes.JSON `json:"keywords"`
	Metrics         datatypes.JSON `json:"metrics"`
	Recommendations datatypes.JSON `json:"recommendations"`
	Suggestions     datatypes.JSON `json:"suggestions"`
}
