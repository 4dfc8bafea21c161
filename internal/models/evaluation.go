package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EvaluationStatus string

const (
	StatusQueued     EvaluationStatus = "queued"
	StatusProcessing EvaluationStatus = "processing"
	StatusCompleted  EvaluationStatus = "completed"
	StatusFailed     EvaluationStatus = "failed"
)

// Evaluation is one submission of a resume against a job description. The
// JSON columns hold whatever the model produced: EvaluationData stays NULL
// when the model reply could not be parsed, in which case RawEvaluation is
// the only record of the evaluation call.
type Evaluation struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyName      string           `gorm:"type:text" json:"company_name"`
	RoleName         string           `gorm:"type:text" json:"role_name"`
	JobDescription   string           `gorm:"type:text" json:"job_description"`
	ResumeDocumentID uuid.UUID        `gorm:"type:uuid;not null" json:"resume_document_id"`
	Status           EvaluationStatus `gorm:"not null;default:'queued'" json:"status"`
	RawEvaluation    *string          `gorm:"type:text" json:"raw_evaluation,omitempty"`
	EvaluationData   datatypes.JSON   `gorm:"type:jsonb" json:"evaluation_data,omitempty"`
	Keywords         datatypes.JSON   `gorm:"type:jsonb" json:"keywords,omitempty"`
	Metrics          datatypes.JSON   `gorm:"type:jsonb" json:"metrics,omitempty"`
	Recommendations  datatypes.JSON   `gorm:"type:jsonb" json:"recommendations,omitempty"`
	Suggestions      datatypes.JSON   `gorm:"type:jsonb" json:"suggestions,omitempty"`
	ErrorMessage     string           `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	ResumeDocument Document `gorm:"foreignKey:ResumeDocumentID" json:"-"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}
