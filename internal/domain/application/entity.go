package application

import (
	"time"

	"github.com/google/uuid"
)

// Application statuses are free-form text at the store level; these are the
// values the review UI uses.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

type Application struct {
	ID             uuid.UUID      `json:"_id"`
	JobID          uuid.UUID      `json:"job_id"`
	ApplicantEmail string         `json:"applicant_email"`
	ResumeLink     string         `json:"resume_link,omitempty"`
	CoverNote      string         `json:"cover_note,omitempty"`
	Status         string         `json:"status"`
	Details        map[string]any `json:"details,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}
