package job

import (
	"time"

	"github.com/google/uuid"
)

// Posting is a job advertisement created by an HR user. The poster's email
// is set at creation and never changes; free-form fields the frontend sends
// along (description, salary range, requirements, ...) live in Details.
type Posting struct {
	ID                  uuid.UUID      `json:"_id"`
	HREmail             string         `json:"hr_email"`
	Title               string         `json:"title"`
	Company             string         `json:"company"`
	Location            string         `json:"location"`
	CompanyLogo         string         `json:"company_logo"`
	JobType             string         `json:"jobType,omitempty"`
	Category            string         `json:"category,omitempty"`
	ApplicationDeadline string         `json:"applicationDeadline,omitempty"`
	Details             map[string]any `json:"details,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
}
