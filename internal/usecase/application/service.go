package application

import (
	"context"
	"errors"

	domain "job-portal/internal/domain/application"
	"job-portal/internal/repository"

	"github.com/google/uuid"
)

// ApplicantView is an application dressed up for the applicant's "my
// applications" page: when the referenced posting still exists, a few of its
// display fields are copied on. When it does not, they stay absent.
type ApplicantView struct {
	domain.Application

	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	CompanyLogo string `json:"company_logo,omitempty"`
}

type Usecase interface {
	Submit(ctx context.Context, a domain.Application) (uuid.UUID, error)
	ListForApplicant(ctx context.Context, email string) ([]ApplicantView, error)
	ListForJob(ctx context.Context, jobID uuid.UUID) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error)
}

type Service struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
}

func NewService(applications repository.ApplicationRepository, jobs repository.JobRepository) *Service {
	return &Service{applications: applications, jobs: jobs}
}

func (s *Service) Submit(ctx context.Context, a domain.Application) (uuid.UUID, error) {
	return s.applications.Insert(ctx, a)
}

// ListForApplicant looks up the referenced posting per application. One
// round trip per row; fine at this scale, revisit if listings grow.
func (s *Service) ListForApplicant(ctx context.Context, email string) ([]ApplicantView, error) {
	apps, err := s.applications.ListByApplicant(ctx, email)
	if err != nil {
		return nil, err
	}

	out := make([]ApplicantView, 0, len(apps))
	for _, a := range apps {
		view := ApplicantView{Application: a}

		posting, err := s.jobs.GetByID(ctx, a.JobID)
		switch {
		case err == nil:
			view.Title = posting.Title
			view.Company = posting.Company
			view.Location = posting.Location
			view.CompanyLogo = posting.CompanyLogo
		case errors.Is(err, repository.ErrJobNotFound):
			// Posting gone or reference dangling: return the
			// application without the display fields.
		default:
			return nil, err
		}

		out = append(out, view)
	}
	return out, nil
}

func (s *Service) ListForJob(ctx context.Context, jobID uuid.UUID) ([]domain.Application, error) {
	return s.applications.ListByJob(ctx, jobID)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error) {
	return s.applications.UpdateStatus(ctx, id, status)
}
