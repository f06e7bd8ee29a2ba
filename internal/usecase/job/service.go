package job

import (
	"context"

	domain "job-portal/internal/domain/job"
	"job-portal/internal/repository"

	"github.com/google/uuid"
)

// Usecase is a thin layer over the job repository: postings are stored as
// submitted, with no validation beyond what the store enforces.
type Usecase interface {
	Create(ctx context.Context, p domain.Posting) (uuid.UUID, error)
	List(ctx context.Context, hrEmail string) ([]domain.Posting, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Posting, error)
}

type Service struct {
	jobs repository.JobRepository
}

func NewService(jobs repository.JobRepository) *Service {
	return &Service{jobs: jobs}
}

func (s *Service) Create(ctx context.Context, p domain.Posting) (uuid.UUID, error) {
	return s.jobs.Insert(ctx, p)
}

func (s *Service) List(ctx context.Context, hrEmail string) ([]domain.Posting, error) {
	return s.jobs.List(ctx, hrEmail)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Posting, error) {
	return s.jobs.GetByID(ctx, id)
}
