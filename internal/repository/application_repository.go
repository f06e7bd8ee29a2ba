package repository

import (
	"context"
	"errors"
	"time"

	"job-portal/internal/database"
	"job-portal/internal/domain/application"

	"github.com/google/uuid"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Insert(ctx context.Context, a application.Application) (uuid.UUID, error)
	ListByApplicant(ctx context.Context, email string) ([]application.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error)
	// UpdateStatus replaces only the status column and reports how many
	// rows matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `id, job_id, applicant_email, resume_link, cover_note, status, details, created_at`

func (r *PostgresApplicationRepository) Insert(ctx context.Context, a application.Application) (uuid.UUID, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = application.StatusPending
	}
	if a.Details == nil {
		a.Details = map[string]any{}
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO job_applications (`+applicationColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.JobID, a.ApplicantEmail, a.ResumeLink, a.CoverNote, a.Status, a.Details, a.CreatedAt,
	)
	if err != nil {
		return uuid.Nil, err
	}
	return a.ID, nil
}

func (r *PostgresApplicationRepository) ListByApplicant(ctx context.Context, email string) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM job_applications WHERE applicant_email = $1`, email)
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM job_applications WHERE job_id = $1`, jobID)
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error) {
	return r.db.Exec(ctx, `UPDATE job_applications SET status = $1 WHERE id = $2`, status, id)
}

func (r *PostgresApplicationRepository) list(ctx context.Context, query string, args ...any) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		var a application.Application
		err := rows.Scan(
			&a.ID, &a.JobID, &a.ApplicantEmail, &a.ResumeLink, &a.CoverNote,
			&a.Status, &a.Details, &a.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
