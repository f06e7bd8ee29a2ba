package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"job-portal/internal/database"
	"job-portal/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Insert(ctx context.Context, p job.Posting) (uuid.UUID, error)
	// List returns every posting, or only those created by hrEmail when it
	// is non-empty. No ORDER BY: callers must not rely on row order.
	List(ctx context.Context, hrEmail string) ([]job.Posting, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, hr_email, title, company, location, company_logo, job_type, category, application_deadline, details, created_at`

func (r *PostgresJobRepository) Insert(ctx context.Context, p job.Posting) (uuid.UUID, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Details == nil {
		p.Details = map[string]any{}
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (`+jobColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.HREmail, p.Title, p.Company, p.Location, p.CompanyLogo,
		p.JobType, p.Category, p.ApplicationDeadline, p.Details, p.CreatedAt,
	)
	if err != nil {
		return uuid.Nil, err
	}
	return p.ID, nil
}

func (r *PostgresJobRepository) List(ctx context.Context, hrEmail string) ([]job.Posting, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs`
	args := []any{}
	if hrEmail != "" {
		query += ` WHERE hr_email = $1`
		args = append(args, hrEmail)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	p, err := scanPosting(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

func scanPosting(row database.Row) (job.Posting, error) {
	var p job.Posting
	err := row.Scan(
		&p.ID, &p.HREmail, &p.Title, &p.Company, &p.Location, &p.CompanyLogo,
		&p.JobType, &p.Category, &p.ApplicationDeadline, &p.Details, &p.CreatedAt,
	)
	return p, err
}
