package seeder

import (
	"context"

	"job-portal/internal/database"
	"job-portal/internal/domain/job"
	"job-portal/internal/repository"
)

// SampleJobsSeeder inserts a few postings into an empty dev database so the
// frontend has something to render.
type SampleJobsSeeder struct{}

func (SampleJobsSeeder) Name() string { return "sample_jobs" }

func (SampleJobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "hr_email", "title", "company", "location", "company_logo", "details"); err != nil {
		return err
	}

	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	repo := repository.NewPostgresJobRepository(db)
	for _, p := range samplePostings() {
		if _, err := repo.Insert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func samplePostings() []job.Posting {
	return []job.Posting{
		{
			HREmail:     "hr@acme.example",
			Title:       "Backend Engineer",
			Company:     "Acme",
			Location:    "Dhaka, Bangladesh",
			CompanyLogo: "https://acme.example/logo.png",
			JobType:     "Full-time",
			Category:    "Engineering",
			Details: map[string]any{
				"description": "Build and run the services behind the job portal.",
				"salaryRange": map[string]any{"min": 40000, "max": 60000, "currency": "bdt"},
			},
		},
		{
			HREmail:     "hr@globex.example",
			Title:       "Frontend Developer",
			Company:     "Globex",
			Location:    "Remote",
			CompanyLogo: "https://globex.example/logo.png",
			JobType:     "Contract",
			Category:    "Engineering",
			Details: map[string]any{
				"description": "Own the applicant-facing React app.",
			},
		},
		{
			HREmail:     "people@initech.example",
			Title:       "HR Coordinator",
			Company:     "Initech",
			Location:    "Austin, TX",
			CompanyLogo: "https://initech.example/logo.png",
			JobType:     "Part-time",
			Category:    "Operations",
			Details: map[string]any{
				"description": "Screen applications and schedule interviews.",
			},
		},
	}
}
