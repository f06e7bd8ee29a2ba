package seeder

import (
	"context"
	"log"

	"job-portal/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Run executes the dev-environment seeders in order; a failing seeder is
// logged and skipped, never fatal.
func Run(ctx context.Context, db database.DB, seeders ...Seeder) {
	for _, s := range seeders {
		if err := s.Run(ctx, db); err != nil {
			log.Printf("seeder %s failed: %v", s.Name(), err)
		}
	}
}
