package app

import (
	"context"
	"time"

	"job-portal/internal/config"
	"job-portal/internal/database"
	"job-portal/internal/database/migration"
	"job-portal/internal/database/seeder"
	dbpostgres "job-portal/internal/database/postgres"
)

type Container struct {
	Config config.Config
	DB     database.DB
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.App.IsDevelopment() {
		seeder.Run(ctx, db, seeder.SampleJobsSeeder{})
	}

	return &Container{Config: cfg, DB: db}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
