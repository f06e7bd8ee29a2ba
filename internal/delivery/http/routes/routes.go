package routes

import (
	"job-portal/internal/config"
	"job-portal/internal/database"
	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/pkg/jwt"
	"job-portal/internal/repository"
	ucapplication "job-portal/internal/usecase/application"
	ucjob "job-portal/internal/usecase/job"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health       *handler.HealthHandler
	auth         *handler.AuthHandler
	jobs         *handler.JobsHandler
	applications *handler.ApplicationsHandler
	authMw       *middleware.AuthMiddleware
}

func NewRegistry(cfg config.Config, db database.DB) *Registry {
	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	jobRepo := repository.NewPostgresJobRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)

	jobUC := ucjob.NewService(jobRepo)
	applicationUC := ucapplication.NewService(applicationRepo, jobRepo)

	return &Registry{
		health:       handler.NewHealthHandler(db),
		auth:         handler.NewAuthHandler(jwtSvc),
		jobs:         handler.NewJobsHandler(jobUC),
		applications: handler.NewApplicationsHandler(applicationUC),
		authMw:       middleware.NewAuthMiddleware(jwtSvc),
	}
}

// Register lays the routes out flat at the root. The only guarded route is
// the applicant's own listing; the other routes, including the mutating
// ones, are open (DESIGN.md lists this among the known gaps).
func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.auth.RegisterRoutes(app)
	r.jobs.RegisterRoutes(app)
	r.applications.RegisterRoutes(app)

	app.Get("/job-applications", r.applications.ListMine, r.authMw.RequireSameEmail())
}
