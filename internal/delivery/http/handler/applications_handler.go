package handler

import (
	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	domainapp "job-portal/internal/domain/application"
	"job-portal/internal/pkg/response"
	ucapplication "job-portal/internal/usecase/application"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationsHandler struct {
	uc ucapplication.Usecase
}

func NewApplicationsHandler(uc ucapplication.Usecase) *ApplicationsHandler {
	return &ApplicationsHandler{uc: uc}
}

// RegisterRoutes wires the unguarded application routes. The guarded
// listing route is registered separately so the route registry can attach
// the identity-match check to it alone.
func (h *ApplicationsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/job-applications/jobs/:job_id", h.ListForJob)
	r.Post("/job-applications", h.Create)
	r.Patch("/job-applications/:id", h.UpdateStatus)
}

// ListMine serves the applicant's own applications, enriched with posting
// display fields. Callers reach it through the email-match guard.
func (h *ApplicationsHandler) ListMine(c fiber.Ctx) error {
	views, err := h.uc.ListForApplicant(c.Context(), c.Query("email"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, views)
}

func (h *ApplicationsHandler) ListForJob(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	apps, err := h.uc.ListForJob(c.Context(), jobID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, apps)
}

func (h *ApplicationsHandler) Create(c fiber.Ctx) error {
	doc := map[string]any{}
	if err := c.Bind().Body(&doc); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	app, err := applicationFromDocument(doc)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	id, err := h.uc.Submit(c.Context(), app)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.InsertResponse{Acknowledged: true, InsertedID: id})
}

// applicationFromDocument keeps the whole submitted document, like the job
// handler does; only job_id needs a real parse because the column is typed.
func applicationFromDocument(doc map[string]any) (domainapp.Application, error) {
	a := domainapp.Application{Details: map[string]any{}}
	for k, v := range doc {
		switch k {
		case "job_id":
			id, err := uuid.Parse(stringField(v))
			if err != nil {
				return domainapp.Application{}, err
			}
			a.JobID = id
		case "applicant_email":
			a.ApplicantEmail = stringField(v)
		case "resume_link":
			a.ResumeLink = stringField(v)
		case "cover_note":
			a.CoverNote = stringField(v)
		case "status":
			a.Status = stringField(v)
		case "details":
			if m, ok := v.(map[string]any); ok {
				for dk, dv := range m {
					a.Details[dk] = dv
				}
			}
		default:
			a.Details[k] = v
		}
	}
	return a, nil
}

func (h *ApplicationsHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req dto.ApplicationStatusUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	matched, err := h.uc.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.UpdateResponse{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: matched,
	})
}
