package handler

import (
	"errors"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	domainjob "job-portal/internal/domain/job"
	"job-portal/internal/pkg/response"
	"job-portal/internal/repository"
	ucjob "job-portal/internal/usecase/job"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	uc ucjob.Usecase
}

func NewJobsHandler(uc ucjob.Usecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.List)
	r.Post("/jobs", h.Create)
	r.Get("/jobs/:id", h.Get)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	postings, err := h.uc.List(c.Context(), c.Query("email"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, postings)
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	doc := map[string]any{}
	if err := c.Bind().Body(&doc); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	id, err := h.uc.Create(c.Context(), postingFromDocument(doc))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.InsertResponse{Acknowledged: true, InsertedID: id})
}

// postingFromDocument keeps the whole posted document: recognized fields
// land in their columns, everything else rides along in Details.
func postingFromDocument(doc map[string]any) domainjob.Posting {
	p := domainjob.Posting{Details: map[string]any{}}
	for k, v := range doc {
		switch k {
		case "hr_email":
			p.HREmail = stringField(v)
		case "title":
			p.Title = stringField(v)
		case "company":
			p.Company = stringField(v)
		case "location":
			p.Location = stringField(v)
		case "company_logo":
			p.CompanyLogo = stringField(v)
		case "jobType":
			p.JobType = stringField(v)
		case "category":
			p.Category = stringField(v)
		case "applicationDeadline":
			p.ApplicationDeadline = stringField(v)
		case "details":
			if m, ok := v.(map[string]any); ok {
				for dk, dv := range m {
					p.Details[dk] = dv
				}
			}
		default:
			p.Details[k] = v
		}
	}
	return p
}

func stringField(v any) string {
	s, _ := v.(string)
	return s
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	posting, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			// A miss answers 200 with null data, not 404; the
			// frontend branches on null.
			return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, posting)
}
