package handler

import (
	"errors"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type jobRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	Salary         string   `json:"salary"`
	Type           string   `json:"type"`
	SkillsRequired []string `json:"skills_required"`
}

func (r jobRequest) toInput() usecase.JobInput {
	return usecase.JobInput{
		Title:          r.Title,
		Description:    r.Description,
		Location:       r.Location,
		Salary:         r.Salary,
		Type:           r.Type,
		SkillsRequired: r.SkillsRequired,
	}
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// RegisterEmployerRoutes must run before RegisterPublicRoutes so that
// GET /mine is matched ahead of GET /:job_id.
func (h *JobHandler) RegisterEmployerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/mine", h.ListMine)
	r.Post("/", h.Create)
	r.Put("/:job_id", h.Update)
	r.Delete("/:job_id", h.Delete)
}

func (h *JobHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:job_id", h.Get)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	postings, err := h.uc.ListApproved(c.Context())
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(postings))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	posting, err := h.uc.GetApproved(c.Context(), jobID)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(posting))
}

func (h *JobHandler) ListMine(c fiber.Ctx) error {
	postings, err := h.uc.ListMine(c.Context(), middleware.UserIDFromCtx(c))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(postings))
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	posting, err := h.uc.Create(c.Context(), middleware.UserIDFromCtx(c), req.toInput())
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewJobResponse(posting))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	posting, err := h.uc.Update(c.Context(), middleware.UserIDFromCtx(c), jobID, req.toInput())
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(posting))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	if err := h.uc.Delete(c.Context(), middleware.UserIDFromCtx(c), jobID); err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapJobUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrNotJobOwner):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrEmployerProfileNotFound):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Complete your employer profile first", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
