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

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type applyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterSeekerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/jobs/:job_id/applications", h.Apply)
	r.Get("/applications/mine", h.ListMine)
}

func (h *ApplicationHandler) RegisterEmployerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/applications", h.ListForEmployer)
	r.Get("/jobs/:job_id/applications", h.ListForJob)
	r.Put("/applications/:application_id/status", h.UpdateStatus)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	var req applyRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	app, err := h.uc.Apply(c.Context(), jobID, middleware.UserIDFromCtx(c), req.CoverLetter)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewApplicationResponse(app))
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	apps, err := h.uc.ListMine(c.Context(), middleware.UserIDFromCtx(c))
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationListResponse(apps))
}

func (h *ApplicationHandler) ListForEmployer(c fiber.Ctx) error {
	apps, err := h.uc.ListForEmployer(c.Context(), middleware.UserIDFromCtx(c))
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationListResponse(apps))
}

func (h *ApplicationHandler) ListForJob(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	apps, err := h.uc.ListForJob(c.Context(), jobID, middleware.UserIDFromCtx(c))
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationListResponse(apps))
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("application_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, err)
	}

	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	app, err := h.uc.UpdateStatus(c.Context(), applicationID, middleware.UserIDFromCtx(c), req.Status)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(app))
}

func mapApplicationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotApproved):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Job is not open for applications", nil, err)
	case errors.Is(err, usecase.ErrProfileIncomplete):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Complete your profile before applying", nil, err)
	case errors.Is(err, usecase.ErrDuplicateApplication):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied for this job", nil, err)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status value", nil, err)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Status transition not permitted", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
