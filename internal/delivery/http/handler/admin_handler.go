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

type AdminHandler struct {
	uc usecase.AdminUsecase
}

func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Put("/jobs/:job_id/approve", h.ApproveJob)
	r.Put("/users/:id/block", h.BlockUser)
	r.Get("/stats", h.Stats)
}

func (h *AdminHandler) ApproveJob(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	if err := h.uc.ApproveJob(c.Context(), jobID); err != nil {
		return mapAdminUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *AdminHandler) BlockUser(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	if err := h.uc.BlockUser(c.Context(), userID); err != nil {
		return mapAdminUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *AdminHandler) Stats(c fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return mapAdminUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.PlatformStatsResponse{
		Users:       stats.Users,
		Jobs:        stats.Jobs,
		PendingJobs: stats.PendingJobs,
	})
}

func mapAdminUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrTargetUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
