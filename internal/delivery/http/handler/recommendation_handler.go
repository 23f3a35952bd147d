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

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterSeekerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.JobsForMe)
}

func (h *RecommendationHandler) RegisterEmployerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs/:job_id/candidates", h.CandidatesForJob)
}

func (h *RecommendationHandler) JobsForMe(c fiber.Ctx) error {
	postings, err := h.uc.JobsForSeeker(c.Context(), middleware.UserIDFromCtx(c))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(postings))
}

func (h *RecommendationHandler) CandidatesForJob(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	profiles, err := h.uc.CandidatesForJob(c.Context(), middleware.UserIDFromCtx(c), jobID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrJobNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
		case errors.Is(err, usecase.ErrNotJobOwner):
			return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
		case errors.Is(err, usecase.ErrEmployerProfileNotFound):
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Complete your employer profile first", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSeekerProfileListResponse(profiles))
}
