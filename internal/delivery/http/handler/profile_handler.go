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

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type updateSeekerProfileRequest struct {
	Name       string      `json:"name"`
	Skills     []string    `json:"skills"`
	Experience string      `json:"experience"`
	Education  string      `json:"education"`
	ResumeURL  string      `json:"resume_url"`
	SavedJobs  []uuid.UUID `json:"saved_jobs"`
}

type updateEmployerProfileRequest struct {
	CompanyName string `json:"company_name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	LogoURL     string `json:"logo_url"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterSeekerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetSeekerMe)
	r.Put("/me", h.UpdateSeekerMe)
	r.Post("/me/saved-jobs/:job_id", h.SaveJob)
}

func (h *ProfileHandler) RegisterEmployerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetEmployerMe)
	r.Put("/me", h.UpdateEmployerMe)
}

func (h *ProfileHandler) GetSeekerMe(c fiber.Ctx) error {
	p, err := h.uc.GetSeekerProfile(c.Context(), middleware.UserIDFromCtx(c))
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSeekerProfileResponse(p))
}

func (h *ProfileHandler) UpdateSeekerMe(c fiber.Ctx) error {
	var req updateSeekerProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.UpdateSeekerProfile(c.Context(), middleware.UserIDFromCtx(c), usecase.UpdateSeekerProfileInput{
		Name:       req.Name,
		Skills:     req.Skills,
		Experience: req.Experience,
		Education:  req.Education,
		ResumeURL:  req.ResumeURL,
		SavedJobs:  req.SavedJobs,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSeekerProfileResponse(p))
}

func (h *ProfileHandler) SaveJob(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	p, err := h.uc.SaveJob(c.Context(), middleware.UserIDFromCtx(c), jobID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSeekerProfileResponse(p))
}

func (h *ProfileHandler) GetEmployerMe(c fiber.Ctx) error {
	p, err := h.uc.GetEmployerProfile(c.Context(), middleware.UserIDFromCtx(c))
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEmployerProfileResponse(p))
}

func (h *ProfileHandler) UpdateEmployerMe(c fiber.Ctx) error {
	var req updateEmployerProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.UpdateEmployerProfile(c.Context(), middleware.UserIDFromCtx(c), usecase.UpdateEmployerProfileInput{
		CompanyName: req.CompanyName,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEmployerProfileResponse(p))
}

func mapProfileUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrSeekerProfileNotFound), errors.Is(err, usecase.ErrEmployerProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
