package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/talentlink/api/internal/model"
	"github.com/talentlink/api/internal/service"
	"github.com/talentlink/api/pkg/response"
)

type ApplicationHandler struct {
	service   *service.ApplicationService
	validator *validator.Validate
}

func NewApplicationHandler(svc *service.ApplicationService, v *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   svc,
		validator: v,
	}
}

// Create handles POST /applications
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	var req model.ApplicationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	app, err := h.service.Create(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJobNotFound):
			return response.NotFound(c, "Job not found")
		case errors.Is(err, service.ErrTalentNotFound):
			return response.NotFound(c, "Talent not found")
		case errors.Is(err, service.ErrDuplicateApplication):
			return response.Conflict(c, "Talent already applied to this job")
		default:
			return response.ServiceError(c, err.Error())
		}
	}

	return response.Created(c, app)
}

// ListByJob handles GET /jobs/:jobId/applications
func (h *ApplicationHandler) ListByJob(c *fiber.Ctx) error {
	apps, err := h.service.ListByJob(c.Context(), c.Params("jobId"))
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			return response.NotFound(c, "Job not found")
		}
		return response.ServiceError(c, err.Error())
	}
	return response.OK(c, apps)
}

// ListByTalent handles GET /talents/:talentId/applications
func (h *ApplicationHandler) ListByTalent(c *fiber.Ctx) error {
	apps, err := h.service.ListByTalent(c.Context(), c.Params("talentId"))
	if err != nil {
		if errors.Is(err, service.ErrTalentNotFound) {
			return response.NotFound(c, "Talent not found")
		}
		return response.ServiceError(c, err.Error())
	}
	return response.OK(c, apps)
}

// UpdateStatus handles PUT /applications/:applicationId/status
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	var req model.ApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	app, err := h.service.UpdateStatus(c.Context(), c.Params("applicationId"), req.Status)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			return response.NotFound(c, "Application not found")
		}
		return response.ServiceError(c, err.Error())
	}
	return response.OK(c, app)
}
