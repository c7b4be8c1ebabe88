package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/talentlink/api/internal/model"
	"github.com/talentlink/api/internal/service"
	"github.com/talentlink/api/pkg/response"
)

type JobHandler struct {
	service   *service.JobService
	validator *validator.Validate
}

func NewJobHandler(svc *service.JobService, v *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   svc,
		validator: v,
	}
}

// Create handles POST /jobs
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req model.JobCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	job, err := h.service.Create(c.Context(), &req)
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	return response.Created(c, job)
}

// List handles GET /jobs
func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, err := h.service.List(c.Context())
	if err != nil {
		return response.ServiceError(c, err.Error())
	}
	return response.OK(c, jobs)
}

// Get handles GET /jobs/:jobId
func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, err := h.service.Get(c.Context(), c.Params("jobId"))
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			return response.NotFound(c, "Job not found")
		}
		return response.ServiceError(c, err.Error())
	}
	return response.OK(c, job)
}

// Update handles PATCH /jobs/:jobId
func (h *JobHandler) Update(c *fiber.Ctx) error {
	var req model.JobUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	job, err := h.service.Update(c.Context(), c.Params("jobId"), &req)
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			return response.NotFound(c, "Job not found")
		}
		return response.ServiceError(c, err.Error())
	}
	return response.OK(c, job)
}

// UpdateStatus handles PUT /jobs/:jobId/status
func (h *JobHandler) UpdateStatus(c *fiber.Ctx) error {
	var req model.JobStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	job, err := h.service.UpdateStatus(c.Context(), c.Params("jobId"), req.Status)
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			return response.NotFound(c, "Job not found")
		}
		return response.ServiceError(c, err.Error())
	}
	return response.OK(c, job)
}
