package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/talentlink/api/internal/model"
	"github.com/talentlink/api/internal/service"
	"github.com/talentlink/api/pkg/response"
)

type TalentHandler struct {
	service   *service.TalentService
	validator *validator.Validate
}

func NewTalentHandler(svc *service.TalentService, v *validator.Validate) *TalentHandler {
	return &TalentHandler{
		service:   svc,
		validator: v,
	}
}

// Create handles POST /talents
func (h *TalentHandler) Create(c *fiber.Ctx) error {
	var req model.TalentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	talent, err := h.service.Create(c.Context(), &req)
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	return response.Created(c, talent)
}

// List handles GET /talents
func (h *TalentHandler) List(c *fiber.Ctx) error {
	talents, err := h.service.List(c.Context())
	if err != nil {
		return response.ServiceError(c, err.Error())
	}
	return response.OK(c, talents)
}

// Get handles GET /talents/:talentId
func (h *TalentHandler) Get(c *fiber.Ctx) error {
	talent, err := h.service.Get(c.Context(), c.Params("talentId"))
	if err != nil {
		if errors.Is(err, service.ErrTalentNotFound) {
			return response.NotFound(c, "Talent not found")
		}
		return response.ServiceError(c, err.Error())
	}
	return response.OK(c, talent)
}

// Update handles PATCH /talents/:talentId
func (h *TalentHandler) Update(c *fiber.Ctx) error {
	var req model.TalentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	talent, err := h.service.Update(c.Context(), c.Params("talentId"), &req)
	if err != nil {
		if errors.Is(err, service.ErrTalentNotFound) {
			return response.NotFound(c, "Talent not found")
		}
		return response.ServiceError(c, err.Error())
	}
	return response.OK(c, talent)
}

// UpdateStatus handles PUT /talents/:talentId/status
func (h *TalentHandler) UpdateStatus(c *fiber.Ctx) error {
	var req model.TalentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	talent, err := h.service.UpdateStatus(c.Context(), c.Params("talentId"), req.Status)
	if err != nil {
		if errors.Is(err, service.ErrTalentNotFound) {
			return response.NotFound(c, "Talent not found")
		}
		return response.ServiceError(c, err.Error())
	}
	return response.OK(c, talent)
}
