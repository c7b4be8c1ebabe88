package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/talentlink/api/internal/service"
	"github.com/talentlink/api/pkg/response"
)

type MatchingHandler struct {
	service *service.MatchService
}

func NewMatchingHandler(svc *service.MatchService) *MatchingHandler {
	return &MatchingHandler{service: svc}
}

// TalentsForJob handles GET /matching/jobs/:jobId/talents
func (h *MatchingHandler) TalentsForJob(c *fiber.Ctx) error {
	jobID := c.Params("jobId")
	if jobID == "" {
		return response.ValidationError(c, "Job ID is required", nil)
	}

	results, err := h.service.MatchesForJob(c.Context(), jobID)
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			return response.NotFound(c, "Job not found")
		}
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, results)
}

// JobsForTalent handles GET /matching/talents/:talentId/jobs
func (h *MatchingHandler) JobsForTalent(c *fiber.Ctx) error {
	talentID := c.Params("talentId")
	if talentID == "" {
		return response.ValidationError(c, "Talent ID is required", nil)
	}

	results, err := h.service.MatchesForTalent(c.Context(), talentID)
	if err != nil {
		if errors.Is(err, service.ErrTalentNotFound) {
			return response.NotFound(c, "Talent not found")
		}
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, results)
}
