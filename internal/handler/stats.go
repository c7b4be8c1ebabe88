package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentlink/api/internal/model"
	"github.com/talentlink/api/internal/repository"
	"github.com/talentlink/api/pkg/response"
)

// StatsHandler serves the read-only admin counters.
type StatsHandler struct {
	jobs         *repository.JobRepository
	talents      *repository.TalentRepository
	applications *repository.ApplicationRepository
}

func NewStatsHandler(jobs *repository.JobRepository, talents *repository.TalentRepository, applications *repository.ApplicationRepository) *StatsHandler {
	return &StatsHandler{
		jobs:         jobs,
		talents:      talents,
		applications: applications,
	}
}

type statsResponse struct {
	Jobs         map[model.JobStatus]int64         `json:"jobs"`
	Talents      map[model.TalentStatus]int64      `json:"talents"`
	Applications map[model.ApplicationStatus]int64 `json:"applications"`
}

// Overview handles GET /admin/stats
func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	ctx := c.Context()

	jobCounts, err := h.jobs.CountByStatus(ctx)
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	talentCounts, err := h.talents.CountByStatus(ctx)
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	appCounts, err := h.applications.CountByStatus(ctx)
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, statsResponse{
		Jobs:         jobCounts,
		Talents:      talentCounts,
		Applications: appCounts,
	})
}
