package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentlink/api/internal/matching"
	"github.com/talentlink/api/internal/model"
	"github.com/talentlink/api/internal/repository"
)

// ApplicationService records talent applications against jobs. The match
// score is computed once at apply time as a convenience snapshot; the
// authoritative score always comes from the match service.
type ApplicationService struct {
	repo    *repository.ApplicationRepository
	jobs    JobStore
	talents TalentStore
	logger  *zap.Logger
}

func NewApplicationService(repo *repository.ApplicationRepository, jobs JobStore, talents TalentStore, logger *zap.Logger) *ApplicationService {
	return &ApplicationService{
		repo:    repo,
		jobs:    jobs,
		talents: talents,
		logger:  logger,
	}
}

func (s *ApplicationService) Create(ctx context.Context, req *model.ApplicationCreateRequest) (*model.Application, error) {
	job, err := s.jobs.FindByID(ctx, req.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}

	talent, err := s.talents.FindByID(ctx, req.TalentID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrTalentNotFound
		}
		return nil, fmt.Errorf("failed to load talent: %w", err)
	}

	exists, err := s.repo.ExistsForJobAndTalent(ctx, req.JobID, req.TalentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing applications: %w", err)
	}
	if exists {
		return nil, ErrDuplicateApplication
	}

	score, _ := matching.Score(job, talent)
	now := time.Now()
	app := &model.Application{
		ID:         uuid.New().String(),
		JobID:      req.JobID,
		TalentID:   req.TalentID,
		Status:     model.ApplicationStatusSubmitted,
		CoverNote:  req.CoverNote,
		MatchScore: score,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return app, nil
}

func (s *ApplicationService) Get(ctx context.Context, id string) (*model.Application, error) {
	app, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	return app, err
}

func (s *ApplicationService) ListByJob(ctx context.Context, jobID string) ([]model.Application, error) {
	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return s.repo.FindByJob(ctx, jobID)
}

func (s *ApplicationService) ListByTalent(ctx context.Context, talentID string) ([]model.Application, error) {
	if _, err := s.talents.FindByID(ctx, talentID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrTalentNotFound
		}
		return nil, err
	}
	return s.repo.FindByTalent(ctx, talentID)
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) (*model.Application, error) {
	app, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if app.Status == status {
		return app, nil
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	app.Status = status
	return app, nil
}
