package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentlink/api/internal/cache"
	"github.com/talentlink/api/internal/model"
	"github.com/talentlink/api/internal/queue"
	"github.com/talentlink/api/internal/repository"
)

// TalentService owns the talent lifecycle. Any mutation of a matchable field
// invalidates the match cache, and an approval enqueues a publish-talent task.
type TalentService struct {
	repo     *repository.TalentRepository
	cache    MatchCacheStore
	producer *queue.Producer
	logger   *zap.Logger
}

func NewTalentService(repo *repository.TalentRepository, matchCache MatchCacheStore, producer *queue.Producer, logger *zap.Logger) *TalentService {
	return &TalentService{
		repo:     repo,
		cache:    matchCache,
		producer: producer,
		logger:   logger,
	}
}

func (s *TalentService) Create(ctx context.Context, req *model.TalentCreateRequest) (*model.Talent, error) {
	now := time.Now()
	talent := &model.Talent{
		ID:              uuid.New().String(),
		FullName:        req.FullName,
		ChatID:          req.ChatID,
		Status:          model.TalentStatusPending,
		ServiceCategory: req.ServiceCategory,
		Skills:          req.Skills,
		ExperienceLevel: req.ExperienceLevel,
		Availability:    req.Availability,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, talent); err != nil {
		return nil, fmt.Errorf("failed to create talent: %w", err)
	}
	return talent, nil
}

func (s *TalentService) Get(ctx context.Context, id string) (*model.Talent, error) {
	talent, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, ErrTalentNotFound
	}
	return talent, err
}

func (s *TalentService) List(ctx context.Context) ([]model.Talent, error) {
	return s.repo.FindAll(ctx)
}

// Update applies a partial update. Every updatable field is matchable, so the
// cache is invalidated whenever anything changed.
func (s *TalentService) Update(ctx context.Context, id string, req *model.TalentUpdateRequest) (*model.Talent, error) {
	talent, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		talent.FullName = *req.FullName
	}
	if req.ServiceCategory != nil {
		talent.ServiceCategory = *req.ServiceCategory
	}
	if req.Skills != nil {
		talent.Skills = req.Skills
	}
	if req.ExperienceLevel != nil {
		talent.ExperienceLevel = *req.ExperienceLevel
	}
	if req.Availability != nil {
		talent.Availability = *req.Availability
	}
	talent.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, talent); err != nil {
		return nil, fmt.Errorf("failed to update talent: %w", err)
	}

	s.cache.Invalidate(ctx, cache.KindTalent, id)
	return talent, nil
}

// UpdateStatus transitions the talent's status. Approval announces the
// profile through the publish-talent queue.
func (s *TalentService) UpdateStatus(ctx context.Context, id string, status model.TalentStatus) (*model.Talent, error) {
	talent, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if talent.Status == status {
		return talent, nil
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrTalentNotFound
		}
		return nil, fmt.Errorf("failed to update talent status: %w", err)
	}
	talent.Status = status

	s.cache.Invalidate(ctx, cache.KindTalent, id)

	if status == model.TalentStatusApproved {
		if err := s.producer.PublishTalent(ctx, id); err != nil {
			// The approval itself succeeded; the announcement is lost but
			// the record is consistent.
			s.logger.Error("failed to enqueue publish-talent task",
				zap.String("talentId", id), zap.Error(err))
		}
	}

	return talent, nil
}
