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

// JobService owns the job lifecycle. Matchable-field mutations invalidate the
// match cache; publishing a job enqueues a publish-job task.
type JobService struct {
	repo     *repository.JobRepository
	cache    MatchCacheStore
	producer *queue.Producer
	logger   *zap.Logger
}

func NewJobService(repo *repository.JobRepository, matchCache MatchCacheStore, producer *queue.Producer, logger *zap.Logger) *JobService {
	return &JobService{
		repo:     repo,
		cache:    matchCache,
		producer: producer,
		logger:   logger,
	}
}

func (s *JobService) Create(ctx context.Context, req *model.JobCreateRequest) (*model.Job, error) {
	now := time.Now()
	job := &model.Job{
		ID:              uuid.New().String(),
		Title:           req.Title,
		Description:     req.Description,
		Status:          model.JobStatusDraft,
		ServiceCategory: req.ServiceCategory,
		RequiredSkills:  req.RequiredSkills,
		ExperienceLevel: req.ExperienceLevel,
		EngagementType:  req.EngagementType,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*model.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	return job, err
}

func (s *JobService) List(ctx context.Context) ([]model.Job, error) {
	return s.repo.FindAll(ctx)
}

func (s *JobService) Update(ctx context.Context, id string, req *model.JobUpdateRequest) (*model.Job, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.ServiceCategory != nil {
		job.ServiceCategory = *req.ServiceCategory
	}
	if req.RequiredSkills != nil {
		job.RequiredSkills = req.RequiredSkills
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = *req.ExperienceLevel
	}
	if req.EngagementType != nil {
		job.EngagementType = *req.EngagementType
	}
	job.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	s.cache.Invalidate(ctx, cache.KindJob, id)
	return job, nil
}

// UpdateStatus transitions the job's status. Publication announces the job
// through the publish-job queue.
func (s *JobService) UpdateStatus(ctx context.Context, id string, status model.JobStatus) (*model.Job, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if job.Status == status {
		return job, nil
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}
	job.Status = status

	s.cache.Invalidate(ctx, cache.KindJob, id)

	if status == model.JobStatusPublished {
		if err := s.producer.PublishJob(ctx, id); err != nil {
			s.logger.Error("failed to enqueue publish-job task",
				zap.String("jobId", id), zap.Error(err))
		}
	}

	return job, nil
}
