package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/talentlink/api/internal/cache"
	"github.com/talentlink/api/internal/matching"
	"github.com/talentlink/api/internal/model"
	"github.com/talentlink/api/internal/repository"
)

// JobStore is the slice of the record store the match service reads jobs from.
type JobStore interface {
	FindByID(ctx context.Context, id string) (*model.Job, error)
	FindAll(ctx context.Context) ([]model.Job, error)
}

// TalentStore is the slice of the record store the match service reads talents from.
type TalentStore interface {
	FindByID(ctx context.Context, id string) (*model.Talent, error)
	FindAll(ctx context.Context) ([]model.Talent, error)
}

// MatchCacheStore is the cache-aside layer for computed match results.
type MatchCacheStore interface {
	Lookup(ctx context.Context, key string) ([]model.MatchResult, cache.Outcome)
	Store(ctx context.Context, key string, results []model.MatchResult)
	Invalidate(ctx context.Context, kind cache.SubjectKind, id string)
}

// MatchService answers match queries cache-first, recomputing over the full
// candidate set on a miss. Results below the score cutoff are never returned.
type MatchService struct {
	jobs    JobStore
	talents TalentStore
	cache   MatchCacheStore
	logger  *zap.Logger
}

func NewMatchService(jobs JobStore, talents TalentStore, matchCache MatchCacheStore, logger *zap.Logger) *MatchService {
	return &MatchService{
		jobs:    jobs,
		talents: talents,
		cache:   matchCache,
		logger:  logger,
	}
}

// MatchesForJob ranks all talents against the job. The subject must exist;
// candidates are not pre-filtered by status.
func (s *MatchService) MatchesForJob(ctx context.Context, jobID string) ([]model.MatchResult, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}

	key := cache.Key(cache.KindJob, jobID)
	if cached, outcome := s.cache.Lookup(ctx, key); outcome == cache.Hit {
		return cached, nil
	}

	talents, err := s.talents.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate talents: %w", err)
	}

	results := make([]model.MatchResult, 0, len(talents))
	for i := range talents {
		total, breakdown := matching.Score(job, &talents[i])
		if total < matching.MinScore {
			continue
		}
		results = append(results, model.MatchResult{
			SubjectID: talents[i].ID,
			Score:     total,
			Breakdown: breakdown,
		})
	}

	sortResults(results)
	s.cache.Store(ctx, key, results)
	return results, nil
}

// MatchesForTalent ranks all jobs against the talent.
func (s *MatchService) MatchesForTalent(ctx context.Context, talentID string) ([]model.MatchResult, error) {
	talent, err := s.talents.FindByID(ctx, talentID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrTalentNotFound
		}
		return nil, fmt.Errorf("failed to load talent: %w", err)
	}

	key := cache.Key(cache.KindTalent, talentID)
	if cached, outcome := s.cache.Lookup(ctx, key); outcome == cache.Hit {
		return cached, nil
	}

	jobs, err := s.jobs.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate jobs: %w", err)
	}

	results := make([]model.MatchResult, 0, len(jobs))
	for i := range jobs {
		total, breakdown := matching.Score(&jobs[i], talent)
		if total < matching.MinScore {
			continue
		}
		results = append(results, model.MatchResult{
			SubjectID: jobs[i].ID,
			Score:     total,
			Breakdown: breakdown,
		})
	}

	sortResults(results)
	s.cache.Store(ctx, key, results)
	return results, nil
}

// sortResults orders by score descending; equal scores break ties by
// ascending subject id so repeated queries return a stable order.
func sortResults(results []model.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].SubjectID < results[j].SubjectID
	})
}
