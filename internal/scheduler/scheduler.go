// Package scheduler wires up the cron job that periodically turns fresh
// matches on published jobs into notify-talent tasks.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/talentlink/api/internal/model"
	"github.com/talentlink/api/internal/queue"
	"github.com/talentlink/api/internal/service"
)

// PublishedJobLister enumerates jobs in a given status.
type PublishedJobLister interface {
	FindByStatus(ctx context.Context, status model.JobStatus) ([]model.Job, error)
}

// MatchDigest scans published jobs on a cron schedule and enqueues a
// notify-talent task per qualifying match. The per-recipient rate limit in
// the notify worker keeps repeated digests from flooding anyone.
type MatchDigest struct {
	cron     *cron.Cron
	jobs     PublishedJobLister
	matches  *service.MatchService
	producer *queue.Producer
	spec     string
	topN     int
	logger   *zap.Logger
}

// New creates a MatchDigest firing on the given cron spec (e.g. "@every 6h"),
// enqueueing at most topN notifications per job per run.
func New(jobs PublishedJobLister, matches *service.MatchService, producer *queue.Producer, spec string, topN int, logger *zap.Logger) *MatchDigest {
	return &MatchDigest{
		cron:     cron.New(),
		jobs:     jobs,
		matches:  matches,
		producer: producer,
		spec:     spec,
		topN:     topN,
		logger:   logger,
	}
}

// Start registers the digest job and starts the scheduler.
func (d *MatchDigest) Start(ctx context.Context) error {
	_, err := d.cron.AddFunc(d.spec, func() {
		d.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	d.cron.Start()
	d.logger.Info("match digest scheduler started", zap.String("spec", d.spec))
	return nil
}

// Stop gracefully shuts down the scheduler.
func (d *MatchDigest) Stop() {
	d.cron.Stop()
	d.logger.Info("match digest scheduler stopped")
}

func (d *MatchDigest) run(ctx context.Context) {
	jobs, err := d.jobs.FindByStatus(ctx, model.JobStatusPublished)
	if err != nil {
		d.logger.Error("match digest: failed to list published jobs", zap.Error(err))
		return
	}

	var enqueued int
	for i := range jobs {
		results, err := d.matches.MatchesForJob(ctx, jobs[i].ID)
		if err != nil {
			d.logger.Error("match digest: match query failed",
				zap.String("jobId", jobs[i].ID), zap.Error(err))
			continue
		}

		limit := len(results)
		if d.topN > 0 && limit > d.topN {
			limit = d.topN
		}

		for _, r := range results[:limit] {
			if err := d.producer.NotifyTalent(ctx, r.SubjectID, jobs[i].ID, r.Score); err != nil {
				d.logger.Error("match digest: failed to enqueue notification",
					zap.String("jobId", jobs[i].ID),
					zap.String("talentId", r.SubjectID),
					zap.Error(err))
				continue
			}
			enqueued++
		}
	}

	d.logger.Info("match digest run finished",
		zap.Int("jobs", len(jobs)), zap.Int("notificationsEnqueued", enqueued))
}
