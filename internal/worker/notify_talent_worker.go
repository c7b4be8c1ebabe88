package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/talentlink/api/internal/queue"
)

// NotifyOutcome records how a notify-talent task ended. A rate-limited task
// is completed-but-skipped, never retried.
type NotifyOutcome struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
	Skipped bool   `json:"skipped,omitempty"`
}

// NotifyTalentWorker delivers match notifications to talents, subject to the
// per-recipient rate limit.
type NotifyTalentWorker struct {
	talents   TalentFetcher
	jobs      JobFetcher
	limiter   Limiter
	messenger Messenger
	logger    *zap.Logger
}

func NewNotifyTalentWorker(talents TalentFetcher, jobs JobFetcher, limiter Limiter, messenger Messenger, logger *zap.Logger) *NotifyTalentWorker {
	return &NotifyTalentWorker{
		talents:   talents,
		jobs:      jobs,
		limiter:   limiter,
		messenger: messenger,
		logger:    logger,
	}
}

// ProcessTask handles a notify-talent task. Returning nil on a rate-limit
// rejection marks the task completed so the queue engine does not retry a
// deliberate skip.
func (w *NotifyTalentWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload queue.NotifyTalentPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal notify-talent payload: %w", err)
	}

	outcome := w.process(ctx, &payload)
	if outcome.Skipped {
		w.logger.Info("notification skipped",
			zap.String("talentId", payload.TalentID),
			zap.String("jobId", payload.JobID),
			zap.String("reason", outcome.Reason))
		return nil
	}
	if !outcome.Success {
		return fmt.Errorf("notify-talent failed: %s", outcome.Reason)
	}

	w.logger.Info("match notification delivered",
		zap.String("talentId", payload.TalentID),
		zap.String("jobId", payload.JobID),
		zap.Float64("matchScore", payload.MatchScore))
	return nil
}

func (w *NotifyTalentWorker) process(ctx context.Context, payload *queue.NotifyTalentPayload) NotifyOutcome {
	talent, err := w.talents.FindByID(ctx, payload.TalentID)
	if err != nil {
		return NotifyOutcome{Success: false, Reason: fmt.Sprintf("failed to load talent: %v", err)}
	}

	job, err := w.jobs.FindByID(ctx, payload.JobID)
	if err != nil {
		return NotifyOutcome{Success: false, Reason: fmt.Sprintf("failed to load job: %v", err)}
	}

	if talent.ChatID == "" {
		return NotifyOutcome{Success: false, Reason: "no chat destination", Skipped: true}
	}

	// Acquire the window slot only once delivery is actually possible. A task
	// that fails on a fetch and gets retried must not burn a slot per attempt.
	if !w.limiter.TryAcquire(ctx, payload.TalentID) {
		return NotifyOutcome{Success: false, Reason: "rate_limit_exceeded", Skipped: true}
	}

	text := fmt.Sprintf(
		"You're a %.0f%% match for %q (%s, %s). Open the app to apply.",
		payload.MatchScore, job.Title, job.ServiceCategory, job.EngagementType,
	)

	if err := w.messenger.Send(ctx, talent.ChatID, text); err != nil {
		return NotifyOutcome{Success: false, Reason: fmt.Sprintf("delivery failed: %v", err)}
	}

	return NotifyOutcome{Success: true}
}
