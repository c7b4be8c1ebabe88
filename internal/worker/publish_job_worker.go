package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/talentlink/api/internal/queue"
)

// PublishJobWorker announces a freshly published job on the broadcast channel.
type PublishJobWorker struct {
	jobs      JobFetcher
	messenger Messenger
	channelID string
	logger    *zap.Logger
}

func NewPublishJobWorker(jobs JobFetcher, messenger Messenger, channelID string, logger *zap.Logger) *PublishJobWorker {
	return &PublishJobWorker{
		jobs:      jobs,
		messenger: messenger,
		channelID: channelID,
		logger:    logger,
	}
}

// ProcessTask handles a publish-job task.
func (w *PublishJobWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload queue.PublishJobPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal publish-job payload: %w", err)
	}

	job, err := w.jobs.FindByID(ctx, payload.JobID)
	if err != nil {
		return fmt.Errorf("failed to load job %s: %w", payload.JobID, err)
	}

	text := fmt.Sprintf(
		"New opening: %s (%s, %s, %s). Required skills: %s.",
		job.Title, job.ServiceCategory, job.ExperienceLevel, job.EngagementType,
		strings.Join(job.RequiredSkills, ", "),
	)

	if err := w.messenger.Send(ctx, w.channelID, text); err != nil {
		return fmt.Errorf("failed to deliver publish-job message: %w", err)
	}

	w.logger.Info("job publication announced", zap.String("jobId", job.ID))
	return nil
}
