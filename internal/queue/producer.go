package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Producer enqueues tasks with the shared queue options: bounded attempts,
// exponential backoff (applied server-side via RetryDelay) and retention of
// completed tasks for inspection.
type Producer struct {
	client      *asynq.Client
	maxAttempts int
	retention   time.Duration
	logger      *zap.Logger
}

func NewProducer(client *asynq.Client, maxAttempts int, retention time.Duration, logger *zap.Logger) *Producer {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Producer{
		client:      client,
		maxAttempts: maxAttempts,
		retention:   retention,
		logger:      logger,
	}
}

func (p *Producer) PublishTalent(ctx context.Context, talentID string) error {
	task, err := NewPublishTalentTask(talentID)
	if err != nil {
		return err
	}
	return p.enqueue(ctx, task, TaskPublishTalent)
}

func (p *Producer) PublishJob(ctx context.Context, jobID string) error {
	task, err := NewPublishJobTask(jobID)
	if err != nil {
		return err
	}
	return p.enqueue(ctx, task, TaskPublishJob)
}

func (p *Producer) NotifyTalent(ctx context.Context, talentID, jobID string, matchScore float64) error {
	task, err := NewNotifyTalentTask(talentID, jobID, matchScore)
	if err != nil {
		return err
	}
	return p.enqueue(ctx, task, TaskNotifyTalent)
}

func (p *Producer) enqueue(ctx context.Context, task *asynq.Task, queueName string) error {
	info, err := p.client.EnqueueContext(ctx, task,
		asynq.Queue(queueName),
		// asynq counts retries after the first attempt, so maxAttempts total
		// attempts means maxAttempts-1 retries.
		asynq.MaxRetry(p.maxAttempts-1),
		asynq.Retention(p.retention),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s task: %w", queueName, err)
	}

	p.logger.Info("task enqueued",
		zap.String("queue", queueName),
		zap.String("taskId", info.ID))
	return nil
}

// RetryDelay returns the backoff schedule for failed tasks: base, 2*base,
// 4*base and so on, doubling per retry.
func RetryDelay(base time.Duration) asynq.RetryDelayFunc {
	return func(n int, _ error, _ *asynq.Task) time.Duration {
		if n < 0 {
			n = 0
		}
		if n > 16 {
			n = 16
		}
		return base * time.Duration(1<<uint(n))
	}
}
