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

// PublishTalentWorker tells a talent their profile went live.
type PublishTalentWorker struct {
	talents   TalentFetcher
	messenger Messenger
	logger    *zap.Logger
}

func NewPublishTalentWorker(talents TalentFetcher, messenger Messenger, logger *zap.Logger) *PublishTalentWorker {
	return &PublishTalentWorker{
		talents:   talents,
		messenger: messenger,
		logger:    logger,
	}
}

// ProcessTask handles a publish-talent task. A missing talent is an ordinary
// processing error: the queue engine retries and eventually archives it.
func (w *PublishTalentWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload queue.PublishTalentPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal publish-talent payload: %w", err)
	}

	talent, err := w.talents.FindByID(ctx, payload.TalentID)
	if err != nil {
		return fmt.Errorf("failed to load talent %s: %w", payload.TalentID, err)
	}

	if talent.ChatID == "" {
		w.logger.Info("talent has no chat destination, nothing to deliver",
			zap.String("talentId", talent.ID))
		return nil
	}

	text := fmt.Sprintf(
		"Your profile is live! %s (%s, %s) is now visible to employers. Skills: %s.",
		talent.FullName, talent.ExperienceLevel, talent.ServiceCategory,
		strings.Join(talent.Skills, ", "),
	)

	if err := w.messenger.Send(ctx, talent.ChatID, text); err != nil {
		return fmt.Errorf("failed to deliver publish-talent message: %w", err)
	}

	w.logger.Info("talent publication announced", zap.String("talentId", talent.ID))
	return nil
}
