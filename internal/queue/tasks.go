// Package queue defines the named work queues and their payloads, and the
// producer side that enqueues tasks with the shared retry policy.
package queue

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Task type names double as queue names so each task kind rides its own
// durable queue.
const (
	TaskPublishTalent = "publish-talent"
	TaskPublishJob    = "publish-job"
	TaskNotifyTalent  = "notify-talent"
)

// PublishTalentPayload announces an approved talent profile.
type PublishTalentPayload struct {
	TalentID string `json:"talentId"`
}

// PublishJobPayload announces a newly published job.
type PublishJobPayload struct {
	JobID string `json:"jobId"`
}

// NotifyTalentPayload tells a talent about a job they match.
type NotifyTalentPayload struct {
	TalentID   string  `json:"talentId"`
	JobID      string  `json:"jobId"`
	MatchScore float64 `json:"matchScore"`
}

func NewPublishTalentTask(talentID string) (*asynq.Task, error) {
	data, err := json.Marshal(PublishTalentPayload{TalentID: talentID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal publish-talent payload: %w", err)
	}
	return asynq.NewTask(TaskPublishTalent, data), nil
}

func NewPublishJobTask(jobID string) (*asynq.Task, error) {
	data, err := json.Marshal(PublishJobPayload{JobID: jobID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal publish-job payload: %w", err)
	}
	return asynq.NewTask(TaskPublishJob, data), nil
}

func NewNotifyTalentTask(talentID, jobID string, matchScore float64) (*asynq.Task, error) {
	data, err := json.Marshal(NotifyTalentPayload{
		TalentID:   talentID,
		JobID:      jobID,
		MatchScore: matchScore,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notify-talent payload: %w", err)
	}
	return asynq.NewTask(TaskNotifyTalent, data), nil
}
