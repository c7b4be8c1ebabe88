// Package worker contains the queue consumers. Each worker fetches the
// referenced entity, formats an outbound message and hands it to the
// messenger. A returned error makes the queue engine retry with backoff
// until the attempt limit is reached.
package worker

import (
	"context"

	"github.com/talentlink/api/internal/model"
)

// TalentFetcher reads a single talent from the record store.
type TalentFetcher interface {
	FindByID(ctx context.Context, id string) (*model.Talent, error)
}

// JobFetcher reads a single job from the record store.
type JobFetcher interface {
	FindByID(ctx context.Context, id string) (*model.Job, error)
}

// Messenger delivers a formatted text payload to a destination.
type Messenger interface {
	Send(ctx context.Context, destination, text string) error
}

// Limiter guards notify deliveries per recipient.
type Limiter interface {
	TryAcquire(ctx context.Context, talentID string) bool
}
