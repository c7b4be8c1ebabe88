package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func testRedisOpt(t *testing.T) asynq.RedisClientOpt {
	t.Helper()

	probe := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
	defer probe.Close()
	if err := probe.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not available: %v", err)
	}
	return asynq.RedisClientOpt{Addr: "localhost:6379", DB: 15}
}

// Three configured attempts means one first run plus two retries, so the
// enqueued task must carry MaxRetry == 2.
func TestProducerAttemptLimit(t *testing.T) {
	opt := testRedisOpt(t)

	client := asynq.NewClient(opt)
	t.Cleanup(func() { client.Close() })
	inspector := asynq.NewInspector(opt)
	t.Cleanup(func() { inspector.Close() })

	p := NewProducer(client, 3, 24*time.Hour, zap.NewNop())

	talentID := fmt.Sprintf("talent-%d", time.Now().UnixNano())
	if err := p.NotifyTalent(context.Background(), talentID, "job-1", 80); err != nil {
		t.Fatal(err)
	}

	pending, err := inspector.ListPendingTasks(TaskNotifyTalent)
	if err != nil {
		t.Fatal(err)
	}

	var info *asynq.TaskInfo
	for _, ti := range pending {
		var payload NotifyTalentPayload
		if err := json.Unmarshal(ti.Payload, &payload); err != nil {
			continue
		}
		if payload.TalentID == talentID {
			info = ti
			break
		}
	}
	if info == nil {
		t.Fatalf("enqueued task not found in queue %q", TaskNotifyTalent)
	}
	t.Cleanup(func() { inspector.DeleteTask(TaskNotifyTalent, info.ID) })

	if info.Queue != TaskNotifyTalent {
		t.Errorf("queue = %q, want %q", info.Queue, TaskNotifyTalent)
	}
	if info.MaxRetry != 2 {
		t.Errorf("MaxRetry = %d, want 2 so the task runs at most three times", info.MaxRetry)
	}
}
