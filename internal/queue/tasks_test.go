package queue

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNotifyTalentPayloadWireFormat(t *testing.T) {
	task, err := NewNotifyTalentTask("t-123", "j-456", 72.5)
	if err != nil {
		t.Fatal(err)
	}
	if task.Type() != "notify-talent" {
		t.Errorf("task type = %q, want notify-talent", task.Type())
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(task.Payload(), &raw); err != nil {
		t.Fatal(err)
	}
	if raw["talentId"] != "t-123" || raw["jobId"] != "j-456" || raw["matchScore"] != 72.5 {
		t.Errorf("payload = %v, want exact talentId/jobId/matchScore keys", raw)
	}
}

func TestPublishPayloadWireFormat(t *testing.T) {
	talentTask, err := NewPublishTalentTask("t-123")
	if err != nil {
		t.Fatal(err)
	}
	if talentTask.Type() != "publish-talent" {
		t.Errorf("task type = %q, want publish-talent", talentTask.Type())
	}
	if string(talentTask.Payload()) != `{"talentId":"t-123"}` {
		t.Errorf("payload = %s", talentTask.Payload())
	}

	jobTask, err := NewPublishJobTask("j-456")
	if err != nil {
		t.Fatal(err)
	}
	if jobTask.Type() != "publish-job" {
		t.Errorf("task type = %q, want publish-job", jobTask.Type())
	}
	if string(jobTask.Payload()) != `{"jobId":"j-456"}` {
		t.Errorf("payload = %s", jobTask.Payload())
	}
}

func TestRetryDelayDoubles(t *testing.T) {
	delay := RetryDelay(2 * time.Second)

	cases := []struct {
		retried int
		want    time.Duration
	}{
		{0, 2 * time.Second},
		{1, 4 * time.Second},
		{2, 8 * time.Second},
		{3, 16 * time.Second},
	}
	for _, tc := range cases {
		if got := delay(tc.retried, nil, nil); got != tc.want {
			t.Errorf("delay(retried=%d) = %v, want %v", tc.retried, got, tc.want)
		}
	}

	// Large retry counts must not overflow into negative durations.
	if got := delay(1000, nil, nil); got <= 0 {
		t.Errorf("delay(1000) = %v, want positive", got)
	}
}
