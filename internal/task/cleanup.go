package task

import (
	"LabSite/internal/mq"
	"context"
	"encoding/json"
)

// CleanupMessage carries store keys whose request-path delete failed.
// Keys are raw store keys, not public URLs.
type CleanupMessage struct {
	Keys    []string `json:"keys"`
	Attempt int      `json:"attempt"`
}

// EnqueueCleanup hands failed deletes to the worker. Deleting a missing key
// is a no-op, so the retry is idempotent.
func EnqueueCleanup(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	msg := CleanupMessage{Keys: keys, Attempt: 0}
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	publisher, err := mq.GetPublisher()
	if err != nil {
		return err
	}
	return publisher.PublishTask(ctx, body)
}
