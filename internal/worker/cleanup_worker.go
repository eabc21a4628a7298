package worker

import (
	"LabSite/config"
	"LabSite/internal/mq"
	"LabSite/internal/storage"
	"LabSite/internal/task"
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/time/rate"
)

type dlqMessage struct {
	Keys     []string  `json:"keys"`
	Attempt  int       `json:"attempt"`
	Error    string    `json:"error"`
	FailedAt time.Time `json:"failed_at"`
}

// RunCleanupWorker consumes cleanup messages and deletes orphaned objects
// from the store, rate-limited so reconciliation never competes with
// request traffic.
func RunCleanupWorker(ctx context.Context) error {
	client, err := mq.Dial()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.DeclareTopology(); err != nil {
		return err
	}
	if err := client.Channel.Qos(1, 0, false); err != nil {
		return err
	}

	deliveries, err := client.Channel.Consume(
		mq.QueueTasks,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	concurrency := config.AppConfig.CleanupWorkerConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	sem := make(chan struct{}, concurrency)

	burst := config.AppConfig.CleanupBurst
	if burst <= 0 {
		burst = 1
	}
	var limiter *rate.Limiter
	if config.AppConfig.CleanupRate <= 0 {
		limiter = rate.NewLimiter(rate.Inf, burst)
	} else {
		limiter = rate.NewLimiter(rate.Limit(config.AppConfig.CleanupRate), burst)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return errors.New("cleanup worker: delivery channel closed")
			}
			sem <- struct{}{}
			go func(d amqp.Delivery) {
				defer func() { <-sem }()
				handleCleanupMessage(ctx, client, limiter, d)
			}(delivery)
		}
	}
}

func handleCleanupMessage(ctx context.Context, client *mq.Client, limiter *rate.Limiter, delivery amqp.Delivery) {
	var msg task.CleanupMessage
	if err := json.Unmarshal(delivery.Body, &msg); err != nil {
		log.Printf("cleanup worker: invalid message: %v", err)
		_ = delivery.Ack(false)
		return
	}

	remaining, err := removeKeys(ctx, limiter, msg.Keys)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			_ = delivery.Nack(false, true)
			return
		}
		msg.Keys = remaining
		if err := scheduleRetry(ctx, client, msg, err); err != nil {
			log.Printf("cleanup worker: retry schedule failed: %v", err)
			_ = delivery.Nack(false, true)
			return
		}
	}

	_ = delivery.Ack(false)
}

// removeKeys deletes each key, returning the ones still undeleted and the
// last error. Missing keys count as deleted.
func removeKeys(ctx context.Context, limiter *rate.Limiter, keys []string) ([]string, error) {
	bucket := config.AppConfig.BucketName
	remaining := make([]string, 0)
	var lastErr error
	for i, key := range keys {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return append(remaining, keys[i:]...), err
			}
		}
		if err := storage.Default.RemoveObject(ctx, bucket, key); err != nil {
			log.Printf("cleanup worker: remove %s failed: %v", key, err)
			remaining = append(remaining, key)
			lastErr = err
			continue
		}
		log.Printf("cleanup worker: removed %s", key)
	}
	return remaining, lastErr
}

func scheduleRetry(ctx context.Context, client *mq.Client, msg task.CleanupMessage, procErr error) error {
	maxRetry := config.AppConfig.CleanupRetryMax
	if maxRetry < 0 {
		maxRetry = 0
	}
	nextAttempt := msg.Attempt + 1
	if maxRetry == 0 || nextAttempt > maxRetry {
		return publishDLQ(ctx, client, msg, procErr)
	}

	delay := pickRetryDelay(nextAttempt, config.AppConfig.CleanupRetryDelays)
	msg.Attempt = nextAttempt
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return client.PublishRetry(ctx, body, delay)
}

func publishDLQ(ctx context.Context, client *mq.Client, msg task.CleanupMessage, procErr error) error {
	dlq := dlqMessage{
		Keys:     msg.Keys,
		Attempt:  msg.Attempt,
		Error:    procErr.Error(),
		FailedAt: time.Now(),
	}
	body, err := json.Marshal(dlq)
	if err != nil {
		return err
	}
	return client.PublishDLQ(ctx, body)
}

func pickRetryDelay(attempt int, delays []time.Duration) time.Duration {
	if len(delays) == 0 {
		return time.Minute
	}
	idx := attempt - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(delays) {
		idx = len(delays) - 1
	}
	return delays[idx]
}
