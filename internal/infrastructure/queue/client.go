package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// Client wraps the asynq client used by the API process to hand tasks
// off to the worker.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, password string, db int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: password,
			DB:       db,
		}),
	}
}

// Enqueue marshals the payload and submits the task.
// The context is accepted for symmetry with the rest of the codebase;
// asynq enqueues synchronously against Redis.
func (c *Client) Enqueue(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}

	task := asynq.NewTask(taskType, data)
	info, err := c.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}

	log.Info().
		Str("task_id", info.ID).
		Str("type", taskType).
		Str("queue", info.Queue).
		Msg("Task enqueued")

	return nil
}

// Ping verifies the Redis connection behind the client.
func (c *Client) Ping() error {
	return c.client.Ping()
}

func (c *Client) Close() error {
	return c.client.Close()
}
