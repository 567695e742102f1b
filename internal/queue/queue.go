package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/studycards/backend/internal/queue/client"
	"github.com/studycards/backend/internal/queue/task"

	"github.com/hibiken/asynq"
)

// EmailQueue enqueues mail tasks for the delivery worker. It satisfies
// service.EmailQueue.
type EmailQueue struct{}

func NewEmailQueue() *EmailQueue {
	return &EmailQueue{}
}

func (q *EmailQueue) EnqueueVerificationEmail(ctx context.Context, email, firstName, code string) error {
	t, err := task.NewSendVerificationEmailTask(email, firstName, code)
	if err != nil {
		return fmt.Errorf("build verification email task failed: %w", err)
	}

	return q.enqueue(ctx, t)
}

func (q *EmailQueue) EnqueuePasswordResetEmail(ctx context.Context, email, firstName, code string) error {
	t, err := task.NewSendPasswordResetEmailTask(email, firstName, code)
	if err != nil {
		return fmt.Errorf("build password reset email task failed: %w", err)
	}

	return q.enqueue(ctx, t)
}

func (q *EmailQueue) enqueue(ctx context.Context, t *asynq.Task) error {
	c := client.GetClient(ctx)
	if c == nil {
		return errors.New("asynq client is not configured")
	}

	if _, err := c.EnqueueContext(ctx, t); err != nil {
		return fmt.Errorf("enqueue task %s failed: %w", t.Type(), err)
	}

	return nil
}
