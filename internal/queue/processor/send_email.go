package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/studycards/backend/internal/queue/task"
	"github.com/studycards/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type sendVerificationEmailProcessor struct {
	workers *worker.Workers
}

func NewSendVerificationEmailProcessor(workers *worker.Workers) *sendVerificationEmailProcessor {
	return &sendVerificationEmailProcessor{
		workers: workers,
	}
}

func (p *sendVerificationEmailProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.SendVerificationEmail
	if err := json.Unmarshal(t.Payload(), &data); err != nil {
		return fmt.Errorf("process verification email task json unmarshal failed: %w", err)
	}

	if err := p.workers.EmailSender.SendVerificationEmail(ctx, data.Email, data.FirstName, data.VerificationCode); err != nil {
		return fmt.Errorf("send verification email failed: %w", err)
	}

	return nil
}

type sendPasswordResetEmailProcessor struct {
	workers *worker.Workers
}

func NewSendPasswordResetEmailProcessor(workers *worker.Workers) *sendPasswordResetEmailProcessor {
	return &sendPasswordResetEmailProcessor{
		workers: workers,
	}
}

func (p *sendPasswordResetEmailProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.SendPasswordResetEmail
	if err := json.Unmarshal(t.Payload(), &data); err != nil {
		return fmt.Errorf("process password reset email task json unmarshal failed: %w", err)
	}

	if err := p.workers.EmailSender.SendPasswordResetEmail(ctx, data.Email, data.FirstName, data.ResetCode); err != nil {
		return fmt.Errorf("send password reset email failed: %w", err)
	}

	return nil
}
