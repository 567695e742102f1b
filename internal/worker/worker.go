package worker

import (
	"context"

	"github.com/studycards/backend/internal/config"
	emailProvider "github.com/studycards/backend/pkg/email"
)

type Workers struct {
	EmailSender EmailSender
}

type Deps struct {
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

type EmailSender interface {
	SendVerificationEmail(ctx context.Context, email, firstName, verificationCode string) error
	SendPasswordResetEmail(ctx context.Context, email, firstName, resetCode string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		EmailSender: newEmailSender(deps.EmailProvider, deps.Config.Email),
	}
}
