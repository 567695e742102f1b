package worker

import (
	"context"
	"fmt"

	"github.com/studycards/backend/internal/config"
	emailProvider "github.com/studycards/backend/pkg/email"
	"github.com/studycards/backend/pkg/logger"

	"go.uber.org/zap"
)

type emailSender struct {
	sender emailProvider.Sender
	config config.EmailConfig
}

func newEmailSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
) *emailSender {
	return &emailSender{
		sender: sender,
		config: config,
	}
}

type verificationEmailInput struct {
	FirstName        string
	VerificationCode string
}

type passwordResetEmailInput struct {
	FirstName string
	ResetCode string
}

func (s *emailSender) SendVerificationEmail(ctx context.Context, email, firstName, verificationCode string) error {
	if !s.config.Enabled {
		// codes stay visible in logs while delivery is switched off
		logger.Info("email delivery disabled, skipping verification email",
			zap.String("email", email),
			zap.String("code", verificationCode))
		return nil
	}

	subject := "Verify Your Account"

	templateInput := verificationEmailInput{firstName, verificationCode}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: email}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.Verification, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}

func (s *emailSender) SendPasswordResetEmail(ctx context.Context, email, firstName, resetCode string) error {
	if !s.config.Enabled {
		logger.Info("email delivery disabled, skipping password reset email",
			zap.String("email", email),
			zap.String("code", resetCode))
		return nil
	}

	subject := "Your Password Reset Code"

	templateInput := passwordResetEmailInput{firstName, resetCode}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: email}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.PasswordReset, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
