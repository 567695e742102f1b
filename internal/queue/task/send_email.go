package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	SendVerificationEmailTaskName  = "sendVerificationEmailTask"
	SendPasswordResetEmailTaskName = "sendPasswordResetEmailTask"
	SendEmailQueueName             = "sendEmailQueue"
)

type SendVerificationEmail struct {
	Email            string `json:"email"`
	FirstName        string `json:"first_name"`
	VerificationCode string `json:"verification_code"`
}

type SendPasswordResetEmail struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	ResetCode string `json:"reset_code"`
}

func NewSendVerificationEmailTask(email, firstName, verificationCode string) (*asynq.Task, error) {
	data := SendVerificationEmail{
		Email:            email,
		FirstName:        firstName,
		VerificationCode: verificationCode,
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		SendVerificationEmailTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(SendEmailQueueName),
	), nil
}

func NewSendPasswordResetEmailTask(email, firstName, resetCode string) (*asynq.Task, error) {
	data := SendPasswordResetEmail{
		Email:     email,
		FirstName: firstName,
		ResetCode: resetCode,
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		SendPasswordResetEmailTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(SendEmailQueueName),
	), nil
}
