package service

import "errors"

var (
	ErrLoginTaken              = errors.New("login already taken")
	ErrEmailTaken              = errors.New("email already taken")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrInvalidCredentials      = errors.New("invalid login or password")
	ErrAccountNotVerified      = errors.New("account not verified")
	ErrEmailNotFound           = errors.New("no account for email")
	ErrInvalidResetCode        = errors.New("invalid reset code")
	ErrResetCodeExpired        = errors.New("reset code expired")

	ErrSessionNotFound     = errors.New("refresh session not found")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	ErrSetNotFound = errors.New("flashcard set not found")
)
