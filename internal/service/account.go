package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/studycards/backend/internal/config"
	"github.com/studycards/backend/internal/domain"
	"github.com/studycards/backend/internal/repository"
	"github.com/studycards/backend/pkg/auth"
	"github.com/studycards/backend/pkg/hash"
	"github.com/studycards/backend/pkg/logger"
	"github.com/studycards/backend/pkg/otp"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// enqueueTimeout bounds the mail hand-off independently of the request
// context so a slow broker never inflates or aborts an account mutation.
const enqueueTimeout = 2 * time.Second

type accountService struct {
	accountRepository repository.Accounts
	sessionRepository repository.RefreshSessions
	hasher            hash.PasswordHasher
	tokenManager      auth.TokenManager
	codeGenerator     otp.Generator
	emailQueue        EmailQueue
	authConfig        config.AuthConfig
	now               func() time.Time
}

func newAccountService(accountRepository repository.Accounts,
	sessionRepository repository.RefreshSessions,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
	codeGenerator otp.Generator,
	emailQueue EmailQueue,
	authConfig config.AuthConfig,
) *accountService {
	return &accountService{
		accountRepository: accountRepository,
		sessionRepository: sessionRepository,
		hasher:            hasher,
		tokenManager:      tokenManager,
		codeGenerator:     codeGenerator,
		emailQueue:        emailQueue,
		authConfig:        authConfig,
		now:               time.Now,
	}
}

type SignUpInput struct {
	FirstName string
	LastName  string
	Login     string
	Password  string
	Email     string
}

type SignInInput struct {
	Login     string
	Password  string
	UserAgent string
	IP        string
}

type Tokens struct {
	AccessToken  string
	AccessTTL    time.Duration
	RefreshToken string
	RefreshTTL   time.Duration
}

type AuthResult struct {
	UserID    int64
	FirstName string
	LastName  string
	Tokens    Tokens
}

// SignUp creates an unverified account and hands the verification mail to
// the queue. The pre-flight duplicate check gives the friendly error; the
// unique indexes are the actual enforcement under concurrent signups.
func (s *accountService) SignUp(ctx context.Context, input SignUpInput) error {
	existing, err := s.accountRepository.GetByLoginOrEmail(ctx, input.Login, input.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("check existing account failed: %w", err)
	}
	if existing != nil {
		// login conflict wins even when both fields match
		if existing.Login == input.Login {
			return ErrLoginTaken
		}
		return ErrEmailTaken
	}

	code, err := s.codeGenerator.RandomCode(s.authConfig.VerificationCodeLength)
	if err != nil {
		return fmt.Errorf("generate verification code failed: %w", err)
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	// max-plus-one userId assignment is racy; retry once when the unique
	// index rejects a concurrently taken id
	const attempts = 2
	for attempt := 1; ; attempt++ {
		userID, err := s.accountRepository.NextUserID(ctx)
		if err != nil {
			return fmt.Errorf("next user id failed: %w", err)
		}

		account := &domain.Account{
			UserID:           userID,
			Login:            input.Login,
			Email:            input.Email,
			PasswordHash:     passwordHash,
			FirstName:        input.FirstName,
			LastName:         input.LastName,
			Verified:         false,
			VerificationCode: code,
		}

		err = s.accountRepository.Create(ctx, account)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicateEntry) {
			return fmt.Errorf("create account failed: %w", err)
		}

		if _, lookupErr := s.accountRepository.GetByLogin(ctx, input.Login); lookupErr == nil {
			return ErrLoginTaken
		}
		if _, lookupErr := s.accountRepository.GetByEmail(ctx, input.Email); lookupErr == nil {
			return ErrEmailTaken
		}
		if attempt == attempts {
			return fmt.Errorf("create account failed: %w", err)
		}
	}

	s.enqueueEmail(ctx, "verification", input.Email, func(ctx context.Context) error {
		return s.emailQueue.EnqueueVerificationEmail(ctx, input.Email, input.FirstName, code)
	})

	return nil
}

// Verify confirms control of the signup address. Login and code are matched
// with exact string equality; a missing login and a wrong code are not
// distinguished.
func (s *accountService) Verify(ctx context.Context, login, verificationCode string) error {
	_, err := s.accountRepository.GetByLoginAndCode(ctx, login, verificationCode)
	if errors.Is(err, domain.ErrNotFound) {
		return ErrInvalidVerificationCode
	}
	if err != nil {
		return fmt.Errorf("find account by code failed: %w", err)
	}

	if err := s.accountRepository.MarkVerified(ctx, login); err != nil {
		return fmt.Errorf("mark account verified failed: %w", err)
	}

	return nil
}

// SignIn authenticates and opens a refresh session. The unverified branch is
// only reachable after a correct login/password pair.
func (s *accountService) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	account, err := s.accountRepository.GetByLogin(ctx, input.Login)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find account by login failed: %w", err)
	}

	if err := s.hasher.Verify(account.PasswordHash, input.Password); err != nil {
		if errors.Is(err, hash.ErrMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("verify password failed: %w", err)
	}

	if !account.Verified {
		return nil, ErrAccountNotVerified
	}

	tokens, err := s.createSession(ctx, account.UserID, input.UserAgent, input.IP)
	if err != nil {
		return nil, fmt.Errorf("create session failed: %w", err)
	}

	return &AuthResult{
		UserID:    account.UserID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Tokens:    *tokens,
	}, nil
}

// RefreshTokens rotates a refresh session: the presented token is deleted
// and a fresh access/refresh pair is issued.
func (s *accountService) RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*AuthResult, error) {
	if _, err := s.tokenManager.ValidateRefreshToken(refreshToken); err != nil {
		return nil, ErrSessionNotFound
	}

	session, err := s.sessionRepository.GetByToken(ctx, refreshToken)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find refresh session failed: %w", err)
	}

	if !session.ExpiresIn.After(s.now()) {
		return nil, ErrRefreshTokenExpired
	}

	if err := s.sessionRepository.DeleteByToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("delete refresh session failed: %w", err)
	}

	tokens, err := s.createSession(ctx, session.UserID, userAgent, ip)
	if err != nil {
		return nil, fmt.Errorf("create session failed: %w", err)
	}

	return &AuthResult{UserID: session.UserID, Tokens: *tokens}, nil
}

// RequestPasswordReset opens (or replaces) a reset cycle for the account
// behind email. Deliverability is never surfaced to the caller.
func (s *accountService) RequestPasswordReset(ctx context.Context, email string) error {
	account, err := s.accountRepository.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return ErrEmailNotFound
	}
	if err != nil {
		return fmt.Errorf("find account by email failed: %w", err)
	}

	code, err := s.codeGenerator.RandomCode(s.authConfig.VerificationCodeLength)
	if err != nil {
		return fmt.Errorf("generate reset code failed: %w", err)
	}

	expiresAt := s.now().Add(s.authConfig.ResetCodeTTL)
	if err := s.accountRepository.SetResetCode(ctx, email, code, expiresAt); err != nil {
		return fmt.Errorf("set reset code failed: %w", err)
	}

	s.enqueueEmail(ctx, "password reset", email, func(ctx context.Context) error {
		return s.emailQueue.EnqueuePasswordResetEmail(ctx, email, account.FirstName, code)
	})

	return nil
}

// ResetPassword consumes a pending reset code. Expired codes are rejected
// but left in place; only a fresh RequestPasswordReset replaces them.
func (s *accountService) ResetPassword(ctx context.Context, email, resetCode, newPassword string) error {
	account, err := s.accountRepository.GetByEmailAndResetCode(ctx, email, resetCode)
	if errors.Is(err, domain.ErrNotFound) {
		return ErrInvalidResetCode
	}
	if err != nil {
		return fmt.Errorf("find account by reset code failed: %w", err)
	}

	if !account.ResetPending(s.now()) {
		return ErrResetCodeExpired
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	if err := s.accountRepository.ReplacePassword(ctx, email, passwordHash); err != nil {
		return fmt.Errorf("replace password failed: %w", err)
	}

	return nil
}

func (s *accountService) createSession(ctx context.Context, userID int64, userAgent, ip string) (*Tokens, error) {
	var (
		res Tokens
		err error
	)

	res.AccessToken, res.AccessTTL, err = s.tokenManager.NewJWT(userID)
	if err != nil {
		return nil, fmt.Errorf("generate access token failed: %w", err)
	}

	refreshToken, refreshTTL, err := s.tokenManager.NewRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token failed: %w", err)
	}
	res.RefreshToken = refreshToken.String()
	res.RefreshTTL = refreshTTL

	sessionID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate session id failed: %w", err)
	}

	session := &domain.RefreshSession{
		ID:           sessionID.String(),
		UserID:       userID,
		RefreshToken: res.RefreshToken,
		UserAgent:    userAgent,
		IP:           ip,
		ExpiresIn:    s.now().Add(refreshTTL),
	}

	if err := s.sessionRepository.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create refresh session failed: %w", err)
	}

	return &res, nil
}

// enqueueEmail hands a mail to the queue on a detached, bounded context.
// A failed hand-off is logged and swallowed: the state transition already
// committed and must stand regardless of notification outcome.
func (s *accountService) enqueueEmail(ctx context.Context, kind, email string, enqueue func(ctx context.Context) error) {
	enqueueCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), enqueueTimeout)
	defer cancel()

	if err := enqueue(enqueueCtx); err != nil {
		logger.Error("enqueue email failed",
			zap.String("kind", kind),
			zap.String("email", email),
			zap.Error(err))
	}
}
