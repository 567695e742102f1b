package service

import (
	"context"
	"testing"
	"time"

	"github.com/studycards/backend/internal/config"
	"github.com/studycards/backend/internal/domain"
	"github.com/studycards/backend/pkg/auth"
	"github.com/studycards/backend/pkg/hash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// -------- test fakes --------

type fakeAccountRepo struct {
	accounts map[string]*domain.Account // keyed by login

	createErrs []error // popped per Create call, nil slot means success
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*domain.Account{}}
}

func (r *fakeAccountRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (r *fakeAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	if len(r.createErrs) > 0 {
		err := r.createErrs[0]
		r.createErrs = r.createErrs[1:]
		if err != nil {
			return err
		}
	}
	for _, existing := range r.accounts {
		if existing.Login == account.Login || existing.Email == account.Email || existing.UserID == account.UserID {
			return domain.ErrDuplicateEntry
		}
	}
	cp := *account
	r.accounts[account.Login] = &cp
	return nil
}

func (r *fakeAccountRepo) NextUserID(ctx context.Context) (int64, error) {
	max := int64(0)
	for _, a := range r.accounts {
		if a.UserID > max {
			max = a.UserID
		}
	}
	return max + 1, nil
}

func (r *fakeAccountRepo) GetByLogin(ctx context.Context, login string) (*domain.Account, error) {
	a, ok := r.accounts[login]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeAccountRepo) GetByLoginOrEmail(ctx context.Context, login, email string) (*domain.Account, error) {
	if a, err := r.GetByLogin(ctx, login); err == nil {
		return a, nil
	}
	return r.GetByEmail(ctx, email)
}

func (r *fakeAccountRepo) GetByLoginAndCode(ctx context.Context, login, code string) (*domain.Account, error) {
	a, ok := r.accounts[login]
	if !ok || a.VerificationCode == "" || a.VerificationCode != code {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAccountRepo) MarkVerified(ctx context.Context, login string) error {
	a, ok := r.accounts[login]
	if !ok {
		return domain.ErrNotFound
	}
	a.Verified = true
	a.VerificationCode = ""
	return nil
}

func (r *fakeAccountRepo) SetResetCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	for _, a := range r.accounts {
		if a.Email == email {
			a.ResetCode = code
			expiry := expiresAt
			a.ResetCodeExpiresAt = &expiry
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeAccountRepo) GetByEmailAndResetCode(ctx context.Context, email, code string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email && a.ResetCode != "" && a.ResetCode == code {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeAccountRepo) ReplacePassword(ctx context.Context, email, passwordHash string) error {
	for _, a := range r.accounts {
		if a.Email == email {
			a.PasswordHash = passwordHash
			a.ResetCode = ""
			a.ResetCodeExpiresAt = nil
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeSessionRepo struct {
	sessions map[string]*domain.RefreshSession // keyed by refresh token
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*domain.RefreshSession{}}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *domain.RefreshSession) error {
	cp := *session
	r.sessions[session.RefreshToken] = &cp
	return nil
}

func (r *fakeSessionRepo) GetByToken(ctx context.Context, token string) (*domain.RefreshSession, error) {
	s, ok := r.sessions[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSessionRepo) DeleteByToken(ctx context.Context, token string) error {
	if _, ok := r.sessions[token]; !ok {
		return domain.ErrNotFound
	}
	delete(r.sessions, token)
	return nil
}

type fakeEmailQueue struct {
	verification []string // emails
	reset        []string
	codes        []string
	err          error
}

func (q *fakeEmailQueue) EnqueueVerificationEmail(ctx context.Context, email, firstName, code string) error {
	if q.err != nil {
		return q.err
	}
	q.verification = append(q.verification, email)
	q.codes = append(q.codes, code)
	return nil
}

func (q *fakeEmailQueue) EnqueuePasswordResetEmail(ctx context.Context, email, firstName, code string) error {
	if q.err != nil {
		return q.err
	}
	q.reset = append(q.reset, email)
	q.codes = append(q.codes, code)
	return nil
}

type fakeCodeGenerator struct {
	codes []string
	next  int
}

func (g *fakeCodeGenerator) RandomCode(length int) (string, error) {
	code := g.codes[g.next%len(g.codes)]
	g.next++
	return code, nil
}

// -------- fixture --------

type accountFixture struct {
	service  *accountService
	accounts *fakeAccountRepo
	sessions *fakeSessionRepo
	queue    *fakeEmailQueue
	codes    *fakeCodeGenerator
	clock    *time.Time
}

func newAccountFixture(t *testing.T) *accountFixture {
	t.Helper()

	tokenManager, err := auth.NewManager(config.JWTConfig{
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 240 * time.Hour,
		SigningKey:      "test-signing-key",
	})
	require.NoError(t, err)

	accounts := newFakeAccountRepo()
	sessions := newFakeSessionRepo()
	queue := &fakeEmailQueue{}
	codes := &fakeCodeGenerator{codes: []string{"123456"}}

	svc := newAccountService(accounts, sessions,
		hash.NewBcryptHasher(bcrypt.MinCost),
		tokenManager,
		codes,
		queue,
		config.AuthConfig{
			VerificationCodeLength: 6,
			ResetCodeTTL:           time.Hour,
		},
	)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &now
	svc.now = func() time.Time { return *clock }

	return &accountFixture{
		service:  svc,
		accounts: accounts,
		sessions: sessions,
		queue:    queue,
		codes:    codes,
		clock:    clock,
	}
}

func (f *accountFixture) signUpAda(t *testing.T) {
	t.Helper()
	err := f.service.SignUp(context.Background(), SignUpInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Login:     "ada",
		Password:  "engine123",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)
}

// -------- sign up --------

func TestSignUp_CreatesUnverifiedAccountWithHashedPassword(t *testing.T) {
	f := newAccountFixture(t)

	f.signUpAda(t)

	account, err := f.accounts.GetByLogin(context.Background(), "ada")
	require.NoError(t, err)

	assert.Equal(t, int64(1), account.UserID)
	assert.False(t, account.Verified)
	assert.Equal(t, "123456", account.VerificationCode)
	assert.Empty(t, account.ResetCode)
	assert.Nil(t, account.ResetCodeExpiresAt)

	// password is stored hashed, never verbatim
	assert.NotEqual(t, "engine123", account.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("engine123")))

	assert.Equal(t, []string{"ada@example.com"}, f.queue.verification)
}

func TestSignUp_AssignsSequentialUserIDs(t *testing.T) {
	f := newAccountFixture(t)

	f.signUpAda(t)
	err := f.service.SignUp(context.Background(), SignUpInput{
		FirstName: "Grace", LastName: "Hopper",
		Login: "grace", Password: "cobol12", Email: "grace@example.com",
	})
	require.NoError(t, err)

	grace, err := f.accounts.GetByLogin(context.Background(), "grace")
	require.NoError(t, err)
	assert.Equal(t, int64(2), grace.UserID)
}

func TestSignUp_RejectsDuplicateLogin(t *testing.T) {
	f := newAccountFixture(t)
	f.signUpAda(t)

	err := f.service.SignUp(context.Background(), SignUpInput{
		FirstName: "Other", LastName: "Person",
		Login: "ada", Password: "secret77", Email: "other@example.com",
	})
	assert.ErrorIs(t, err, ErrLoginTaken)
}

func TestSignUp_RejectsDuplicateEmail(t *testing.T) {
	f := newAccountFixture(t)
	f.signUpAda(t)

	err := f.service.SignUp(context.Background(), SignUpInput{
		FirstName: "Other", LastName: "Person",
		Login: "other", Password: "secret77", Email: "ada@example.com",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignUp_LoginConflictWinsWhenBothTaken(t *testing.T) {
	f := newAccountFixture(t)
	f.signUpAda(t)

	err := f.service.SignUp(context.Background(), SignUpInput{
		FirstName: "Ada", LastName: "Again",
		Login: "ada", Password: "secret77", Email: "ada@example.com",
	})
	assert.ErrorIs(t, err, ErrLoginTaken)
}

func TestSignUp_SucceedsWhenEmailEnqueueFails(t *testing.T) {
	f := newAccountFixture(t)
	f.queue.err = assert.AnError

	f.signUpAda(t)

	_, err := f.accounts.GetByLogin(context.Background(), "ada")
	assert.NoError(t, err)
}

func TestSignUp_RetriesOnceOnUserIDRace(t *testing.T) {
	f := newAccountFixture(t)
	// first insert loses the id race, second succeeds
	f.accounts.createErrs = []error{domain.ErrDuplicateEntry, nil}

	f.signUpAda(t)

	_, err := f.accounts.GetByLogin(context.Background(), "ada")
	assert.NoError(t, err)
}

// -------- verify --------

func TestVerify_MarksAccountVerifiedAndDropsCode(t *testing.T) {
	f := newAccountFixture(t)
	f.signUpAda(t)

	err := f.service.Verify(context.Background(), "ada", "123456")
	require.NoError(t, err)

	account, err := f.accounts.GetByLogin(context.Background(), "ada")
	require.NoError(t, err)
	assert.True(t, account.Verified)
	assert.Empty(t, account.VerificationCode)
}

func TestVerify_RejectsWrongCode(t *testing.T) {
	f := newAccountFixture(t)
	f.signUpAda(t)

	err := f.service.Verify(context.Background(), "ada", "654321")
	assert.ErrorIs(t, err, ErrInvalidVerificationCode)
}

func TestVerify_RejectsUnknownLogin(t *testing.T) {
	f := newAccountFixture(t)
	f.signUpAda(t)

	err := f.service.Verify(context.Background(), "nobody", "123456")
	assert.ErrorIs(t, err, ErrInvalidVerificationCode)
}

func TestVerify_CodeIsSingleUse(t *testing.T) {
	f := newAccountFixture(t)
	f.signUpAda(t)

	require.NoError(t, f.service.Verify(context.Background(), "ada", "123456"))

	// verification is terminal, the consumed code never matches again
	err := f.service.Verify(context.Background(), "ada", "123456")
	assert.ErrorIs(t, err, ErrInvalidVerificationCode)
}

// -------- sign in --------

func TestSignIn_RejectsUnknownLogin(t *testing.T) {
	f := newAccountFixture(t)

	_, err := f.service.SignIn(context.Background(), SignInInput{Login: "ghost", Password: "whatever1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignIn_RejectsWrongPassword(t *testing.T) {
	f := newAccountFixture(t)
	f.signUpAda(t)
	require.NoError(t, f.service.Verify(context.Background(), "ada", "123456"))

	_, err := f.service.SignIn(context.Background(), SignInInput{Login: "ada", Password: "wrongpass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignIn_RejectsUnverifiedAccountWithCorrectPassword(t *testing.T) {
	f := newAccountFixture(t)
	f.signUpAda(t)

	_, err := f.service.SignIn(context.Background(), SignInInput{Login: "ada", Password: "engine123"})
	assert.ErrorIs(t, err, ErrAccountNotVerified)
}

func TestSignIn_ReturnsProfileAndTokens(t *testing.T) {
	f := newAccountFixture(t)
	f.signUpAda(t)
	require.NoError(t, f.service.Verify(context.Background(), "ada", "123456"))

	result, err := f.service.SignIn(context.Background(), SignInInput{
		Login: "ada", Password: "engine123", UserAgent: "test-agent", IP: "10.0.0.1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.UserID)
	assert.Equal(t, "Ada", result.FirstName)
	assert.Equal(t, "Lovelace", result.LastName)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)

	session, err := f.sessions.GetByToken(context.Background(), result.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), session.UserID)
	assert.Equal(t, "test-agent", session.UserAgent)
}

// -------- refresh --------

func TestRefreshTokens_RotatesSession(t *testing.T) {
	f := newAccountFixture(t)
	f.signUpAda(t)
	require.NoError(t, f.service.Verify(context.Background(), "ada", "123456"))

	first, err := f.service.SignIn(context.Background(), SignInInput{Login: "ada", Password: "engine123"})
	require.NoError(t, err)

	second, err := f.service.RefreshTokens(context.Background(), first.Tokens.RefreshToken, "agent", "ip")
	require.NoError(t, err)

	assert.Equal(t, int64(1), second.UserID)
	assert.NotEqual(t, first.Tokens.RefreshToken, second.Tokens.RefreshToken)

	// old token is gone, replaying it fails
	_, err = f.service.RefreshTokens(context.Background(), first.Tokens.RefreshToken, "agent", "ip")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRefreshTokens_RejectsExpiredSession(t *testing.T) {
	f := newAccountFixture(t)
	f.signUpAda(t)
	require.NoError(t, f.service.Verify(context.Background(), "ada", "123456"))

	result, err := f.service.SignIn(context.Background(), SignInInput{Login: "ada", Password: "engine123"})
	require.NoError(t, err)

	*f.clock = f.clock.Add(241 * time.Hour)

	_, err = f.service.RefreshTokens(context.Background(), result.Tokens.RefreshToken, "agent", "ip")
	assert.ErrorIs(t, err, ErrRefreshTokenExpired)
}

func TestRefreshTokens_RejectsMalformedToken(t *testing.T) {
	f := newAccountFixture(t)

	_, err := f.service.RefreshTokens(context.Background(), "not-a-uuid", "agent", "ip")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// -------- password reset --------

func TestRequestPasswordReset_SetsCodeAndQueuesEmail(t *testing.T) {
	f := newAccountFixture(t)
	f.signUpAda(t)

	err := f.service.RequestPasswordReset(context.Background(), "ada@example.com")
	require.NoError(t, err)

	account, err := f.accounts.GetByLogin(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, "123456", account.ResetCode)
	require.NotNil(t, account.ResetCodeExpiresAt)
	assert.Equal(t, f.clock.Add(time.Hour), *account.ResetCodeExpiresAt)

	assert.Equal(t, []string{"ada@example.com"}, f.queue.reset)
}

func TestRequestPasswordReset_RejectsUnknownEmail(t *testing.T) {
	f := newAccountFixture(t)

	err := f.service.RequestPasswordReset(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrEmailNotFound)
}

func TestRequestPasswordReset_OverwritesPreviousCode(t *testing.T) {
	f := newAccountFixture(t)
	f.codes.codes = []string{"123456", "111111", "222222"}
	f.signUpAda(t)

	require.NoError(t, f.service.RequestPasswordReset(context.Background(), "ada@example.com"))
	require.NoError(t, f.service.RequestPasswordReset(context.Background(), "ada@example.com"))

	// only the newest code is live
	err := f.service.ResetPassword(context.Background(), "ada@example.com", "111111", "newpass99")
	assert.ErrorIs(t, err, ErrInvalidResetCode)

	err = f.service.ResetPassword(context.Background(), "ada@example.com", "222222", "newpass99")
	assert.NoError(t, err)
}

func TestResetPassword_ReplacesPasswordAndClearsCode(t *testing.T) {
	f := newAccountFixture(t)
	f.signUpAda(t)
	require.NoError(t, f.service.Verify(context.Background(), "ada", "123456"))
	require.NoError(t, f.service.RequestPasswordReset(context.Background(), "ada@example.com"))

	err := f.service.ResetPassword(context.Background(), "ada@example.com", "123456", "newpass99")
	require.NoError(t, err)

	account, err := f.accounts.GetByLogin(context.Background(), "ada")
	require.NoError(t, err)
	assert.Empty(t, account.ResetCode)
	assert.Nil(t, account.ResetCodeExpiresAt)

	// old password is out, new one is in
	_, err = f.service.SignIn(context.Background(), SignInInput{Login: "ada", Password: "engine123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.service.SignIn(context.Background(), SignInInput{Login: "ada", Password: "newpass99"})
	assert.NoError(t, err)

	// the consumed code is cleared and never matches again
	err = f.service.ResetPassword(context.Background(), "ada@example.com", "123456", "anotherpw1")
	assert.ErrorIs(t, err, ErrInvalidResetCode)
}

func TestResetPassword_RejectsWrongCode(t *testing.T) {
	f := newAccountFixture(t)
	f.signUpAda(t)
	require.NoError(t, f.service.RequestPasswordReset(context.Background(), "ada@example.com"))

	err := f.service.ResetPassword(context.Background(), "ada@example.com", "999999", "newpass99")
	assert.ErrorIs(t, err, ErrInvalidResetCode)
}

func TestResetPassword_RejectsExpiredCodeAndKeepsPassword(t *testing.T) {
	f := newAccountFixture(t)
	f.signUpAda(t)
	require.NoError(t, f.service.Verify(context.Background(), "ada", "123456"))
	require.NoError(t, f.service.RequestPasswordReset(context.Background(), "ada@example.com"))

	*f.clock = f.clock.Add(time.Hour + time.Minute)

	err := f.service.ResetPassword(context.Background(), "ada@example.com", "123456", "newpass99")
	assert.ErrorIs(t, err, ErrResetCodeExpired)

	// the stale code stays in place and the old password still works
	account, getErr := f.accounts.GetByLogin(context.Background(), "ada")
	require.NoError(t, getErr)
	assert.Equal(t, "123456", account.ResetCode)

	_, err = f.service.SignIn(context.Background(), SignInInput{Login: "ada", Password: "engine123"})
	assert.NoError(t, err)
}

func TestResetPassword_FreshRequestRevivesFlow(t *testing.T) {
	f := newAccountFixture(t)
	f.codes.codes = []string{"123456", "111111", "222222"}
	f.signUpAda(t)
	require.NoError(t, f.service.RequestPasswordReset(context.Background(), "ada@example.com"))

	*f.clock = f.clock.Add(2 * time.Hour)

	// expired cycle rejects, a new request opens a fresh one
	err := f.service.ResetPassword(context.Background(), "ada@example.com", "111111", "newpass99")
	assert.ErrorIs(t, err, ErrResetCodeExpired)

	require.NoError(t, f.service.RequestPasswordReset(context.Background(), "ada@example.com"))
	err = f.service.ResetPassword(context.Background(), "ada@example.com", "222222", "newpass99")
	assert.NoError(t, err)
}

// -------- full lifecycle --------

func TestAccountLifecycle_EndToEnd(t *testing.T) {
	f := newAccountFixture(t)
	f.codes.codes = []string{"482913", "775021"}
	ctx := context.Background()

	require.NoError(t, f.service.SignUp(ctx, SignUpInput{
		FirstName: "Ada", LastName: "Lovelace",
		Login: "ada", Password: "pw123456", Email: "ada@example.com",
	}))

	_, err := f.service.SignIn(ctx, SignInInput{Login: "ada", Password: "pw123456"})
	assert.ErrorIs(t, err, ErrAccountNotVerified)

	err = f.service.Verify(ctx, "ada", "000000")
	assert.ErrorIs(t, err, ErrInvalidVerificationCode)
	require.NoError(t, f.service.Verify(ctx, "ada", "482913"))

	result, err := f.service.SignIn(ctx, SignInInput{Login: "ada", Password: "pw123456"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", result.FirstName)

	require.NoError(t, f.service.RequestPasswordReset(ctx, "ada@example.com"))
	require.NoError(t, f.service.ResetPassword(ctx, "ada@example.com", "775021", "newpw456"))

	_, err = f.service.SignIn(ctx, SignInInput{Login: "ada", Password: "newpw456"})
	assert.NoError(t, err)
	_, err = f.service.SignIn(ctx, SignInInput{Login: "ada", Password: "pw123456"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
