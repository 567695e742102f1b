package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/studycards/backend/internal/config"
	"github.com/studycards/backend/internal/service"
	"github.com/studycards/backend/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccounts struct {
	signUpErr  error
	verifyErr  error
	signInErr  error
	signInRes  *service.AuthResult
	refreshErr error
	refreshRes *service.AuthResult
	requestErr error
	resetErr   error

	signUpInputs []service.SignUpInput
}

func (f *fakeAccounts) SignUp(ctx context.Context, input service.SignUpInput) error {
	f.signUpInputs = append(f.signUpInputs, input)
	return f.signUpErr
}

func (f *fakeAccounts) Verify(ctx context.Context, login, code string) error {
	return f.verifyErr
}

func (f *fakeAccounts) SignIn(ctx context.Context, input service.SignInInput) (*service.AuthResult, error) {
	return f.signInRes, f.signInErr
}

func (f *fakeAccounts) RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*service.AuthResult, error) {
	return f.refreshRes, f.refreshErr
}

func (f *fakeAccounts) RequestPasswordReset(ctx context.Context, email string) error {
	return f.requestErr
}

func (f *fakeAccounts) ResetPassword(ctx context.Context, email, resetCode, newPassword string) error {
	return f.resetErr
}

var registerValidatorOnce sync.Once

func newTestRouter(accounts *fakeAccounts) *gin.Engine {
	gin.SetMode(gin.TestMode)
	registerValidatorOnce.Do(validator.RegisterGinValidator)

	h := NewHandler(&service.Services{Accounts: accounts}, nil, &config.Config{})

	router := gin.New()
	h.Init(router.Group("/api"))

	return router
}

func doJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func validSignUpBody() map[string]string {
	return map[string]string{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"login":     "ada",
		"password":  "engine123",
		"email":     "ada@example.com",
	}
}

func TestSignUpEndpoint_EmptyErrorOnSuccess(t *testing.T) {
	accounts := &fakeAccounts{}
	router := newTestRouter(accounts)

	rec := doJSON(t, router, "/api/signup", validSignUpBody())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":""}`, rec.Body.String())

	require.Len(t, accounts.signUpInputs, 1)
	assert.Equal(t, "ada", accounts.signUpInputs[0].Login)
}

func TestSignUpEndpoint_DuplicateLoginKeepsContractString(t *testing.T) {
	accounts := &fakeAccounts{signUpErr: service.ErrLoginTaken}
	router := newTestRouter(accounts)

	rec := doJSON(t, router, "/api/signup", validSignUpBody())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":"Username already exists"}`, rec.Body.String())
}

func TestSignUpEndpoint_DuplicateEmailKeepsContractString(t *testing.T) {
	accounts := &fakeAccounts{signUpErr: service.ErrEmailTaken}
	router := newTestRouter(accounts)

	rec := doJSON(t, router, "/api/signup", validSignUpBody())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":"Email already exists"}`, rec.Body.String())
}

func TestSignUpEndpoint_RejectsInvalidEmail(t *testing.T) {
	accounts := &fakeAccounts{}
	router := newTestRouter(accounts)

	body := validSignUpBody()
	body["email"] = "not-an-email"

	rec := doJSON(t, router, "/api/signup", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, accounts.signUpInputs)
}

func TestSignUpEndpoint_UnexpectedErrorIsGeneric(t *testing.T) {
	accounts := &fakeAccounts{signUpErr: assert.AnError}
	router := newTestRouter(accounts)

	rec := doJSON(t, router, "/api/signup", validSignUpBody())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestVerifyEndpoint_SuccessFlag(t *testing.T) {
	router := newTestRouter(&fakeAccounts{})

	rec := doJSON(t, router, "/api/verify", map[string]string{
		"login": "ada", "verificationCode": "123456",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"error":""}`, rec.Body.String())
}

func TestVerifyEndpoint_InvalidCode(t *testing.T) {
	router := newTestRouter(&fakeAccounts{verifyErr: service.ErrInvalidVerificationCode})

	rec := doJSON(t, router, "/api/verify", map[string]string{
		"login": "ada", "verificationCode": "654321",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Invalid verification code"}`, rec.Body.String())
}

func TestVerifyEndpoint_RejectsNonNumericCode(t *testing.T) {
	router := newTestRouter(&fakeAccounts{})

	rec := doJSON(t, router, "/api/verify", map[string]string{
		"login": "ada", "verificationCode": "12a456",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginEndpoint_ReturnsProfileAndTokens(t *testing.T) {
	router := newTestRouter(&fakeAccounts{signInRes: &service.AuthResult{
		UserID:    7,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Tokens:    service.Tokens{AccessToken: "jwt-token", RefreshToken: "refresh-token"},
	}})

	rec := doJSON(t, router, "/api/login", map[string]string{"login": "ada", "password": "engine123"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Ada", resp.FirstName)
	assert.Equal(t, "jwt-token", resp.AccessToken)
	assert.Equal(t, "refresh-token", resp.RefreshToken)
	assert.Empty(t, resp.Error)
}

func TestLoginEndpoint_FailureCarriesSentinelID(t *testing.T) {
	cases := []struct {
		name string
		err  error
		msg  string
	}{
		{"bad credentials", service.ErrInvalidCredentials, "Invalid user name/password"},
		{"unverified", service.ErrAccountNotVerified, "Please verify your email before logging in"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&fakeAccounts{signInErr: tc.err})

			rec := doJSON(t, router, "/api/login", map[string]string{"login": "ada", "password": "x"})

			assert.Equal(t, http.StatusOK, rec.Code)

			var resp loginResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, int64(-1), resp.ID)
			assert.Equal(t, tc.msg, resp.Error)
			assert.Empty(t, resp.AccessToken)
		})
	}
}

func TestRequestPasswordResetEndpoint_UnknownEmail(t *testing.T) {
	router := newTestRouter(&fakeAccounts{requestErr: service.ErrEmailNotFound})

	rec := doJSON(t, router, "/api/request-password-reset", map[string]string{"email": "ghost@example.com"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":"No account found with that email address"}`, rec.Body.String())
}

func TestResetPasswordEndpoint_ExpiredCode(t *testing.T) {
	router := newTestRouter(&fakeAccounts{resetErr: service.ErrResetCodeExpired})

	rec := doJSON(t, router, "/api/reset-password", map[string]string{
		"email": "ada@example.com", "resetCode": "123456", "newPassword": "newpass99",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Reset code has expired. Please request a new one."}`, rec.Body.String())
}

func TestResetPasswordEndpoint_Success(t *testing.T) {
	router := newTestRouter(&fakeAccounts{})

	rec := doJSON(t, router, "/api/reset-password", map[string]string{
		"email": "ada@example.com", "resetCode": "123456", "newPassword": "newpass99",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"error":""}`, rec.Body.String())
}

func TestPingEndpoint(t *testing.T) {
	router := newTestRouter(&fakeAccounts{})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Hello World"}`, rec.Body.String())
}
