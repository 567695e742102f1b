package v1

import (
	"errors"
	"net/http"

	"github.com/studycards/backend/internal/service"
	"github.com/studycards/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// User-facing error strings, kept stable for the web and mobile clients.
const (
	MsgUsernameExists     = "Username already exists"
	MsgEmailExists        = "Email already exists"
	MsgInvalidVerifyCode  = "Invalid verification code"
	MsgInvalidCredentials = "Invalid user name/password"
	MsgUnverifiedAccount  = "Please verify your email before logging in"
	MsgNoAccountForEmail  = "No account found with that email address"
	MsgInvalidResetCode   = "Invalid reset code"
	MsgResetCodeExpired   = "Reset code has expired. Please request a new one."
	MsgSetNotFound        = "Flashcard set not found"
	MsgSessionInvalid     = "Invalid or expired session"
	MsgInternalError      = "Something went wrong, please try again later"
)

var userMessages = map[error]string{
	service.ErrLoginTaken:              MsgUsernameExists,
	service.ErrEmailTaken:              MsgEmailExists,
	service.ErrInvalidVerificationCode: MsgInvalidVerifyCode,
	service.ErrInvalidCredentials:      MsgInvalidCredentials,
	service.ErrAccountNotVerified:      MsgUnverifiedAccount,
	service.ErrEmailNotFound:           MsgNoAccountForEmail,
	service.ErrInvalidResetCode:        MsgInvalidResetCode,
	service.ErrResetCodeExpired:        MsgResetCodeExpired,
	service.ErrSetNotFound:             MsgSetNotFound,
	service.ErrSessionNotFound:         MsgSessionInvalid,
	service.ErrRefreshTokenExpired:     MsgSessionInvalid,
}

// userMessage translates a service error into the string clients render.
// Anything outside the taxonomy is a storage or collaborator failure: it is
// logged with its cause and reported generically, never as a raw driver
// error.
func userMessage(err error) (string, int) {
	for sentinel, msg := range userMessages {
		if errors.Is(err, sentinel) {
			return msg, http.StatusOK
		}
	}

	logger.Error("unexpected service error", zap.Error(err))

	return MsgInternalError, http.StatusInternalServerError
}

func serviceErrorResponse(c *gin.Context, err error) {
	msg, status := userMessage(err)
	c.JSON(status, ErrorResponse{Error: msg})
}
