package v1

import (
	"net/http"

	"github.com/studycards/backend/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initAccountRoutes(api *gin.RouterGroup) {
	api.POST("/signup", h.signUp)
	api.POST("/verify", h.verify)
	api.POST("/login", h.login)
	api.POST("/refresh", h.refresh)
	api.POST("/request-password-reset", h.requestPasswordReset)
	api.POST("/reset-password", h.resetPassword)
}

type signUpRequest struct {
	FirstName string `json:"firstName" binding:"required,max=64"`
	LastName  string `json:"lastName" binding:"required,max=64"`
	Login     string `json:"login" binding:"required,min=3,max=64"`
	Password  string `json:"password" binding:"required,min=6,max=72"`
	Email     string `json:"email" binding:"required,email"`
}

// @Summary Sign up
// @Tags Account
// @Description Registers an unverified account and queues the verification email
// @ModuleID signUp
// @Accept  json
// @Produce  json
// @Param input body signUpRequest true "account data"
// @Success 200 {object} ErrorResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	err := h.services.Accounts.SignUp(c.Request.Context(), service.SignUpInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Login:     req.Login,
		Password:  req.Password,
		Email:     req.Email,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, ErrorResponse{Error: ""})
}

type verifyRequest struct {
	Login            string `json:"login" binding:"required"`
	VerificationCode string `json:"verificationCode" binding:"required,numcode"`
}

type verifyResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// @Summary Verify email
// @Tags Account
// @Description Confirms the account with the emailed verification code
// @ModuleID verify
// @Accept  json
// @Produce  json
// @Param input body verifyRequest true "login and code"
// @Success 200 {object} verifyResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /verify [post]
func (h *Handler) verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	if err := h.services.Accounts.Verify(c.Request.Context(), req.Login, req.VerificationCode); err != nil {
		msg, status := userMessage(err)
		c.JSON(status, verifyResponse{Success: false, Error: msg})
		return
	}

	c.JSON(http.StatusOK, verifyResponse{Success: true, Error: ""})
}

type loginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	Error        string `json:"error"`
}

// @Summary Log in
// @Tags Account
// @Description Authenticates a verified account and issues a token pair
// @ModuleID login
// @Accept  json
// @Produce  json
// @Param input body loginRequest true "credentials"
// @Success 200 {object} loginResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} loginResponse
// @Router /login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	result, err := h.services.Accounts.SignIn(c.Request.Context(), service.SignInInput{
		Login:     req.Login,
		Password:  req.Password,
		UserAgent: c.Request.UserAgent(),
		IP:        c.ClientIP(),
	})
	if err != nil {
		// Failed logins keep the -1 sentinel the clients branch on.
		msg, status := userMessage(err)
		c.JSON(status, loginResponse{ID: -1, Error: msg})
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		ID:           result.UserID,
		FirstName:    result.FirstName,
		LastName:     result.LastName,
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		Error:        "",
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required,uuid"`
}

type refreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Error        string `json:"error"`
}

// @Summary Refresh tokens
// @Tags Account
// @Description Rotates the refresh session and issues a new token pair
// @ModuleID refresh
// @Accept  json
// @Produce  json
// @Param input body refreshRequest true "refresh token"
// @Success 200 {object} refreshResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /refresh [post]
func (h *Handler) refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	result, err := h.services.Accounts.RefreshTokens(c.Request.Context(),
		req.RefreshToken, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, refreshResponse{
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		Error:        "",
	})
}

type requestPasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// @Summary Request password reset
// @Tags Account
// @Description Issues a reset code and queues the reset email
// @ModuleID requestPasswordReset
// @Accept  json
// @Produce  json
// @Param input body requestPasswordResetRequest true "account email"
// @Success 200 {object} ErrorResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /request-password-reset [post]
func (h *Handler) requestPasswordReset(c *gin.Context) {
	var req requestPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	if err := h.services.Accounts.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, ErrorResponse{Error: ""})
}

type resetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	ResetCode   string `json:"resetCode" binding:"required,numcode"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=72"`
}

type resetPasswordResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// @Summary Reset password
// @Tags Account
// @Description Replaces the password when the reset code is valid and unexpired
// @ModuleID resetPassword
// @Accept  json
// @Produce  json
// @Param input body resetPasswordRequest true "email, code and new password"
// @Success 200 {object} resetPasswordResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reset-password [post]
func (h *Handler) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	err := h.services.Accounts.ResetPassword(c.Request.Context(), req.Email, req.ResetCode, req.NewPassword)
	if err != nil {
		msg, status := userMessage(err)
		c.JSON(status, resetPasswordResponse{Success: false, Error: msg})
		return
	}

	c.JSON(http.StatusOK, resetPasswordResponse{Success: true, Error: ""})
}
