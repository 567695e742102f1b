package v1

import (
	"net/http"

	"github.com/studycards/backend/internal/config"
	"github.com/studycards/backend/internal/service"
	"github.com/studycards/backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title StudyCards API
// @version 1.0
// @description REST backend for the StudyCards flashcard study app

// @BasePath /api

// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	api.GET("/ping", h.ping)

	h.initAccountRoutes(api)
	h.initCardRoutes(api)
	h.initFlashcardRoutes(api)
}

// @Summary Ping
// @Tags Service
// @Description Liveness probe
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *Handler) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}
