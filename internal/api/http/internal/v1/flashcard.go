package v1

import (
	"net/http"

	"github.com/studycards/backend/internal/domain"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) initFlashcardRoutes(api *gin.RouterGroup) {
	api.POST("/generate-flashcards", h.userIdentityMiddleware, h.generateFlashcards)
	api.POST("/get-flashcard-sets", h.userIdentityMiddleware, h.getFlashcardSets)
	api.POST("/generate-test", h.userIdentityMiddleware, h.generateTest)
	api.POST("/store-test-score", h.userIdentityMiddleware, h.storeTestScore)
	api.POST("/delete-flashcard-set", h.userIdentityMiddleware, h.deleteFlashcardSet)
}

type generateFlashcardsRequest struct {
	Topic string `json:"topic" binding:"required,max=256"`
}

// @Summary Generate flashcards
// @Tags Flashcards
// @Description Generates a flashcard set for a topic and persists it
// @ModuleID generateFlashcards
// @Accept  json
// @Produce  json
// @Param input body generateFlashcardsRequest true "topic"
// @Success 200 {array} domain.Flashcard
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security UserAuth
// @Router /generate-flashcards [post]
func (h *Handler) generateFlashcards(c *gin.Context) {
	var req generateFlashcardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	userID, err := h.getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	flashcards, err := h.services.Flashcards.Generate(c.Request.Context(), userID, req.Topic)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, flashcards)
}

// @Summary List flashcard sets
// @Tags Flashcards
// @Description Returns the user's flashcard sets, newest first
// @ModuleID getFlashcardSets
// @Accept  json
// @Produce  json
// @Success 200 {array} domain.FlashcardSet
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security UserAuth
// @Router /get-flashcard-sets [post]
func (h *Handler) getFlashcardSets(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	sets, err := h.services.Flashcards.GetSets(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	if sets == nil {
		sets = []domain.FlashcardSet{}
	}

	c.JSON(http.StatusOK, sets)
}

type generateTestRequest struct {
	SetID string `json:"setId" binding:"required"`
}

// @Summary Generate test
// @Tags Flashcards
// @Description Builds a multiple-choice test from a flashcard set
// @ModuleID generateTest
// @Accept  json
// @Produce  json
// @Param input body generateTestRequest true "set id"
// @Success 200 {array} domain.TestQuestion
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security UserAuth
// @Router /generate-test [post]
func (h *Handler) generateTest(c *gin.Context) {
	var req generateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	userID, err := h.getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	setID, err := primitive.ObjectIDFromHex(req.SetID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid set id"})
		return
	}

	questions, err := h.services.Flashcards.GenerateTest(c.Request.Context(), userID, setID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

type storeTestScoreRequest struct {
	SetID          string `json:"setId" binding:"required"`
	Score          int    `json:"score" binding:"min=0,max=100"`
	TotalQuestions int    `json:"totalQuestions" binding:"required,min=1"`
	CorrectAnswers int    `json:"correctAnswers" binding:"min=0"`
}

// @Summary Store test score
// @Tags Flashcards
// @Description Records a test result and raises the set's highest score
// @ModuleID storeTestScore
// @Accept  json
// @Produce  json
// @Param input body storeTestScoreRequest true "test result"
// @Success 200 {object} ErrorResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security UserAuth
// @Router /store-test-score [post]
func (h *Handler) storeTestScore(c *gin.Context) {
	var req storeTestScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	userID, err := h.getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	setID, err := primitive.ObjectIDFromHex(req.SetID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid set id"})
		return
	}

	err = h.services.Flashcards.StoreTestScore(c.Request.Context(), domain.TestResult{
		SetID:          setID,
		UserID:         userID,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		CorrectAnswers: req.CorrectAnswers,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, ErrorResponse{Error: ""})
}

type deleteFlashcardSetRequest struct {
	SetID string `json:"setId" binding:"required"`
}

// @Summary Delete flashcard set
// @Tags Flashcards
// @Description Deletes a flashcard set owned by the authenticated user
// @ModuleID deleteFlashcardSet
// @Accept  json
// @Produce  json
// @Param input body deleteFlashcardSetRequest true "set id"
// @Success 200 {object} ErrorResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security UserAuth
// @Router /delete-flashcard-set [post]
func (h *Handler) deleteFlashcardSet(c *gin.Context) {
	var req deleteFlashcardSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	userID, err := h.getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	setID, err := primitive.ObjectIDFromHex(req.SetID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid set id"})
		return
	}

	if err := h.services.Flashcards.DeleteSet(c.Request.Context(), userID, setID); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, ErrorResponse{Error: ""})
}
