package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initCardRoutes(api *gin.RouterGroup) {
	api.POST("/addcard", h.userIdentityMiddleware, h.addCard)
	api.POST("/searchcards", h.userIdentityMiddleware, h.searchCards)
}

type addCardRequest struct {
	Card string `json:"card" binding:"required,max=512"`
}

// @Summary Add card
// @Tags Cards
// @Description Stores a card for the authenticated user
// @ModuleID addCard
// @Accept  json
// @Produce  json
// @Param input body addCardRequest true "card text"
// @Success 200 {object} ErrorResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security UserAuth
// @Router /addcard [post]
func (h *Handler) addCard(c *gin.Context) {
	var req addCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	userID, err := h.getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.services.Cards.Add(c.Request.Context(), userID, req.Card); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, ErrorResponse{Error: ""})
}

type searchCardsRequest struct {
	Search string `json:"search" binding:"required,max=512"`
}

type searchCardsResponse struct {
	Results []string `json:"results"`
	Error   string   `json:"error"`
}

// @Summary Search cards
// @Tags Cards
// @Description Case-insensitive prefix search over the user's cards
// @ModuleID searchCards
// @Accept  json
// @Produce  json
// @Param input body searchCardsRequest true "search prefix"
// @Success 200 {object} searchCardsResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security UserAuth
// @Router /searchcards [post]
func (h *Handler) searchCards(c *gin.Context) {
	var req searchCardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	userID, err := h.getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	results, err := h.services.Cards.Search(c.Request.Context(), userID, req.Search)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	if results == nil {
		results = []string{}
	}

	c.JSON(http.StatusOK, searchCardsResponse{Results: results, Error: ""})
}
