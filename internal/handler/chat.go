package handler

import (
	"net/http"

	"auctionlytics/internal/model"
	"auctionlytics/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles analytics chat HTTP requests
type ChatHandler struct {
	analytics *service.Analytics
}

// NewChatHandler creates a new chat handler
func NewChatHandler(analytics *service.Analytics) *ChatHandler {
	return &ChatHandler{analytics: analytics}
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// Respond never fails; every failure path is a well-formed envelope
	response := h.analytics.Respond(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, response)
}

// Classify handles POST /api/chat/classify, exposing the classifier verdict
// without running an aggregation. Useful for frontend debugging.
func (h *ChatHandler) Classify(c *gin.Context) {
	var req model.ChatQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.analytics.Classify(req.Message))
}

// SampleQuestions handles GET /api/sample-questions
func (h *ChatHandler) SampleQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"questions": []string{
			"Which regions had the highest number of bids last month?",
			"Show upcoming auctions by city",
			"Who are the top 5 investors by bid amount?",
			"Compare reserve price vs winning bid for completed auctions",
			"What's the bidding activity trend over the past 30 days?",
			"Show me the most active auction categories",
			"What's the average price across bids and listings?",
			"Who won repeatedly in last month's auctions?",
		},
	})
}
