package handler

import (
	"fmt"
	"net/http"
	"time"

	"auctionlytics/internal/model"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the demo login endpoint. There is no real credential
// store; any well-formed request yields a token for frontend development.
type AuthHandler struct{}

// NewAuthHandler creates a new auth handler
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": fmt.Sprintf("demo-token-%d", time.Now().Unix()),
		"token_type":   "bearer",
		"user": gin.H{
			"email": req.Email,
			"name":  "Demo Investor",
		},
	})
}
