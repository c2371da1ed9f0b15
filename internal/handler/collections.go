package handler

import (
	"fmt"
	"net/http"
	"time"

	"auctionlytics/internal/model"
	"auctionlytics/internal/repository"

	"github.com/gin-gonic/gin"
)

// CollectionsHandler serves the raw collection listings and bid placement
type CollectionsHandler struct {
	repo *repository.SQLRepository
}

// NewCollectionsHandler creates a new collections handler
func NewCollectionsHandler(repo *repository.SQLRepository) *CollectionsHandler {
	return &CollectionsHandler{repo: repo}
}

// ListUsers handles GET /api/users
func (h *CollectionsHandler) ListUsers(c *gin.Context) {
	users, err := h.repo.FetchAllUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// ListProperties handles GET /api/properties
func (h *CollectionsHandler) ListProperties(c *gin.Context) {
	properties, err := h.repo.FetchAllProperties(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch properties: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": properties, "count": len(properties)})
}

// GetProperty handles GET /api/properties/:id
func (h *CollectionsHandler) GetProperty(c *gin.Context) {
	property, err := h.repo.GetPropertyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch property: " + err.Error()})
		return
	}
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, property)
}

// ListAuctions handles GET /api/auctions
func (h *CollectionsHandler) ListAuctions(c *gin.Context) {
	auctions, err := h.repo.FetchAllAuctions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch auctions: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"auctions": auctions, "count": len(auctions)})
}

// GetAuction handles GET /api/auctions/:id
func (h *CollectionsHandler) GetAuction(c *gin.Context) {
	auction, err := h.repo.GetAuctionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch auction: " + err.Error()})
		return
	}
	if auction == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Auction not found"})
		return
	}
	c.JSON(http.StatusOK, auction)
}

// ListBids handles GET /api/bids
func (h *CollectionsHandler) ListBids(c *gin.Context) {
	bids, err := h.repo.FetchAllBids(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bids: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bids": bids, "count": len(bids)})
}

// PlaceBid handles POST /api/bids
func (h *CollectionsHandler) PlaceBid(c *gin.Context) {
	var req model.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	auction, err := h.repo.GetAuctionByID(ctx, req.AuctionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch auction: " + err.Error()})
		return
	}
	if auction == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Auction not found"})
		return
	}
	if auction.Status != model.AuctionLive {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Auction %s is %s, not live", auction.ID, auction.Status)})
		return
	}

	now := time.Now().UTC()
	bid := &model.Bid{
		ID:         fmt.Sprintf("bid_%d", now.UnixNano()),
		AuctionID:  auction.ID,
		PropertyID: auction.PropertyID,
		InvestorID: req.InvestorID,
		BidAmount:  req.BidAmount,
		BidTime:    now,
		Status:     model.BidActive,
		IsAutoBid:  req.IsAutoBid,
	}
	if req.BidAmount > auction.CurrentHighestBid {
		bid.Status = model.BidWinning
	}

	if err := h.repo.InsertBid(ctx, bid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place bid: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, bid)
}
