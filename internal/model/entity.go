package model

import "time"

// PropertyType is the category tag for a property
type PropertyType string

const (
	PropertyResidential PropertyType = "residential"
	PropertyCommercial  PropertyType = "commercial"
	PropertyIndustrial  PropertyType = "industrial"
	PropertyLand        PropertyType = "land"
)

// AuctionStatus is the lifecycle tag for an auction
type AuctionStatus string

const (
	AuctionUpcoming  AuctionStatus = "upcoming"
	AuctionLive      AuctionStatus = "live"
	AuctionEnded     AuctionStatus = "ended"
	AuctionCancelled AuctionStatus = "cancelled"
)

// BidStatus is the state tag for a bid
type BidStatus string

const (
	BidActive  BidStatus = "active"
	BidWinning BidStatus = "winning"
	BidWon     BidStatus = "won"
	BidOutbid  BidStatus = "outbid"
)

// User represents an investor account.
// SuccessRate, TotalBids and WonAuctions are stored display summaries seeded
// with the data; they are not recomputed from the bid ledger.
type User struct {
	ID              string    `json:"id" db:"id"`
	Email           string    `json:"email" db:"email"`
	Name            string    `json:"name" db:"name"`
	Location        string    `json:"location" db:"location"`
	ProfileVerified bool      `json:"profile_verified" db:"profile_verified"`
	SuccessRate     float64   `json:"success_rate" db:"success_rate"`
	TotalBids       int       `json:"total_bids" db:"total_bids"`
	WonAuctions     int       `json:"won_auctions" db:"won_auctions"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Property represents a listed property
type Property struct {
	ID             string       `json:"id" db:"id"`
	Title          string       `json:"title" db:"title"`
	Description    string       `json:"description" db:"description"`
	Location       string       `json:"location" db:"location"`
	City           string       `json:"city" db:"city"`
	State          string       `json:"state" db:"state"`
	Zipcode        string       `json:"zipcode" db:"zipcode"`
	PropertyType   PropertyType `json:"property_type" db:"property_type"`
	ReservePrice   float64      `json:"reserve_price" db:"reserve_price"`
	EstimatedValue float64      `json:"estimated_value" db:"estimated_value"`
	Bedrooms       *int         `json:"bedrooms,omitempty" db:"bedrooms"`
	Bathrooms      *int         `json:"bathrooms,omitempty" db:"bathrooms"`
	SquareFeet     *int         `json:"square_feet,omitempty" db:"square_feet"`
	LotSize        *float64     `json:"lot_size,omitempty" db:"lot_size"`
	YearBuilt      *int         `json:"year_built,omitempty" db:"year_built"`
	CreatedAt      time.Time    `json:"created_at" db:"created_at"`
}

// Auction represents a single auction over one property.
// Status transitions (upcoming -> live -> ended/cancelled) are driven by an
// external scheduler; this service only reads them.
type Auction struct {
	ID                string        `json:"id" db:"id"`
	PropertyID        string        `json:"property_id" db:"property_id"`
	Title             string        `json:"title" db:"title"`
	StartTime         time.Time     `json:"start_time" db:"start_time"`
	EndTime           time.Time     `json:"end_time" db:"end_time"`
	Status            AuctionStatus `json:"status" db:"status"`
	StartingBid       float64       `json:"starting_bid" db:"starting_bid"`
	CurrentHighestBid float64       `json:"current_highest_bid" db:"current_highest_bid"`
	TotalBids         int           `json:"total_bids" db:"total_bids"`
	WinnerID          *string       `json:"winner_id,omitempty" db:"winner_id"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
}

// Bid represents one bid placed on an auction
type Bid struct {
	ID         string    `json:"id" db:"id"`
	AuctionID  string    `json:"auction_id" db:"auction_id"`
	PropertyID string    `json:"property_id" db:"property_id"`
	InvestorID string    `json:"investor_id" db:"investor_id"`
	BidAmount  float64   `json:"bid_amount" db:"bid_amount"`
	BidTime    time.Time `json:"bid_time" db:"bid_time"`
	Status     BidStatus `json:"status" db:"status"`
	IsAutoBid  bool      `json:"is_auto_bid" db:"is_auto_bid"`
}
