package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"auctionlytics/internal/model"
)

// Seed populates the store with the demo dataset. It is idempotent: when any
// user already exists the seed is skipped entirely.
func (r *SQLRepository) Seed(ctx context.Context) error {
	count, err := r.CountUsers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Seed skipped: data already present")
		return nil
	}

	now := time.Now().UTC()
	users := seedUsers(now)
	properties := seedProperties(now)
	auctions := seedAuctions(now)
	bids := seedBids(now)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, u := range users {
		query, args, err := r.builder.Insert("users").
			Columns(userColumns...).
			Values(u.ID, u.Email, u.Name, u.Location, u.ProfileVerified,
				u.SuccessRate, u.TotalBids, u.WonAuctions, u.CreatedAt).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build user seed insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.ID, err)
		}
	}

	for _, p := range properties {
		query, args, err := r.builder.Insert("properties").
			Columns(propertyColumns...).
			Values(p.ID, p.Title, p.Description, p.Location, p.City, p.State,
				p.Zipcode, p.PropertyType, p.ReservePrice, p.EstimatedValue,
				p.Bedrooms, p.Bathrooms, p.SquareFeet, p.LotSize, p.YearBuilt,
				p.CreatedAt).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build property seed insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to seed property %s: %w", p.ID, err)
		}
	}

	for _, a := range auctions {
		query, args, err := r.builder.Insert("auctions").
			Columns(auctionColumns...).
			Values(a.ID, a.PropertyID, a.Title, a.StartTime, a.EndTime, a.Status,
				a.StartingBid, a.CurrentHighestBid, a.TotalBids, a.WinnerID,
				a.CreatedAt).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build auction seed insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to seed auction %s: %w", a.ID, err)
		}
	}

	for _, b := range bids {
		query, args, err := r.builder.Insert("bids").
			Columns(bidColumns...).
			Values(b.ID, b.AuctionID, b.PropertyID, b.InvestorID, b.BidAmount,
				b.BidTime, b.Status, b.IsAutoBid).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build bid seed insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to seed bid %s: %w", b.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	log.Printf("Seeded %d users, %d properties, %d auctions, %d bids",
		len(users), len(properties), len(auctions), len(bids))
	return nil
}

func seedUsers(now time.Time) []model.User {
	created := now.AddDate(0, -6, 0)
	return []model.User{
		{ID: "user_1", Email: "john.doe@email.com", Name: "John Doe", Location: "San Francisco, CA", ProfileVerified: true, SuccessRate: 75.5, TotalBids: 25, WonAuctions: 8, CreatedAt: created},
		{ID: "user_2", Email: "jane.smith@email.com", Name: "Jane Smith", Location: "Los Angeles, CA", ProfileVerified: true, SuccessRate: 82.3, TotalBids: 30, WonAuctions: 12, CreatedAt: created},
		{ID: "user_3", Email: "mike.johnson@email.com", Name: "Mike Johnson", Location: "New York, NY", ProfileVerified: true, SuccessRate: 68.9, TotalBids: 18, WonAuctions: 5, CreatedAt: created},
		{ID: "user_4", Email: "sarah.wilson@email.com", Name: "Sarah Wilson", Location: "Chicago, IL", ProfileVerified: true, SuccessRate: 91.2, TotalBids: 35, WonAuctions: 18, CreatedAt: created},
		{ID: "user_5", Email: "david.brown@email.com", Name: "David Brown", Location: "Houston, TX", ProfileVerified: false, SuccessRate: 45.6, TotalBids: 12, WonAuctions: 3, CreatedAt: created},
		{ID: "user_6", Email: "emily.davis@email.com", Name: "Emily Davis", Location: "Miami, FL", ProfileVerified: true, SuccessRate: 77.8, TotalBids: 21, WonAuctions: 9, CreatedAt: created},
		{ID: "user_7", Email: "robert.garcia@email.com", Name: "Robert Garcia", Location: "Phoenix, AZ", ProfileVerified: true, SuccessRate: 58.4, TotalBids: 14, WonAuctions: 4, CreatedAt: created},
		{ID: "user_8", Email: "lisa.chen@email.com", Name: "Lisa Chen", Location: "Seattle, WA", ProfileVerified: false, SuccessRate: 62.1, TotalBids: 9, WonAuctions: 2, CreatedAt: created},
	}
}

func seedProperties(now time.Time) []model.Property {
	created := now.AddDate(0, -5, 0)
	return []model.Property{
		{ID: "prop_1", Title: "Modern Downtown Condo", Description: "Luxurious 2-bedroom condo in downtown", Location: "123 Main St, San Francisco, CA", City: "San Francisco", State: "CA", Zipcode: "94102", PropertyType: model.PropertyResidential, ReservePrice: 750000, EstimatedValue: 850000, Bedrooms: intPtr(2), Bathrooms: intPtr(2), SquareFeet: intPtr(1200), YearBuilt: intPtr(2018), CreatedAt: created},
		{ID: "prop_2", Title: "Victorian Family Home", Description: "Classic Victorian home with modern upgrades", Location: "456 Oak Ave, Los Angeles, CA", City: "Los Angeles", State: "CA", Zipcode: "90210", PropertyType: model.PropertyResidential, ReservePrice: 1200000, EstimatedValue: 1400000, Bedrooms: intPtr(4), Bathrooms: intPtr(3), SquareFeet: intPtr(2800), YearBuilt: intPtr(1920), CreatedAt: created},
		{ID: "prop_3", Title: "Commercial Office Building", Description: "Prime commercial real estate opportunity", Location: "789 Business Blvd, New York, NY", City: "New York", State: "NY", Zipcode: "10001", PropertyType: model.PropertyCommercial, ReservePrice: 2500000, EstimatedValue: 3000000, SquareFeet: intPtr(8500), YearBuilt: intPtr(1985), CreatedAt: created},
		{ID: "prop_4", Title: "Suburban Ranch House", Description: "Spacious ranch home with large yard", Location: "321 Elm St, Chicago, IL", City: "Chicago", State: "IL", Zipcode: "60601", PropertyType: model.PropertyResidential, ReservePrice: 450000, EstimatedValue: 520000, Bedrooms: intPtr(3), Bathrooms: intPtr(2), SquareFeet: intPtr(1800), LotSize: floatPtr(0.3), YearBuilt: intPtr(1975), CreatedAt: created},
		{ID: "prop_5", Title: "Industrial Warehouse", Description: "Large warehouse facility for distribution", Location: "654 Industrial Dr, Houston, TX", City: "Houston", State: "TX", Zipcode: "77001", PropertyType: model.PropertyIndustrial, ReservePrice: 1800000, EstimatedValue: 2200000, SquareFeet: intPtr(15000), YearBuilt: intPtr(1990), CreatedAt: created},
		{ID: "prop_6", Title: "Beachfront Development Lot", Description: "Rare vacant lot two blocks from the beach", Location: "88 Shoreline Dr, Miami, FL", City: "Miami", State: "FL", Zipcode: "33101", PropertyType: model.PropertyLand, ReservePrice: 850000, EstimatedValue: 1000000, LotSize: floatPtr(0.5), CreatedAt: created},
		{ID: "prop_7", Title: "Retail Strip Center", Description: "Fully leased neighborhood retail center", Location: "210 Commerce Way, Phoenix, AZ", City: "Phoenix", State: "AZ", Zipcode: "85001", PropertyType: model.PropertyCommercial, ReservePrice: 1100000, EstimatedValue: 1250000, SquareFeet: intPtr(6200), YearBuilt: intPtr(2002), CreatedAt: created},
		{ID: "prop_8", Title: "Craftsman Bungalow", Description: "Restored craftsman near the waterfront", Location: "17 Pine St, Seattle, WA", City: "Seattle", State: "WA", Zipcode: "98101", PropertyType: model.PropertyResidential, ReservePrice: 600000, EstimatedValue: 700000, Bedrooms: intPtr(3), Bathrooms: intPtr(1), SquareFeet: intPtr(1500), YearBuilt: intPtr(1928), CreatedAt: created},
	}
}

func seedAuctions(now time.Time) []model.Auction {
	created := now.AddDate(0, -4, 0)
	return []model.Auction{
		{ID: "auction_1", PropertyID: "prop_1", Title: "Modern Downtown Condo Auction", StartTime: now.Add(-48 * time.Hour), EndTime: now.Add(24 * time.Hour), Status: model.AuctionLive, StartingBid: 750000, CurrentHighestBid: 825000, TotalBids: 4, CreatedAt: created},
		{ID: "auction_2", PropertyID: "prop_2", Title: "Victorian Family Home Auction", StartTime: now.Add(-7 * 24 * time.Hour), EndTime: now.Add(-24 * time.Hour), Status: model.AuctionEnded, StartingBid: 1200000, CurrentHighestBid: 1350000, TotalBids: 3, WinnerID: strPtr("user_2"), CreatedAt: created},
		{ID: "auction_3", PropertyID: "prop_3", Title: "Commercial Office Building Auction", StartTime: now.Add(3 * 24 * time.Hour), EndTime: now.Add(10 * 24 * time.Hour), Status: model.AuctionUpcoming, StartingBid: 2500000, CreatedAt: created},
		{ID: "auction_4", PropertyID: "prop_4", Title: "Suburban Ranch House Auction", StartTime: now.Add(-5 * 24 * time.Hour), EndTime: now.Add(-2 * 24 * time.Hour), Status: model.AuctionEnded, StartingBid: 450000, CurrentHighestBid: 480000, TotalBids: 2, WinnerID: strPtr("user_4"), CreatedAt: created},
		{ID: "auction_5", PropertyID: "prop_5", Title: "Industrial Warehouse Auction", StartTime: now.Add(7 * 24 * time.Hour), EndTime: now.Add(14 * 24 * time.Hour), Status: model.AuctionUpcoming, StartingBid: 1800000, CreatedAt: created},
		{ID: "auction_6", PropertyID: "prop_6", Title: "Beachfront Lot Auction", StartTime: now.Add(-38 * 24 * time.Hour), EndTime: now.Add(-35 * 24 * time.Hour), Status: model.AuctionEnded, StartingBid: 850000, CurrentHighestBid: 950000, TotalBids: 2, WinnerID: strPtr("user_4"), CreatedAt: created},
		{ID: "auction_7", PropertyID: "prop_7", Title: "Retail Strip Center Auction", StartTime: now.Add(-44 * 24 * time.Hour), EndTime: now.Add(-40 * 24 * time.Hour), Status: model.AuctionEnded, StartingBid: 1100000, CurrentHighestBid: 1150000, TotalBids: 2, WinnerID: strPtr("user_4"), CreatedAt: created},
		{ID: "auction_8", PropertyID: "prop_8", Title: "Craftsman Bungalow Auction", StartTime: now.Add(-48 * 24 * time.Hour), EndTime: now.Add(-45 * 24 * time.Hour), Status: model.AuctionEnded, StartingBid: 600000, CurrentHighestBid: 640000, TotalBids: 3, WinnerID: strPtr("user_4"), CreatedAt: created},
		{ID: "auction_9", PropertyID: "prop_4", Title: "Ranch House Relisting", StartTime: now.Add(-52 * 24 * time.Hour), EndTime: now.Add(-50 * 24 * time.Hour), Status: model.AuctionCancelled, StartingBid: 450000, CreatedAt: created},
		{ID: "auction_10", PropertyID: "prop_8", Title: "Bungalow Early Auction", StartTime: now.Add(-22 * 24 * time.Hour), EndTime: now.Add(-20 * 24 * time.Hour), Status: model.AuctionCancelled, StartingBid: 600000, CurrentHighestBid: 320000, TotalBids: 3, CreatedAt: created},
	}
}

func seedBids(now time.Time) []model.Bid {
	return []model.Bid{
		{ID: "bid_1", AuctionID: "auction_1", PropertyID: "prop_1", InvestorID: "user_1", BidAmount: 760000, BidTime: now.Add(-24 * time.Hour), Status: model.BidOutbid},
		{ID: "bid_2", AuctionID: "auction_1", PropertyID: "prop_1", InvestorID: "user_2", BidAmount: 780000, BidTime: now.Add(-20 * time.Hour), Status: model.BidOutbid},
		{ID: "bid_3", AuctionID: "auction_1", PropertyID: "prop_1", InvestorID: "user_3", BidAmount: 800000, BidTime: now.Add(-12 * time.Hour), Status: model.BidOutbid, IsAutoBid: true},
		{ID: "bid_4", AuctionID: "auction_1", PropertyID: "prop_1", InvestorID: "user_4", BidAmount: 825000, BidTime: now.Add(-4 * time.Hour), Status: model.BidWinning},
		{ID: "bid_5", AuctionID: "auction_2", PropertyID: "prop_2", InvestorID: "user_1", BidAmount: 1250000, BidTime: now.Add(-5 * 24 * time.Hour), Status: model.BidOutbid},
		{ID: "bid_6", AuctionID: "auction_2", PropertyID: "prop_2", InvestorID: "user_3", BidAmount: 1300000, BidTime: now.Add(-3 * 24 * time.Hour), Status: model.BidOutbid, IsAutoBid: true},
		{ID: "bid_7", AuctionID: "auction_2", PropertyID: "prop_2", InvestorID: "user_2", BidAmount: 1350000, BidTime: now.Add(-26 * time.Hour), Status: model.BidWon},
		{ID: "bid_8", AuctionID: "auction_4", PropertyID: "prop_4", InvestorID: "user_1", BidAmount: 460000, BidTime: now.Add(-3 * 24 * time.Hour), Status: model.BidOutbid},
		{ID: "bid_9", AuctionID: "auction_4", PropertyID: "prop_4", InvestorID: "user_4", BidAmount: 480000, BidTime: now.Add(-49 * time.Hour), Status: model.BidWon},
		{ID: "bid_10", AuctionID: "auction_6", PropertyID: "prop_6", InvestorID: "user_2", BidAmount: 900000, BidTime: now.Add(-36 * 24 * time.Hour), Status: model.BidOutbid},
		{ID: "bid_11", AuctionID: "auction_6", PropertyID: "prop_6", InvestorID: "user_4", BidAmount: 950000, BidTime: now.Add(-35*24*time.Hour - 2*time.Hour), Status: model.BidWon},
		{ID: "bid_12", AuctionID: "auction_7", PropertyID: "prop_7", InvestorID: "user_6", BidAmount: 1100000, BidTime: now.Add(-41 * 24 * time.Hour), Status: model.BidOutbid},
		{ID: "bid_13", AuctionID: "auction_7", PropertyID: "prop_7", InvestorID: "user_4", BidAmount: 1150000, BidTime: now.Add(-40*24*time.Hour - 3*time.Hour), Status: model.BidWon, IsAutoBid: true},
		{ID: "bid_14", AuctionID: "auction_8", PropertyID: "prop_8", InvestorID: "user_7", BidAmount: 600000, BidTime: now.Add(-47 * 24 * time.Hour), Status: model.BidOutbid},
		{ID: "bid_15", AuctionID: "auction_8", PropertyID: "prop_8", InvestorID: "user_8", BidAmount: 620000, BidTime: now.Add(-46 * 24 * time.Hour), Status: model.BidOutbid},
		{ID: "bid_16", AuctionID: "auction_8", PropertyID: "prop_8", InvestorID: "user_4", BidAmount: 640000, BidTime: now.Add(-45*24*time.Hour - 1*time.Hour), Status: model.BidWon},
		{ID: "bid_17", AuctionID: "auction_10", PropertyID: "prop_8", InvestorID: "user_5", BidAmount: 300000, BidTime: now.Add(-21 * 24 * time.Hour), Status: model.BidActive},
		{ID: "bid_18", AuctionID: "auction_10", PropertyID: "prop_8", InvestorID: "user_6", BidAmount: 310000, BidTime: now.Add(-21*24*time.Hour - 5*time.Hour), Status: model.BidActive},
		{ID: "bid_19", AuctionID: "auction_10", PropertyID: "prop_8", InvestorID: "user_5", BidAmount: 320000, BidTime: now.Add(-20*24*time.Hour - 8*time.Hour), Status: model.BidActive, IsAutoBid: true},
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
