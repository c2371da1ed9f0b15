package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"auctionlytics/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// SQLRepository handles database operations. It works against PostgreSQL in
// deployments and embedded SQLite in demo mode; queries are built with
// squirrel so the placeholder format follows the driver.
type SQLRepository struct {
	db      *sqlx.DB
	builder sq.StatementBuilderType
}

// NewSQLRepository opens a connection for the given driver and verifies it
func NewSQLRepository(driver, dsn string, maxConn, maxIdleConn int) (*SQLRepository, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if driver == "postgres" {
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLRepository{db: db, builder: builder}, nil
}

// Close closes the database connection
func (r *SQLRepository) Close() error {
	return r.db.Close()
}

// schemaStatements use types valid on both PostgreSQL and SQLite
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		name TEXT NOT NULL,
		location TEXT NOT NULL,
		profile_verified BOOLEAN NOT NULL DEFAULT FALSE,
		success_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_bids INTEGER NOT NULL DEFAULT 0,
		won_auctions INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS properties (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		location TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		zipcode TEXT NOT NULL,
		property_type TEXT NOT NULL,
		reserve_price DOUBLE PRECISION NOT NULL,
		estimated_value DOUBLE PRECISION NOT NULL,
		bedrooms INTEGER,
		bathrooms INTEGER,
		square_feet INTEGER,
		lot_size DOUBLE PRECISION,
		year_built INTEGER,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS auctions (
		id TEXT PRIMARY KEY,
		property_id TEXT NOT NULL,
		title TEXT NOT NULL,
		start_time TIMESTAMP NOT NULL,
		end_time TIMESTAMP NOT NULL,
		status TEXT NOT NULL,
		starting_bid DOUBLE PRECISION NOT NULL,
		current_highest_bid DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_bids INTEGER NOT NULL DEFAULT 0,
		winner_id TEXT,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bids (
		id TEXT PRIMARY KEY,
		auction_id TEXT NOT NULL,
		property_id TEXT NOT NULL,
		investor_id TEXT NOT NULL,
		bid_amount DOUBLE PRECISION NOT NULL,
		bid_time TIMESTAMP NOT NULL,
		status TEXT NOT NULL,
		is_auto_bid BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}

// EnsureSchema creates the four collection tables if they do not exist
func (r *SQLRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

var userColumns = []string{
	"id", "email", "name", "location", "profile_verified",
	"success_rate", "total_bids", "won_auctions", "created_at",
}

var propertyColumns = []string{
	"id", "title", "description", "location", "city", "state", "zipcode",
	"property_type", "reserve_price", "estimated_value", "bedrooms",
	"bathrooms", "square_feet", "lot_size", "year_built", "created_at",
}

var auctionColumns = []string{
	"id", "property_id", "title", "start_time", "end_time", "status",
	"starting_bid", "current_highest_bid", "total_bids", "winner_id", "created_at",
}

var bidColumns = []string{
	"id", "auction_id", "property_id", "investor_id", "bid_amount",
	"bid_time", "status", "is_auto_bid",
}

// FetchAllUsers returns every user record
func (r *SQLRepository) FetchAllUsers(ctx context.Context) ([]model.User, error) {
	query, args, err := r.builder.Select(userColumns...).
		From("users").
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build users query: %w", err)
	}

	var users []model.User
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// FetchAllProperties returns every property record
func (r *SQLRepository) FetchAllProperties(ctx context.Context) ([]model.Property, error) {
	query, args, err := r.builder.Select(propertyColumns...).
		From("properties").
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build properties query: %w", err)
	}

	var properties []model.Property
	if err := r.db.SelectContext(ctx, &properties, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}
	return properties, nil
}

// FetchAllAuctions returns every auction record
func (r *SQLRepository) FetchAllAuctions(ctx context.Context) ([]model.Auction, error) {
	query, args, err := r.builder.Select(auctionColumns...).
		From("auctions").
		OrderBy("start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build auctions query: %w", err)
	}

	var auctions []model.Auction
	if err := r.db.SelectContext(ctx, &auctions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch auctions: %w", err)
	}
	return auctions, nil
}

// FetchAllBids returns every bid record
func (r *SQLRepository) FetchAllBids(ctx context.Context) ([]model.Bid, error) {
	query, args, err := r.builder.Select(bidColumns...).
		From("bids").
		OrderBy("bid_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build bids query: %w", err)
	}

	var bids []model.Bid
	if err := r.db.SelectContext(ctx, &bids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch bids: %w", err)
	}
	return bids, nil
}

// GetAuctionByID retrieves a single auction, or nil when it does not exist
func (r *SQLRepository) GetAuctionByID(ctx context.Context, id string) (*model.Auction, error) {
	query, args, err := r.builder.Select(auctionColumns...).
		From("auctions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build auction query: %w", err)
	}

	var auction model.Auction
	if err := r.db.GetContext(ctx, &auction, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get auction: %w", err)
	}
	return &auction, nil
}

// GetPropertyByID retrieves a single property, or nil when it does not exist
func (r *SQLRepository) GetPropertyByID(ctx context.Context, id string) (*model.Property, error) {
	query, args, err := r.builder.Select(propertyColumns...).
		From("properties").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build property query: %w", err)
	}

	var property model.Property
	if err := r.db.GetContext(ctx, &property, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &property, nil
}

// InsertBid stores a new bid and bumps the auction counters. The two writes
// share a transaction but the read-modify-write against concurrent bidders
// is not serialized; the status on the bid is whatever the caller set.
func (r *SQLRepository) InsertBid(ctx context.Context, bid *model.Bid) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	insert, args, err := r.builder.Insert("bids").
		Columns(bidColumns...).
		Values(bid.ID, bid.AuctionID, bid.PropertyID, bid.InvestorID,
			bid.BidAmount, bid.BidTime, bid.Status, bid.IsAutoBid).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build bid insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
		return fmt.Errorf("failed to insert bid: %w", err)
	}

	update, args, err := r.builder.Update("auctions").
		Set("current_highest_bid", sq.Expr(
			"CASE WHEN current_highest_bid < ? THEN ? ELSE current_highest_bid END",
			bid.BidAmount, bid.BidAmount)).
		Set("total_bids", sq.Expr("total_bids + 1")).
		Where(sq.Eq{"id": bid.AuctionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build auction update: %w", err)
	}
	if _, err := tx.ExecContext(ctx, update, args...); err != nil {
		return fmt.Errorf("failed to update auction counters: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bid: %w", err)
	}
	return nil
}

// CountUsers returns the number of user records, used to keep seeding idempotent
func (r *SQLRepository) CountUsers(ctx context.Context) (int, error) {
	query, args, err := r.builder.Select("COUNT(*)").From("users").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
