package service

import (
	"testing"
	"time"

	"auctionlytics/internal/model"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

// testDataset builds a small fixture with known aggregate answers
func testDataset() *dataset {
	return &dataset{
		users: []model.User{
			{ID: "u1", Name: "Alice", Location: "San Francisco, CA", ProfileVerified: true, SuccessRate: 60},
			{ID: "u2", Name: "Bob", Location: "Austin, TX", ProfileVerified: false, SuccessRate: 40},
			{ID: "u3", Name: "Carol", Location: "Miami, FL", ProfileVerified: true, SuccessRate: 75},
		},
		properties: []model.Property{
			{ID: "p1", Title: "Bayview Condo", City: "San Francisco", PropertyType: model.PropertyResidential, ReservePrice: 800000, EstimatedValue: 950000},
			{ID: "p2", Title: "Downtown Office", City: "San Francisco", PropertyType: model.PropertyCommercial, ReservePrice: 2000000, EstimatedValue: 2400000},
			{ID: "p3", Title: "Lakeside Lot", City: "Austin", PropertyType: model.PropertyLand, ReservePrice: 300000, EstimatedValue: 350000},
		},
		auctions: []model.Auction{
			{ID: "a1", PropertyID: "p1", Title: "Bayview Condo Auction", Status: model.AuctionEnded,
				EndTime: testNow.AddDate(0, 0, -35), WinnerID: strPtr("u1"), CurrentHighestBid: 900000, TotalBids: 4, StartTime: testNow.AddDate(0, 0, -40)},
			{ID: "a2", PropertyID: "p2", Title: "Downtown Office Auction", Status: model.AuctionEnded,
				EndTime: testNow.AddDate(0, 0, -40), WinnerID: strPtr("u1"), CurrentHighestBid: 2200000, TotalBids: 6, StartTime: testNow.AddDate(0, 0, -45)},
			{ID: "a3", PropertyID: "p3", Title: "Lakeside Lot Auction", Status: model.AuctionEnded,
				EndTime: testNow.AddDate(0, 0, -45), WinnerID: strPtr("u1"), CurrentHighestBid: 320000, TotalBids: 2, StartTime: testNow.AddDate(0, 0, -50)},
			{ID: "a4", PropertyID: "p1", Title: "Relisted Condo Auction", Status: model.AuctionEnded,
				EndTime: testNow.AddDate(0, 0, -38), WinnerID: strPtr("u2"), CurrentHighestBid: 850000, TotalBids: 3, StartTime: testNow.AddDate(0, 0, -42)},
			{ID: "a5", PropertyID: "p2", Title: "Office Reauction", Status: model.AuctionLive,
				CurrentHighestBid: 2100000, TotalBids: 5, StartTime: testNow.AddDate(0, 0, -1), EndTime: testNow.AddDate(0, 0, 2)},
			{ID: "a6", PropertyID: "p3", Title: "Cancelled Lot Auction", Status: model.AuctionCancelled,
				TotalBids: 0, StartTime: testNow.AddDate(0, 0, 5), EndTime: testNow.AddDate(0, 0, 7)},
			{ID: "a7", PropertyID: "p1", Title: "Cancelled Condo Auction", Status: model.AuctionCancelled,
				TotalBids: 2, StartTime: testNow.AddDate(0, 0, -10), EndTime: testNow.AddDate(0, 0, -8)},
		},
		bids: []model.Bid{
			{ID: "b1", AuctionID: "a1", InvestorID: "u1", BidAmount: 900000, Status: model.BidWon, BidTime: testNow.AddDate(0, 0, -36)},
			{ID: "b2", AuctionID: "a1", InvestorID: "u2", BidAmount: 880000, Status: model.BidOutbid, BidTime: testNow.AddDate(0, 0, -36)},
			{ID: "b3", AuctionID: "a2", InvestorID: "u1", BidAmount: 2200000, Status: model.BidWon, BidTime: testNow.AddDate(0, 0, -41)},
			{ID: "b4", AuctionID: "a5", InvestorID: "u2", BidAmount: 2100000, Status: model.BidWinning, BidTime: testNow.AddDate(0, 0, -1), IsAutoBid: true},
			{ID: "b5", AuctionID: "a5", InvestorID: "u3", BidAmount: 450000, Status: model.BidOutbid, BidTime: testNow.AddDate(0, 0, -2)},
		},
	}
}

func TestTopInvestors(t *testing.T) {
	data := testDataset()

	results := topInvestors(data, 10)
	if len(results) != 3 {
		t.Fatalf("got %d investors, want 3", len(results))
	}

	// u1: 900K + 2.2M = 3.1M, u2: 880K + 2.1M = 2.98M, u3: 450K
	if results[0].UserID != "u1" || results[1].UserID != "u2" || results[2].UserID != "u3" {
		t.Errorf("order = %s, %s, %s; want u1, u2, u3", results[0].UserID, results[1].UserID, results[2].UserID)
	}
	if results[0].TotalAmount != 3100000 {
		t.Errorf("u1 total = %.0f, want 3100000", results[0].TotalAmount)
	}
	if results[0].Name != "Alice" {
		t.Errorf("u1 name = %q, want Alice (joined from users)", results[0].Name)
	}
	if results[0].WinningBids != 2 {
		t.Errorf("u1 winning bids = %d, want 2", results[0].WinningBids)
	}
	if results[1].MinBid != 880000 || results[1].MaxBid != 2100000 {
		t.Errorf("u2 min/max = %.0f/%.0f, want 880000/2100000", results[1].MinBid, results[1].MaxBid)
	}

	// Truncation
	top1 := topInvestors(data, 1)
	if len(top1) != 1 || top1[0].UserID != "u1" {
		t.Errorf("topInvestors(1) = %v, want just u1", top1)
	}
}

func TestTopInvestorsEmptyLedger(t *testing.T) {
	results := topInvestors(&dataset{}, 5)
	if len(results) != 0 {
		t.Errorf("got %d investors from an empty ledger, want 0", len(results))
	}
}

func TestLastMonthWinners(t *testing.T) {
	data := testDataset()

	// Window is 60 to 30 days before now; a1 (-35), a2 (-40), a3 (-45) and
	// a4 (-38) all fall inside it. u1 has 3 wins, u2 has 1.
	results := lastMonthWinners(data, testNow, 30, 2)
	if len(results) != 1 {
		t.Fatalf("got %d qualifying winners, want 1", len(results))
	}
	if results[0].UserID != "u1" || results[0].Wins != 3 {
		t.Errorf("winner = %s with %d wins, want u1 with 3", results[0].UserID, results[0].Wins)
	}
	if results[0].TotalSpend != 3420000 {
		t.Errorf("total spend = %.0f, want 3420000", results[0].TotalSpend)
	}

	// With the threshold at 0 both winners qualify, ordered by wins
	all := lastMonthWinners(data, testNow, 30, 0)
	if len(all) != 2 || all[0].UserID != "u1" || all[1].UserID != "u2" {
		t.Errorf("winners = %v, want [u1 u2]", all)
	}
}

func TestLastMonthWinnersEmptyWindow(t *testing.T) {
	data := testDataset()

	// A year from now nothing falls inside the window
	results := lastMonthWinners(data, testNow.AddDate(1, 0, 0), 30, 2)
	if len(results) != 0 {
		t.Errorf("got %d winners outside the window, want 0", len(results))
	}
}

func TestRegionalAnalysis(t *testing.T) {
	data := testDataset()

	results := regionalAnalysis(data)
	if len(results) != 2 {
		t.Fatalf("got %d cities, want 2", len(results))
	}

	// San Francisco: 2.8M reserve across 2 properties, sorted first
	sf := results[0]
	if sf.City != "San Francisco" {
		t.Fatalf("first city = %q, want San Francisco", sf.City)
	}
	if sf.Properties != 2 || sf.TotalValue != 2800000 {
		t.Errorf("SF = %d properties / %.0f total, want 2 / 2800000", sf.Properties, sf.TotalValue)
	}
	if sf.AvgPrice != sf.TotalValue/2 {
		t.Errorf("SF avg = %.0f, want total/count", sf.AvgPrice)
	}
	// Bid volume joined through auctions: a1(4) + a2(6) + a4(3) + a5(5) + a7(2)
	if sf.Bids != 20 {
		t.Errorf("SF bids = %d, want 20", sf.Bids)
	}
	if len(sf.Types) != 2 {
		t.Errorf("SF types = %v, want residential and commercial", sf.Types)
	}
}

func TestRegionalAnalysisSingleCity(t *testing.T) {
	data := &dataset{
		properties: []model.Property{
			{ID: "p1", City: "Denver", PropertyType: model.PropertyResidential, ReservePrice: 400000},
			{ID: "p2", City: "Denver", PropertyType: model.PropertyLand, ReservePrice: 200000},
			{ID: "p3", City: "Denver", PropertyType: model.PropertyResidential, ReservePrice: 300000},
		},
		auctions: []model.Auction{
			{ID: "a1", PropertyID: "p1", Status: model.AuctionLive, TotalBids: 3},
		},
	}

	results := regionalAnalysis(data)
	if len(results) != 1 {
		t.Fatalf("got %d cities, want exactly 1", len(results))
	}
	city := results[0]
	if city.City != "Denver" || city.Properties != 3 {
		t.Errorf("city = %s with %d properties, want Denver with 3", city.City, city.Properties)
	}
	if city.AvgPrice != 300000 {
		t.Errorf("avg = %.0f, want 300000 (total/count)", city.AvgPrice)
	}
	if city.Bids != 3 {
		t.Errorf("bids = %d, want 3", city.Bids)
	}

	if empty := regionalAnalysis(&dataset{}); len(empty) != 0 {
		t.Errorf("got %d cities from an empty dataset, want 0", len(empty))
	}
}

func TestAuctionSummary(t *testing.T) {
	data := testDataset()

	stats := auctionSummary(data)
	if stats.Total != 7 {
		t.Errorf("total = %d, want 7", stats.Total)
	}
	if stats.ByStatus[model.AuctionEnded] != 4 || stats.ByStatus[model.AuctionCancelled] != 2 {
		t.Errorf("by status = %v, want 4 ended and 2 cancelled", stats.ByStatus)
	}
	if stats.EndedWithWinner != 4 {
		t.Errorf("ended with winner = %d, want 4", stats.EndedWithWinner)
	}
	if stats.TotalBidVolume != 22 {
		t.Errorf("bid volume = %d, want 22", stats.TotalBidVolume)
	}
}

func TestPropertyAnalysis(t *testing.T) {
	data := testDataset()

	results := propertyAnalysis(data)
	if len(results) != 3 {
		t.Fatalf("got %d property types, want 3", len(results))
	}
	for _, stats := range results {
		if stats.Count != 1 {
			t.Errorf("%s count = %d, want 1", stats.Type, stats.Count)
		}
		if stats.AvgUpside != stats.AvgEstimated-stats.AvgReserve {
			t.Errorf("%s upside = %.0f, want estimated minus reserve", stats.Type, stats.AvgUpside)
		}
	}
}

func TestPriceAnalysisBuckets(t *testing.T) {
	data := testDataset()

	stats := priceAnalysis(data)
	// 450K under 500K; 900K and 880K in 500K-1M; 2.2M and 2.1M over 2M
	wantCounts := []int{1, 2, 0, 2}
	for i, want := range wantCounts {
		if stats.Buckets[i].Count != want {
			t.Errorf("bucket %q = %d, want %d", stats.Buckets[i].Label, stats.Buckets[i].Count, want)
		}
	}
	if stats.MinBid != 450000 || stats.MaxBid != 2200000 {
		t.Errorf("min/max = %.0f/%.0f, want 450000/2200000", stats.MinBid, stats.MaxBid)
	}
}

func TestReserveComparison(t *testing.T) {
	data := testDataset()

	results := reserveComparison(data)
	if len(results) != 4 {
		t.Fatalf("got %d comparisons, want 4", len(results))
	}
	// Sorted by premium percent descending
	for i := 1; i < len(results); i++ {
		if results[i].PremiumPct > results[i-1].PremiumPct {
			t.Errorf("comparisons not sorted: %f before %f", results[i-1].PremiumPct, results[i].PremiumPct)
		}
	}
	// a1: (900K - 800K) / 800K = 12.5%
	for _, comparison := range results {
		if comparison.Auction == "Bayview Condo Auction" && comparison.PremiumPct != 12.5 {
			t.Errorf("condo premium = %f, want 12.5", comparison.PremiumPct)
		}
	}
}

func TestAuctionsByStatus(t *testing.T) {
	data := testDataset()

	live := auctionsByStatus(data, model.AuctionLive)
	if len(live) != 1 || live[0].Auction.ID != "a5" {
		t.Fatalf("live = %v, want just a5", live)
	}
	if live[0].City != "San Francisco" || live[0].Type != model.PropertyCommercial {
		t.Errorf("live join = %s/%s, want San Francisco/commercial", live[0].City, live[0].Type)
	}

	ended := auctionsByStatus(data, model.AuctionEnded)
	if len(ended) != 4 {
		t.Errorf("got %d ended auctions, want 4", len(ended))
	}
	for i := 1; i < len(ended); i++ {
		if ended[i].Auction.StartTime.Before(ended[i-1].Auction.StartTime) {
			t.Error("ended auctions not sorted by start time")
		}
	}
}

func TestGeneralAnalysis(t *testing.T) {
	data := testDataset()

	stats := generalAnalysis(data)
	if stats.Users != 3 || stats.Properties != 3 || stats.Auctions != 7 || stats.Bids != 5 {
		t.Errorf("counts = %d/%d/%d/%d, want 3/3/7/5", stats.Users, stats.Properties, stats.Auctions, stats.Bids)
	}
	if stats.CancelledNoBids != 1 || stats.CancelledWithBids != 1 {
		t.Errorf("cancelled split = %d/%d, want 1/1", stats.CancelledNoBids, stats.CancelledWithBids)
	}
	wantRate := 2.0 / 7.0 * 100
	if stats.CancellationRate != wantRate {
		t.Errorf("cancellation rate = %f, want %f", stats.CancellationRate, wantRate)
	}
	if stats.VerifiedInvestors != 2 {
		t.Errorf("verified investors = %d, want 2", stats.VerifiedInvestors)
	}
}

func TestAggregatesAreRepeatable(t *testing.T) {
	data := testDataset()

	first := topInvestors(data, 3)
	second := topInvestors(data, 3)
	if len(first) != len(second) {
		t.Fatalf("repeat run returned %d investors, first run %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("investor %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}

	// The pass must not mutate the dataset it reads
	if data.bids[0].BidAmount != 900000 || len(data.bids) != 5 {
		t.Error("aggregation mutated the bid ledger")
	}

	generalFirst := generalAnalysis(data)
	generalSecond := generalAnalysis(data)
	if generalFirst.TotalBidAmount != generalSecond.TotalBidAmount ||
		generalFirst.CancellationRate != generalSecond.CancellationRate {
		t.Error("general analysis differs between runs over the same dataset")
	}
}

func TestBiddingTrends(t *testing.T) {
	data := testDataset()

	stats := biddingTrends(data, testNow)
	// Only b4 (-1d) and b5 (-2d) fall inside the 30-day window
	if stats.TotalBids != 2 {
		t.Fatalf("total bids = %d, want 2", stats.TotalBids)
	}
	if stats.AutoBids != 1 {
		t.Errorf("auto bids = %d, want 1", stats.AutoBids)
	}
	if len(stats.Days) != 2 {
		t.Fatalf("got %d trend days, want 2", len(stats.Days))
	}
	if stats.Days[0].Day > stats.Days[1].Day {
		t.Error("trend days not in ascending order")
	}
}
