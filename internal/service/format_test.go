package service

import (
	"fmt"
	"testing"
	"time"

	"auctionlytics/internal/model"
)

func TestFormatStatusAuctionsStableChartOrder(t *testing.T) {
	cities := []string{
		"Greensboro", "Fresno", "El Paso", "Denver",
		"Chicago", "Boston", "Atlanta", "Houston",
	}

	auctions := make([]statusAuction, 0, len(cities))
	for i, city := range cities {
		auctions = append(auctions, statusAuction{
			Auction: model.Auction{
				ID:        fmt.Sprintf("a%d", i),
				Title:     city + " Auction",
				Status:    model.AuctionLive,
				StartTime: testNow.Add(time.Duration(i) * time.Hour),
				EndTime:   testNow.Add(time.Duration(i+24) * time.Hour),
			},
			City:  city,
			Title: city + " Auction",
		})
	}

	cityRows := func(response *model.ChatResponse) []string {
		if len(response.Charts) == 0 {
			t.Fatal("expected a by-city chart")
		}
		rows := make([]string, 0, len(response.Charts[0].Data))
		for _, point := range response.Charts[0].Data {
			rows = append(rows, point["city"].(string))
		}
		return rows
	}

	first := cityRows(formatStatusAuctions(model.AuctionLive, auctions))
	if len(first) != len(cities) {
		t.Fatalf("got %d chart rows, want %d", len(first), len(cities))
	}
	for i, city := range cities {
		if first[i] != city {
			t.Errorf("chart row %d = %s, want %s (input order)", i, first[i], city)
		}
	}

	// Identical calls over the same data must render identically
	for run := 0; run < 50; run++ {
		again := cityRows(formatStatusAuctions(model.AuctionLive, auctions))
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("run %d row %d = %s, first run had %s", run, i, again[i], first[i])
			}
		}
	}
}
