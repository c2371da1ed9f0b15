package service

import (
	"testing"

	"auctionlytics/internal/model"
)

func TestClassifyDomainGate(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name     string
		query    string
		expected model.Relevance
	}{
		{"weather question", "What's the weather like today?", model.RelevanceOffTopic},
		{"food question", "Best pizza recipe for dinner", model.RelevanceOffTopic},
		{"sports question", "Who won the football match?", model.RelevanceOffTopic},
		{"tech question", "How do I learn python programming?", model.RelevanceOffTopic},
		{"empty query", "", model.RelevanceNoSignal},
		{"gibberish", "asdf qwerty zzz", model.RelevanceNoSignal},
		{"plain greeting", "hello there", model.RelevanceNoSignal},
		{"auction query", "Show me live auctions", model.RelevanceInDomain},
		{"investor query", "Who are the top investors?", model.RelevanceInDomain},
		{"number plus action word", "show me the top 3", model.RelevanceInDomain},
		{"number without action word", "42", model.RelevanceNoSignal},
		// In-domain vocabulary outranks off-topic words in a mixed query
		{"mixed query", "How does the weather affect auction activity?", model.RelevanceInDomain},
		{"word boundary", "restaurants near my property", model.RelevanceInDomain},
		// "price" alone is only a weak signal; off-topic words beat it
		{"price of a laptop", "What's the price of a good laptop?", model.RelevanceOffTopic},
		{"bare price question", "What's the average price?", model.RelevanceInDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifier.Classify(tt.query)
			if result.Relevance != tt.expected {
				t.Errorf("Classify(%q).Relevance = %q, want %q", tt.query, result.Relevance, tt.expected)
			}
		})
	}
}

func TestClassifyIntent(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name     string
		query    string
		expected model.Intent
	}{
		{"top investors", "Who are the top 5 investors by bid amount?", model.IntentTopInvestors},
		{"top bidders", "Show me the top bidders", model.IntentTopBidders},
		{"last month winners", "Who won repeatedly in last month's auctions?", model.IntentLastMonthWinners},
		{"regional", "Which regions had the highest number of bids?", model.IntentRegionalAnalysis},
		{"auction summary", "Give me an auction summary", model.IntentAuctionSummary},
		{"property analysis", "Show me the most active auction categories", model.IntentPropertyAnalysis},
		{"bidding trends", "What's the bidding activity trend over the past 30 days?", model.IntentBiddingTrends},
		{"price analysis", "What's the average price across bids and listings?", model.IntentPriceAnalysis},
		{"time analysis", "What time of day do most bids happen?", model.IntentTimeAnalysis},
		{"comparison", "Compare reserve price vs winning bid for completed auctions", model.IntentComparison},
		{"live auctions", "Show me live auctions", model.IntentLiveAuctions},
		{"upcoming auctions", "Show upcoming auctions by city", model.IntentUpcomingAuctions},
		{"completed auctions", "List the ended auctions", model.IntentCompletedAuctions},
		{"cancelled auctions", "How many cancelled auctions are there?", model.IntentCancelledAuctions},
		{"default fallback", "Tell me about the auction market", model.IntentGeneralAnalysis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifier.Classify(tt.query)
			if result.Relevance != model.RelevanceInDomain {
				t.Fatalf("Classify(%q).Relevance = %q, want in_domain", tt.query, result.Relevance)
			}
			if result.PrimaryIntent != tt.expected {
				t.Errorf("Classify(%q).PrimaryIntent = %q, want %q", tt.query, result.PrimaryIntent, tt.expected)
			}
		})
	}
}

func TestClassifyTableOrderPrecedence(t *testing.T) {
	classifier := NewClassifier()

	// Matches both top_bidders ("top bidder") and comparison ("compare");
	// top_bidders is declared first so it wins.
	result := classifier.Classify("Compare the top bidders across auctions")
	if result.PrimaryIntent != model.IntentTopBidders {
		t.Errorf("PrimaryIntent = %q, want %q", result.PrimaryIntent, model.IntentTopBidders)
	}
	if len(result.AllIntents) < 2 {
		t.Errorf("AllIntents = %v, want at least 2 matched intents", result.AllIntents)
	}
}

func TestExtractEntities(t *testing.T) {
	classifier := NewClassifier()

	result := classifier.Classify("Show the top 5 residential properties in San Francisco from last month")

	if len(result.Entities.Numbers) != 1 || result.Entities.Numbers[0] != 5 {
		t.Errorf("Numbers = %v, want [5]", result.Entities.Numbers)
	}
	if len(result.Entities.Locations) != 1 || result.Entities.Locations[0] != "San Francisco" {
		t.Errorf("Locations = %v, want [San Francisco]", result.Entities.Locations)
	}
	if len(result.Entities.PropertyTypes) != 1 || result.Entities.PropertyTypes[0] != "residential" {
		t.Errorf("PropertyTypes = %v, want [residential]", result.Entities.PropertyTypes)
	}
	if len(result.Entities.TimePhrases) != 1 || result.Entities.TimePhrases[0] != "last month" {
		t.Errorf("TimePhrases = %v, want [last month]", result.Entities.TimePhrases)
	}
}

func TestExtractEntitiesTopNumberNeedsKeyword(t *testing.T) {
	classifier := NewClassifier()

	// A bare number is not a "top N" request
	result := classifier.Classify("Show me auctions from 2024")
	if len(result.Entities.Numbers) != 0 {
		t.Errorf("Numbers = %v, want none for a year mention", result.Entities.Numbers)
	}
}
