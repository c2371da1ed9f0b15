package model

// Intent is a symbolic tag classifying what kind of analytical answer a
// free-text query is asking for.
type Intent string

const (
	IntentTopBidders        Intent = "top_bidders"
	IntentTopInvestors      Intent = "top_investors"
	IntentLastMonthWinners  Intent = "last_month_winners"
	IntentAuctionSummary    Intent = "auction_summary"
	IntentPropertyAnalysis  Intent = "property_analysis"
	IntentBiddingTrends     Intent = "bidding_trends"
	IntentRegionalAnalysis  Intent = "regional_analysis"
	IntentPriceAnalysis     Intent = "price_analysis"
	IntentTimeAnalysis      Intent = "time_analysis"
	IntentComparison        Intent = "comparison"
	IntentLiveAuctions      Intent = "live_auctions"
	IntentUpcomingAuctions  Intent = "upcoming_auctions"
	IntentCompletedAuctions Intent = "completed_auctions"
	IntentCancelledAuctions Intent = "cancelled_auctions"
	IntentGeneralAnalysis   Intent = "general_analysis"
)

// Relevance is the verdict of the domain gate that runs before classification
type Relevance string

const (
	// RelevanceInDomain means the query can be classified and aggregated
	RelevanceInDomain Relevance = "in_domain"
	// RelevanceOffTopic means the query matched an out-of-domain keyword
	RelevanceOffTopic Relevance = "off_topic"
	// RelevanceNoSignal means no domain signal was found at all
	RelevanceNoSignal Relevance = "no_signal"
)

// Entities is the bag of structured values extracted from a query to
// parametrize an aggregation.
type Entities struct {
	TimePhrases   []string `json:"time_phrases,omitempty"`
	Locations     []string `json:"locations,omitempty"`
	PropertyTypes []string `json:"property_types,omitempty"`
	Numbers       []int    `json:"numbers,omitempty"`
}

// Classification is the full result of classifying a free-text query
type Classification struct {
	Relevance     Relevance `json:"relevance"`
	PrimaryIntent Intent    `json:"primary_intent"`
	AllIntents    []Intent  `json:"all_intents"`
	Entities      Entities  `json:"entities"`
}
