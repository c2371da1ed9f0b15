package service

import (
	"regexp"
	"strconv"
	"strings"

	"auctionlytics/internal/model"
)

// Classifier maps a free-text query to a symbolic intent plus extracted
// entities using ordered substring matching against a fixed keyword table.
// Classification never fails: absence of a match degrades to the default
// intent, and the domain gate resolves queries this service cannot answer.
type Classifier struct{}

// NewClassifier creates a new classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// intentTable is evaluated in declaration order: the primary intent is the
// first entry with a matching phrase, not the best or longest match.
var intentTable = []struct {
	intent  model.Intent
	phrases []string
}{
	{model.IntentTopBidders, []string{
		"top bidder", "biggest bidder", "highest bidder", "most active bidder",
	}},
	{model.IntentTopInvestors, []string{
		"top investor", "best investor", "leading investor", "top 5 investor",
		"top 10 investor", "investors by bid", "biggest investor",
	}},
	{model.IntentLastMonthWinners, []string{
		"last month winner", "winners last month", "won last month",
		"winners from last month", "recent winner", "won repeatedly",
		"repeat winner",
	}},
	{model.IntentAuctionSummary, []string{
		"auction summary", "auction overview", "how many auction",
		"auction statistics", "auction stats", "summary of auction",
	}},
	{model.IntentPropertyAnalysis, []string{
		"property analysis", "property type", "property breakdown",
		"properties by type", "most active auction categories", "category",
	}},
	{model.IntentBiddingTrends, []string{
		"bidding trend", "bid trend", "bidding activity", "bid activity",
		"bidding pattern",
	}},
	{model.IntentRegionalAnalysis, []string{
		"region", "by city", "by state", "across cities", "which cities",
		"which city", "geographic",
	}},
	{model.IntentPriceAnalysis, []string{
		"price analysis", "price range", "price distribution", "average price",
		"price bucket", "price breakdown",
	}},
	{model.IntentTimeAnalysis, []string{
		"time of day", "what time", "by hour", "hourly", "peak time",
		"when do people bid",
	}},
	{model.IntentComparison, []string{
		"compare", "comparison", "versus", " vs ", "reserve vs", "difference between",
	}},
	{model.IntentLiveAuctions, []string{
		"live auction", "active auction", "ongoing auction", "happening now",
		"auctions right now",
	}},
	{model.IntentUpcomingAuctions, []string{
		"upcoming auction", "next auction", "future auction", "scheduled auction",
	}},
	{model.IntentCompletedAuctions, []string{
		"completed auction", "ended auction", "past auction", "finished auction",
		"closed auction",
	}},
	{model.IntentCancelledAuctions, []string{
		"cancelled auction", "canceled auction", "withdrawn auction",
	}},
}

// inDomainKeywords is the auction/property/investor/bid vocabulary that marks
// a query as answerable. Plain substring matching, like the intent table.
var inDomainKeywords = []string{
	"auction", "bid", "bidder", "invest", "investor", "property", "properties",
	"real estate", "listing", "reserve", "winner", "win rate", "seller",
	"buyer", "portfolio", "market value", "region", "city",
	"cancellation", "success rate",
}

// weakDomainKeywords are generic commerce words that mark a query answerable
// only when nothing off-topic matched: "average price" is ours, "price of a
// laptop" is not.
var weakDomainKeywords = []string{"price"}

// outOfDomainPattern covers topics this service explicitly refuses. Word
// boundaries avoid false positives inside longer unrelated words.
var outOfDomainPattern = regexp.MustCompile(`\b(?:` +
	`weather|rain|snow|temperature|forecast|sunny|storm|` + // weather
	`pizza|recipe|restaurant|cooking|burger|sushi|dinner|breakfast|` + // food
	`football|soccer|basketball|baseball|tennis|cricket|golf|olympics|` + // sports
	`movie|music|song|netflix|film|concert|celebrity|` + // entertainment
	`doctor|medicine|headache|symptom|diet|workout|fitness|` + // health
	`python|javascript|iphone|laptop|programming|software|` + // general tech
	`flight|hotel|vacation|visa|passport|sightseeing|` + // travel
	`girlfriend|boyfriend|dating|marriage|wedding` + // relationships
	`)\b`)

// actionWords feed the "number plus an action word" fallback heuristic
var actionWords = []string{
	"show", "list", "top", "compare", "analyze", "analyse", "give", "find",
	"what", "which", "how many",
}

var topNumberPattern = regexp.MustCompile(`(?:top|first|best)\s+(\d+)`)

var digitPattern = regexp.MustCompile(`\d`)

// timePhrases recognized as relative-time entities, longest variants first
var timePhrases = []string{
	"past 30 days", "last 30 days", "past 7 days", "last month", "this month",
	"past month", "last week", "this week", "past week", "last year",
	"this year", "yesterday", "today",
}

// knownLocations mirrors the cities and states present in the demo dataset
var knownLocations = []string{
	"san francisco", "los angeles", "new york", "chicago", "houston", "miami",
	"phoenix", "seattle", "california", "texas", "florida", "illinois",
	"arizona", "washington",
}

var propertyTypeWords = []string{"residential", "commercial", "industrial", "land"}

// Classify maps a free-text query to an intent and entity bag.
// The domain gate runs first: queries with in-domain vocabulary proceed,
// out-of-domain topics short-circuit to an off-topic verdict, and queries
// with no signal at all short-circuit to a no-signal verdict.
func (c *Classifier) Classify(query string) model.Classification {
	message := strings.ToLower(strings.TrimSpace(query))

	result := model.Classification{
		Relevance:     c.gate(message),
		PrimaryIntent: model.IntentGeneralAnalysis,
		AllIntents:    []model.Intent{},
		Entities:      c.extractEntities(message),
	}
	if result.Relevance != model.RelevanceInDomain {
		return result
	}

	for _, entry := range intentTable {
		for _, phrase := range entry.phrases {
			if strings.Contains(message, phrase) {
				result.AllIntents = append(result.AllIntents, entry.intent)
				break
			}
		}
	}

	// Primary intent is the first match in table order
	if len(result.AllIntents) > 0 {
		result.PrimaryIntent = result.AllIntents[0]
	}

	return result
}

// gate decides whether the query is answerable at all. In-domain vocabulary
// wins over out-of-domain topics so mixed queries still get an answer.
func (c *Classifier) gate(message string) model.Relevance {
	if message == "" {
		return model.RelevanceNoSignal
	}

	for _, keyword := range inDomainKeywords {
		if strings.Contains(message, keyword) {
			return model.RelevanceInDomain
		}
	}

	if outOfDomainPattern.MatchString(message) {
		return model.RelevanceOffTopic
	}

	for _, keyword := range weakDomainKeywords {
		if strings.Contains(message, keyword) {
			return model.RelevanceInDomain
		}
	}

	// A number next to an action word is enough of a hint to try
	if digitPattern.MatchString(message) {
		for _, word := range actionWords {
			if strings.Contains(message, word) {
				return model.RelevanceInDomain
			}
		}
	}

	return model.RelevanceNoSignal
}

func (c *Classifier) extractEntities(message string) model.Entities {
	entities := model.Entities{}

	for _, phrase := range timePhrases {
		if strings.Contains(message, phrase) {
			entities.TimePhrases = append(entities.TimePhrases, phrase)
		}
	}

	for _, location := range knownLocations {
		if strings.Contains(message, location) {
			entities.Locations = append(entities.Locations, titleCase(location))
		}
	}

	for _, word := range propertyTypeWords {
		if strings.Contains(message, word) {
			entities.PropertyTypes = append(entities.PropertyTypes, word)
		}
	}

	for _, match := range topNumberPattern.FindAllStringSubmatch(message, -1) {
		if n, err := strconv.Atoi(match[1]); err == nil {
			entities.Numbers = append(entities.Numbers, n)
		}
	}

	return entities
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
