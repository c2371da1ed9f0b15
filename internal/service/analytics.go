package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"auctionlytics/internal/config"
	"auctionlytics/internal/model"
	"auctionlytics/internal/utils"
)

// DataSource is the bulk fetch capability the responder reads from. The four
// collections are loaded in full on every query; filtering happens locally.
type DataSource interface {
	FetchAllUsers(ctx context.Context) ([]model.User, error)
	FetchAllProperties(ctx context.Context) ([]model.Property, error)
	FetchAllAuctions(ctx context.Context) ([]model.Auction, error)
	FetchAllBids(ctx context.Context) ([]model.Bid, error)
}

// Analytics answers chat queries: classify, aggregate, format. An optional
// text generator may produce the envelope instead, with the local aggregation
// path as its structural fallback.
type Analytics struct {
	source     DataSource
	classifier *Classifier
	generator  TextGenerator
	cfg        config.AnalyticsConfig
	now        func() time.Time
}

// NewAnalytics creates the analytics service. generator may be nil.
func NewAnalytics(source DataSource, classifier *Classifier, generator TextGenerator, cfg config.AnalyticsConfig) *Analytics {
	return &Analytics{
		source:     source,
		classifier: classifier,
		generator:  generator,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Classify exposes the query classifier to the HTTP layer
func (a *Analytics) Classify(query string) model.Classification {
	return a.classifier.Classify(query)
}

// Respond answers a free-text query with a complete response envelope.
// It never returns an error: every failure path terminates in a well-formed
// envelope (spelled out per failure class below).
func (a *Analytics) Respond(ctx context.Context, query string) *model.ChatResponse {
	classification := a.classifier.Classify(query)

	switch classification.Relevance {
	case model.RelevanceOffTopic:
		return offTopicResponse()
	case model.RelevanceNoSignal:
		return noDataResponse()
	}

	data, err := a.fetch(ctx)
	if err != nil {
		log.Printf("Analytics: data fetch failed: %v", err)
		return retryResponse()
	}

	// Optional model-generated envelope; one attempt, local path on failure
	if a.generator != nil && a.generator.IsEnabled() {
		if response, err := a.generate(ctx, query, data); err == nil {
			return response
		} else {
			log.Printf("Analytics: model generation failed, using local aggregation: %v", err)
		}
	}

	return a.respondLocally(classification, data)
}

func (a *Analytics) fetch(ctx context.Context) (*dataset, error) {
	users, err := a.source.FetchAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	properties, err := a.source.FetchAllProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch properties: %w", err)
	}
	auctions, err := a.source.FetchAllAuctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch auctions: %w", err)
	}
	bids, err := a.source.FetchAllBids(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch bids: %w", err)
	}
	return &dataset{users: users, properties: properties, auctions: auctions, bids: bids}, nil
}

// respondLocally dispatches the classified intent to its aggregation pass
func (a *Analytics) respondLocally(classification model.Classification, data *dataset) *model.ChatResponse {
	switch classification.PrimaryIntent {
	case model.IntentTopBidders, model.IntentTopInvestors:
		return formatTopInvestors(topInvestors(data, a.topCount(classification.Entities)))
	case model.IntentLastMonthWinners:
		return formatLastMonthWinners(lastMonthWinners(data, a.now(), a.cfg.WinnerWindowDays, a.cfg.MinWindowWins))
	case model.IntentRegionalAnalysis:
		return formatRegional(regionalAnalysis(data))
	case model.IntentAuctionSummary:
		return formatAuctionSummary(auctionSummary(data))
	case model.IntentPropertyAnalysis:
		return formatPropertyAnalysis(propertyAnalysis(data))
	case model.IntentBiddingTrends:
		return formatBiddingTrends(biddingTrends(data, a.now()))
	case model.IntentPriceAnalysis:
		return formatPriceAnalysis(priceAnalysis(data))
	case model.IntentTimeAnalysis:
		return formatTimeAnalysis(timeAnalysis(data))
	case model.IntentComparison:
		return formatComparison(reserveComparison(data))
	case model.IntentLiveAuctions:
		return formatStatusAuctions(model.AuctionLive, auctionsByStatus(data, model.AuctionLive))
	case model.IntentUpcomingAuctions:
		return formatStatusAuctions(model.AuctionUpcoming, auctionsByStatus(data, model.AuctionUpcoming))
	case model.IntentCompletedAuctions:
		return formatStatusAuctions(model.AuctionEnded, auctionsByStatus(data, model.AuctionEnded))
	case model.IntentCancelledAuctions:
		return formatStatusAuctions(model.AuctionCancelled, auctionsByStatus(data, model.AuctionCancelled))
	default:
		return formatGeneral(generalAnalysis(data))
	}
}

// topCount resolves the requested "top N" with the configured default and cap
func (a *Analytics) topCount(entities model.Entities) int {
	count := a.cfg.DefaultTopCount
	if len(entities.Numbers) > 0 && entities.Numbers[0] > 0 {
		count = entities.Numbers[0]
	}
	if a.cfg.MaxTopCount > 0 && count > a.cfg.MaxTopCount {
		count = a.cfg.MaxTopCount
	}
	return count
}

const generatorSystemPrompt = `You are a real estate auction analytics assistant. Answer the user's question using ONLY the dataset digest provided below.

Respond with valid JSON matching this exact shape:
{
  "response": "markdown prose answering the question",
  "charts": [{"data": [{"key": "value"}], "type": "bar|line|donut|pie|area|scatter", "title": "...", "description": "..."}],
  "tables": [{"headers": ["..."], "rows": [["..."]], "title": "...", "description": "..."}],
  "summary_points": ["2-4 short insight strings"]
}

Rules:
- Every table row must have exactly as many cells as there are headers
- Use 2-3 charts with different types
- Respond ONLY with JSON, no surrounding text`

// generate asks the external model for the envelope and validates it.
// Any parse or validation failure is returned so the caller can fall back.
func (a *Analytics) generate(ctx context.Context, query string, data *dataset) (*model.ChatResponse, error) {
	prompt := fmt.Sprintf("Dataset digest:\n%s\n\nQuestion: %s", datasetDigest(data), query)

	raw, err := a.generator.Generate(ctx, generatorSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}

	var response model.ChatResponse
	if err := utils.ParseModelJSON(raw, &response); err != nil {
		return nil, fmt.Errorf("envelope parse failed: %w", err)
	}

	if err := validateEnvelope(&response); err != nil {
		return nil, fmt.Errorf("envelope validation failed: %w", err)
	}
	return &response, nil
}

var validChartTypes = map[string]bool{
	model.ChartBar:     true,
	model.ChartLine:    true,
	model.ChartDonut:   true,
	model.ChartPie:     true,
	model.ChartArea:    true,
	model.ChartScatter: true,
}

// validateEnvelope enforces the envelope invariants on model output before
// it is served: non-empty prose, known chart kinds, rectangular tables.
func validateEnvelope(response *model.ChatResponse) error {
	if strings.TrimSpace(response.Response) == "" {
		return fmt.Errorf("empty response text")
	}
	for i, chart := range response.Charts {
		if !validChartTypes[chart.Type] {
			return fmt.Errorf("chart %d has unknown type %q", i, chart.Type)
		}
	}
	for i, table := range response.Tables {
		for j, row := range table.Rows {
			if len(row) != len(table.Headers) {
				return fmt.Errorf("table %d row %d has %d cells for %d headers", i, j, len(row), len(table.Headers))
			}
		}
	}

	if response.Charts == nil {
		response.Charts = []model.Chart{}
	}
	if response.Tables == nil {
		response.Tables = []model.Table{}
	}
	if response.SummaryPoints == nil {
		response.SummaryPoints = []string{}
	}
	return nil
}

// datasetDigest renders a compact textual summary of the collections for the
// model prompt, instead of shipping the raw records.
func datasetDigest(data *dataset) string {
	var b strings.Builder

	general := generalAnalysis(data)
	fmt.Fprintf(&b, "Totals: %d investors, %d properties, %d auctions, %d bids\n",
		general.Users, general.Properties, general.Auctions, general.Bids)
	fmt.Fprintf(&b, "Auctions by status: %v\n", general.AuctionsByStatus)
	fmt.Fprintf(&b, "Properties by type: %v\n", general.PropertiesByType)

	b.WriteString("Top investors by total bid amount:\n")
	for _, investor := range topInvestors(data, 5) {
		fmt.Fprintf(&b, "- %s (%s): %d bids, %s total, %d winning\n",
			investor.Name, investor.Location, investor.BidCount,
			money(investor.TotalAmount), investor.WinningBids)
	}

	b.WriteString("Cities by portfolio value:\n")
	for _, city := range regionalAnalysis(data) {
		fmt.Fprintf(&b, "- %s: %d properties, %s total, %d bids\n",
			city.City, city.Properties, money(city.TotalValue), city.Bids)
	}

	return b.String()
}
