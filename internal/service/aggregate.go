package service

import (
	"sort"
	"time"

	"auctionlytics/internal/model"
)

// dataset holds the four collections fetched in full for one query. Every
// aggregation below is a pure pass over it; nothing is cached between queries.
type dataset struct {
	users      []model.User
	properties []model.Property
	auctions   []model.Auction
	bids       []model.Bid
}

func (d *dataset) userByID(id string) *model.User {
	for i := range d.users {
		if d.users[i].ID == id {
			return &d.users[i]
		}
	}
	return nil
}

func (d *dataset) propertyByID(id string) *model.Property {
	for i := range d.properties {
		if d.properties[i].ID == id {
			return &d.properties[i]
		}
	}
	return nil
}

// investorStats summarizes one investor's bid ledger
type investorStats struct {
	UserID      string
	Name        string
	Location    string
	Verified    bool
	SuccessRate float64
	BidCount    int
	TotalAmount float64
	MaxBid      float64
	MinBid      float64
	AvgBid      float64
	WinningBids int
}

// topInvestors groups bids by investor, joins user records and returns the
// top n by total bid amount, descending.
func topInvestors(d *dataset, n int) []investorStats {
	byInvestor := make(map[string]*investorStats)
	order := []string{}

	for _, bid := range d.bids {
		stats, ok := byInvestor[bid.InvestorID]
		if !ok {
			stats = &investorStats{UserID: bid.InvestorID, MinBid: bid.BidAmount}
			byInvestor[bid.InvestorID] = stats
			order = append(order, bid.InvestorID)
		}
		stats.BidCount++
		stats.TotalAmount += bid.BidAmount
		if bid.BidAmount > stats.MaxBid {
			stats.MaxBid = bid.BidAmount
		}
		if bid.BidAmount < stats.MinBid {
			stats.MinBid = bid.BidAmount
		}
		if bid.Status == model.BidWinning || bid.Status == model.BidWon {
			stats.WinningBids++
		}
	}

	results := make([]investorStats, 0, len(byInvestor))
	for _, id := range order {
		stats := byInvestor[id]
		if stats.BidCount > 0 {
			stats.AvgBid = stats.TotalAmount / float64(stats.BidCount)
		}
		if user := d.userByID(id); user != nil {
			stats.Name = user.Name
			stats.Location = user.Location
			stats.Verified = user.ProfileVerified
			stats.SuccessRate = user.SuccessRate
		} else {
			stats.Name = id
		}
		results = append(results, *stats)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalAmount > results[j].TotalAmount
	})

	if n > 0 && len(results) > n {
		results = results[:n]
	}
	return results
}

// winnerStats summarizes one investor's wins inside the prior-month window
type winnerStats struct {
	UserID     string
	Name       string
	Wins       int
	TotalSpend float64
}

// lastMonthWinners looks at ended auctions whose end time falls in the fixed
// window from 2*windowDays to windowDays before now, groups them by winner
// and keeps investors with strictly more than minWins wins.
func lastMonthWinners(d *dataset, now time.Time, windowDays, minWins int) []winnerStats {
	windowEnd := now.AddDate(0, 0, -windowDays)
	windowStart := now.AddDate(0, 0, -2*windowDays)

	byWinner := make(map[string]*winnerStats)
	order := []string{}

	for _, auction := range d.auctions {
		if auction.Status != model.AuctionEnded || auction.WinnerID == nil {
			continue
		}
		if auction.EndTime.Before(windowStart) || auction.EndTime.After(windowEnd) {
			continue
		}
		stats, ok := byWinner[*auction.WinnerID]
		if !ok {
			stats = &winnerStats{UserID: *auction.WinnerID}
			byWinner[*auction.WinnerID] = stats
			order = append(order, *auction.WinnerID)
		}
		stats.Wins++
		stats.TotalSpend += auction.CurrentHighestBid
	}

	results := make([]winnerStats, 0, len(byWinner))
	for _, id := range order {
		stats := byWinner[id]
		if stats.Wins <= minWins {
			continue
		}
		if user := d.userByID(id); user != nil {
			stats.Name = user.Name
		} else {
			stats.Name = id
		}
		results = append(results, *stats)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Wins != results[j].Wins {
			return results[i].Wins > results[j].Wins
		}
		return results[i].TotalSpend > results[j].TotalSpend
	})

	return results
}

// cityStats summarizes one city's listings and bidding volume
type cityStats struct {
	City       string
	Properties int
	TotalValue float64
	AvgPrice   float64
	Types      []string
	Bids       int
}

// regionalAnalysis groups properties by city and joins auction bid counts,
// sorted by total reserve value descending.
func regionalAnalysis(d *dataset) []cityStats {
	byCity := make(map[string]*cityStats)
	typesSeen := make(map[string]map[string]bool)
	order := []string{}

	for _, property := range d.properties {
		stats, ok := byCity[property.City]
		if !ok {
			stats = &cityStats{City: property.City}
			byCity[property.City] = stats
			typesSeen[property.City] = make(map[string]bool)
			order = append(order, property.City)
		}
		stats.Properties++
		stats.TotalValue += property.ReservePrice
		typesSeen[property.City][string(property.PropertyType)] = true
	}

	for _, auction := range d.auctions {
		property := d.propertyByID(auction.PropertyID)
		if property == nil {
			continue
		}
		if stats, ok := byCity[property.City]; ok {
			stats.Bids += auction.TotalBids
		}
	}

	results := make([]cityStats, 0, len(byCity))
	for _, city := range order {
		stats := byCity[city]
		if stats.Properties > 0 {
			stats.AvgPrice = stats.TotalValue / float64(stats.Properties)
		}
		for propertyType := range typesSeen[city] {
			stats.Types = append(stats.Types, propertyType)
		}
		sort.Strings(stats.Types)
		results = append(results, *stats)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalValue > results[j].TotalValue
	})

	return results
}

// auctionSummaryStats is a whole-ledger auction overview
type auctionSummaryStats struct {
	Total           int
	ByStatus        map[model.AuctionStatus]int
	TotalBidVolume  int
	AvgStartingBid  float64
	AvgWinningBid   float64
	EndedWithWinner int
}

func auctionSummary(d *dataset) auctionSummaryStats {
	stats := auctionSummaryStats{ByStatus: make(map[model.AuctionStatus]int)}

	startingSum := 0.0
	winningSum := 0.0
	for _, auction := range d.auctions {
		stats.Total++
		stats.ByStatus[auction.Status]++
		stats.TotalBidVolume += auction.TotalBids
		startingSum += auction.StartingBid
		if auction.Status == model.AuctionEnded && auction.WinnerID != nil {
			stats.EndedWithWinner++
			winningSum += auction.CurrentHighestBid
		}
	}

	if stats.Total > 0 {
		stats.AvgStartingBid = startingSum / float64(stats.Total)
	}
	if stats.EndedWithWinner > 0 {
		stats.AvgWinningBid = winningSum / float64(stats.EndedWithWinner)
	}
	return stats
}

// propertyTypeStats summarizes listings of one category
type propertyTypeStats struct {
	Type         model.PropertyType
	Count        int
	AvgReserve   float64
	AvgEstimated float64
	AvgUpside    float64
}

func propertyAnalysis(d *dataset) []propertyTypeStats {
	byType := make(map[model.PropertyType]*propertyTypeStats)
	order := []model.PropertyType{}

	for _, property := range d.properties {
		stats, ok := byType[property.PropertyType]
		if !ok {
			stats = &propertyTypeStats{Type: property.PropertyType}
			byType[property.PropertyType] = stats
			order = append(order, property.PropertyType)
		}
		stats.Count++
		stats.AvgReserve += property.ReservePrice
		stats.AvgEstimated += property.EstimatedValue
	}

	results := make([]propertyTypeStats, 0, len(byType))
	for _, propertyType := range order {
		stats := byType[propertyType]
		if stats.Count > 0 {
			stats.AvgReserve /= float64(stats.Count)
			stats.AvgEstimated /= float64(stats.Count)
			stats.AvgUpside = stats.AvgEstimated - stats.AvgReserve
		}
		results = append(results, *stats)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Count > results[j].Count
	})
	return results
}

// dailyTrend is one day of bidding activity
type dailyTrend struct {
	Day    string
	Bids   int
	Amount float64
}

// trendStats covers the last 30 days of bids
type trendStats struct {
	Days      []dailyTrend
	TotalBids int
	AutoBids  int
}

func biddingTrends(d *dataset, now time.Time) trendStats {
	stats := trendStats{}
	cutoff := now.AddDate(0, 0, -30)
	byDay := make(map[string]*dailyTrend)
	order := []string{}

	for _, bid := range d.bids {
		if bid.BidTime.Before(cutoff) {
			continue
		}
		day := bid.BidTime.Format("2006-01-02")
		trend, ok := byDay[day]
		if !ok {
			trend = &dailyTrend{Day: day}
			byDay[day] = trend
			order = append(order, day)
		}
		trend.Bids++
		trend.Amount += bid.BidAmount
		stats.TotalBids++
		if bid.IsAutoBid {
			stats.AutoBids++
		}
	}

	sort.Strings(order)
	for _, day := range order {
		stats.Days = append(stats.Days, *byDay[day])
	}
	return stats
}

// priceBucket is one slice of the bid-amount distribution
type priceBucket struct {
	Label string
	Count int
}

// priceStats covers bid amounts and the listing price ledger
type priceStats struct {
	Buckets      []priceBucket
	AvgBid       float64
	MaxBid       float64
	MinBid       float64
	AvgReserve   float64
	AvgEstimated float64
}

func priceAnalysis(d *dataset) priceStats {
	stats := priceStats{
		Buckets: []priceBucket{
			{Label: "Under $500K"},
			{Label: "$500K-$1M"},
			{Label: "$1M-$2M"},
			{Label: "Over $2M"},
		},
	}

	sum := 0.0
	for i, bid := range d.bids {
		amount := bid.BidAmount
		switch {
		case amount < 500000:
			stats.Buckets[0].Count++
		case amount < 1000000:
			stats.Buckets[1].Count++
		case amount < 2000000:
			stats.Buckets[2].Count++
		default:
			stats.Buckets[3].Count++
		}
		sum += amount
		if i == 0 || amount > stats.MaxBid {
			stats.MaxBid = amount
		}
		if i == 0 || amount < stats.MinBid {
			stats.MinBid = amount
		}
	}
	if len(d.bids) > 0 {
		stats.AvgBid = sum / float64(len(d.bids))
	}

	reserveSum := 0.0
	estimatedSum := 0.0
	for _, property := range d.properties {
		reserveSum += property.ReservePrice
		estimatedSum += property.EstimatedValue
	}
	if len(d.properties) > 0 {
		stats.AvgReserve = reserveSum / float64(len(d.properties))
		stats.AvgEstimated = estimatedSum / float64(len(d.properties))
	}

	return stats
}

// hourBlock is one six-hour slice of the day
type hourBlock struct {
	Label string
	Bids  int
}

// timeStats is the time-of-day distribution of bids
type timeStats struct {
	Blocks      []hourBlock
	BusiestHour int
	BusiestBids int
}

func timeAnalysis(d *dataset) timeStats {
	stats := timeStats{
		Blocks: []hourBlock{
			{Label: "Night (00-06)"},
			{Label: "Morning (06-12)"},
			{Label: "Afternoon (12-18)"},
			{Label: "Evening (18-24)"},
		},
		BusiestHour: -1,
	}

	byHour := make(map[int]int)
	for _, bid := range d.bids {
		hour := bid.BidTime.UTC().Hour()
		stats.Blocks[hour/6].Bids++
		byHour[hour]++
		if byHour[hour] > stats.BusiestBids {
			stats.BusiestBids = byHour[hour]
			stats.BusiestHour = hour
		}
	}
	return stats
}

// auctionComparison relates one ended auction's winning bid to its reserve
type auctionComparison struct {
	Auction    string
	Reserve    float64
	WinningBid float64
	PremiumPct float64
}

func reserveComparison(d *dataset) []auctionComparison {
	results := []auctionComparison{}
	for _, auction := range d.auctions {
		if auction.Status != model.AuctionEnded || auction.WinnerID == nil {
			continue
		}
		property := d.propertyByID(auction.PropertyID)
		if property == nil {
			continue
		}
		comparison := auctionComparison{
			Auction:    auction.Title,
			Reserve:    property.ReservePrice,
			WinningBid: auction.CurrentHighestBid,
		}
		if property.ReservePrice > 0 {
			comparison.PremiumPct = (auction.CurrentHighestBid - property.ReservePrice) / property.ReservePrice * 100
		}
		results = append(results, comparison)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PremiumPct > results[j].PremiumPct
	})
	return results
}

// statusAuction is one auction joined with its property for a status listing
type statusAuction struct {
	Auction  model.Auction
	City     string
	Type     model.PropertyType
	Reserve  float64
	Title    string
	Location string
}

func auctionsByStatus(d *dataset, status model.AuctionStatus) []statusAuction {
	results := []statusAuction{}
	for _, auction := range d.auctions {
		if auction.Status != status {
			continue
		}
		entry := statusAuction{Auction: auction, Title: auction.Title}
		if property := d.propertyByID(auction.PropertyID); property != nil {
			entry.City = property.City
			entry.Type = property.PropertyType
			entry.Reserve = property.ReservePrice
			entry.Location = property.Location
		}
		results = append(results, entry)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Auction.StartTime.Before(results[j].Auction.StartTime)
	})
	return results
}

// generalStats is the whole-dataset overview used for the default intent
type generalStats struct {
	Users             int
	Properties        int
	Auctions          int
	Bids              int
	AuctionsByStatus  map[model.AuctionStatus]int
	PropertiesByType  map[model.PropertyType]int
	CancelledNoBids   int
	CancelledWithBids int
	CancellationRate  float64
	TotalReserveValue float64
	TotalBidAmount    float64
	VerifiedInvestors int
}

func generalAnalysis(d *dataset) generalStats {
	stats := generalStats{
		Users:            len(d.users),
		Properties:       len(d.properties),
		Auctions:         len(d.auctions),
		Bids:             len(d.bids),
		AuctionsByStatus: make(map[model.AuctionStatus]int),
		PropertiesByType: make(map[model.PropertyType]int),
	}

	for _, user := range d.users {
		if user.ProfileVerified {
			stats.VerifiedInvestors++
		}
	}
	for _, property := range d.properties {
		stats.PropertiesByType[property.PropertyType]++
		stats.TotalReserveValue += property.ReservePrice
	}
	for _, auction := range d.auctions {
		stats.AuctionsByStatus[auction.Status]++
		if auction.Status == model.AuctionCancelled {
			if auction.TotalBids == 0 {
				stats.CancelledNoBids++
			} else {
				stats.CancelledWithBids++
			}
		}
	}
	for _, bid := range d.bids {
		stats.TotalBidAmount += bid.BidAmount
	}

	if stats.Auctions > 0 {
		cancelled := stats.AuctionsByStatus[model.AuctionCancelled]
		stats.CancellationRate = float64(cancelled) / float64(stats.Auctions) * 100
	}
	return stats
}
