package service

import (
	"fmt"
	"strings"

	"auctionlytics/internal/model"
)

// Fixed envelopes for the short-circuit paths. Charts and tables are empty
// but present so the frontend never sees a null field.

func offTopicResponse() *model.ChatResponse {
	return &model.ChatResponse{
		Response: "That's not my area of expertise. I analyze real estate auction data — try asking about auctions, properties, investors, or bidding activity.",
		Charts:   []model.Chart{},
		Tables:   []model.Table{},
		SummaryPoints: []string{
			"I can answer questions about auctions, bids, properties and investors",
			"Try: \"Who are the top 5 investors by bid amount?\"",
		},
	}
}

func noDataResponse() *model.ChatResponse {
	return &model.ChatResponse{
		Response: "I don't have data to answer that. I can help you analyze real estate auction data — try asking about regional bidding, upcoming auctions, or top investors!",
		Charts:   []model.Chart{},
		Tables:   []model.Table{},
		SummaryPoints: []string{
			"I'm ready to analyze your real estate auction data",
			"Try asking about bidding trends, regional performance, or investor insights",
		},
	}
}

func retryResponse() *model.ChatResponse {
	return &model.ChatResponse{
		Response: "Something went wrong while fetching the auction data. Please retry in a moment.",
		Charts:   []model.Chart{},
		Tables:   []model.Table{},
		SummaryPoints: []string{
			"The data store could not be reached",
		},
	}
}

// money renders a compact dollar figure for prose and insights
func money(v float64) string {
	switch {
	case v >= 1000000:
		return fmt.Sprintf("$%.2fM", v/1000000)
	case v >= 1000:
		return fmt.Sprintf("$%.0fK", v/1000)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

func formatTopInvestors(stats []investorStats) *model.ChatResponse {
	if len(stats) == 0 {
		return noDataResponse()
	}

	barData := make([]map[string]any, 0, len(stats))
	donutData := make([]map[string]any, 0, len(stats))
	table := model.NewTable("Top Investors by Bid Amount",
		"Investor", "Location", "Bids", "Total Amount", "Avg Bid", "Max Bid", "Winning Bids")

	grandTotal := 0.0
	for _, investor := range stats {
		barData = append(barData, map[string]any{
			"name":         investor.Name,
			"total_amount": investor.TotalAmount,
			"bids":         investor.BidCount,
		})
		donutData = append(donutData, map[string]any{
			"name":  investor.Name,
			"value": investor.WinningBids,
		})
		table.AddRow(investor.Name, investor.Location, investor.BidCount,
			money(investor.TotalAmount), money(investor.AvgBid),
			money(investor.MaxBid), investor.WinningBids)
		grandTotal += investor.TotalAmount
	}

	top := stats[0]
	insights := []string{
		fmt.Sprintf("%s leads with %s across %d bids", top.Name, money(top.TotalAmount), top.BidCount),
		fmt.Sprintf("Top %d investors combined: %s in total bid value", len(stats), money(grandTotal)),
	}
	if top.WinningBids > 0 {
		insights = append(insights, fmt.Sprintf("%s holds %d winning bids", top.Name, top.WinningBids))
	}

	return &model.ChatResponse{
		Response: fmt.Sprintf("Here are the **top %d investors** by total bid amount:", len(stats)),
		Charts: []model.Chart{
			{Data: barData, Type: model.ChartBar, Title: "Total Bid Amount by Investor", Description: "Cumulative bid value per investor"},
			{Data: donutData, Type: model.ChartDonut, Title: "Winning Bids Share"},
		},
		Tables:        []model.Table{*table},
		SummaryPoints: insights,
	}
}

func formatLastMonthWinners(winners []winnerStats) *model.ChatResponse {
	if len(winners) == 0 {
		return &model.ChatResponse{
			Response: "No investor won more than the qualifying number of auctions in the last month's window, so there is no winners leaderboard to show.",
			Charts:   []model.Chart{},
			Tables:   []model.Table{},
			SummaryPoints: []string{
				"No qualifying winner was found in the prior 30-day window",
				"Try asking about top investors overall instead",
			},
		}
	}

	barData := make([]map[string]any, 0, len(winners))
	table := model.NewTable("Last Month's Repeat Winners", "Investor", "Wins", "Total Spend")
	for _, winner := range winners {
		barData = append(barData, map[string]any{
			"name":  winner.Name,
			"wins":  winner.Wins,
			"spend": winner.TotalSpend,
		})
		table.AddRow(winner.Name, winner.Wins, money(winner.TotalSpend))
	}

	top := winners[0]
	return &model.ChatResponse{
		Response: "Here are the investors who **won repeatedly** in last month's auctions:",
		Charts: []model.Chart{
			{Data: barData, Type: model.ChartBar, Title: "Auction Wins Last Month"},
			{Data: barData, Type: model.ChartPie, Title: "Spend Share Among Repeat Winners"},
		},
		Tables: []model.Table{*table},
		SummaryPoints: []string{
			fmt.Sprintf("%s leads with %d wins and %s spent", top.Name, top.Wins, money(top.TotalSpend)),
			fmt.Sprintf("%d investor(s) won more than twice in the window", len(winners)),
		},
	}
}

func formatRegional(cities []cityStats) *model.ChatResponse {
	if len(cities) == 0 {
		return noDataResponse()
	}

	barData := make([]map[string]any, 0, len(cities))
	areaData := make([]map[string]any, 0, len(cities))
	table := model.NewTable("Regional Overview", "City", "Properties", "Total Value", "Avg Price", "Bids", "Types")
	for _, city := range cities {
		barData = append(barData, map[string]any{
			"city":        city.City,
			"total_value": city.TotalValue,
			"properties":  city.Properties,
		})
		areaData = append(areaData, map[string]any{
			"city": city.City,
			"bids": city.Bids,
		})
		table.AddRow(city.City, city.Properties, money(city.TotalValue),
			money(city.AvgPrice), city.Bids, strings.Join(city.Types, ", "))
	}

	top := cities[0]
	insights := []string{
		fmt.Sprintf("%s leads with %s across %d properties", top.City, money(top.TotalValue), top.Properties),
	}
	mostActive := cities[0]
	for _, city := range cities {
		if city.Bids > mostActive.Bids {
			mostActive = city
		}
	}
	insights = append(insights, fmt.Sprintf("%s has the most bidding activity with %d bids", mostActive.City, mostActive.Bids))

	return &model.ChatResponse{
		Response: "Here's the **regional analysis** of the property portfolio by city:",
		Charts: []model.Chart{
			{Data: barData, Type: model.ChartBar, Title: "Portfolio Value by City"},
			{Data: areaData, Type: model.ChartArea, Title: "Bidding Activity by City"},
		},
		Tables:        []model.Table{*table},
		SummaryPoints: insights,
	}
}

func formatAuctionSummary(stats auctionSummaryStats) *model.ChatResponse {
	donutData := []map[string]any{}
	for _, status := range []model.AuctionStatus{model.AuctionUpcoming, model.AuctionLive, model.AuctionEnded, model.AuctionCancelled} {
		if count := stats.ByStatus[status]; count > 0 {
			donutData = append(donutData, map[string]any{"status": string(status), "count": count})
		}
	}

	table := model.NewTable("Auction Summary", "Metric", "Value")
	table.AddRow("Total auctions", stats.Total)
	table.AddRow("Live", stats.ByStatus[model.AuctionLive])
	table.AddRow("Upcoming", stats.ByStatus[model.AuctionUpcoming])
	table.AddRow("Ended", stats.ByStatus[model.AuctionEnded])
	table.AddRow("Cancelled", stats.ByStatus[model.AuctionCancelled])
	table.AddRow("Total bids placed", stats.TotalBidVolume)
	table.AddRow("Average starting bid", money(stats.AvgStartingBid))
	table.AddRow("Average winning bid", money(stats.AvgWinningBid))

	return &model.ChatResponse{
		Response: fmt.Sprintf("Here's a summary of all **%d auctions** on the platform:", stats.Total),
		Charts: []model.Chart{
			{Data: donutData, Type: model.ChartDonut, Title: "Auctions by Status"},
		},
		Tables: []model.Table{*table},
		SummaryPoints: []string{
			fmt.Sprintf("%d auctions total with %d bids placed", stats.Total, stats.TotalBidVolume),
			fmt.Sprintf("Average starting bid is %s", money(stats.AvgStartingBid)),
			fmt.Sprintf("%d ended auctions found a winner, averaging %s", stats.EndedWithWinner, money(stats.AvgWinningBid)),
		},
	}
}

func formatPropertyAnalysis(types []propertyTypeStats) *model.ChatResponse {
	if len(types) == 0 {
		return noDataResponse()
	}

	barData := make([]map[string]any, 0, len(types))
	pieData := make([]map[string]any, 0, len(types))
	table := model.NewTable("Property Breakdown by Type", "Type", "Count", "Avg Reserve", "Avg Estimated Value", "Avg Upside")
	for _, entry := range types {
		barData = append(barData, map[string]any{
			"type":          string(entry.Type),
			"avg_reserve":   entry.AvgReserve,
			"avg_estimated": entry.AvgEstimated,
		})
		pieData = append(pieData, map[string]any{
			"type":  string(entry.Type),
			"count": entry.Count,
		})
		table.AddRow(string(entry.Type), entry.Count, money(entry.AvgReserve),
			money(entry.AvgEstimated), money(entry.AvgUpside))
	}

	best := types[0]
	for _, entry := range types {
		if entry.AvgUpside > best.AvgUpside {
			best = entry
		}
	}

	return &model.ChatResponse{
		Response: "Here's the **property portfolio** broken down by category:",
		Charts: []model.Chart{
			{Data: pieData, Type: model.ChartPie, Title: "Properties by Type"},
			{Data: barData, Type: model.ChartBar, Title: "Reserve vs Estimated Value by Type"},
		},
		Tables: []model.Table{*table},
		SummaryPoints: []string{
			fmt.Sprintf("%s is the largest category with %d properties", types[0].Type, types[0].Count),
			fmt.Sprintf("%s properties show the highest average upside at %s", best.Type, money(best.AvgUpside)),
		},
	}
}

func formatBiddingTrends(stats trendStats) *model.ChatResponse {
	if stats.TotalBids == 0 {
		return &model.ChatResponse{
			Response: "No bids were placed in the past 30 days, so there is no trend to chart yet.",
			Charts:   []model.Chart{},
			Tables:   []model.Table{},
			SummaryPoints: []string{
				"No bidding activity recorded in the past 30 days",
			},
		}
	}

	lineData := make([]map[string]any, 0, len(stats.Days))
	table := model.NewTable("Daily Bidding Activity (30 days)", "Day", "Bids", "Total Amount")
	busiest := stats.Days[0]
	for _, day := range stats.Days {
		lineData = append(lineData, map[string]any{
			"day":    day.Day,
			"bids":   day.Bids,
			"amount": day.Amount,
		})
		table.AddRow(day.Day, day.Bids, money(day.Amount))
		if day.Bids > busiest.Bids {
			busiest = day
		}
	}

	autoShare := float64(stats.AutoBids) / float64(stats.TotalBids) * 100
	return &model.ChatResponse{
		Response: "Here's the **bidding activity trend** over the past 30 days:",
		Charts: []model.Chart{
			{Data: lineData, Type: model.ChartLine, Title: "Bids per Day"},
			{Data: lineData, Type: model.ChartArea, Title: "Bid Value per Day"},
		},
		Tables: []model.Table{*table},
		SummaryPoints: []string{
			fmt.Sprintf("%d bids placed in the past 30 days", stats.TotalBids),
			fmt.Sprintf("Busiest day was %s with %d bids", busiest.Day, busiest.Bids),
			fmt.Sprintf("%.0f%% of bids were auto-bids", autoShare),
		},
	}
}

func formatPriceAnalysis(stats priceStats) *model.ChatResponse {
	barData := make([]map[string]any, 0, len(stats.Buckets))
	table := model.NewTable("Bid Amount Distribution", "Range", "Bids")
	for _, bucket := range stats.Buckets {
		barData = append(barData, map[string]any{
			"range": bucket.Label,
			"count": bucket.Count,
		})
		table.AddRow(bucket.Label, bucket.Count)
	}

	scatterData := []map[string]any{
		{"metric": "avg_bid", "value": stats.AvgBid},
		{"metric": "avg_reserve", "value": stats.AvgReserve},
		{"metric": "avg_estimated", "value": stats.AvgEstimated},
	}

	return &model.ChatResponse{
		Response: "Here's the **price analysis** across bids and listings:",
		Charts: []model.Chart{
			{Data: barData, Type: model.ChartBar, Title: "Bids by Amount Range"},
			{Data: scatterData, Type: model.ChartScatter, Title: "Average Price Points"},
		},
		Tables: []model.Table{*table},
		SummaryPoints: []string{
			fmt.Sprintf("Average bid is %s (range %s to %s)", money(stats.AvgBid), money(stats.MinBid), money(stats.MaxBid)),
			fmt.Sprintf("Average reserve price is %s against %s estimated value", money(stats.AvgReserve), money(stats.AvgEstimated)),
		},
	}
}

func formatTimeAnalysis(stats timeStats) *model.ChatResponse {
	barData := make([]map[string]any, 0, len(stats.Blocks))
	table := model.NewTable("Bids by Time of Day", "Period", "Bids")
	for _, block := range stats.Blocks {
		barData = append(barData, map[string]any{
			"period": block.Label,
			"bids":   block.Bids,
		})
		table.AddRow(block.Label, block.Bids)
	}

	insights := []string{}
	if stats.BusiestHour >= 0 {
		insights = append(insights, fmt.Sprintf("The busiest hour is %02d:00 UTC with %d bids", stats.BusiestHour, stats.BusiestBids))
	} else {
		insights = append(insights, "No bids recorded yet")
	}

	return &model.ChatResponse{
		Response: "Here's **when bidding happens** through the day:",
		Charts: []model.Chart{
			{Data: barData, Type: model.ChartBar, Title: "Bids by Time of Day"},
		},
		Tables:        []model.Table{*table},
		SummaryPoints: insights,
	}
}

func formatComparison(comparisons []auctionComparison) *model.ChatResponse {
	if len(comparisons) == 0 {
		return &model.ChatResponse{
			Response: "There are no ended auctions with a winner yet, so there is nothing to compare.",
			Charts:   []model.Chart{},
			Tables:   []model.Table{},
			SummaryPoints: []string{
				"No completed auctions available for a reserve vs winning bid comparison",
			},
		}
	}

	barData := make([]map[string]any, 0, len(comparisons))
	table := model.NewTable("Reserve vs Winning Bid", "Auction", "Reserve", "Winning Bid", "Premium %")
	avgPremium := 0.0
	for _, comparison := range comparisons {
		barData = append(barData, map[string]any{
			"auction":     comparison.Auction,
			"reserve":     comparison.Reserve,
			"winning_bid": comparison.WinningBid,
		})
		table.AddRow(comparison.Auction, money(comparison.Reserve),
			money(comparison.WinningBid), fmt.Sprintf("%.1f%%", comparison.PremiumPct))
		avgPremium += comparison.PremiumPct
	}
	avgPremium /= float64(len(comparisons))

	top := comparisons[0]
	return &model.ChatResponse{
		Response: "Here's the **reserve price vs winning bid** comparison for completed auctions:",
		Charts: []model.Chart{
			{Data: barData, Type: model.ChartBar, Title: "Reserve vs Winning Bid"},
			{Data: barData, Type: model.ChartScatter, Title: "Winning Bids Scatter"},
		},
		Tables: []model.Table{*table},
		SummaryPoints: []string{
			fmt.Sprintf("%s achieved the highest premium at %.1f%% over reserve", top.Auction, top.PremiumPct),
			fmt.Sprintf("Winning bids averaged %.1f%% over reserve", avgPremium),
		},
	}
}

func formatStatusAuctions(status model.AuctionStatus, auctions []statusAuction) *model.ChatResponse {
	if len(auctions) == 0 {
		return &model.ChatResponse{
			Response:      fmt.Sprintf("There are currently no %s auctions.", status),
			Charts:        []model.Chart{},
			Tables:        []model.Table{},
			SummaryPoints: []string{fmt.Sprintf("0 %s auctions found", status)},
		}
	}

	byCity := map[string]int{}
	cityOrder := []string{}
	totalValue := 0.0
	table := model.NewTable(fmt.Sprintf("%s auctions", titleCase(string(status))),
		"Auction", "City", "Type", "Starting Bid", "Highest Bid", "Bids", "Ends")
	for _, entry := range auctions {
		if _, seen := byCity[entry.City]; !seen {
			cityOrder = append(cityOrder, entry.City)
		}
		byCity[entry.City]++
		totalValue += entry.Auction.StartingBid
		table.AddRow(entry.Title, entry.City, string(entry.Type),
			money(entry.Auction.StartingBid), money(entry.Auction.CurrentHighestBid),
			entry.Auction.TotalBids, entry.Auction.EndTime.Format("2006-01-02"))
	}

	// Chart rows follow the auctions' sorted order, not map iteration, so
	// identical calls render identically
	cityData := make([]map[string]any, 0, len(cityOrder))
	for _, city := range cityOrder {
		cityData = append(cityData, map[string]any{"city": city, "auctions": byCity[city]})
	}

	return &model.ChatResponse{
		Response: fmt.Sprintf("Here are the **%d %s auctions**:", len(auctions), status),
		Charts: []model.Chart{
			{Data: cityData, Type: model.ChartBar, Title: fmt.Sprintf("%s Auctions by City", titleCase(string(status)))},
		},
		Tables: []model.Table{*table},
		SummaryPoints: []string{
			fmt.Sprintf("%d %s auctions across %d cities", len(auctions), status, len(byCity)),
			fmt.Sprintf("Combined starting bids of %s", money(totalValue)),
		},
	}
}

func formatGeneral(stats generalStats) *model.ChatResponse {
	donutData := []map[string]any{}
	for _, status := range []model.AuctionStatus{model.AuctionUpcoming, model.AuctionLive, model.AuctionEnded, model.AuctionCancelled} {
		if count := stats.AuctionsByStatus[status]; count > 0 {
			donutData = append(donutData, map[string]any{"status": string(status), "count": count})
		}
	}
	pieData := []map[string]any{}
	for _, propertyType := range []model.PropertyType{model.PropertyResidential, model.PropertyCommercial, model.PropertyIndustrial, model.PropertyLand} {
		if count := stats.PropertiesByType[propertyType]; count > 0 {
			pieData = append(pieData, map[string]any{"type": string(propertyType), "count": count})
		}
	}

	table := model.NewTable("Platform Overview", "Metric", "Value")
	table.AddRow("Investors", stats.Users)
	table.AddRow("Verified investors", stats.VerifiedInvestors)
	table.AddRow("Properties", stats.Properties)
	table.AddRow("Auctions", stats.Auctions)
	table.AddRow("Bids", stats.Bids)
	table.AddRow("Total reserve value", money(stats.TotalReserveValue))
	table.AddRow("Total bid amount", money(stats.TotalBidAmount))
	table.AddRow("Cancellation rate", fmt.Sprintf("%.1f%%", stats.CancellationRate))

	return &model.ChatResponse{
		Response: "Here's an **overall look** at the auction platform:",
		Charts: []model.Chart{
			{Data: donutData, Type: model.ChartDonut, Title: "Auctions by Status"},
			{Data: pieData, Type: model.ChartPie, Title: "Properties by Type"},
		},
		Tables: []model.Table{*table},
		SummaryPoints: []string{
			fmt.Sprintf("%d investors, %d properties, %d auctions, %d bids", stats.Users, stats.Properties, stats.Auctions, stats.Bids),
			fmt.Sprintf("Cancellation rate is %.1f%% (%d with no bids, %d with bids)", stats.CancellationRate, stats.CancelledNoBids, stats.CancelledWithBids),
			fmt.Sprintf("Total bid volume of %s against %s in reserves", money(stats.TotalBidAmount), money(stats.TotalReserveValue)),
		},
	}
}
