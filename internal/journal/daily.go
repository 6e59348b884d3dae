package journal

import (
	"math"

	"github.com/rgleason/trading-journal/internal/models"
)

// GroupByDay groups trades by calendar day and computes per-day invested
// capital and net profit. Output order is first-seen-date order and trades
// within a day keep feed order, so the result is deterministic for a
// deterministic input; any calendar sort is the display layer's problem.
func GroupByDay(trades []models.Trade) []models.DailyPerformance {
	index := make(map[string]int)
	days := make([]models.DailyPerformance, 0)

	for _, trade := range trades {
		key := trade.Day()
		i, seen := index[key]
		if !seen {
			i = len(days)
			index[key] = i
			days = append(days, models.DailyPerformance{Date: trade.Date})
		}
		days[i].Trades = append(days[i].Trades, trade)
		days[i].TotalInvested += trade.TotalBuyPrice
		days[i].NetProfit += trade.NetTotal
	}

	for i := range days {
		if days[i].TotalInvested == 0 {
			// No ratio without invested capital. NaN, not 0.
			days[i].NetProfitPercent = math.NaN()
			continue
		}
		days[i].NetProfitPercent = days[i].NetProfit / days[i].TotalInvested * 100
	}

	return days
}
