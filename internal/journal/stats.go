package journal

import (
	"math"

	"github.com/rgleason/trading-journal/internal/models"
)

const daySeconds = 24 * 3600

// Summarize reduces a trade set to aggregate statistics in a single pass.
// It is a total function: any input, including empty, yields a summary
// without panics or division-by-zero errors.
//
// A trade is a win iff NetTotal > 0 and a loss iff NetTotal < 0; a flat
// NetTotal counts toward TradeCount and the totals but neither subset.
// Percent-based aggregates may carry NaN when a trade has TotalBuyPrice 0;
// amount-based aggregates never inherit that.
//
// The encoding decides holding-time arithmetic: with TimeOfDayOnly a
// negative exit-minus-entry means the session crossed midnight and gets 24h
// added, with AbsoluteTimestamp the difference is used as-is.
func Summarize(trades []models.Trade, encoding TimeEncoding) models.StatisticsSummary {
	summary := models.StatisticsSummary{
		TradeCount:         len(trades),
		LargestWinAmount:   math.Inf(-1),
		LargestWinPercent:  math.Inf(-1),
		LargestLossAmount:  math.Inf(1),
		LargestLossPercent: math.Inf(1),
	}

	days := make(map[string]struct{})
	var (
		winPercentSum, lossPercentSum   float64
		winHoldingSum, lossHoldingSum   float64
		winPerShareSum, lossPerShareSum float64
		winShareSum, lossShareSum       float64
	)

	for _, trade := range trades {
		days[trade.Day()] = struct{}{}
		summary.TotalInvested += trade.TotalBuyPrice
		summary.NetPnL += trade.NetTotal
		summary.NetPnLInclCommission += trade.NetInclCommission

		// NaN when TotalBuyPrice is 0; only percent aggregates see it.
		tradePercent := trade.NetTotal / trade.TotalBuyPrice * 100
		if trade.TotalBuyPrice == 0 {
			tradePercent = math.NaN()
		}
		perShare := trade.AverageSellPrice - trade.AverageBuyPrice
		holding := holdingSeconds(trade, encoding)

		switch {
		case trade.NetTotal > 0:
			summary.WinCount++
			summary.TotalProfit += trade.NetTotal
			if trade.NetTotal > summary.LargestWinAmount {
				summary.LargestWinAmount = trade.NetTotal
			}
			if tradePercent > summary.LargestWinPercent {
				summary.LargestWinPercent = tradePercent
			}
			winPercentSum += tradePercent
			winHoldingSum += holding
			winPerShareSum += perShare
			winShareSum += trade.Buys
		case trade.NetTotal < 0:
			summary.LossCount++
			summary.TotalLoss += trade.NetTotal
			if trade.NetTotal < summary.LargestLossAmount {
				summary.LargestLossAmount = trade.NetTotal
			}
			if tradePercent < summary.LargestLossPercent {
				summary.LargestLossPercent = tradePercent
			}
			lossPercentSum += tradePercent
			lossHoldingSum += holding
			lossPerShareSum += perShare
			lossShareSum += trade.Buys
		}
	}

	summary.TradingDays = len(days)

	if summary.TradeCount == 0 {
		summary.WinRate = math.NaN()
	} else {
		summary.WinRate = float64(summary.WinCount) / float64(summary.TradeCount) * 100
	}

	// Denominator clamp: with no losses the honest ratio is infinite, which
	// is useless on screen, so a zero loss total divides by 1 instead.
	lossDenominator := summary.TotalLoss
	if lossDenominator == 0 {
		lossDenominator = 1
	}
	summary.ProfitFactor = math.Abs(summary.TotalProfit / lossDenominator)

	if summary.WinCount > 0 {
		wins := float64(summary.WinCount)
		summary.AvgWin = summary.TotalProfit / wins
		summary.AvgWinPercent = winPercentSum / wins
		summary.AvgWinHoldingSeconds = winHoldingSum / wins
		summary.AvgWinPerShare = winPerShareSum / wins
		summary.AvgWinShares = winShareSum / wins
	}
	if summary.LossCount > 0 {
		losses := float64(summary.LossCount)
		summary.AvgLoss = summary.TotalLoss / losses
		summary.AvgLossPercent = lossPercentSum / losses
		summary.AvgLossHoldingSeconds = lossHoldingSum / losses
		summary.AvgLossPerShare = lossPerShareSum / losses
		summary.AvgLossShares = lossShareSum / losses
	}

	return summary
}

// holdingSeconds returns exit minus entry in seconds. TimeOfDayOnly
// timestamps share the row's date, so a cross-midnight session shows up as a
// negative difference and gets a day added back.
func holdingSeconds(trade models.Trade, encoding TimeEncoding) float64 {
	seconds := trade.TimeOfExit.Sub(trade.TimeOfEntry).Seconds()
	if encoding == TimeOfDayOnly && seconds < 0 {
		seconds += daySeconds
	}
	return seconds
}
