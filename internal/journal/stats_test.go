package journal

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgleason/trading-journal/internal/models"
)

func TestSummarize(t *testing.T) {
	t.Run("empty input is a total function", func(t *testing.T) {
		summary := Summarize(nil, TimeOfDayOnly)

		assert.Equal(t, 0, summary.TradeCount)
		assert.Equal(t, 0, summary.TradingDays)
		// Win rate has no meaning without trades.
		assert.True(t, math.IsNaN(summary.WinRate))
		// Averages follow the other policy: zero for empty subsets.
		assert.Equal(t, 0.0, summary.AvgWin)
		assert.Equal(t, 0.0, summary.AvgLoss)
		assert.Equal(t, 0.0, summary.AvgWinHoldingSeconds)
		assert.Equal(t, 0.0, summary.AvgWinShares)
		// Extrema keep their sentinels; the API turns them into 0.00.
		assert.True(t, math.IsInf(summary.LargestWinAmount, -1))
		assert.True(t, math.IsInf(summary.LargestLossAmount, 1))
	})

	t.Run("counts wins and losses and excludes flat trades from both", func(t *testing.T) {
		trades := []models.Trade{
			{Date: day(2025, time.March, 3), NetTotal: 100, TotalBuyPrice: 1000},
			{Date: day(2025, time.March, 3), NetTotal: -40, TotalBuyPrice: 800},
			{Date: day(2025, time.March, 4), NetTotal: 0, TotalBuyPrice: 500},
		}

		summary := Summarize(trades, TimeOfDayOnly)
		assert.Equal(t, 3, summary.TradeCount)
		assert.Equal(t, 2, summary.TradingDays)
		assert.Equal(t, 1, summary.WinCount)
		assert.Equal(t, 1, summary.LossCount)
		assert.Equal(t, 100.0, summary.TotalProfit)
		assert.Equal(t, -40.0, summary.TotalLoss)
		assert.Equal(t, 2300.0, summary.TotalInvested)
		assert.Equal(t, 60.0, summary.NetPnL)
		assert.InDelta(t, 33.333, summary.WinRate, 0.01) // 1 win of 3 trades
	})

	t.Run("profit factor divides by 1 when there are no losses", func(t *testing.T) {
		trades := []models.Trade{
			{Date: day(2025, time.March, 3), NetTotal: 100, TotalBuyPrice: 1000},
		}

		summary := Summarize(trades, TimeOfDayOnly)
		assert.Equal(t, 100.0, summary.ProfitFactor)
		assert.False(t, math.IsInf(summary.ProfitFactor, 1))
	})

	t.Run("profit factor is the absolute profit-loss ratio otherwise", func(t *testing.T) {
		trades := []models.Trade{
			{Date: day(2025, time.March, 3), NetTotal: 300, TotalBuyPrice: 1000},
			{Date: day(2025, time.March, 3), NetTotal: -150, TotalBuyPrice: 1000},
		}

		summary := Summarize(trades, TimeOfDayOnly)
		assert.InDelta(t, 2.0, summary.ProfitFactor, 1e-9)
	})

	t.Run("cross-midnight sessions get 24h added with time-of-day encoding", func(t *testing.T) {
		trade := models.Trade{
			Date:        day(2025, time.March, 19),
			NetTotal:    50,
			TimeOfEntry: time.Date(2025, time.March, 19, 23, 50, 0, 0, time.Local),
			TimeOfExit:  time.Date(2025, time.March, 19, 0, 10, 0, 0, time.Local),
		}

		summary := Summarize([]models.Trade{trade}, TimeOfDayOnly)
		assert.InDelta(t, 1200.0, summary.AvgWinHoldingSeconds, 1e-9)
	})

	t.Run("absolute timestamps get no midnight correction", func(t *testing.T) {
		trade := models.Trade{
			Date:        day(2025, time.March, 19),
			NetTotal:    50,
			TimeOfEntry: time.Date(2025, time.March, 19, 23, 50, 0, 0, time.Local),
			TimeOfExit:  time.Date(2025, time.March, 20, 0, 10, 0, 0, time.Local),
		}

		summary := Summarize([]models.Trade{trade}, AbsoluteTimestamp)
		assert.InDelta(t, 1200.0, summary.AvgWinHoldingSeconds, 1e-9)
	})

	t.Run("extrema track amounts and percents per subset", func(t *testing.T) {
		trades := []models.Trade{
			{Date: day(2025, time.March, 3), NetTotal: 100, TotalBuyPrice: 1000},  // +10%
			{Date: day(2025, time.March, 3), NetTotal: 50, TotalBuyPrice: 200},    // +25%
			{Date: day(2025, time.March, 4), NetTotal: -80, TotalBuyPrice: 1000},  // -8%
			{Date: day(2025, time.March, 4), NetTotal: -30, TotalBuyPrice: 100},   // -30%
		}

		summary := Summarize(trades, TimeOfDayOnly)
		assert.Equal(t, 100.0, summary.LargestWinAmount)
		assert.InDelta(t, 25.0, summary.LargestWinPercent, 1e-9)
		assert.Equal(t, -80.0, summary.LargestLossAmount)
		assert.InDelta(t, -30.0, summary.LargestLossPercent, 1e-9)
	})

	t.Run("zero buy price poisons percent aggregates but not amounts", func(t *testing.T) {
		trades := []models.Trade{
			{Date: day(2025, time.March, 3), NetTotal: 100, TotalBuyPrice: 0},
		}

		summary := Summarize(trades, TimeOfDayOnly)
		assert.Equal(t, 100.0, summary.TotalProfit)
		assert.Equal(t, 100.0, summary.AvgWin)
		assert.True(t, math.IsNaN(summary.AvgWinPercent))
	})

	t.Run("per-share and share averages come from the win and loss subsets", func(t *testing.T) {
		trades := []models.Trade{
			{Date: day(2025, time.March, 3), NetTotal: 100, TotalBuyPrice: 1000, AverageBuyPrice: 10, AverageSellPrice: 11, Buys: 100},
			{Date: day(2025, time.March, 3), NetTotal: 60, TotalBuyPrice: 1000, AverageBuyPrice: 20, AverageSellPrice: 20.3, Buys: 200},
			{Date: day(2025, time.March, 4), NetTotal: -50, TotalBuyPrice: 1000, AverageBuyPrice: 10, AverageSellPrice: 9.5, Buys: 100},
		}

		summary := Summarize(trades, TimeOfDayOnly)
		assert.InDelta(t, (1.0+0.3)/2, summary.AvgWinPerShare, 1e-9)
		assert.InDelta(t, 150.0, summary.AvgWinShares, 1e-9)
		assert.InDelta(t, -0.5, summary.AvgLossPerShare, 1e-9)
		assert.InDelta(t, 100.0, summary.AvgLossShares, 1e-9)
	})

	t.Run("net including commission is summed over all trades", func(t *testing.T) {
		trades := []models.Trade{
			{Date: day(2025, time.March, 3), NetTotal: 100, TotalBuyPrice: 1000, NetInclCommission: 98.5},
			{Date: day(2025, time.March, 3), NetTotal: -50, TotalBuyPrice: 1000, NetInclCommission: -51.5},
		}

		summary := Summarize(trades, TimeOfDayOnly)
		require.Equal(t, 2, summary.TradeCount)
		assert.InDelta(t, 47.0, summary.NetPnLInclCommission, 1e-9)
	})
}
