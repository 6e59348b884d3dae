package models

import "time"

// DailyPerformance aggregates the trades of a single calendar day. It is
// derived on every render and never persisted.
type DailyPerformance struct {
	Date          time.Time `json:"date"`
	Trades        []Trade   `json:"trades"`
	TotalInvested float64   `json:"total_invested"`
	NetProfit     float64   `json:"net_profit"`
	// NetProfitPercent is NaN when TotalInvested is 0. Callers must treat
	// that as "no ratio", never coerce it to 0.
	NetProfitPercent float64 `json:"net_profit_pct"`
}

// StatisticsSummary is a pure reduction over a (possibly filtered) trade set.
//
// Degenerate inputs follow two distinct, intentionally preserved policies:
// WinRate reports NaN when there are no trades, while every Avg* field
// reports 0 when its win/loss subset is empty. Extrema keep their ±Inf
// initialization sentinels when no qualifying trade exists; the presentation
// layer decides the zero fallback.
type StatisticsSummary struct {
	TradeCount  int `json:"trade_count"`
	TradingDays int `json:"trading_days"`

	TotalInvested        float64 `json:"total_invested"`
	NetPnL               float64 `json:"net_pnl"`
	NetPnLInclCommission float64 `json:"net_pnl_incl_commission"`

	WinCount  int `json:"win_count"`
	LossCount int `json:"loss_count"`

	TotalProfit float64 `json:"total_profit"`
	// TotalLoss is negative or zero.
	TotalLoss float64 `json:"total_loss"`

	WinRate      float64 `json:"win_rate"`
	ProfitFactor float64 `json:"profit_factor"`

	LargestWinAmount   float64 `json:"largest_win_amount"`
	LargestWinPercent  float64 `json:"largest_win_pct"`
	LargestLossAmount  float64 `json:"largest_loss_amount"`
	LargestLossPercent float64 `json:"largest_loss_pct"`

	AvgWin         float64 `json:"avg_win"`
	AvgLoss        float64 `json:"avg_loss"`
	AvgWinPercent  float64 `json:"avg_win_pct"`
	AvgLossPercent float64 `json:"avg_loss_pct"`

	AvgWinHoldingSeconds  float64 `json:"avg_win_holding_seconds"`
	AvgLossHoldingSeconds float64 `json:"avg_loss_holding_seconds"`

	AvgWinPerShare  float64 `json:"avg_win_per_share"`
	AvgLossPerShare float64 `json:"avg_loss_per_share"`

	AvgWinShares  float64 `json:"avg_win_shares"`
	AvgLossShares float64 `json:"avg_loss_shares"`
}
