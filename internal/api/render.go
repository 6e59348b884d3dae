package api

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rgleason/trading-journal/internal/models"
)

// Display policy lives here, not in the engine: NaN and the ±Inf extrema
// sentinels come out of the statistics as-is, and the API decides what a
// client sees. Money renders as a 2dp decimal with a 0.00 fallback for
// sentinels; ratios render as null when there is no ratio.

// money rounds a finite amount to 2 decimal places; non-finite values fall
// back to 0.00.
func money(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v).Round(2)
}

// ratio keeps a finite value and turns NaN/±Inf into JSON null.
func ratio(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

type tradeResponse struct {
	ID                      int      `json:"id"`
	Symbol                  string   `json:"symbol"`
	Date                    string   `json:"date"`
	TimeOfEntry             string   `json:"time_of_entry"`
	TimeOfExit              string   `json:"time_of_exit"`
	Buys                    *float64 `json:"buys"`
	Sells                   *float64 `json:"sells"`
	Net                     *float64 `json:"net"`
	AverageBuyPrice         *float64 `json:"average_buy_price"`
	AverageSellPrice        *float64 `json:"average_sell_price"`
	TotalBuyPrice           *float64 `json:"total_buy_price"`
	TotalSoldPrice          *float64 `json:"total_sold_price"`
	NetTotal                *float64 `json:"net_total"`
	RealizedPnL             *float64 `json:"realized_pnl"`
	RealizedPnLPercent      *float64 `json:"realized_pnl_pct"`
	Commission              *float64 `json:"commission"`
	NetInclCommission       *float64 `json:"net_incl_commission"`
	WhatHappenedBeforeEnter string   `json:"what_happened_before_enter"`
	WhatHappenedAfterExit   string   `json:"what_happened_after_exit"`
	Comment                 string   `json:"comment"`
	OnWork                  bool     `json:"on_work"`
}

func renderTrade(t models.Trade) tradeResponse {
	return tradeResponse{
		ID:                      t.ID,
		Symbol:                  t.Symbol,
		Date:                    t.Day(),
		TimeOfEntry:             t.TimeOfEntry.Format(time.RFC3339),
		TimeOfExit:              t.TimeOfExit.Format(time.RFC3339),
		Buys:                    ratio(t.Buys),
		Sells:                   ratio(t.Sells),
		Net:                     ratio(t.Net),
		AverageBuyPrice:         ratio(t.AverageBuyPrice),
		AverageSellPrice:        ratio(t.AverageSellPrice),
		TotalBuyPrice:           ratio(t.TotalBuyPrice),
		TotalSoldPrice:          ratio(t.TotalSoldPrice),
		NetTotal:                ratio(t.NetTotal),
		RealizedPnL:             ratio(t.RealizedPnL),
		RealizedPnLPercent:      ratio(t.RealizedPnLPercent),
		Commission:              ratio(t.Commission),
		NetInclCommission:       ratio(t.NetInclCommission),
		WhatHappenedBeforeEnter: t.WhatHappenedBeforeEnter,
		WhatHappenedAfterExit:   t.WhatHappenedAfterExit,
		Comment:                 t.Comment,
		OnWork:                  t.OnWork,
	}
}

func renderTrades(trades []models.Trade) []tradeResponse {
	out := make([]tradeResponse, len(trades))
	for i, t := range trades {
		out[i] = renderTrade(t)
	}
	return out
}

type dailyResponse struct {
	Date             string          `json:"date"`
	TradeCount       int             `json:"trade_count"`
	TotalInvested    decimal.Decimal `json:"total_invested"`
	NetProfit        decimal.Decimal `json:"net_profit"`
	NetProfitPercent *float64        `json:"net_profit_pct"`
	Trades           []tradeResponse `json:"trades"`
}

func renderDaily(days []models.DailyPerformance) []dailyResponse {
	out := make([]dailyResponse, len(days))
	for i, day := range days {
		out[i] = dailyResponse{
			Date:             day.Date.Format("2006-01-02"),
			TradeCount:       len(day.Trades),
			TotalInvested:    money(day.TotalInvested),
			NetProfit:        money(day.NetProfit),
			NetProfitPercent: ratio(day.NetProfitPercent),
			Trades:           renderTrades(day.Trades),
		}
	}
	return out
}

type statisticsResponse struct {
	TradeCount  int `json:"trade_count"`
	TradingDays int `json:"trading_days"`

	TotalInvested        decimal.Decimal `json:"total_invested"`
	NetPnL               decimal.Decimal `json:"net_pnl"`
	NetPnLInclCommission decimal.Decimal `json:"net_pnl_incl_commission"`

	WinCount  int `json:"win_count"`
	LossCount int `json:"loss_count"`

	TotalProfit decimal.Decimal `json:"total_profit"`
	TotalLoss   decimal.Decimal `json:"total_loss"`

	WinRate      *float64        `json:"win_rate"`
	ProfitFactor decimal.Decimal `json:"profit_factor"`

	LargestWinAmount   decimal.Decimal `json:"largest_win_amount"`
	LargestWinPercent  decimal.Decimal `json:"largest_win_pct"`
	LargestLossAmount  decimal.Decimal `json:"largest_loss_amount"`
	LargestLossPercent decimal.Decimal `json:"largest_loss_pct"`

	AvgWin         decimal.Decimal `json:"avg_win"`
	AvgLoss        decimal.Decimal `json:"avg_loss"`
	AvgWinPercent  *float64        `json:"avg_win_pct"`
	AvgLossPercent *float64        `json:"avg_loss_pct"`

	AvgWinHoldingSeconds  decimal.Decimal `json:"avg_win_holding_seconds"`
	AvgLossHoldingSeconds decimal.Decimal `json:"avg_loss_holding_seconds"`

	AvgWinPerShare  decimal.Decimal `json:"avg_win_per_share"`
	AvgLossPerShare decimal.Decimal `json:"avg_loss_per_share"`

	AvgWinShares  decimal.Decimal `json:"avg_win_shares"`
	AvgLossShares decimal.Decimal `json:"avg_loss_shares"`
}

func renderStatistics(s models.StatisticsSummary) statisticsResponse {
	return statisticsResponse{
		TradeCount:            s.TradeCount,
		TradingDays:           s.TradingDays,
		TotalInvested:         money(s.TotalInvested),
		NetPnL:                money(s.NetPnL),
		NetPnLInclCommission:  money(s.NetPnLInclCommission),
		WinCount:              s.WinCount,
		LossCount:             s.LossCount,
		TotalProfit:           money(s.TotalProfit),
		TotalLoss:             money(s.TotalLoss),
		WinRate:               ratio(s.WinRate),
		ProfitFactor:          money(s.ProfitFactor),
		LargestWinAmount:      money(s.LargestWinAmount),
		LargestWinPercent:     money(s.LargestWinPercent),
		LargestLossAmount:     money(s.LargestLossAmount),
		LargestLossPercent:    money(s.LargestLossPercent),
		AvgWin:                money(s.AvgWin),
		AvgLoss:               money(s.AvgLoss),
		AvgWinPercent:         ratio(s.AvgWinPercent),
		AvgLossPercent:        ratio(s.AvgLossPercent),
		AvgWinHoldingSeconds:  money(s.AvgWinHoldingSeconds),
		AvgLossHoldingSeconds: money(s.AvgLossHoldingSeconds),
		AvgWinPerShare:        money(s.AvgWinPerShare),
		AvgLossPerShare:       money(s.AvgLossPerShare),
		AvgWinShares:          money(s.AvgWinShares),
		AvgLossShares:         money(s.AvgLossShares),
	}
}
