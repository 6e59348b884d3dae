package models

import "time"

// Trade represents one closed round-trip position imported from the journal
// spreadsheet. IDs are sequential within a load batch and reset on every
// reload; derive a durable key externally if one is ever needed.
//
// Numeric fields are float64 rather than integers or decimals on purpose: a
// missing spreadsheet cell coerces to NaN and every downstream aggregate is
// required to survive that, so the type has to carry it.
type Trade struct {
	ID                      int       `json:"id"`
	Symbol                  string    `json:"symbol"`
	Date                    time.Time `json:"date"`
	TimeOfEntry             time.Time `json:"time_of_entry"`
	TimeOfExit              time.Time `json:"time_of_exit"`
	Buys                    float64   `json:"buys"`
	Sells                   float64   `json:"sells"`
	Net                     float64   `json:"net"`
	AverageBuyPrice         float64   `json:"average_buy_price"`
	AverageSellPrice        float64   `json:"average_sell_price"`
	TotalBuyPrice           float64   `json:"total_buy_price"`
	TotalSoldPrice          float64   `json:"total_sold_price"`
	NetTotal                float64   `json:"net_total"`
	RealizedPnL             float64   `json:"realized_pnl"`
	RealizedPnLPercent      float64   `json:"realized_pnl_pct"`
	Commission              float64   `json:"commission"`
	NetInclCommission       float64   `json:"net_incl_commission"`
	WhatHappenedBeforeEnter string    `json:"what_happened_before_enter"`
	WhatHappenedAfterExit   string    `json:"what_happened_after_exit"`
	Comment                 string    `json:"comment"`
	OnWork                  bool      `json:"on_work"`
}

// Day returns the trade's calendar day as a stable grouping key.
func (t Trade) Day() string {
	return t.Date.Format("2006-01-02")
}
