// Package store caches the normalized trade batch between runs. It is the
// journal's persistence collaborator: an opaque cache that is replaced
// wholesale on every save, never patched.
package store

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/rgleason/trading-journal/internal/models"
)

// nullFloat marshals NaN and ±Inf as JSON null and turns null back into NaN
// on the way in. encoding/json rejects non-finite numbers outright, and a
// missing spreadsheet cell has to survive the cache round trip.
type nullFloat float64

func (f nullFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

func (f *nullFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = nullFloat(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = nullFloat(v)
	return nil
}

// storedTrade is the wire form of a cached trade. Date and time fields are
// serialized as RFC3339 strings and re-hydrated into time.Time on load, so
// precision to the second and the local offset survive the round trip.
type storedTrade struct {
	ID                      int       `json:"id"`
	Symbol                  string    `json:"symbol"`
	Date                    string    `json:"date"`
	TimeOfEntry             string    `json:"time_of_entry"`
	TimeOfExit              string    `json:"time_of_exit"`
	Buys                    nullFloat `json:"buys"`
	Sells                   nullFloat `json:"sells"`
	Net                     nullFloat `json:"net"`
	AverageBuyPrice         nullFloat `json:"average_buy_price"`
	AverageSellPrice        nullFloat `json:"average_sell_price"`
	TotalBuyPrice           nullFloat `json:"total_buy_price"`
	TotalSoldPrice          nullFloat `json:"total_sold_price"`
	NetTotal                nullFloat `json:"net_total"`
	RealizedPnL             nullFloat `json:"realized_pnl"`
	RealizedPnLPercent      nullFloat `json:"realized_pnl_pct"`
	Commission              nullFloat `json:"commission"`
	NetInclCommission       nullFloat `json:"net_incl_commission"`
	WhatHappenedBeforeEnter string    `json:"what_happened_before_enter"`
	WhatHappenedAfterExit   string    `json:"what_happened_after_exit"`
	Comment                 string    `json:"comment"`
	OnWork                  bool      `json:"on_work"`
}

func encodeTrades(trades []models.Trade) ([]byte, error) {
	stored := make([]storedTrade, len(trades))
	for i, t := range trades {
		stored[i] = storedTrade{
			ID:                      t.ID,
			Symbol:                  t.Symbol,
			Date:                    t.Date.Format(time.RFC3339),
			TimeOfEntry:             t.TimeOfEntry.Format(time.RFC3339),
			TimeOfExit:              t.TimeOfExit.Format(time.RFC3339),
			Buys:                    nullFloat(t.Buys),
			Sells:                   nullFloat(t.Sells),
			Net:                     nullFloat(t.Net),
			AverageBuyPrice:         nullFloat(t.AverageBuyPrice),
			AverageSellPrice:        nullFloat(t.AverageSellPrice),
			TotalBuyPrice:           nullFloat(t.TotalBuyPrice),
			TotalSoldPrice:          nullFloat(t.TotalSoldPrice),
			NetTotal:                nullFloat(t.NetTotal),
			RealizedPnL:             nullFloat(t.RealizedPnL),
			RealizedPnLPercent:      nullFloat(t.RealizedPnLPercent),
			Commission:              nullFloat(t.Commission),
			NetInclCommission:       nullFloat(t.NetInclCommission),
			WhatHappenedBeforeEnter: t.WhatHappenedBeforeEnter,
			WhatHappenedAfterExit:   t.WhatHappenedAfterExit,
			Comment:                 t.Comment,
			OnWork:                  t.OnWork,
		}
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to encode trades: %w", err)
	}
	return data, nil
}

func decodeTrades(data []byte) ([]models.Trade, error) {
	var stored []storedTrade
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode cached trades: %w", err)
	}

	trades := make([]models.Trade, len(stored))
	for i, s := range stored {
		date, err := time.Parse(time.RFC3339, s.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse cached trade date: %w", err)
		}
		entry, err := time.Parse(time.RFC3339, s.TimeOfEntry)
		if err != nil {
			return nil, fmt.Errorf("failed to parse cached entry time: %w", err)
		}
		exit, err := time.Parse(time.RFC3339, s.TimeOfExit)
		if err != nil {
			return nil, fmt.Errorf("failed to parse cached exit time: %w", err)
		}

		trades[i] = models.Trade{
			ID:                      s.ID,
			Symbol:                  s.Symbol,
			Date:                    date,
			TimeOfEntry:             entry,
			TimeOfExit:              exit,
			Buys:                    float64(s.Buys),
			Sells:                   float64(s.Sells),
			Net:                     float64(s.Net),
			AverageBuyPrice:         float64(s.AverageBuyPrice),
			AverageSellPrice:        float64(s.AverageSellPrice),
			TotalBuyPrice:           float64(s.TotalBuyPrice),
			TotalSoldPrice:          float64(s.TotalSoldPrice),
			NetTotal:                float64(s.NetTotal),
			RealizedPnL:             float64(s.RealizedPnL),
			RealizedPnLPercent:      float64(s.RealizedPnLPercent),
			Commission:              float64(s.Commission),
			NetInclCommission:       float64(s.NetInclCommission),
			WhatHappenedBeforeEnter: s.WhatHappenedBeforeEnter,
			WhatHappenedAfterExit:   s.WhatHappenedAfterExit,
			Comment:                 s.Comment,
			OnWork:                  s.OnWork,
		}
	}
	return trades, nil
}
