// Package journal turns decoded feed tables into Trade records and derives
// per-day and aggregate performance from them.
package journal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TimeEncoding says how a feed revision encodes the entry/exit time cells.
type TimeEncoding int

const (
	// TimeOfDayOnly: the time cell's date components are filler; only
	// hour/minute/second are trusted, combined with the row's own date.
	// Holding times get the cross-midnight correction.
	TimeOfDayOnly TimeEncoding = iota
	// AbsoluteTimestamp: the time cell carries a full independent
	// timestamp. No midnight correction is applied.
	AbsoluteTimestamp
)

func (e TimeEncoding) String() string {
	if e == AbsoluteTimestamp {
		return "absolute"
	}
	return "time_of_day"
}

// UnmarshalYAML accepts "time_of_day" or "absolute".
func (e *TimeEncoding) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "time_of_day":
		*e = TimeOfDayOnly
	case "absolute":
		*e = AbsoluteTimestamp
	default:
		return fmt.Errorf("unknown time encoding %q", s)
	}
	return nil
}

// Columns maps Trade fields to the feed's column labels. Date, TimeOfEntry
// and TimeOfExit are required: a row missing any of them is skipped. Every
// other mapping is optional — an empty label means the feed revision does not
// carry that column and the field gets its documented default (NaN for
// numerics, empty string for text, false for OnWork).
type Columns struct {
	Date                    string `yaml:"date"`
	Symbol                  string `yaml:"symbol"`
	TimeOfEntry             string `yaml:"time_of_entry"`
	TimeOfExit              string `yaml:"time_of_exit"`
	Buys                    string `yaml:"buys"`
	Sells                   string `yaml:"sells"`
	Net                     string `yaml:"net"`
	AverageBuyPrice         string `yaml:"average_buy_price"`
	AverageSellPrice        string `yaml:"average_sell_price"`
	TotalBuyPrice           string `yaml:"total_buy_price"`
	TotalSoldPrice          string `yaml:"total_sold_price"`
	NetTotal                string `yaml:"net_total"`
	RealizedPnL             string `yaml:"realized_pnl"`
	RealizedPnLPercent      string `yaml:"realized_pnl_pct"`
	Commission              string `yaml:"commission"`
	NetInclCommission       string `yaml:"net_incl_commission"`
	WhatHappenedBeforeEnter string `yaml:"what_happened_before_enter"`
	WhatHappenedAfterExit   string `yaml:"what_happened_after_exit"`
	Comment                 string `yaml:"comment"`
	OnWork                  string `yaml:"on_work"`
}

// Schema describes one feed revision: its column labels and how it encodes
// time. No two revisions are assumed identical, so the normalizer takes this
// as configuration instead of hard-coding labels.
type Schema struct {
	TimeEncoding TimeEncoding `yaml:"time_encoding"`
	Columns      Columns      `yaml:"columns"`
}

// DefaultSchema matches the current sheet layout.
func DefaultSchema() Schema {
	return Schema{
		TimeEncoding: TimeOfDayOnly,
		Columns: Columns{
			Date:                    "Date",
			Symbol:                  "Symbol",
			TimeOfEntry:             "Time of entry",
			TimeOfExit:              "Time of exit",
			Buys:                    "Buys",
			Sells:                   "Sells",
			Net:                     "Net",
			AverageBuyPrice:         "Average Buy Price",
			AverageSellPrice:        "Average Sell Price",
			TotalBuyPrice:           "Total Buy Price",
			TotalSoldPrice:          "Total Sold Price",
			NetTotal:                "Net Total",
			RealizedPnL:             "Realized P&L",
			RealizedPnLPercent:      "Realized P&L%",
			Commission:              "Commission",
			NetInclCommission:       "Net Incl. Commission",
			WhatHappenedBeforeEnter: "What happened before enter",
			WhatHappenedAfterExit:   "What happened after exit",
			Comment:                 "Comment",
			OnWork:                  "On work",
		},
	}
}

// LoadSchemaFile reads a feed schema from a YAML file. Labels left unset in
// the file fall back to the default schema so a revision file only needs to
// list what changed.
func LoadSchemaFile(path string) (Schema, error) {
	schema := DefaultSchema()

	data, err := os.ReadFile(path)
	if err != nil {
		return schema, fmt.Errorf("failed to read schema file: %w", err)
	}
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return schema, fmt.Errorf("failed to parse schema file: %w", err)
	}
	return schema, nil
}
