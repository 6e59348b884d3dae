package journal

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/rgleason/trading-journal/internal/gviz"
	"github.com/rgleason/trading-journal/internal/models"
)

// Date cells arrive as stringified pseudo-constructors, e.g. "Date(2025,2,19)"
// with a zero-based month, and time cells carry six components,
// e.g. "Date(2025,2,19,9,45,12)".
var (
	datePattern = regexp.MustCompile(`Date\((\d+),(\d+),(\d+)\)`)
	timePattern = regexp.MustCompile(`Date\((\d+),(\d+),(\d+),(\d+),(\d+),(\d+)\)`)
)

// Normalizer maps decoded feed rows into Trade records according to a feed
// revision schema. Row-level defects are logged and skipped; they never fail
// the batch.
type Normalizer struct {
	schema Schema
	log    zerolog.Logger
}

// NewNormalizer creates a Normalizer for one feed revision.
func NewNormalizer(schema Schema, log zerolog.Logger) *Normalizer {
	return &Normalizer{
		schema: schema,
		log:    log.With().Str("component", "normalizer").Logger(),
	}
}

// Normalize converts a decoded table into an ordered trade batch. IDs are
// assigned sequentially over the rows that survive, so they are gapless even
// when rows are skipped.
func (n *Normalizer) Normalize(table *gviz.Table) []models.Trade {
	cols := n.schema.Columns
	trades := make([]models.Trade, 0, len(table.Rows))

	for _, row := range table.Rows {
		dateCell := row[cols.Date]
		if dateCell == nil {
			// Sparse trailing rows are expected; not worth a log line.
			continue
		}

		dateStr, ok := dateCell.(string)
		if !ok {
			n.log.Warn().Interface("value", dateCell).Msg("date cell is not a string, skipping row")
			continue
		}
		dateMatch := datePattern.FindStringSubmatch(dateStr)
		if dateMatch == nil {
			n.log.Warn().Str("value", dateStr).Msg("invalid date format, skipping row")
			continue
		}

		entryMatch := n.matchTime(row[cols.TimeOfEntry])
		exitMatch := n.matchTime(row[cols.TimeOfExit])
		if entryMatch == nil || exitMatch == nil {
			n.log.Warn().
				Interface("time_of_entry", row[cols.TimeOfEntry]).
				Interface("time_of_exit", row[cols.TimeOfExit]).
				Msg("invalid time format, skipping row")
			continue
		}

		year, _ := strconv.Atoi(dateMatch[1])
		month, _ := strconv.Atoi(dateMatch[2]) // zero-based in the feed
		day, _ := strconv.Atoi(dateMatch[3])
		date := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.Local)

		trade := models.Trade{
			ID:                      len(trades),
			Symbol:                  textCell(row[cols.Symbol]),
			Date:                    date,
			TimeOfEntry:             n.buildTimestamp(date, entryMatch),
			TimeOfExit:              n.buildTimestamp(date, exitMatch),
			Buys:                    numericCell(row[cols.Buys]),
			Sells:                   numericCell(row[cols.Sells]),
			Net:                     numericCell(row[cols.Net]),
			AverageBuyPrice:         numericCell(row[cols.AverageBuyPrice]),
			AverageSellPrice:        numericCell(row[cols.AverageSellPrice]),
			TotalBuyPrice:           numericCell(row[cols.TotalBuyPrice]),
			TotalSoldPrice:          numericCell(row[cols.TotalSoldPrice]),
			NetTotal:                numericCell(row[cols.NetTotal]),
			RealizedPnL:             numericCell(row[cols.RealizedPnL]),
			RealizedPnLPercent:      numericCell(row[cols.RealizedPnLPercent]),
			Commission:              numericCell(row[cols.Commission]),
			NetInclCommission:       numericCell(row[cols.NetInclCommission]),
			WhatHappenedBeforeEnter: textCell(row[cols.WhatHappenedBeforeEnter]),
			WhatHappenedAfterExit:   textCell(row[cols.WhatHappenedAfterExit]),
			Comment:                 textCell(row[cols.Comment]),
			OnWork:                  boolCell(row[cols.OnWork]),
		}
		trades = append(trades, trade)
	}

	return trades
}

func (n *Normalizer) matchTime(cell any) []string {
	s, ok := cell.(string)
	if !ok {
		return nil
	}
	return timePattern.FindStringSubmatch(s)
}

// buildTimestamp combines a matched 6-component time cell with the row's
// date. With TimeOfDayOnly only hour/minute/second are trusted; with
// AbsoluteTimestamp the cell's own date components win.
func (n *Normalizer) buildTimestamp(date time.Time, match []string) time.Time {
	hour, _ := strconv.Atoi(match[4])
	minute, _ := strconv.Atoi(match[5])
	second, _ := strconv.Atoi(match[6])

	if n.schema.TimeEncoding == AbsoluteTimestamp {
		year, _ := strconv.Atoi(match[1])
		month, _ := strconv.Atoi(match[2])
		day, _ := strconv.Atoi(match[3])
		return time.Date(year, time.Month(month+1), day, hour, minute, second, 0, time.Local)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, second, 0, time.Local)
}

// numericCell coerces a cell to float64. Missing or non-numeric cells become
// NaN; that is a known propagation risk the statistics engine has to absorb.
func numericCell(cell any) float64 {
	switch v := cell.(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func textCell(cell any) string {
	if s, ok := cell.(string); ok {
		return s
	}
	return ""
}

// boolCell parses the sheet's checkbox rendering: the literal string "TRUE".
func boolCell(cell any) bool {
	switch v := cell.(type) {
	case bool:
		return v
	case string:
		return v == "TRUE"
	default:
		return false
	}
}
