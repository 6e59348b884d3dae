package journal

import (
	"time"

	"github.com/rgleason/trading-journal/internal/models"
)

// DateRange is an optional day-granular filter. Nil bounds are open; present
// bounds are inclusive, so half-open ranges work.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// FilterByRange keeps the trades whose calendar day falls inside the range.
// Time-of-day on either bound is ignored.
func FilterByRange(trades []models.Trade, r DateRange) []models.Trade {
	if r.From == nil && r.To == nil {
		return trades
	}

	filtered := make([]models.Trade, 0, len(trades))
	for _, trade := range trades {
		day := truncateDay(trade.Date)
		if r.From != nil && day.Before(truncateDay(*r.From)) {
			continue
		}
		if r.To != nil && day.After(truncateDay(*r.To)) {
			continue
		}
		filtered = append(filtered, trade)
	}
	return filtered
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
