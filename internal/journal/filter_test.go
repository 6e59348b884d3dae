package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgleason/trading-journal/internal/models"
)

func tradesSpanning(dates ...time.Time) []models.Trade {
	trades := make([]models.Trade, len(dates))
	for i, d := range dates {
		trades[i] = models.Trade{ID: i, Date: d}
	}
	return trades
}

func TestFilterByRange(t *testing.T) {
	trades := tradesSpanning(
		day(2025, time.January, 15),
		day(2025, time.February, 28),
		day(2025, time.March, 1),
		day(2025, time.March, 10),
		day(2025, time.March, 15),
		day(2025, time.April, 2),
	)

	t.Run("no bounds means no filtering", func(t *testing.T) {
		assert.Len(t, FilterByRange(trades, DateRange{}), len(trades))
	})

	t.Run("both bounds are inclusive", func(t *testing.T) {
		from := day(2025, time.March, 1)
		to := day(2025, time.March, 15)

		filtered := FilterByRange(trades, DateRange{From: &from, To: &to})
		require.Len(t, filtered, 3)
		assert.Equal(t, []int{2, 3, 4}, []int{filtered[0].ID, filtered[1].ID, filtered[2].ID})
	})

	t.Run("from-only is half-open", func(t *testing.T) {
		from := day(2025, time.March, 10)
		filtered := FilterByRange(trades, DateRange{From: &from})
		assert.Len(t, filtered, 3)
	})

	t.Run("to-only is half-open", func(t *testing.T) {
		to := day(2025, time.February, 28)
		filtered := FilterByRange(trades, DateRange{To: &to})
		assert.Len(t, filtered, 2)
	})

	t.Run("time of day on a bound is ignored", func(t *testing.T) {
		from := time.Date(2025, time.March, 15, 23, 59, 0, 0, time.Local)
		filtered := FilterByRange(trades, DateRange{From: &from})
		// March 15 itself still qualifies.
		assert.Len(t, filtered, 2)
	})
}
