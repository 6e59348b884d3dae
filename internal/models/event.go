package models

import "time"

// Journal event types published after a load batch commits.
const (
	EventTradesLoaded = "TRADES_LOADED"
)

// JournalEvent is the Kafka payload describing a committed load batch.
type JournalEvent struct {
	EventType   string    `json:"event_type"`
	SheetID     string    `json:"sheet_id"`
	TradeCount  int       `json:"trade_count"`
	TradingDays int       `json:"trading_days"`
	Timestamp   time.Time `json:"timestamp"`
}
