package journal

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rgleason/trading-journal/internal/gviz"
	"github.com/rgleason/trading-journal/internal/models"
	"github.com/rgleason/trading-journal/internal/sheets"
)

// ErrLoadSuperseded is returned when a newer load started while this one was
// in flight; the stale result is discarded instead of committed.
var ErrLoadSuperseded = errors.New("load superseded by a newer request")

// TableFetcher retrieves the decoded feed table for a sheet.
type TableFetcher interface {
	FetchTable(ctx context.Context, sheetURL string, sheetIndex int) (*gviz.Table, error)
}

// TradeStore caches the current trade batch between runs.
type TradeStore interface {
	Load(ctx context.Context) ([]models.Trade, error)
	Save(ctx context.Context, trades []models.Trade) error
}

// EventPublisher announces committed load batches.
type EventPublisher interface {
	PublishTradesLoaded(ctx context.Context, sheetID string, tradeCount, tradingDays int) error
}

// ServiceConfig wires a Service. Store and Events are optional.
type ServiceConfig struct {
	SheetURL   string
	SheetIndex int
	Schema     Schema
	Fetcher    TableFetcher
	Store      TradeStore
	Events     EventPublisher
	Log        zerolog.Logger
}

// Service owns the journal's trade batch. The batch is immutable once
// committed; a reload replaces it wholesale and a failed load leaves the
// previous batch untouched.
type Service struct {
	fetcher    TableFetcher
	normalizer *Normalizer
	store      TradeStore
	events     EventPublisher
	log        zerolog.Logger
	sheetURL   string
	sheetIndex int
	encoding   TimeEncoding

	mu      sync.Mutex
	trades  []models.Trade
	loadSeq uint64
}

// NewService creates a Service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		fetcher:    cfg.Fetcher,
		normalizer: NewNormalizer(cfg.Schema, cfg.Log),
		store:      cfg.Store,
		events:     cfg.Events,
		log:        cfg.Log.With().Str("component", "journal").Logger(),
		sheetURL:   cfg.SheetURL,
		sheetIndex: cfg.SheetIndex,
		encoding:   cfg.Schema.TimeEncoding,
	}
}

// Restore loads the cached trade batch from the store, if any.
func (s *Service) Restore(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	trades, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore cached trades: %w", err)
	}
	if trades == nil {
		return nil
	}

	s.mu.Lock()
	s.trades = trades
	s.mu.Unlock()

	s.log.Info().Int("trades", len(trades)).Msg("restored cached trade batch")
	return nil
}

// LoadFromSheet fetches the configured sheet, normalizes it and commits the
// resulting batch. Each call takes a monotonic token; if another load started
// in the meantime the stale result is dropped with ErrLoadSuperseded. Returns
// the number of trades committed.
func (s *Service) LoadFromSheet(ctx context.Context) (int, error) {
	// Validate the sheet URL before touching the network.
	sheetID, err := sheets.ExtractSheetID(s.sheetURL)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.loadSeq++
	token := s.loadSeq
	s.mu.Unlock()

	table, err := s.fetcher.FetchTable(ctx, s.sheetURL, s.sheetIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to load sheet: %w", err)
	}

	trades := s.normalizer.Normalize(table)

	s.mu.Lock()
	if token != s.loadSeq {
		s.mu.Unlock()
		return 0, ErrLoadSuperseded
	}
	s.trades = trades
	s.mu.Unlock()

	s.log.Info().
		Str("sheet_id", sheetID).
		Int("rows", len(table.Rows)).
		Int("trades", len(trades)).
		Msg("committed trade batch")

	if s.store != nil {
		if err := s.store.Save(ctx, trades); err != nil {
			// The batch is already committed in memory; a cache miss on
			// next start is the only consequence.
			s.log.Error().Err(err).Msg("failed to cache trade batch")
		}
	}
	if s.events != nil {
		days := len(GroupByDay(trades))
		if err := s.events.PublishTradesLoaded(ctx, sheetID, len(trades), days); err != nil {
			s.log.Error().Err(err).Msg("failed to publish load event")
		}
	}

	return len(trades), nil
}

// Trades returns a copy of the current batch in feed order.
func (s *Service) Trades() []models.Trade {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Trade, len(s.trades))
	copy(out, s.trades)
	return out
}

// TradeByID looks a trade up by its batch-local id.
func (s *Service) TradeByID(id int) (models.Trade, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, trade := range s.trades {
		if trade.ID == id {
			return trade, true
		}
	}
	return models.Trade{}, false
}

// Daily returns per-day performance over the filtered batch.
func (s *Service) Daily(r DateRange) []models.DailyPerformance {
	return GroupByDay(FilterByRange(s.Trades(), r))
}

// Statistics summarizes the filtered batch.
func (s *Service) Statistics(r DateRange) models.StatisticsSummary {
	return Summarize(FilterByRange(s.Trades(), r), s.encoding)
}
