package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/rgleason/trading-journal/internal/gviz"
	"github.com/rgleason/trading-journal/internal/images"
	"github.com/rgleason/trading-journal/internal/journal"
	"github.com/rgleason/trading-journal/internal/models"
	"github.com/rgleason/trading-journal/internal/sheets"
)

const dayLayout = "2006-01-02"

// Journal is the slice of the journal service the handlers need.
type Journal interface {
	Trades() []models.Trade
	TradeByID(id int) (models.Trade, bool)
	Daily(r journal.DateRange) []models.DailyPerformance
	Statistics(r journal.DateRange) models.StatisticsSummary
	LoadFromSheet(ctx context.Context) (int, error)
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	journal Journal
	images  images.Lister
	log     zerolog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(j Journal, lister images.Lister, log zerolog.Logger) *Handler {
	return &Handler{
		journal: j,
		images:  lister,
		log:     log.With().Str("component", "api").Logger(),
	}
}

// GetTrades handles GET /trades
func (h *Handler) GetTrades(w http.ResponseWriter, r *http.Request) {
	dateRange, err := parseRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	trades := journal.FilterByRange(h.journal.Trades(), dateRange)
	respondJSON(w, http.StatusOK, renderTrades(trades))
}

// LoadTrades handles POST /trades/load
func (h *Handler) LoadTrades(w http.ResponseWriter, r *http.Request) {
	count, err := h.journal.LoadFromSheet(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("load failed")

		var configErr *sheets.ConfigError
		var formatErr *gviz.FeedFormatError
		var netErr *sheets.NetworkError
		switch {
		case errors.As(err, &configErr):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, journal.ErrLoadSuperseded):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.As(err, &formatErr), errors.As(err, &netErr):
			http.Error(w, err.Error(), http.StatusBadGateway)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"trades_loaded": count})
}

// GetCalendar handles GET /calendar
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	dateRange, err := parseRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, renderDaily(h.journal.Daily(dateRange)))
}

// GetStatistics handles GET /statistics
func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	dateRange, err := parseRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, renderStatistics(h.journal.Statistics(dateRange)))
}

// GetTradeImages handles GET /trades/{id}/images
func (h *Handler) GetTradeImages(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "invalid trade id", http.StatusBadRequest)
		return
	}

	trade, ok := h.journal.TradeByID(id)
	if !ok {
		http.Error(w, "trade not found", http.StatusNotFound)
		return
	}

	files, err := h.images.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, images.ForTrade(trade, files))
}

// GetImages handles GET /images
func (h *Handler) GetImages(w http.ResponseWriter, r *http.Request) {
	files, err := h.images.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, files)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// parseRange reads the optional inclusive from/to query parameters.
func parseRange(r *http.Request) (journal.DateRange, error) {
	var dateRange journal.DateRange

	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.ParseInLocation(dayLayout, v, time.Local)
		if err != nil {
			return dateRange, errors.New("invalid from date, expected YYYY-MM-DD")
		}
		dateRange.From = &t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.ParseInLocation(dayLayout, v, time.Local)
		if err != nil {
			return dateRange, errors.New("invalid to date, expected YYYY-MM-DD")
		}
		dateRange.To = &t
	}
	return dateRange, nil
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
