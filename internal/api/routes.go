package api

import (
	"github.com/gorilla/mux"
)

// SetupRoutes configures all API routes
func SetupRoutes(handler *Handler) *mux.Router {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// Journal routes
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/trades", handler.GetTrades).Methods("GET")
	api.HandleFunc("/trades/load", handler.LoadTrades).Methods("POST")
	api.HandleFunc("/trades/{id}/images", handler.GetTradeImages).Methods("GET")
	api.HandleFunc("/calendar", handler.GetCalendar).Methods("GET")
	api.HandleFunc("/statistics", handler.GetStatistics).Methods("GET")
	api.HandleFunc("/images", handler.GetImages).Methods("GET")

	return r
}
