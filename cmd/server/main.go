package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rgleason/trading-journal/internal/api"
	"github.com/rgleason/trading-journal/internal/config"
	"github.com/rgleason/trading-journal/internal/images"
	"github.com/rgleason/trading-journal/internal/journal"
	"github.com/rgleason/trading-journal/internal/kafka"
	"github.com/rgleason/trading-journal/internal/sheets"
	"github.com/rgleason/trading-journal/internal/store"
	"github.com/rgleason/trading-journal/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})
	log.Info().Msg("Starting trading journal")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Feed column schema, overridable per feed revision.
	schema := journal.DefaultSchema()
	if cfg.Sheet.SchemaPath != "" {
		var err error
		schema, err = journal.LoadSchemaFile(cfg.Sheet.SchemaPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load feed schema")
		}
		log.Info().Str("path", cfg.Sheet.SchemaPath).
			Stringer("time_encoding", schema.TimeEncoding).
			Msg("Loaded feed schema")
	}

	// Trade cache: Redis when configured, in-memory otherwise.
	var tradeStore journal.TradeStore
	if cfg.Redis.Addr != "" {
		redisStore, err := store.NewRedisStore(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Key)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to redis")
		}
		defer redisStore.Close()
		tradeStore = redisStore
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Using redis trade cache")
	} else {
		tradeStore = store.NewMemoryStore()
		log.Info().Msg("No REDIS_ADDR set, trades are cached in memory only")
	}

	// Optional journal event producer.
	var events journal.EventPublisher
	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
		events = producer
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).
			Msg("Kafka event producer enabled")
	}

	svc := journal.NewService(journal.ServiceConfig{
		SheetURL:   cfg.Sheet.URL,
		SheetIndex: cfg.Sheet.Index,
		Schema:     schema,
		Fetcher:    sheets.NewClient(log),
		Store:      tradeStore,
		Events:     events,
		Log:        log,
	})
	if err := svc.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("Could not restore cached trades, starting empty")
	}

	handler := api.NewHandler(svc, images.NewDirLister(cfg.Images.Dir), log)
	router := api.SetupRoutes(handler)

	srv := &http.Server{
		Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}
}
