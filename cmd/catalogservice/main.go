// cmd/catalogservice/main.go
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis"
	"github.com/jmoiron/sqlx"

	"movie-catalog-service/internal/api"
	"movie-catalog-service/internal/config"
	"movie-catalog-service/internal/review"
	"movie-catalog-service/internal/search"
	"movie-catalog-service/internal/session"
	"movie-catalog-service/internal/store"
)

// newBaselineSource выбирает источник базовых отзывов: postgres при
// заданном DSN, иначе статический JSON-файл. Недоступная база не роняет
// сервис - с логом ошибки происходит откат на файл.
func newBaselineSource(cfg *config.Config, logger *slog.Logger) store.BaselineReviewSource {
	if cfg.BaselineReviewsDSN == "" {
		return store.LoadStaticReviewSource(cfg.Catalog.ReviewsFile, logger)
	}

	db, err := sqlx.Connect("postgres", cfg.BaselineReviewsDSN)
	if err != nil {
		logger.Error("Failed to connect to baseline reviews database, falling back to file source",
			slog.String("error", err.Error()))
		return store.LoadStaticReviewSource(cfg.Catalog.ReviewsFile, logger)
	}

	source, err := store.NewPostgresReviewSource(db, logger)
	if err != nil {
		logger.Error("Failed to initialize postgres review source, falling back to file source",
			slog.String("error", err.Error()))
		return store.LoadStaticReviewSource(cfg.Catalog.ReviewsFile, logger)
	}
	logger.Info("Baseline reviews served from PostgreSQL")
	return source
}

// newSessionStore выбирает хранилище сессий: Redis при заданном адресе,
// иначе память процесса. Недоступный Redis тоже не роняет сервис.
func newSessionStore(cfg *config.Config, logger *slog.Logger) session.Store {
	if cfg.Redis.Addr == "" {
		logger.Info("Session state stored in process memory")
		return session.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := client.Ping().Result(); err != nil {
		logger.Error("Failed to ping Redis, falling back to in-memory session store",
			slog.String("addr", cfg.Redis.Addr), slog.String("error", err.Error()))
		return session.NewMemoryStore()
	}

	logger.Info("Session state stored in Redis", slog.String("addr", cfg.Redis.Addr))
	return session.NewRedisStore(client, "session", cfg.Sessions.TTL, logger)
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := config.Load(logger)

	// Каталог строится один раз и дальше только читается.
	catalog := store.LoadCatalog(cfg.Catalog.MoviesFile, logger)
	engine := search.NewEngine(catalog)

	baselineSource := newBaselineSource(cfg, logger)
	sessionStore := newSessionStore(cfg, logger)

	reviewService := review.NewService(review.NewValidator(), logger, nil)

	handler := api.NewHandler(catalog, engine, reviewService, baselineSource, sessionStore, logger)
	router := api.NewRouter(handler)

	httpSrv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("Catalog service HTTP server starting", slog.String("port", cfg.HTTP.Port))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server ListenAndServe() failed", slog.String("error", err.Error()))
		}
	}()

	// Ожидание сигнала для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Catalog service shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", slog.String("error", err.Error()))
	} else {
		logger.Info("HTTP server gracefully stopped.")
	}
}
