package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	pgRepo "advboard/internal/infra/adapter/persistence/postgres"
	"advboard/internal/infra/db"
	"advboard/internal/observability/logging"
	"advboard/internal/resilience/circuitbreaker"
	"advboard/pkg/config"

	advUC "advboard/internal/usecase/adv"

	hhttp "advboard/internal/handler/http"
	hadv "advboard/internal/handler/http/adv"
	"advboard/internal/handler/http/requestid"
)

func main() {
	// .env があれば読み込む(無ければ環境変数のみ)
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := config.GetEnvString("VERSION", "dev")
	handler := setupServer(logger, database, version)

	runServer(logger, handler, version)
}

// initDatabase opens the connection pool and runs the idempotent migration.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// setupServer wires the store, use cases, routes and middleware chain.
func setupServer(logger *slog.Logger, database *sql.DB, version string) http.Handler {
	// Request-level errors (validation, unknown owner, missing adv) must not
	// count against the breaker; only store failures should trip it.
	breaker := circuitbreaker.New(circuitbreaker.DBConfig(), func(err error) bool {
		return err == nil || advUC.IsRequestError(err)
	})

	store := pgRepo.NewStore(database, breaker)
	advSvc := advUC.Service{Store: store}

	mux := http.NewServeMux()
	hadv.Register(mux, advSvc)

	// 運用エンドポイント
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: Request ID -> Rate Limit -> Recovery -> Logging -> Body Limit -> Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler

	// Apply in reverse order (innermost to outermost)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)

	if config.GetEnvBool("RATELIMIT_ENABLED", true) {
		limiter := hhttp.NewRateLimiter(
			config.GetEnvFloat("RATELIMIT_RPS", 50),
			config.GetEnvInt("RATELIMIT_BURST", 100),
		)
		chain = limiter.Middleware(chain)
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	chain = requestid.Middleware(chain)
	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := config.GetEnvString("HTTP_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
