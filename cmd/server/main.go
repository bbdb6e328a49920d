package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/messbook/internal/auth"
	"github.com/mmynk/messbook/internal/config"
	"github.com/mmynk/messbook/internal/events"
	"github.com/mmynk/messbook/internal/events/kafka"
	"github.com/mmynk/messbook/internal/metrics"
	"github.com/mmynk/messbook/internal/middleware"
	"github.com/mmynk/messbook/internal/period"
	"github.com/mmynk/messbook/internal/service"
	"github.com/mmynk/messbook/internal/settlement"
	"github.com/mmynk/messbook/internal/storage/sqlite"
	"github.com/mmynk/messbook/pkg/api/apiconnect"
	"github.com/mmynk/messbook/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logging is not configured yet.
		fmt.Fprintf(os.Stderr, "messbook: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level)

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Database.Path)

	reg, m := metrics.NewRegistry()

	var publisher events.Publisher = events.Nop{}
	if len(cfg.Events.Brokers) > 0 {
		publisher = kafka.NewPublisher(cfg.Events.Brokers, cfg.Events.Topic)
		slog.Info("Publishing ledger events", "brokers", cfg.Events.Brokers, "topic", cfg.Events.Topic)
	}
	defer publisher.Close()

	engine := settlement.NewEngine(store, store,
		settlement.WithMetrics(m),
		settlement.WithPublisher(publisher),
	)

	// Auth runs before logging so the logged user_id is the caller's.
	interceptors := []connect.Interceptor{middleware.MetricsInterceptor(m)}
	if cfg.Auth.Enabled {
		authenticator := auth.NewAuthenticator(store, auth.NewJWTManager(cfg.Auth.Secret, cfg.Auth.TokenTTL))
		interceptors = append(interceptors, middleware.RequireAuth(authenticator, service.AccessRules))
	} else {
		slog.Warn("Authentication disabled, every RPC is open")
	}
	interceptors = append(interceptors, middleware.LoggingInterceptor())
	opts := connect.WithInterceptors(interceptors...)

	mux := http.NewServeMux()

	// Register Connect services
	mux.Handle(apiconnect.NewPeriodServiceHandler(service.NewPeriodService(period.NewRegistry(store)), opts))
	mux.Handle(apiconnect.NewSettlementServiceHandler(service.NewSettlementService(engine, store), opts))
	mux.Handle(apiconnect.NewLedgerServiceHandler(service.NewLedgerService(store, publisher), opts))
	mux.Handle(apiconnect.NewHouseholdServiceHandler(service.NewHouseholdService(store), opts))
	mux.Handle(apiconnect.NewMenuServiceHandler(service.NewMenuService(store), opts))

	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	handler := h2c.NewHandler(middleware.RequestLogging(middleware.CORS(mux)), &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
