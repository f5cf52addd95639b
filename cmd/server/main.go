package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/splitbill/internal/app"
	"github.com/mmynk/splitbill/internal/config"
	"github.com/mmynk/splitbill/internal/middleware"
	"github.com/mmynk/splitbill/internal/service"
	"github.com/mmynk/splitbill/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logging is not configured yet
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	ctx := context.Background()
	history, backend, err := app.OpenHistory(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	mux := http.NewServeMux()

	// Register Connect services
	billPath, billHandler := service.NewBillServiceHandler(
		service.NewBillService(history),
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)
	mux.Handle(billPath, billHandler)

	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	h2cHandler := h2c.NewHandler(middleware.CORS(mux), &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           h2cHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := server.ListenAndServe(); err != nil {
		slog.Error("Server failed", "error", err)
		backend.Close()
		os.Exit(1)
	}
}
