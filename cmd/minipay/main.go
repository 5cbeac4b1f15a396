package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minipay/minipay/internal/config"
	"github.com/minipay/minipay/internal/handler"
	"github.com/minipay/minipay/internal/ledger"
	"github.com/minipay/minipay/internal/middleware"
	"github.com/minipay/minipay/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting minipay server",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	book := ledger.New()
	for _, ac := range cfg.Accounts {
		account, err := ac.ToAccount()
		if err != nil {
			logger.Error("invalid account in config", "account_id", ac.ID, "error", err)
			os.Exit(1)
		}
		if err := book.Add(account); err != nil {
			logger.Error("failed to seed account", "account_id", ac.ID, "error", err)
			os.Exit(1)
		}
	}
	logger.Info("ledger seeded", "accounts", len(cfg.Accounts))

	paymentService := service.NewPaymentService(book, logger)

	h := handler.NewPaymentHandler(paymentService, book)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	router := http.Handler(mux)

	hnd := middleware.Recovery(logger)(router)
	hnd = middleware.Logging(logger)(hnd)
	hnd = middleware.Timeout(cfg.Server.ReadTimeout)(hnd)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      hnd,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
