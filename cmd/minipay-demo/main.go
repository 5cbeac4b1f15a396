// The demo driver seeds the ledger from config, runs the configured payment
// batch in order, and prints each outcome followed by the final account dump.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/minipay/minipay/internal/config"
	"github.com/minipay/minipay/internal/domain"
	"github.com/minipay/minipay/internal/ledger"
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

	paymentService := service.NewPaymentService(book, logger)

	payments := make([]domain.Payment, 0, len(cfg.Demo.Payments))
	for _, pc := range cfg.Demo.Payments {
		payments = append(payments, pc.ToPayment())
	}

	// Business failures are reported per payment; the batch always runs to
	// the end and the process exits 0.
	outcomes := paymentService.ProcessBatch(context.Background(), payments)
	for _, outcome := range outcomes {
		fmt.Printf("Successfully? %t\n", outcome.Succeeded())
		fmt.Println(strings.Repeat("-", 30))
	}

	for _, state := range book.Snapshot() {
		fmt.Printf("Account(id=%s, balance=%.2f, card=%s, paypal=%s)\n",
			state.ID, state.Balance, state.CardNumber, state.PayPalEmail)
	}
}
