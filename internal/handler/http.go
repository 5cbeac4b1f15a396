// Package handler exposes the payment simulator over HTTP.
package handler

import (
	"context"
	"net/http"

	"github.com/go-playground/validator"

	"github.com/minipay/minipay/internal/domain"
	"github.com/minipay/minipay/internal/ledger"
)

type PaymentProcessor interface {
	Process(ctx context.Context, p domain.Payment) error
}

type AccountReader interface {
	Get(id string) (*domain.Account, error)
	Snapshot() []ledger.AccountState
}

type PaymentHandler struct {
	processor PaymentProcessor
	accounts  AccountReader
	validate  *validator.Validate
}

func NewPaymentHandler(processor PaymentProcessor, accounts AccountReader) *PaymentHandler {
	return &PaymentHandler{
		processor: processor,
		accounts:  accounts,
		validate:  validator.New(),
	}
}

func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /payments", h.HandleCreatePayment)
	mux.HandleFunc("GET /accounts", h.HandleListAccounts)
	mux.HandleFunc("GET /accounts/{id}", h.HandleGetAccount)
}
