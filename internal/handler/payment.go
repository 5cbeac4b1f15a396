package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/minipay/minipay/internal/domain"
)

type PaymentRequest struct {
	Method        string  `json:"method" validate:"required,oneof=CREDIT_CARD PAYPAL"`
	Amount        float64 `json:"amount" validate:"required"`
	FromAccountID string  `json:"from_account_id" validate:"required"`
	ToAccountID   string  `json:"to_account_id" validate:"required"`
	CardNumber    string  `json:"card_number"`
	PayPalEmail   string  `json:"paypal_email"`
}

type PaymentResponse struct {
	PaymentID     string  `json:"payment_id"`
	Method        string  `json:"method"`
	Amount        float64 `json:"amount"`
	FromAccountID string  `json:"from_account_id"`
	ToAccountID   string  `json:"to_account_id"`
	Status        string  `json:"status"`
}

// HandleCreatePayment verifies the presented credential and moves the funds
func (h *PaymentHandler) HandleCreatePayment(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithError(w, err)
		return
	}

	var req PaymentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondWithError(w, &domain.DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "invalid request body",
			Err:     err,
		})
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithError(w, &domain.DomainError{
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
		})
		return
	}

	var payment domain.Payment
	switch domain.Method(req.Method) {
	case domain.MethodCreditCard:
		payment = domain.NewCreditCardPayment(req.Amount, req.FromAccountID, req.ToAccountID, req.CardNumber)
	case domain.MethodPayPal:
		payment = domain.NewPayPalPayment(req.Amount, req.FromAccountID, req.ToAccountID, req.PayPalEmail)
	default:
		respondWithError(w, domain.NewUnknownMethodError(domain.Method(req.Method)))
		return
	}

	if err := h.processor.Process(r.Context(), payment); err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, PaymentResponse{
		PaymentID:     payment.ID.String(),
		Method:        string(payment.Method),
		Amount:        payment.Amount,
		FromAccountID: payment.FromAccountID,
		ToAccountID:   payment.ToAccountID,
		Status:        "COMPLETED",
	})
}
