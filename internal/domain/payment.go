package domain

import "github.com/google/uuid"

// Method identifies the verification strategy a payment is gated by.
type Method string

const (
	MethodCreditCard Method = "CREDIT_CARD"
	MethodPayPal     Method = "PAYPAL"
)

// Payment is a request to move funds between two accounts. The credential is
// interpreted according to Method: a card number for CREDIT_CARD, an email
// for PAYPAL. Amount positivity is enforced at transfer time, not at
// construction. A Payment keeps no settled flag, so processing the same value
// twice executes two transfers.
type Payment struct {
	ID            uuid.UUID
	Method        Method
	Amount        float64
	FromAccountID string
	ToAccountID   string
	Credential    string
}

// NewCreditCardPayment builds a payment verified by exact card-number match.
func NewCreditCardPayment(amount float64, fromAccountID, toAccountID, cardNumber string) Payment {
	return Payment{
		ID:            uuid.New(),
		Method:        MethodCreditCard,
		Amount:        amount,
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Credential:    cardNumber,
	}
}

// NewPayPalPayment builds a payment verified by case-insensitive email match.
func NewPayPalPayment(amount float64, fromAccountID, toAccountID, email string) Payment {
	return Payment{
		ID:            uuid.New(),
		Method:        MethodPayPal,
		Amount:        amount,
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Credential:    email,
	}
}
