// Package domain defines the entities of the payment simulator.
package domain

import (
	"fmt"
	"strings"
	"sync"
)

// Account holds a balance and the verification secrets of its owner.
// Balance access is mutex-guarded so the account can be shared between
// concurrent callers of the HTTP surface.
type Account struct {
	id          string
	cardNumber  string
	payPalEmail string

	mu      sync.Mutex
	balance float64
}

func NewAccount(id string, balance float64, cardNumber, payPalEmail string) (*Account, error) {
	if id == "" {
		return nil, NewMissingRequiredFieldError("account ID")
	}
	if balance < 0 {
		return nil, NewNegativeBalanceError(balance)
	}
	return &Account{
		id:          id,
		balance:     balance,
		cardNumber:  cardNumber,
		payPalEmail: payPalEmail,
	}, nil
}

func (a *Account) ID() string {
	return a.id
}

func (a *Account) Balance() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *Account) CardNumber() string {
	return a.cardNumber
}

func (a *Account) PayPalEmail() string {
	return a.payPalEmail
}

// SetBalance replaces the balance. A negative value is a validation error and
// leaves the balance unchanged.
func (a *Account) SetBalance(value float64) error {
	if value < 0 {
		return NewNegativeBalanceError(value)
	}
	a.mu.Lock()
	a.balance = value
	a.mu.Unlock()
	return nil
}

// Transfer moves amount from this account to the destination. It fails with
// no state change when the amount is not positive or exceeds the current
// balance. Both account locks are acquired in identifier order so concurrent
// opposite-direction transfers cannot deadlock.
func (a *Account) Transfer(amount float64, to *Account) error {
	if amount <= 0 {
		return NewInvalidAmountError(amount)
	}

	first, second := a, to
	if to.id < a.id {
		first, second = to, a
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	if first != second {
		second.mu.Lock()
		defer second.mu.Unlock()
	}

	if a.balance < amount {
		return NewInsufficientFundsError(a.id)
	}

	a.balance -= amount
	to.balance += amount
	return nil
}

// VerifyCredential reports whether a presented secret matches the stored one.
// Card numbers compare exactly, emails compare case-insensitively. An unknown
// method never verifies.
func (a *Account) VerifyCredential(method Method, presented string) bool {
	switch method {
	case MethodCreditCard:
		return presented == a.cardNumber
	case MethodPayPal:
		return strings.EqualFold(presented, a.payPalEmail)
	default:
		return false
	}
}

func (a *Account) String() string {
	return fmt.Sprintf("Account(id=%s, balance=%.2f, card=%s, paypal=%s)",
		a.id, a.Balance(), a.cardNumber, a.payPalEmail)
}
