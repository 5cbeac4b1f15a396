// Package ledger holds the in-memory account collection.
package ledger

import (
	"sort"
	"sync"

	"github.com/minipay/minipay/internal/domain"
)

// Ledger owns every account for the lifetime of the process, keyed by
// identifier. Accounts are registered at startup and never removed.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func New() *Ledger {
	return &Ledger{
		accounts: make(map[string]*domain.Account),
	}
}

// Add registers an account, rejecting duplicate identifiers.
func (l *Ledger) Add(account *domain.Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.accounts[account.ID()]; exists {
		return domain.NewDuplicateAccountError(account.ID())
	}
	l.accounts[account.ID()] = account
	return nil
}

// Get resolves an account by identifier. An unknown identifier is an explicit
// ACCOUNT_NOT_FOUND error, never a panic.
func (l *Ledger) Get(id string) (*domain.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	account, ok := l.accounts[id]
	if !ok {
		return nil, domain.NewAccountNotFoundError(id)
	}
	return account, nil
}

// AccountState is a point-in-time view of one account for reporting.
type AccountState struct {
	ID          string  `json:"id"`
	Balance     float64 `json:"balance"`
	CardNumber  string  `json:"card_number"`
	PayPalEmail string  `json:"paypal_email"`
}

// Snapshot returns the state of every account, sorted by identifier.
func (l *Ledger) Snapshot() []AccountState {
	l.mu.RLock()
	defer l.mu.RUnlock()

	states := make([]AccountState, 0, len(l.accounts))
	for _, account := range l.accounts {
		states = append(states, AccountState{
			ID:          account.ID(),
			Balance:     account.Balance(),
			CardNumber:  account.CardNumber(),
			PayPalEmail: account.PayPalEmail(),
		})
	}
	sort.Slice(states, func(i, j int) bool {
		return states[i].ID < states[j].ID
	})
	return states
}
