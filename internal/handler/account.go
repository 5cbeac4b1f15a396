package handler

import (
	"net/http"

	"github.com/minipay/minipay/internal/ledger"
)

// HandleListAccounts dumps the state of every account, sorted by identifier
func (h *PaymentHandler) HandleListAccounts(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.accounts.Snapshot())
}

// HandleGetAccount returns a single account's state
func (h *PaymentHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.accounts.Get(r.PathValue("id"))
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ledger.AccountState{
		ID:          account.ID(),
		Balance:     account.Balance(),
		CardNumber:  account.CardNumber(),
		PayPalEmail: account.PayPalEmail(),
	})
}
