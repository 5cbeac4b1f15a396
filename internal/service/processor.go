// Package service orchestrates payment processing against the ledger.
package service

import (
	"context"
	"log/slog"

	"github.com/minipay/minipay/internal/domain"
	"github.com/minipay/minipay/internal/ledger"
)

type PaymentService struct {
	ledger *ledger.Ledger
	logger *slog.Logger
}

func NewPaymentService(l *ledger.Ledger, logger *slog.Logger) *PaymentService {
	return &PaymentService{
		ledger: l,
		logger: logger,
	}
}

// Process resolves both accounts, verifies the presented credential against
// the sender's stored secret, and transfers the funds. A nil return means the
// funds moved. Business failures (unknown account, credential mismatch,
// non-positive amount, insufficient funds) come back as DomainError values
// and leave every balance untouched.
func (s *PaymentService) Process(ctx context.Context, p domain.Payment) error {
	switch p.Method {
	case domain.MethodCreditCard, domain.MethodPayPal:
	default:
		return domain.NewUnknownMethodError(p.Method)
	}

	sender, err := s.ledger.Get(p.FromAccountID)
	if err != nil {
		s.logger.Warn("unknown sender account",
			"payment_id", p.ID,
			"account_id", p.FromAccountID,
		)
		return err
	}

	receiver, err := s.ledger.Get(p.ToAccountID)
	if err != nil {
		s.logger.Warn("unknown receiver account",
			"payment_id", p.ID,
			"account_id", p.ToAccountID,
		)
		return err
	}

	if !sender.VerifyCredential(p.Method, p.Credential) {
		err := domain.NewInvalidCredentialError(p.Method)
		s.logger.Warn("credential verification failed",
			"payment_id", p.ID,
			"method", p.Method,
			"from", p.FromAccountID,
			"error", err,
		)
		return err
	}

	if err := sender.Transfer(p.Amount, receiver); err != nil {
		s.logger.Warn("transfer failed",
			"payment_id", p.ID,
			"from", p.FromAccountID,
			"to", p.ToAccountID,
			"amount", p.Amount,
			"error", err,
		)
		return err
	}

	s.logger.Info("payment processed",
		"payment_id", p.ID,
		"method", p.Method,
		"from", p.FromAccountID,
		"to", p.ToAccountID,
		"amount", p.Amount,
	)
	return nil
}

// Outcome records what happened to one payment of a batch.
type Outcome struct {
	Payment domain.Payment
	Err     error
}

func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// ProcessBatch applies Process to each payment in order. A failed payment is
// recorded and the batch keeps going.
func (s *PaymentService) ProcessBatch(ctx context.Context, payments []domain.Payment) []Outcome {
	outcomes := make([]Outcome, 0, len(payments))
	for _, p := range payments {
		outcomes = append(outcomes, Outcome{
			Payment: p,
			Err:     s.Process(ctx, p),
		})
	}
	return outcomes
}
