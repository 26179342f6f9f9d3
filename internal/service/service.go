package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/hance08/tailorbook/internal/config"
	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/store"
)

type Service struct {
	Transaction *TransactionService
	Client      *ClientService
	Ledger      *LedgerService
	Config      *config.Config
}

// NewService wires the sub-services. now must return the current time in the
// ledger location; conceptual dates default to its calendar day.
func NewService(repo store.Repository, cfg *config.Config, l *zap.Logger, now func() time.Time) *Service {
	if l == nil {
		l = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}

	return &Service{
		Transaction: NewTransactionService(repo, l, now),
		Client:      NewClientService(repo, l),
		Ledger:      NewLedgerService(repo, cfg, l, now),
		Config:      cfg,
	}
}

func checkSession(session model.Session) error {
	if session.Operator == "" {
		return ErrNoOperator
	}
	return nil
}

func today(now func() time.Time) time.Time {
	t := now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
