package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/store"
)

type TransactionService struct {
	repo store.Repository
	l    *zap.Logger
	now  func() time.Time
}

func NewTransactionService(repo store.Repository, l *zap.Logger, now func() time.Time) *TransactionService {
	return &TransactionService{repo: repo, l: l, now: now}
}

// Create validates and records a transaction. The store assigns CreatedAt.
func (ts *TransactionService) Create(ctx context.Context, session model.Session, in TransactionInput) (*model.Transaction, error) {
	if err := checkSession(session); err != nil {
		return nil, err
	}
	if err := ValidateTransactionInput(in); err != nil {
		return nil, err
	}

	tx := &model.Transaction{
		Type:          in.Type,
		Description:   strings.TrimSpace(in.Description),
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		Date:          in.Date,
		VoucherNo:     strings.TrimSpace(in.VoucherNo),
		CreatedBy:     session.Operator,
	}
	if tx.Date.IsZero() {
		tx.Date = today(ts.now)
	}

	if name := strings.TrimSpace(in.ClientName); name != "" {
		client, err := ts.repo.GetClientByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve client: %w", err)
		}
		tx.ClientID = &client.ID
		tx.ClientName = client.Name
	}

	created, err := ts.repo.CreateTransaction(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	ts.l.Info("transaction recorded",
		zap.Int64("id", created.ID),
		zap.String("type", created.Type),
		zap.String("method", created.PaymentMethod),
		zap.Int64("amount", created.Amount),
		zap.String("operator", session.Operator))

	return created, nil
}

func (ts *TransactionService) Get(ctx context.Context, txID int64) (*model.Transaction, error) {
	return ts.repo.GetTransactionByID(ctx, txID)
}

// Recent returns the newest transactions first.
func (ts *TransactionService) Recent(ctx context.Context, limit int) ([]*model.Transaction, error) {
	transactions, err := ts.repo.ListRecentTransactions(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}
