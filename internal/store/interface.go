package store

import (
	"context"

	"github.com/hance08/tailorbook/internal/model"
)

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *model.Transaction) (*model.Transaction, error)
	GetTransactionByID(ctx context.Context, txID int64) (*model.Transaction, error)
	// ListTransactions returns every transaction; callers must not assume an order.
	ListTransactions(ctx context.Context) ([]*model.Transaction, error)
	ListRecentTransactions(ctx context.Context, limit int) ([]*model.Transaction, error)
}

type CheckpointRepository interface {
	CreateCheckpoint(ctx context.Context, in model.CheckpointInput) (*model.BalanceCheckpoint, error)
	// ListCheckpoints returns every checkpoint; callers must not assume an order.
	ListCheckpoints(ctx context.Context) ([]*model.BalanceCheckpoint, error)
}

type ClientRepository interface {
	CreateClient(ctx context.Context, name, phone string) (int64, error)
	GetClientByID(ctx context.Context, id int64) (*model.Client, error)
	GetClientByName(ctx context.Context, name string) (*model.Client, error)
	ListClients(ctx context.Context) ([]*model.Client, error)
}

type Repository interface {
	TransactionRepository
	CheckpointRepository
	ClientRepository

	ExecTx(ctx context.Context, fn func(Repository) error) error
	Close() error
}
