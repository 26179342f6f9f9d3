package model

import "time"

// BalanceCheckpoint closes every transaction created up to CreatedAt.
type BalanceCheckpoint struct {
	ID               int64
	CashBalance      int64
	BankBalance      int64
	LastBalancedDate time.Time
	CreatedAt        time.Time
	CreatedBy        string
}

// CheckpointInput is what a "balance the book" operation writes.
// PrevCheckpointID and LastTransactionID describe the read that produced the
// balances; the store rejects the write when either has moved on.
type CheckpointInput struct {
	CashBalance       int64
	BankBalance       int64
	LastBalancedDate  time.Time
	CreatedBy         string
	PrevCheckpointID  int64
	LastTransactionID int64
}
