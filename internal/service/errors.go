package service

import "errors"

var (
	// ErrNothingToBalance is informational: no transaction was recorded since
	// the last checkpoint, so there is nothing to close.
	ErrNothingToBalance = errors.New("no new transactions since the last balance")

	// ErrSuperseded means a newer ledger run started before this one finished.
	ErrSuperseded = errors.New("ledger run superseded by a newer one")

	ErrNoOperator         = errors.New("no operator set for this session")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidBalanceDate = errors.New("invalid balance date")
)
