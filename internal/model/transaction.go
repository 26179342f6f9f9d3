package model

import "time"

type Transaction struct {
	ID            int64
	Type          string
	Description   string
	Amount        int64
	PaymentMethod string
	Date          time.Time // conceptual date entered by the operator
	CreatedAt     time.Time // assigned by the store, orders the ledger
	ClientID      *int64
	ClientName    string
	VoucherNo     string
	CreatedBy     string
}
