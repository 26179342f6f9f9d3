package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"

	"github.com/hance08/tailorbook/internal/model"
)

const selectTransaction = `
        SELECT t.id, t.type, t.description, t.amount, t.payment_method, t.date,
               t.created_at, t.client_id, COALESCE(c.name, ''), t.voucher_no, t.created_by
        FROM transactions t
        LEFT JOIN clients c ON c.id = t.client_id
`

// CreateTransaction inserts tx and returns it with ID and CreatedAt filled in.
// The store, not the caller, assigns CreatedAt.
func (s *Store) CreateTransaction(ctx context.Context, tx *model.Transaction) (*model.Transaction, error) {
	var created *model.Transaction

	err := s.inTx(ctx, func(ts *Store) error {
		createdAt, err := ts.nextCreatedAt(ctx)
		if err != nil {
			return err
		}

		stmt, err := ts.db.PrepareContext(ctx, `
            INSERT INTO transactions (type, description, amount, payment_method, date,
                                      created_at, client_id, voucher_no, created_by)
            VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
            RETURNING id;
        `)
		if err != nil {
			return fmt.Errorf("failed to prepare transaction SQL: %w", err)
		}
		defer func() {
			_ = stmt.Close()
		}()

		var newID int64
		err = stmt.QueryRowContext(ctx,
			tx.Type, tx.Description, tx.Amount, tx.PaymentMethod, encodeDate(tx.Date),
			createdAt, tx.ClientID, tx.VoucherNo, tx.CreatedBy,
		).Scan(&newID)
		if err != nil {
			if sqliteErr, ok := isConstraintErr(err); ok {
				if sqliteErr.ExtendedCode == sqlite.ErrConstraintForeignKey {
					return fmt.Errorf("failed to insert transaction: client not found: %w", ErrRecordNotFound)
				}
				return fmt.Errorf("failed to insert transaction: %w: %v", ErrConstraintViolation, err)
			}
			return fmt.Errorf("failed to insert transaction: %w", err)
		}

		c := *tx
		c.ID = newID
		c.CreatedAt = decodeTimestamp(createdAt)
		created = &c
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Store) GetTransactionByID(ctx context.Context, txID int64) (*model.Transaction, error) {
	row := s.db.QueryRowContext(ctx, selectTransaction+` WHERE t.id = ?`, txID)

	tx, err := s.scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction with ID %d: %w", txID, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]*model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, selectTransaction+` ORDER BY t.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanTransactions(rows)
}

// ListRecentTransactions returns the newest transactions first.
func (s *Store) ListRecentTransactions(ctx context.Context, limit int) ([]*model.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, selectTransaction+`
        ORDER BY t.created_at DESC, t.id DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanTransactions(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanTransaction(row rowScanner) (*model.Transaction, error) {
	tx := &model.Transaction{}
	var (
		date      string
		createdAt int64
		clientID  sql.NullInt64
	)

	err := row.Scan(
		&tx.ID, &tx.Type, &tx.Description, &tx.Amount, &tx.PaymentMethod, &date,
		&createdAt, &clientID, &tx.ClientName, &tx.VoucherNo, &tx.CreatedBy,
	)
	if err != nil {
		return nil, err
	}

	tx.Date = s.decodeDate(date, "transactions.date", tx.ID)
	tx.CreatedAt = decodeTimestamp(createdAt)
	if clientID.Valid {
		tx.ClientID = &clientID.Int64
	}

	return tx, nil
}

func (s *Store) scanTransactions(rows *sql.Rows) ([]*model.Transaction, error) {
	var transactions []*model.Transaction
	for rows.Next() {
		tx, err := s.scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}
