package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hance08/tailorbook/internal/model"
)

// CreateCheckpoint appends a balance checkpoint. The write is rejected with
// ErrStaleCheckpoint if another checkpoint or transaction was recorded after
// the read described by in.PrevCheckpointID and in.LastTransactionID.
func (s *Store) CreateCheckpoint(ctx context.Context, in model.CheckpointInput) (*model.BalanceCheckpoint, error) {
	var created *model.BalanceCheckpoint

	err := s.inTx(ctx, func(ts *Store) error {
		var lastCheckpointID, lastTxID int64
		err := ts.db.QueryRowContext(ctx, `
            SELECT
                (SELECT COALESCE(MAX(id), 0) FROM balance_checkpoints),
                (SELECT COALESCE(MAX(id), 0) FROM transactions)
        `).Scan(&lastCheckpointID, &lastTxID)
		if err != nil {
			return fmt.Errorf("failed to read ledger head: %w", err)
		}

		if lastCheckpointID != in.PrevCheckpointID {
			return fmt.Errorf("checkpoint #%d was recorded after the books were read: %w",
				lastCheckpointID, ErrStaleCheckpoint)
		}
		if lastTxID != in.LastTransactionID {
			return fmt.Errorf("transaction #%d was recorded after the books were read: %w",
				lastTxID, ErrStaleCheckpoint)
		}

		createdAt, err := ts.nextCreatedAt(ctx)
		if err != nil {
			return err
		}

		var newID int64
		err = ts.db.QueryRowContext(ctx, `
            INSERT INTO balance_checkpoints (cash_balance, bank_balance, last_balanced_date, created_at, created_by)
            VALUES (?, ?, ?, ?, ?)
            RETURNING id;
        `, in.CashBalance, in.BankBalance, encodeDate(in.LastBalancedDate), createdAt, in.CreatedBy).Scan(&newID)
		if err != nil {
			if _, ok := isConstraintErr(err); ok {
				return fmt.Errorf("failed to insert checkpoint: %w: %v", ErrConstraintViolation, err)
			}
			return fmt.Errorf("failed to insert checkpoint: %w", err)
		}

		created = &model.BalanceCheckpoint{
			ID:               newID,
			CashBalance:      in.CashBalance,
			BankBalance:      in.BankBalance,
			LastBalancedDate: in.LastBalancedDate,
			CreatedAt:        decodeTimestamp(createdAt),
			CreatedBy:        in.CreatedBy,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Store) ListCheckpoints(ctx context.Context) ([]*model.BalanceCheckpoint, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, cash_balance, bank_balance, last_balanced_date, created_at, created_by
        FROM balance_checkpoints
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query checkpoints: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanCheckpoints(rows)
}

func (s *Store) scanCheckpoints(rows *sql.Rows) ([]*model.BalanceCheckpoint, error) {
	var checkpoints []*model.BalanceCheckpoint
	for rows.Next() {
		cp := &model.BalanceCheckpoint{}
		var (
			date      string
			createdAt int64
		)

		err := rows.Scan(&cp.ID, &cp.CashBalance, &cp.BankBalance, &date, &createdAt, &cp.CreatedBy)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checkpoint: %w", err)
		}

		cp.LastBalancedDate = s.decodeDate(date, "balance_checkpoints.last_balanced_date", cp.ID)
		cp.CreatedAt = decodeTimestamp(createdAt)

		checkpoints = append(checkpoints, cp)
	}

	return checkpoints, rows.Err()
}
