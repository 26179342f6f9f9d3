package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"

	"github.com/hance08/tailorbook/internal/model"
)

func (s *Store) CreateClient(ctx context.Context, name, phone string) (int64, error) {
	stmt, err := s.db.PrepareContext(ctx, `
        INSERT INTO clients (name, phone, created_at)
        VALUES (?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64
	err = stmt.QueryRowContext(ctx, name, phone, s.now().UnixNano()).Scan(&newID)
	if err != nil {
		if sqliteErr, ok := isConstraintErr(err); ok && sqliteErr.ExtendedCode == sqlite.ErrConstraintUnique {
			return 0, fmt.Errorf("failed to create client '%s': %w", name, ErrClientExists)
		}
		return 0, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return newID, nil
}

func (s *Store) GetClientByID(ctx context.Context, id int64) (*model.Client, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name, phone, created_at FROM clients WHERE id = ?", id)

	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("client with ID %d: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query client with ID %d: %w", id, err)
	}

	return c, nil
}

func (s *Store) GetClientByName(ctx context.Context, name string) (*model.Client, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name, phone, created_at FROM clients WHERE name = ?", name)

	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("client '%s': %w", name, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query client '%s': %w", name, err)
	}

	return c, nil
}

func (s *Store) ListClients(ctx context.Context) ([]*model.Client, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, name, phone, created_at
        FROM clients
        ORDER BY name
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var clients []*model.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}

func scanClient(row rowScanner) (*model.Client, error) {
	c := &model.Client{}
	var createdAt int64

	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &createdAt); err != nil {
		return nil, err
	}

	c.CreatedAt = decodeTimestamp(createdAt)
	return c, nil
}
