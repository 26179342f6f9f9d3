package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	sqlite "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/hance08/tailorbook/internal/constants"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  DBTX
	now func() time.Time
	loc *time.Location
	l   *zap.Logger
}

type Option func(*Store)

// WithClock overrides the clock used to stamp created_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLocation sets the zone conceptual dates are parsed in.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		s.loc = loc
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		s.l = l
	}
}

func NewStore(dbPath string, migrationsFS fs.FS, opts ...Option) (*Store, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_txlock=immediate&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("can not open database : %w", err)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("can not connect with database : %w", err)
	}
	if err := runMigrations(db, migrationsFS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database : %w", err)
	}

	s := &Store{
		db:  db,
		now: time.Now,
		loc: time.Local,
		l:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *Store) ExecTx(ctx context.Context, fn func(Repository) error) error {
	return s.inTx(ctx, func(txStore *Store) error {
		return fn(txStore)
	})
}

// inTx runs fn inside a database transaction, reusing the current one when
// the store is already bound to a transaction.
func (s *Store) inTx(ctx context.Context, fn func(*Store) error) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return fn(s)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	txStore := &Store{db: tx, now: s.now, loc: s.loc, l: s.l}

	err = fn(txStore)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

func (s *Store) Close() error {
	if db, ok := s.db.(*sql.DB); ok {
		return db.Close()
	}
	return nil
}

func runMigrations(db *sql.DB, migrationsFS fs.FS) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver : %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, ".")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver : %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs",
		sourceDriver,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance : %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up) : %w", err)
	}

	return nil
}

// nextCreatedAt returns a created_at later than any stored record, so that
// transactions and checkpoints share one strictly increasing time axis.
func (s *Store) nextCreatedAt(ctx context.Context) (int64, error) {
	var last int64
	err := s.db.QueryRowContext(ctx, `
        SELECT MAX(m) FROM (
            SELECT COALESCE(MAX(created_at), 0) AS m FROM transactions
            UNION ALL
            SELECT COALESCE(MAX(created_at), 0) AS m FROM balance_checkpoints
        )
    `).Scan(&last)
	if err != nil {
		return 0, fmt.Errorf("failed to read last created_at: %w", err)
	}

	next := s.now().UnixNano()
	if next <= last {
		next = last + 1
	}
	return next, nil
}

func isConstraintErr(err error) (sqlite.Error, bool) {
	var sqliteErr sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite.ErrConstraint {
		return sqliteErr, true
	}
	return sqliteErr, false
}

func encodeDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(constants.DateFormat)
}

// decodeDate never fails: a malformed date becomes the zero time.
func (s *Store) decodeDate(raw string, field string, id int64) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(constants.DateFormat, raw, s.loc)
	if err != nil {
		s.l.Warn("malformed date, treating as epoch",
			zap.String("field", field),
			zap.Int64("id", id),
			zap.String("value", raw))
		return time.Time{}
	}
	return t
}

func decodeTimestamp(nanos int64) time.Time {
	if nanos <= 0 {
		return time.Time{}
	}
	return time.Unix(0, nanos).UTC()
}
