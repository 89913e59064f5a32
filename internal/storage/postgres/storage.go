package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/restomart/restomart/internal/domain/repository"
)

// querier is the subset of pgx operations shared by the pool and a transaction,
// so every repository works both standalone and inside RunAtomic.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type pgxPool interface {
	querier
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// newPgxPool is swapped in tests.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

// repoSet binds repositories to one querier: the pool for standalone calls,
// a transaction inside RunAtomic.
type repoSet struct {
	q querier
}

func (r repoSet) Accounts() repository.AccountRepository  { return &accountRepository{q: r.q} }
func (r repoSet) Addresses() repository.AddressRepository { return &addressRepository{q: r.q} }
func (r repoSet) Carts() repository.CartRepository        { return &cartRepository{q: r.q} }
func (r repoSet) Menu() repository.MenuRepository         { return &menuRepository{q: r.q} }
func (r repoSet) Orders() repository.OrderRepository      { return &orderRepository{q: r.q} }
func (r repoSet) Shop() repository.ShopRepository         { return &shopRepository{q: r.q} }

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Storage) repos() repoSet { return repoSet{q: s.pool} }

// Factory methods for domain repositories.
func (s *Storage) Accounts() repository.AccountRepository  { return s.repos().Accounts() }
func (s *Storage) Addresses() repository.AddressRepository { return s.repos().Addresses() }
func (s *Storage) Carts() repository.CartRepository        { return s.repos().Carts() }
func (s *Storage) Menu() repository.MenuRepository         { return s.repos().Menu() }
func (s *Storage) Orders() repository.OrderRepository      { return s.repos().Orders() }
func (s *Storage) Shop() repository.ShopRepository         { return s.repos().Shop() }

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            name TEXT NOT NULL DEFAULT '',
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            created_by BIGINT NOT NULL DEFAULT 0,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_by BIGINT NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS addresses (
            id SERIAL PRIMARY KEY,
            account_id BIGINT NOT NULL,
            consignee TEXT NOT NULL,
            phone TEXT NOT NULL,
            detail TEXT NOT NULL,
            is_default BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS menu_items (
            id SERIAL PRIMARY KEY,
            name TEXT UNIQUE NOT NULL,
            category_id BIGINT NOT NULL,
            price NUMERIC(10,2) NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL,
            created_by BIGINT NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL,
            updated_by BIGINT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS flavors (
            id SERIAL PRIMARY KEY,
            item_id BIGINT NOT NULL,
            name TEXT NOT NULL,
            value TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS combo_items (
            combo_id BIGINT NOT NULL,
            item_id BIGINT NOT NULL,
            PRIMARY KEY (combo_id, item_id)
        )`,
		`CREATE TABLE IF NOT EXISTS cart_lines (
            id SERIAL PRIMARY KEY,
            account_id BIGINT NOT NULL,
            item_id BIGINT NOT NULL,
            name TEXT NOT NULL,
            flavor TEXT NOT NULL DEFAULT '',
            quantity INTEGER NOT NULL,
            unit_price NUMERIC(10,2) NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (account_id, item_id, flavor)
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            number TEXT UNIQUE NOT NULL,
            account_id BIGINT NOT NULL,
            address_id BIGINT NOT NULL,
            status TEXT NOT NULL,
            pay_status TEXT NOT NULL,
            amount NUMERIC(10,2) NOT NULL,
            consignee TEXT NOT NULL,
            phone TEXT NOT NULL,
            remark TEXT NOT NULL DEFAULT '',
            order_time TIMESTAMPTZ NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS order_lines (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL,
            item_id BIGINT NOT NULL,
            name TEXT NOT NULL,
            flavor TEXT NOT NULL DEFAULT '',
            quantity INTEGER NOT NULL,
            unit_price NUMERIC(10,2) NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS shop_state (
            id SMALLINT PRIMARY KEY CHECK (id = 1),
            status TEXT NOT NULL
        )`,
		`INSERT INTO shop_state (id, status) VALUES (1, 'CLOSED') ON CONFLICT (id) DO NOTHING`,
		`CREATE INDEX IF NOT EXISTS idx_orders_account ON orders(account_id, order_time DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_lines_order ON order_lines(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_flavors_item ON flavors(item_id)`,
		`CREATE INDEX IF NOT EXISTS idx_combo_items_item ON combo_items(item_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// RunAtomic executes fn against transaction-bound repositories. Commit happens
// only when fn returns nil; any error rolls back every write fn issued.
func (s *Storage) RunAtomic(ctx context.Context, fn func(repository.Factory) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(repoSet{q: tx})
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
