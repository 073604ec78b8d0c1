package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/logistics-platform/waybill/internal/domain/errors"
	"github.com/logistics-platform/waybill/internal/domain/model"
	"github.com/logistics-platform/waybill/internal/domain/repository"
)

// DB is the subset of pgxpool.Pool used by the storage. It matches
// pgxmock.PgxPoolIface so repositories can be tested without a server.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   DB
	logger *slog.Logger
}

type waybillRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
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

// Waybills returns the waybill repository.
func (s *Storage) Waybills() repository.WaybillRepository {
	return &waybillRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS waybills (
            id BIGSERIAL PRIMARY KEY,
            waybill_no TEXT UNIQUE NOT NULL,
            sender_name TEXT NOT NULL DEFAULT '',
            sender_phone TEXT NOT NULL DEFAULT '',
            sender_address TEXT NOT NULL DEFAULT '',
            receiver_name TEXT NOT NULL DEFAULT '',
            receiver_phone TEXT NOT NULL DEFAULT '',
            receiver_address TEXT NOT NULL DEFAULT '',
            goods_type TEXT NOT NULL DEFAULT '',
            weight DOUBLE PRECISION NOT NULL DEFAULT 0,
            volume DOUBLE PRECISION NOT NULL DEFAULT 0,
            amount DOUBLE PRECISION NOT NULL DEFAULT 0,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            actual_arrival_time TIMESTAMPTZ
        )`,
		`CREATE INDEX IF NOT EXISTS idx_waybills_status ON waybills(status)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- WaybillRepository implementation ---

const waybillColumns = `id, waybill_no, sender_name, sender_phone, sender_address,
                        receiver_name, receiver_phone, receiver_address, goods_type,
                        weight, volume, amount, status, created_at, updated_at, actual_arrival_time`

func (r *waybillRepository) Create(ctx context.Context, waybill *model.Waybill) (*model.Waybill, error) {
	const query = `INSERT INTO waybills (waybill_no, sender_name, sender_phone, sender_address,
                       receiver_name, receiver_phone, receiver_address, goods_type,
                       weight, volume, amount, status, created_at, updated_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
                   RETURNING id`
	saved := *waybill
	err := r.storage.pool.QueryRow(ctx, query,
		waybill.WaybillNo,
		waybill.SenderName, waybill.SenderPhone, waybill.SenderAddress,
		waybill.ReceiverName, waybill.ReceiverPhone, waybill.ReceiverAddress,
		waybill.GoodsType,
		waybill.Weight, waybill.Volume, waybill.Amount,
		waybill.Status,
		waybill.CreatedAt, waybill.UpdatedAt,
	).Scan(&saved.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &saved, nil
}

func (r *waybillRepository) Update(ctx context.Context, waybill *model.Waybill) (*model.Waybill, error) {
	const query = `UPDATE waybills
                   SET status=$1, updated_at=$2, actual_arrival_time=$3
                   WHERE id=$4`
	tag, err := r.storage.pool.Exec(ctx, query,
		waybill.Status, waybill.UpdatedAt, waybill.ActualArrivalTime, waybill.ID,
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrNotFound
	}
	updated := *waybill
	return &updated, nil
}

func (r *waybillRepository) GetByNo(ctx context.Context, waybillNo string) (*model.Waybill, error) {
	query := `SELECT ` + waybillColumns + ` FROM waybills WHERE waybill_no=$1`
	var w model.Waybill
	err := r.storage.pool.QueryRow(ctx, query, waybillNo).Scan(
		&w.ID, &w.WaybillNo,
		&w.SenderName, &w.SenderPhone, &w.SenderAddress,
		&w.ReceiverName, &w.ReceiverPhone, &w.ReceiverAddress,
		&w.GoodsType,
		&w.Weight, &w.Volume, &w.Amount,
		&w.Status, &w.CreatedAt, &w.UpdatedAt, &w.ActualArrivalTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *waybillRepository) ListAll(ctx context.Context) ([]model.Waybill, error) {
	query := `SELECT ` + waybillColumns + ` FROM waybills`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Waybill
	for rows.Next() {
		var w model.Waybill
		if err := rows.Scan(
			&w.ID, &w.WaybillNo,
			&w.SenderName, &w.SenderPhone, &w.SenderAddress,
			&w.ReceiverName, &w.ReceiverPhone, &w.ReceiverAddress,
			&w.GoodsType,
			&w.Weight, &w.Volume, &w.Amount,
			&w.Status, &w.CreatedAt, &w.UpdatedAt, &w.ActualArrivalTime,
		); err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	if s.pool == nil {
		return errors.New("storage is not initialized")
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
