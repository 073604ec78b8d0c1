package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/logistics-platform/waybill/internal/domain/errors"
	"github.com/logistics-platform/waybill/internal/domain/model"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func expectSchema(mock pgxmockv3.PgxPoolIface) {
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS waybills").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_waybills_status ON waybills").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
}

func sampleWaybill() *model.Waybill {
	now := time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)
	return &model.Waybill{
		WaybillNo:       "WB20240517120000123",
		SenderName:      "Alice",
		SenderPhone:     "111",
		SenderAddress:   "First street",
		ReceiverName:    "Bob",
		ReceiverPhone:   "222",
		ReceiverAddress: "Second street",
		GoodsType:       "documents",
		Weight:          1.5,
		Volume:          0.2,
		Amount:          40,
		Status:          model.WaybillStatusCreated,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestInitSchema(t *testing.T) {
	storage, mock := newMockStorage(t)
	expectSchema(mock)

	if err := storage.initSchema(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWaybillCreateAssignsID(t *testing.T) {
	storage, mock := newMockStorage(t)
	wb := sampleWaybill()

	mock.ExpectQuery("INSERT INTO waybills").
		WithArgs(
			wb.WaybillNo,
			wb.SenderName, wb.SenderPhone, wb.SenderAddress,
			wb.ReceiverName, wb.ReceiverPhone, wb.ReceiverAddress,
			wb.GoodsType,
			wb.Weight, wb.Volume, wb.Amount,
			wb.Status,
			wb.CreatedAt, wb.UpdatedAt,
		).
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(42)))

	saved, err := storage.Waybills().Create(context.Background(), wb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != 42 {
		t.Fatalf("expected assigned id 42, got %d", saved.ID)
	}
	if saved.WaybillNo != wb.WaybillNo {
		t.Fatalf("expected waybill number to survive persistence, got %q", saved.WaybillNo)
	}
	if wb.ID != 0 {
		t.Fatalf("input waybill must not be mutated, got id %d", wb.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWaybillCreateUniqueViolation(t *testing.T) {
	storage, mock := newMockStorage(t)
	wb := sampleWaybill()

	mock.ExpectQuery("INSERT INTO waybills").
		WithArgs(
			wb.WaybillNo,
			wb.SenderName, wb.SenderPhone, wb.SenderAddress,
			wb.ReceiverName, wb.ReceiverPhone, wb.ReceiverAddress,
			wb.GoodsType,
			wb.Weight, wb.Volume, wb.Amount,
			wb.Status,
			wb.CreatedAt, wb.UpdatedAt,
		).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := storage.Waybills().Create(context.Background(), wb)
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWaybillGetByNo(t *testing.T) {
	storage, mock := newMockStorage(t)
	wb := sampleWaybill()
	wb.ID = 7

	columns := []string{
		"id", "waybill_no", "sender_name", "sender_phone", "sender_address",
		"receiver_name", "receiver_phone", "receiver_address", "goods_type",
		"weight", "volume", "amount", "status", "created_at", "updated_at", "actual_arrival_time",
	}
	mock.ExpectQuery("SELECT (.+) FROM waybills WHERE waybill_no").
		WithArgs(wb.WaybillNo).
		WillReturnRows(pgxmockv3.NewRows(columns).AddRow(
			wb.ID, wb.WaybillNo,
			wb.SenderName, wb.SenderPhone, wb.SenderAddress,
			wb.ReceiverName, wb.ReceiverPhone, wb.ReceiverAddress,
			wb.GoodsType,
			wb.Weight, wb.Volume, wb.Amount,
			wb.Status, wb.CreatedAt, wb.UpdatedAt, wb.ActualArrivalTime,
		))

	got, err := storage.Waybills().GetByNo(context.Background(), wb.WaybillNo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != wb.ID || got.WaybillNo != wb.WaybillNo || got.Status != wb.Status {
		t.Fatalf("unexpected waybill returned: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWaybillGetByNoNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT (.+) FROM waybills WHERE waybill_no").
		WithArgs("WB-missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := storage.Waybills().GetByNo(context.Background(), "WB-missing")
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWaybillUpdate(t *testing.T) {
	storage, mock := newMockStorage(t)
	wb := sampleWaybill()
	wb.ID = 7
	wb.Status = model.WaybillStatusDelivering
	arrival := time.Date(2024, 5, 18, 9, 30, 0, 0, time.UTC)
	wb.ActualArrivalTime = &arrival
	wb.UpdatedAt = arrival

	mock.ExpectExec("UPDATE waybills").
		WithArgs(wb.Status, wb.UpdatedAt, wb.ActualArrivalTime, wb.ID).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))

	updated, err := storage.Waybills().Update(context.Background(), wb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != model.WaybillStatusDelivering {
		t.Fatalf("expected delivering status, got %s", updated.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWaybillUpdateMissingRow(t *testing.T) {
	storage, mock := newMockStorage(t)
	wb := sampleWaybill()
	wb.ID = 404

	mock.ExpectExec("UPDATE waybills").
		WithArgs(wb.Status, wb.UpdatedAt, wb.ActualArrivalTime, wb.ID).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	_, err := storage.Waybills().Update(context.Background(), wb)
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWaybillListAll(t *testing.T) {
	storage, mock := newMockStorage(t)
	first := sampleWaybill()
	first.ID = 1
	second := sampleWaybill()
	second.ID = 2
	second.WaybillNo = "WB20240517120001999"

	columns := []string{
		"id", "waybill_no", "sender_name", "sender_phone", "sender_address",
		"receiver_name", "receiver_phone", "receiver_address", "goods_type",
		"weight", "volume", "amount", "status", "created_at", "updated_at", "actual_arrival_time",
	}
	rows := pgxmockv3.NewRows(columns)
	for _, wb := range []*model.Waybill{first, second} {
		rows.AddRow(
			wb.ID, wb.WaybillNo,
			wb.SenderName, wb.SenderPhone, wb.SenderAddress,
			wb.ReceiverName, wb.ReceiverPhone, wb.ReceiverAddress,
			wb.GoodsType,
			wb.Weight, wb.Volume, wb.Amount,
			wb.Status, wb.CreatedAt, wb.UpdatedAt, wb.ActualArrivalTime,
		)
	}
	mock.ExpectQuery("SELECT (.+) FROM waybills").WillReturnRows(rows)

	result, err := storage.Waybills().ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 waybills, got %d", len(result))
	}
	if result[0].WaybillNo != first.WaybillNo || result[1].WaybillNo != second.WaybillNo {
		t.Fatalf("unexpected waybills returned: %+v", result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHealthCheckWithoutPool(t *testing.T) {
	storage := &Storage{}
	if err := storage.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected error for uninitialized storage")
	}
}
