package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainErrors "github.com/logistics-platform/waybill/internal/domain/errors"
	"github.com/logistics-platform/waybill/internal/domain/model"
	"github.com/logistics-platform/waybill/internal/domain/repository"
)

// createAttempts bounds regeneration when a generated waybill number
// collides with an existing one.
const createAttempts = 3

// WaybillUseCase encapsulates waybill lifecycle logic.
type WaybillUseCase struct {
	store *CachedWaybillStore
	repo  repository.WaybillRepository
	gen   *WaybillNoGenerator
	now   func() time.Time
}

// NewWaybillUseCase constructs WaybillUseCase.
func NewWaybillUseCase(store *CachedWaybillStore, repo repository.WaybillRepository, gen *WaybillNoGenerator) *WaybillUseCase {
	return &WaybillUseCase{
		store: store,
		repo:  repo,
		gen:   gen,
		now:   time.Now,
	}
}

// Create registers a new waybill. Caller-provided status, timestamps and
// waybill number are ignored: status starts at CREATED and the number is
// generated here. A generated number that collides with an existing row
// is regenerated a bounded number of times.
func (u *WaybillUseCase) Create(ctx context.Context, waybill *model.Waybill) (*model.Waybill, error) {
	now := u.now()

	record := *waybill
	record.ID = 0
	record.Status = model.WaybillStatusCreated
	record.CreatedAt = now
	record.UpdatedAt = now
	record.ActualArrivalTime = nil

	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		record.WaybillNo = u.gen.Next()
		saved, err := u.store.SaveNew(ctx, &record)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("generate waybill number: %w", lastErr)
}

// UpdateStatus parses the requested status, validates the transition
// against the current record and persists the change. Entering DELIVERING
// stamps the actual arrival time; the state machine has no DELIVERING
// self-transition, so the stamp happens at most once.
func (u *WaybillUseCase) UpdateStatus(ctx context.Context, waybillNo, statusText string) (*model.Waybill, error) {
	target, err := model.ParseWaybillStatus(statusText)
	if err != nil {
		return nil, err
	}

	return u.store.Update(ctx, waybillNo, func(waybill *model.Waybill) error {
		if !waybill.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: %s -> %s", domainErrors.ErrIllegalTransition, waybill.Status, target)
		}

		now := u.now()
		waybill.Status = target
		waybill.UpdatedAt = now
		if target == model.WaybillStatusDelivering && waybill.ActualArrivalTime == nil {
			waybill.ActualArrivalTime = &now
		}
		return nil
	})
}

// GetByNo returns a waybill by its business identifier, cache-first.
func (u *WaybillUseCase) GetByNo(ctx context.Context, waybillNo string) (*model.Waybill, error) {
	return u.store.GetByNo(ctx, waybillNo)
}

// ListAll loads every waybill straight from the repository, bypassing the
// cache.
func (u *WaybillUseCase) ListAll(ctx context.Context) ([]model.Waybill, error) {
	return u.repo.ListAll(ctx)
}
