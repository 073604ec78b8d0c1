package test

import (
	"context"

	"github.com/logistics-platform/waybill/internal/domain/model"
)

// WaybillFacadeStub provides controllable behaviour for waybill endpoints.
type WaybillFacadeStub struct {
	CreateFn       func(context.Context, *model.Waybill) (*model.Waybill, error)
	UpdateStatusFn func(context.Context, string, string) (*model.Waybill, error)
	GetFn          func(context.Context, string) (*model.Waybill, error)
	ListFn         func(context.Context) ([]model.Waybill, error)
}

// CreateWaybill delegates to provided function or echoes a created record.
func (s WaybillFacadeStub) CreateWaybill(ctx context.Context, waybill *model.Waybill) (*model.Waybill, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, waybill)
	}
	created := *waybill
	created.ID = 1
	created.WaybillNo = "WB202401010000001"
	created.Status = model.WaybillStatusCreated
	return &created, nil
}

// UpdateWaybillStatus delegates to provided function or returns the target state.
func (s WaybillFacadeStub) UpdateWaybillStatus(ctx context.Context, waybillNo, status string) (*model.Waybill, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, waybillNo, status)
	}
	parsed, err := model.ParseWaybillStatus(status)
	if err != nil {
		return nil, err
	}
	return &model.Waybill{ID: 1, WaybillNo: waybillNo, Status: parsed}, nil
}

// WaybillByNo delegates to provided function or returns a default record.
func (s WaybillFacadeStub) WaybillByNo(ctx context.Context, waybillNo string) (*model.Waybill, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, waybillNo)
	}
	return &model.Waybill{ID: 1, WaybillNo: waybillNo, Status: model.WaybillStatusCreated}, nil
}

// AllWaybills delegates to provided function or returns a single record.
func (s WaybillFacadeStub) AllWaybills(ctx context.Context) ([]model.Waybill, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Waybill{{ID: 1, WaybillNo: "WB202401010000001"}}, nil
}
