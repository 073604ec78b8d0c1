package app

import (
	"context"

	"github.com/logistics-platform/waybill/internal/domain/model"
	"github.com/logistics-platform/waybill/internal/usecase"
)

// WaybillFacade aggregates waybill operations exposed to transports.
type WaybillFacade struct {
	waybills *usecase.WaybillUseCase
}

// NewWaybillFacade constructs WaybillFacade.
func NewWaybillFacade(waybills *usecase.WaybillUseCase) *WaybillFacade {
	return &WaybillFacade{waybills: waybills}
}

func (f *WaybillFacade) CreateWaybill(ctx context.Context, waybill *model.Waybill) (*model.Waybill, error) {
	return f.waybills.Create(ctx, waybill)
}

func (f *WaybillFacade) UpdateWaybillStatus(ctx context.Context, waybillNo, status string) (*model.Waybill, error) {
	return f.waybills.UpdateStatus(ctx, waybillNo, status)
}

func (f *WaybillFacade) WaybillByNo(ctx context.Context, waybillNo string) (*model.Waybill, error) {
	return f.waybills.GetByNo(ctx, waybillNo)
}

func (f *WaybillFacade) AllWaybills(ctx context.Context) ([]model.Waybill, error) {
	return f.waybills.ListAll(ctx)
}
