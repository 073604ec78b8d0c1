package handlers

import (
	"context"

	"github.com/logistics-platform/waybill/internal/domain/model"
)

// WaybillFacade encapsulates waybill operations exposed via HTTP.
type WaybillFacade interface {
	CreateWaybill(ctx context.Context, waybill *model.Waybill) (*model.Waybill, error)
	UpdateWaybillStatus(ctx context.Context, waybillNo, status string) (*model.Waybill, error)
	WaybillByNo(ctx context.Context, waybillNo string) (*model.Waybill, error)
	AllWaybills(ctx context.Context) ([]model.Waybill, error)
}
