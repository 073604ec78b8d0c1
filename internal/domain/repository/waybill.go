package repository

import (
	"context"

	"github.com/logistics-platform/waybill/internal/domain/model"
)

// WaybillRepository describes persistence operations with waybills.
type WaybillRepository interface {
	Create(ctx context.Context, waybill *model.Waybill) (*model.Waybill, error)
	Update(ctx context.Context, waybill *model.Waybill) (*model.Waybill, error)
	GetByNo(ctx context.Context, waybillNo string) (*model.Waybill, error)
	ListAll(ctx context.Context) ([]model.Waybill, error)
}
