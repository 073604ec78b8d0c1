package repository

import (
	"context"

	"github.com/logistics-platform/waybill/internal/domain/model"
)

// WaybillCache is a key-value store for waybills keyed by waybill number.
// Get returns (waybill, true, nil) on hit and (nil, false, nil) on miss;
// transport errors come back as (nil, false, err).
type WaybillCache interface {
	Get(ctx context.Context, waybillNo string) (*model.Waybill, bool, error)
	Set(ctx context.Context, waybill *model.Waybill) error
}
