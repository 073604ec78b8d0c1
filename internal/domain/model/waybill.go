package model

import "time"

// Waybill describes a shipment tracking record. WaybillNo is the
// externally visible identifier, assigned once at creation; ID is the
// store primary key.
type Waybill struct {
	ID                int64         `json:"id"`
	WaybillNo         string        `json:"waybillNo"`
	SenderName        string        `json:"senderName"`
	SenderPhone       string        `json:"senderPhone"`
	SenderAddress     string        `json:"senderAddress"`
	ReceiverName      string        `json:"receiverName"`
	ReceiverPhone     string        `json:"receiverPhone"`
	ReceiverAddress   string        `json:"receiverAddress"`
	GoodsType         string        `json:"goodsType"`
	Weight            float64       `json:"weight"`
	Volume            float64       `json:"volume"`
	Amount            float64       `json:"amount"`
	Status            WaybillStatus `json:"status"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
	ActualArrivalTime *time.Time    `json:"actualArrivalTime,omitempty"`
}
