package dto

import "time"

// CreateWaybillRequest carries caller-supplied waybill fields. Status and
// identifiers are assigned by the service regardless of input.
type CreateWaybillRequest struct {
	SenderName      string  `json:"senderName"`
	SenderPhone     string  `json:"senderPhone"`
	SenderAddress   string  `json:"senderAddress"`
	ReceiverName    string  `json:"receiverName"`
	ReceiverPhone   string  `json:"receiverPhone"`
	ReceiverAddress string  `json:"receiverAddress"`
	GoodsType       string  `json:"goodsType"`
	Weight          float64 `json:"weight"`
	Volume          float64 `json:"volume"`
	Amount          float64 `json:"amount"`
}

// WaybillResponse is the wire representation of a waybill.
type WaybillResponse struct {
	ID                int64      `json:"id"`
	WaybillNo         string     `json:"waybillNo"`
	SenderName        string     `json:"senderName"`
	SenderPhone       string     `json:"senderPhone"`
	SenderAddress     string     `json:"senderAddress"`
	ReceiverName      string     `json:"receiverName"`
	ReceiverPhone     string     `json:"receiverPhone"`
	ReceiverAddress   string     `json:"receiverAddress"`
	GoodsType         string     `json:"goodsType"`
	Weight            float64    `json:"weight"`
	Volume            float64    `json:"volume"`
	Amount            float64    `json:"amount"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	ActualArrivalTime *time.Time `json:"actualArrivalTime,omitempty"`
}
