package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/logistics-platform/waybill/internal/domain/errors"
	"github.com/logistics-platform/waybill/internal/domain/model"
	"github.com/logistics-platform/waybill/internal/server/http/dto"
)

// WaybillHandler manages waybill endpoints.
type WaybillHandler struct {
	facade WaybillFacade
}

// NewWaybillHandler constructs WaybillHandler.
func NewWaybillHandler(facade WaybillFacade) *WaybillHandler {
	return &WaybillHandler{facade: facade}
}

// Create handles POST /waybill.
func (h *WaybillHandler) Create(c *gin.Context) {
	var req dto.CreateWaybillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	waybill := &model.Waybill{
		SenderName:      req.SenderName,
		SenderPhone:     req.SenderPhone,
		SenderAddress:   req.SenderAddress,
		ReceiverName:    req.ReceiverName,
		ReceiverPhone:   req.ReceiverPhone,
		ReceiverAddress: req.ReceiverAddress,
		GoodsType:       req.GoodsType,
		Weight:          req.Weight,
		Volume:          req.Volume,
		Amount:          req.Amount,
	}

	created, err := h.facade.CreateWaybill(c.Request.Context(), waybill)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			c.Status(http.StatusConflict)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toWaybillResponse(created))
}

// GetByNo handles GET /waybill/:waybillNo.
func (h *WaybillHandler) GetByNo(c *gin.Context) {
	waybill, err := h.facade.WaybillByNo(c.Request.Context(), c.Param("waybillNo"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toWaybillResponse(waybill))
}

// List handles GET /waybill.
func (h *WaybillHandler) List(c *gin.Context) {
	waybills, err := h.facade.AllWaybills(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.WaybillResponse, 0, len(waybills))
	for _, w := range waybills {
		response = append(response, toWaybillResponse(&w))
	}

	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PUT /waybill/status/:waybillNo.
func (h *WaybillHandler) UpdateStatus(c *gin.Context) {
	status := c.Query("status")

	updated, err := h.facade.UpdateWaybillStatus(c.Request.Context(), c.Param("waybillNo"), status)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidStatus), errors.Is(err, domainErrors.ErrIllegalTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toWaybillResponse(updated))
}

func toWaybillResponse(waybill *model.Waybill) dto.WaybillResponse {
	return dto.WaybillResponse{
		ID:                waybill.ID,
		WaybillNo:         waybill.WaybillNo,
		SenderName:        waybill.SenderName,
		SenderPhone:       waybill.SenderPhone,
		SenderAddress:     waybill.SenderAddress,
		ReceiverName:      waybill.ReceiverName,
		ReceiverPhone:     waybill.ReceiverPhone,
		ReceiverAddress:   waybill.ReceiverAddress,
		GoodsType:         waybill.GoodsType,
		Weight:            waybill.Weight,
		Volume:            waybill.Volume,
		Amount:            waybill.Amount,
		Status:            string(waybill.Status),
		CreatedAt:         waybill.CreatedAt,
		UpdatedAt:         waybill.UpdatedAt,
		ActualArrivalTime: waybill.ActualArrivalTime,
	}
}
