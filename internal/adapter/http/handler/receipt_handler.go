package handler

import (
	"bancomeme-receipt-studio/internal/adapter/http/dto"
	"bancomeme-receipt-studio/internal/core/domain"
	"bancomeme-receipt-studio/internal/core/ports"
	"bancomeme-receipt-studio/pkg/apperror"
	"bancomeme-receipt-studio/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReceiptHandler handles receipt record endpoints.
type ReceiptHandler struct {
	sessionSvc ports.SessionService
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(sessionSvc ports.SessionService) *ReceiptHandler {
	return &ReceiptHandler{sessionSvc: sessionSvc}
}

// GetReceipt handles GET /api/v1/receipt.
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	response.OK(c, toReceiptResponse(h.sessionSvc.Current()))
}

// UpdateField handles PUT /api/v1/receipt/fields.
func (h *ReceiptHandler) UpdateField(c *gin.Context) {
	var req dto.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	rec, err := h.sessionSvc.UpdateField(req.Name, req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toReceiptResponse(rec))
}

// Regenerate handles POST /api/v1/receipt/regenerate.
func (h *ReceiptHandler) Regenerate(c *gin.Context) {
	response.OK(c, toReceiptResponse(h.sessionSvc.Regenerate()))
}

// toReceiptResponse converts domain.ReceiptRecord to DTO.
func toReceiptResponse(rec domain.ReceiptRecord) dto.ReceiptResponse {
	return dto.ReceiptResponse{
		Date:            rec.Date,
		Time:            rec.Time,
		Amount:          rec.Amount,
		DisplayAmount:   rec.DisplayAmount(),
		SenderAccount:   rec.SenderAccount,
		ReceiverAccount: rec.ReceiverAccount,
		ReceiverName:    rec.ReceiverName,
		ReceiverBank:    rec.ReceiverBank,
		Concept:         rec.Concept,
		Reference:       rec.Reference,
		Folio:           rec.Folio,
		TrackingKey:     rec.TrackingKey,
		Email:           rec.Email,
		CircleColor:     rec.CircleColor,
	}
}
