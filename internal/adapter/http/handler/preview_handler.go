package handler

import (
	"bytes"
	"image/png"
	"net/http"

	"bancomeme-receipt-studio/internal/core/ports"
	"bancomeme-receipt-studio/pkg/apperror"
	"bancomeme-receipt-studio/pkg/response"

	"github.com/gin-gonic/gin"
)

const previewFilename = "bancomeme-receipt.png"

// PreviewHandler streams an on-screen rendering of the current record.
type PreviewHandler struct {
	sessionSvc ports.SessionService
	view       ports.ReceiptView
}

// NewPreviewHandler creates a new PreviewHandler.
func NewPreviewHandler(sessionSvc ports.SessionService, view ports.ReceiptView) *PreviewHandler {
	return &PreviewHandler{sessionSvc: sessionSvc, view: view}
}

// Preview handles GET /api/v1/receipt/preview. The receipt renders at
// the view's current on-screen style, not the export style.
func (h *PreviewHandler) Preview(c *gin.Context) {
	if h.view == nil {
		response.Error(c, apperror.ErrNoRenderTarget())
		return
	}

	img, err := h.view.Render(c.Request.Context(), h.sessionSvc.Current())
	if err != nil {
		response.Error(c, apperror.ErrRenderFailure(err))
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		response.Error(c, apperror.ErrEncodeFailure(err))
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+previewFilename+`"`)
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
