package handler

import (
	"bancomeme-receipt-studio/internal/adapter/http/dto"
	"bancomeme-receipt-studio/internal/core/ports"
	"bancomeme-receipt-studio/pkg/apperror"
	"bancomeme-receipt-studio/pkg/response"

	"github.com/gin-gonic/gin"
)

// ExportHandler handles export endpoints.
type ExportHandler struct {
	exportSvc ports.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportSvc ports.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Export handles POST /api/v1/receipt/export. The format query parameter
// selects the variant and defaults to jpeg. A request that arrives while
// another export is running succeeds with exported=false.
func (h *ExportHandler) Export(c *gin.Context) {
	format := ports.ExportFormat(c.DefaultQuery("format", string(ports.ExportFormatJPEG)))

	var (
		result  *ports.ExportResult
		started bool
		err     error
	)
	switch format {
	case ports.ExportFormatJPEG:
		result, started, err = h.exportSvc.ExportJPEG(c.Request.Context())
	case ports.ExportFormatPNG:
		result, started, err = h.exportSvc.ExportPNG(c.Request.Context())
	case ports.ExportFormatPDF:
		result, started, err = h.exportSvc.ExportPDF(c.Request.Context())
	default:
		response.Error(c, apperror.Validation("unknown export format: "+string(format)))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toExportResponse(result, started))
}

// toExportResponse converts the export outcome to DTO.
func toExportResponse(result *ports.ExportResult, started bool) dto.ExportResponse {
	resp := dto.ExportResponse{Exported: started}
	if result != nil {
		resp.Result = &dto.ExportResultResponse{
			Filename:         result.Filename,
			Format:           result.Format,
			Size:             result.Size,
			Width:            result.Width,
			Height:           result.Height,
			MetadataEmbedded: result.MetadataEmbedded,
		}
	}
	return resp
}
