package ports

import (
	"context"

	"bancomeme-receipt-studio/internal/core/domain"
)

// --- Service Ports (Business Logic) ---

// SessionService owns the single editable receipt record of a session.
// Edits replace the whole record (copy-on-write); readers always observe
// a consistent snapshot.
type SessionService interface {
	// Current returns a snapshot of the record.
	Current() domain.ReceiptRecord
	// UpdateField replaces one field and returns the new record.
	UpdateField(name, value string) (domain.ReceiptRecord, error)
	// Regenerate re-rolls the randomized defaults and returns the new record.
	Regenerate() domain.ReceiptRecord
}

// ExportFormat selects the export variant.
type ExportFormat string

const (
	ExportFormatJPEG ExportFormat = "jpeg"
	ExportFormatPNG  ExportFormat = "png"
	ExportFormatPDF  ExportFormat = "pdf"
)

// ExportResult describes a produced export file.
type ExportResult struct {
	Filename         string `json:"filename"`
	Format           string `json:"format"`
	Size             int    `json:"size"`
	Width            int    `json:"width,omitempty"`
	Height           int    `json:"height,omitempty"`
	MetadataEmbedded bool   `json:"metadata_embedded"`
}

// ExportService runs the export pipeline. At most one export runs at a
// time: while one is in flight, further calls return started=false with
// no result and no error.
type ExportService interface {
	// ExportJPEG rasterizes the current record, embeds EXIF metadata and
	// delivers the file under a derived name.
	ExportJPEG(ctx context.Context) (result *ExportResult, started bool, err error)
	// ExportPNG delivers an untagged PNG under a fixed name.
	ExportPNG(ctx context.Context) (result *ExportResult, started bool, err error)
	// ExportPDF delivers a PDF rendition under a fixed name.
	ExportPDF(ctx context.Context) (result *ExportResult, started bool, err error)
}

// AuditService records session activity (views, edits, exports).
type AuditService interface {
	Log(ctx context.Context, event *domain.AuditEvent)
}
