package ports

import (
	"context"
	"image"
	"time"

	"bancomeme-receipt-studio/internal/core/domain"
)

// ReceiptView is the renderable receipt surface. It carries mutable
// layout style (the live preview's clipping) that the export pipeline
// snapshots, overrides and restores around rasterization.
type ReceiptView interface {
	// Style returns the current layout style.
	Style() domain.ViewStyle
	// SetStyle replaces the layout style.
	SetStyle(style domain.ViewStyle)
	// Render rasterizes the record under the current style.
	Render(ctx context.Context, rec domain.ReceiptRecord) (image.Image, error)
}

// TagEmbedder inserts EXIF metadata into a JPEG byte stream without
// touching pixel data. On failure it returns the input bytes unchanged
// together with the error, so callers can degrade to an untagged file.
type TagEmbedder interface {
	Embed(jpegData []byte, meta domain.ExportMetadata, now time.Time) ([]byte, error)
}

// DocumentBuilder produces a non-raster rendition of the receipt (PDF).
type DocumentBuilder interface {
	Build(rec domain.ReceiptRecord, meta domain.ExportMetadata) ([]byte, error)
}

// FileSink is the host download mechanism: it takes ownership of the
// produced bytes under the given filename.
type FileSink interface {
	Deliver(ctx context.Context, filename string, data []byte) error
}
