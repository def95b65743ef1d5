package domain

import (
	"fmt"
	"time"
)

// Fixed constants embedded into every exported file.
const (
	ToolName    = "Bancomeme Receipt Generator"
	ToolVersion = "2.0.0"
	ToolMake    = "Bancomeme"
	ToolModel   = "Receipt Generator"

	Currency   = "MXN"
	Disclaimer = "FICTIONAL RECEIPT - FOR ENTERTAINMENT PURPOSES ONLY"
	Website    = "https://bancomeme.com"

	// JPEGQuality is the fixed compression quality for JPEG exports.
	JPEGQuality = 92
)

// ExportMetadata is the record snapshot embedded into an exported image.
type ExportMetadata struct {
	Generator    string    `json:"generator"`
	Version      string    `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
	Amount       string    `json:"amount"`
	Currency     string    `json:"currency"`
	ReceiverName string    `json:"receiverName"`
	ReceiverBank string    `json:"receiverBank"`
	Reference    string    `json:"reference"`
	Folio        string    `json:"folio"`
	TrackingKey  string    `json:"trackingKey"`
	Concept      string    `json:"concept"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	CircleColor  string    `json:"circleColor"`
	Disclaimer   string    `json:"disclaimer"`
	Website      string    `json:"website"`
}

// BuildExportMetadata snapshots rec plus the fixed tool constants.
func BuildExportMetadata(rec ReceiptRecord, now time.Time) ExportMetadata {
	return ExportMetadata{
		Generator:    ToolName,
		Version:      ToolVersion,
		Timestamp:    now,
		Amount:       rec.Amount,
		Currency:     Currency,
		ReceiverName: rec.ReceiverName,
		ReceiverBank: rec.ReceiverBank,
		Reference:    rec.Reference,
		Folio:        rec.Folio,
		TrackingKey:  rec.TrackingKey,
		Concept:      rec.Concept,
		Date:         rec.Date,
		Time:         rec.Time,
		CircleColor:  rec.CircleColor,
		Disclaimer:   Disclaimer,
		Website:      Website,
	}
}

// Software returns the EXIF Software tag value, "<tool> v<version>".
func (m ExportMetadata) Software() string {
	return fmt.Sprintf("%s v%s", m.Generator, m.Version)
}

// Description returns the EXIF ImageDescription tag value.
func (m ExportMetadata) Description() string {
	return fmt.Sprintf("Receipt for %s - Amount: %s %s", m.ReceiverName, m.Currency, m.Amount)
}

// UserCommentPayload is the JSON object stored in the EXIF UserComment tag.
// Website is fixed; everything else mirrors the record at export time.
type UserCommentPayload struct {
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	ReceiverName string `json:"receiverName"`
	ReceiverBank string `json:"receiverBank"`
	Reference    string `json:"reference"`
	Folio        string `json:"folio"`
	TrackingKey  string `json:"trackingKey"`
	Concept      string `json:"concept"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	CircleColor  string `json:"circleColor"`
	Website      string `json:"website"`
}

// CommentPayload extracts the UserComment JSON object from the metadata.
func (m ExportMetadata) CommentPayload() UserCommentPayload {
	return UserCommentPayload{
		Amount:       m.Amount,
		Currency:     m.Currency,
		ReceiverName: m.ReceiverName,
		ReceiverBank: m.ReceiverBank,
		Reference:    m.Reference,
		Folio:        m.Folio,
		TrackingKey:  m.TrackingKey,
		Concept:      m.Concept,
		Date:         m.Date,
		Time:         m.Time,
		CircleColor:  m.CircleColor,
		Website:      m.Website,
	}
}
