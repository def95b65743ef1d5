package dto

// UpdateFieldRequest is the request body for a single field edit.
type UpdateFieldRequest struct {
	Name  string `json:"name" binding:"required,receipt_field"`
	Value string `json:"value" binding:"max=500"`
}

// ReceiptResponse is the session record as returned to clients, with the
// derived display values the rendered view shows.
type ReceiptResponse struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	Amount          string `json:"amount"`
	DisplayAmount   string `json:"display_amount"`
	SenderAccount   string `json:"sender_account"`
	ReceiverAccount string `json:"receiver_account"`
	ReceiverName    string `json:"receiver_name"`
	ReceiverBank    string `json:"receiver_bank"`
	Concept         string `json:"concept"`
	Reference       string `json:"reference"`
	Folio           string `json:"folio"`
	TrackingKey     string `json:"tracking_key"`
	Email           string `json:"email"`
	CircleColor     string `json:"circle_color"`
}

// ExportResultResponse describes a produced export file.
type ExportResultResponse struct {
	Filename         string `json:"filename"`
	Format           string `json:"format"`
	Size             int    `json:"size"`
	Width            int    `json:"width,omitempty"`
	Height           int    `json:"height,omitempty"`
	MetadataEmbedded bool   `json:"metadata_embedded"`
}

// ExportResponse is the response body for an export request. Exported is
// false when another export was already in flight and this one was skipped.
type ExportResponse struct {
	Exported bool                  `json:"exported"`
	Result   *ExportResultResponse `json:"result,omitempty"`
}
