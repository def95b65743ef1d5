// Package pdf builds a printable rendition of a receipt record.
package pdf

import (
	"bytes"
	"fmt"

	"bancomeme-receipt-studio/internal/core/domain"
	"bancomeme-receipt-studio/internal/core/ports"

	"github.com/phpdave11/gofpdf"
)

// Builder produces A4 portrait receipts with the same field set the
// raster view shows.
type Builder struct{}

func NewBuilder() *Builder { return &Builder{} }

var _ ports.DocumentBuilder = (*Builder)(nil)

func (b *Builder) Build(rec domain.ReceiptRecord, meta domain.ExportMetadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Bancomeme Receipt", false)
	pdf.SetAuthor(meta.Software(), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Comprobante de transferencia")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("%s - %s h", rec.Date, rec.Time))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("$%s %s", rec.DisplayAmount(), meta.Currency))
	pdf.Ln(12)

	rows := []struct {
		label string
		value string
	}{
		{"Cuenta de retiro", "Cuenta BBVA " + rec.MaskedSenderAccount()},
		{"Beneficiario", rec.ReceiverName},
		{"Banco destino", rec.ReceiverBank},
		{"Cuenta destino", rec.MaskedReceiverAccount()},
		{"Concepto", rec.Concept},
		{"Referencia", rec.Reference},
		{"Tipo de operacion", "Transferencia a otros bancos"},
		{"Folio de operacion", rec.Folio},
		{"Clave de rastreo", rec.TrackingKey},
		{"Correo electronico", rec.Email},
	}

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(55, 7, row.label)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 7, row.value)
		pdf.Ln(7)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, meta.Disclaimer, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
