// Package render rasterizes a receipt record into an image using a
// fixed mobile-style layout.
package render

import (
	"context"
	"image"
	"sync"

	"bancomeme-receipt-studio/internal/core/domain"
	"bancomeme-receipt-studio/internal/core/ports"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Logical layout units. The physical canvas is these multiplied by the
// view style's scale factor.
const (
	logicalWidth  = 360.0
	logicalHeight = 764.0

	marginX = 24.0
)

const (
	colorInk     = "#1f2933"
	colorMuted   = "#6b7280"
	colorDivider = "#e5e7eb"
	colorAccent  = "#028484"
)

// View renders receipt records onto an in-memory canvas. It carries a
// mutable layout style so an exporter can swap in export overrides and
// restore the on-screen style afterwards.
type View struct {
	mu    sync.RWMutex
	style domain.ViewStyle

	regular *truetype.Font
	bold    *truetype.Font
	italic  *truetype.Font

	log zerolog.Logger
}

// NewView parses the bundled typefaces and returns a view with the
// default on-screen style.
func NewView(log zerolog.Logger) (*View, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}
	italic, err := truetype.Parse(goitalic.TTF)
	if err != nil {
		return nil, err
	}

	return &View{
		style:   domain.DefaultViewStyle(),
		regular: regular,
		bold:    bold,
		italic:  italic,
		log:     log.With().Str("component", "receipt_view").Logger(),
	}, nil
}

var _ ports.ReceiptView = (*View)(nil)

// Style returns the current layout style.
func (v *View) Style() domain.ViewStyle {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.style
}

// SetStyle replaces the layout style.
func (v *View) SetStyle(style domain.ViewStyle) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.style = style
}

// Render draws the record at the style's scale factor. When the style
// clips overflow, the returned image is cropped to the style's maximum
// height.
func (v *View) Render(ctx context.Context, rec domain.ReceiptRecord) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	style := v.Style()
	s := style.Scale
	if s <= 0 {
		s = 1
	}

	dc := gg.NewContext(int(logicalWidth*s), int(logicalHeight*s))
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	v.drawHeader(dc, rec, s)
	y := v.drawReceiverCard(dc, rec, s, 318)
	y = v.drawDetails(dc, rec, s, y)
	v.drawFooter(dc, rec, s, y, style.ExportMarkers)

	img := dc.Image()
	if style.ClipOverflow && style.MaxHeight > 0 && float64(style.MaxHeight) < logicalHeight {
		clipped := int(float64(style.MaxHeight) * s)
		img = img.(*image.RGBA).SubImage(image.Rect(0, 0, int(logicalWidth*s), clipped))
	}

	v.log.Debug().
		Float64("scale", s).
		Bool("clipped", style.ClipOverflow).
		Msg("receipt rendered")

	return img, nil
}

// drawHeader draws the success badge, title, date line and amount.
func (v *View) drawHeader(dc *gg.Context, rec domain.ReceiptRecord, s float64) {
	cx := logicalWidth / 2

	// Success badge with a check mark.
	dc.SetHexColor(colorAccent)
	dc.DrawCircle(cx*s, 64*s, 26*s)
	dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(4 * s)
	dc.DrawLine((cx-10)*s, 64*s, (cx-3)*s, 72*s)
	dc.DrawLine((cx-3)*s, 72*s, (cx+11)*s, 56*s)
	dc.Stroke()

	dc.SetHexColor(colorInk)
	dc.SetFontFace(v.face(v.bold, 17, s))
	dc.DrawStringAnchored("Operación exitosa", cx*s, 116*s, 0.5, 0.5)

	dc.SetHexColor(colorMuted)
	dc.SetFontFace(v.face(v.regular, 12, s))
	dc.DrawStringAnchored(rec.Date+" · "+rec.Time+" h", cx*s, 140*s, 0.5, 0.5)

	dc.SetHexColor(colorInk)
	dc.SetFontFace(v.face(v.bold, 30, s))
	dc.DrawStringAnchored("$"+rec.DisplayAmount(), cx*s, 182*s, 0.5, 0.5)

	dc.SetHexColor(colorMuted)
	dc.SetFontFace(v.face(v.regular, 12, s))
	dc.DrawStringAnchored("Importe transferido", cx*s, 208*s, 0.5, 0.5)

	v.divider(dc, s, 236)

	dc.SetHexColor(colorMuted)
	dc.SetFontFace(v.face(v.regular, 11, s))
	dc.DrawString("Cuenta de retiro", marginX*s, 262*s)
	dc.SetHexColor(colorInk)
	dc.SetFontFace(v.face(v.regular, 13, s))
	dc.DrawString("Cuenta BBVA "+rec.MaskedSenderAccount(), marginX*s, 282*s)

	v.divider(dc, s, 302)
}

// drawReceiverCard draws the colored initials badge next to the
// receiver's name, bank and masked account. Returns the next free y.
func (v *View) drawReceiverCard(dc *gg.Context, rec domain.ReceiptRecord, s, y float64) float64 {
	badge := 22.0
	bx := marginX + badge
	by := y + badge

	dc.SetHexColor(rec.CircleColor)
	dc.DrawCircle(bx*s, by*s, badge*s)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(v.face(v.bold, 16, s))
	dc.DrawStringAnchored(rec.ReceiverInitials(), bx*s, by*s, 0.5, 0.5)

	tx := bx + badge + 14
	dc.SetHexColor(colorInk)
	dc.SetFontFace(v.face(v.bold, 14, s))
	dc.DrawString(rec.ReceiverName, tx*s, (y+14)*s)

	dc.SetHexColor(colorMuted)
	dc.SetFontFace(v.face(v.regular, 12, s))
	dc.DrawString(rec.ReceiverBank, tx*s, (y+32)*s)
	dc.DrawString(rec.MaskedReceiverAccount(), tx*s, (y+48)*s)

	next := y + 2*badge + 18
	v.divider(dc, s, next)
	return next + 24
}

// detailRow is one label/value pair in the lower section.
type detailRow struct {
	label  string
	value  string
	italic bool
}

func (v *View) drawDetails(dc *gg.Context, rec domain.ReceiptRecord, s, y float64) float64 {
	rows := []detailRow{
		{label: "Concepto", value: rec.Concept, italic: true},
		{label: "Referencia", value: rec.Reference},
		{label: "Tipo de operación", value: "Transferencia a otros bancos"},
		{label: "Folio de operación", value: rec.Folio},
		{label: "Clave de rastreo", value: rec.TrackingKey},
		{label: "Correo electrónico", value: "•" + rec.Email},
	}

	for _, row := range rows {
		dc.SetHexColor(colorMuted)
		dc.SetFontFace(v.face(v.regular, 11, s))
		dc.DrawString(row.label, marginX*s, y*s)

		face := v.regular
		if row.italic {
			face = v.italic
		}
		dc.SetHexColor(colorInk)
		dc.SetFontFace(v.face(face, 13, s))
		dc.DrawString(row.value, marginX*s, (y+18)*s)

		y += 44
	}

	v.divider(dc, s, y-8)
	return y + 12
}

// drawFooter draws the verification link. With export markers enabled
// the link renders as plain text and the disclaimer line is added,
// matching what a saved copy of the receipt should look like.
func (v *View) drawFooter(dc *gg.Context, rec domain.ReceiptRecord, s, y float64, markers bool) {
	cx := logicalWidth / 2

	dc.SetHexColor(colorMuted)
	dc.SetFontFace(v.face(v.regular, 11, s))
	dc.DrawStringAnchored("Consulta tu comprobante en", cx*s, y*s, 0.5, 0.5)

	if markers {
		dc.SetHexColor(colorInk)
	} else {
		dc.SetHexColor(colorAccent)
	}
	dc.SetFontFace(v.face(v.bold, 12, s))
	dc.DrawStringAnchored("www.banxico.org.mx/cep", cx*s, (y+18)*s, 0.5, 0.5)

	if markers {
		dc.SetHexColor(colorMuted)
		dc.SetFontFace(v.face(v.italic, 9, s))
		dc.DrawStringAnchored(domain.Disclaimer, cx*s, (y+44)*s, 0.5, 0.5)
	}
}

func (v *View) divider(dc *gg.Context, s, y float64) {
	dc.SetHexColor(colorDivider)
	dc.SetLineWidth(1 * s)
	dc.DrawLine(marginX*s, y*s, (logicalWidth-marginX)*s, y*s)
	dc.Stroke()
}

// face builds a font face at the given logical size scaled to device
// pixels. Faces are drawn in device coordinates, so the glyphs scale
// with the canvas.
func (v *View) face(f *truetype.Font, size, scale float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size * scale, DPI: 72})
}
