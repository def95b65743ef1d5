package domain

// ViewStyle holds the layout-affecting properties of the receipt view.
// The live preview clips the receipt to a phone-sized frame; exports
// override these to the natural, unclipped size and switch the footer
// to its export treatment.
type ViewStyle struct {
	// MaxHeight caps the rendered height in logical pixels. 0 means the
	// natural content height.
	MaxHeight int `json:"max_height"`
	// ClipOverflow cuts content below MaxHeight instead of growing.
	ClipOverflow bool `json:"clip_overflow"`
	// ExportMarkers switches the footer link to plain text and adds
	// the disclaimer line, the treatment a saved copy carries.
	ExportMarkers bool `json:"export_markers"`
	// Scale is the supersampling factor applied when rasterizing.
	Scale float64 `json:"scale"`
}

// DefaultViewStyle is the live-preview layout: clipped phone frame, 1x.
func DefaultViewStyle() ViewStyle {
	return ViewStyle{
		MaxHeight:    640,
		ClipOverflow: true,
		Scale:        1,
	}
}

// ExportViewStyle is the export-time layout: natural height, markers on.
func ExportViewStyle(scale float64) ViewStyle {
	return ViewStyle{
		MaxHeight:     0,
		ClipOverflow:  false,
		ExportMarkers: true,
		Scale:         scale,
	}
}
