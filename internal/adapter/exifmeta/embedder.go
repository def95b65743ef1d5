// Package exifmeta tags exported JPEG images with the receipt snapshot.
package exifmeta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"bancomeme-receipt-studio/internal/core/domain"
	"bancomeme-receipt-studio/internal/core/ports"

	"github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	exifundefined "github.com/dsoprea/go-exif/v3/undefined"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"
	"github.com/rs/zerolog"
)

const exifTimeLayout = "2006-01-02 15:04:05"

// Embedder writes EXIF IFD0 and Exif IFD tags into JPEG data. It never
// mutates its input: callers receive a new byte slice, or the original
// bytes together with the error when tagging fails.
type Embedder struct {
	log zerolog.Logger
}

func NewEmbedder(log zerolog.Logger) *Embedder {
	return &Embedder{log: log.With().Str("component", "exif_embedder").Logger()}
}

var _ ports.TagEmbedder = (*Embedder)(nil)

// Embed parses the JPEG segment list, merges the metadata into its EXIF
// block and reserializes. The underlying parser panics on malformed
// input, so failures of any kind surface as the returned error.
func (e *Embedder) Embed(jpegData []byte, meta domain.ExportMetadata, now time.Time) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn().Interface("panic", r).Msg("exif embedding panicked")
			data = jpegData
			err = fmt.Errorf("exif embedding panicked: %v", r)
		}
	}()

	jmp := jpegstructure.NewJpegMediaParser()

	intfc, err := jmp.ParseBytes(jpegData)
	if err != nil {
		return jpegData, fmt.Errorf("parse jpeg segments: %w", err)
	}
	sl := intfc.(*jpegstructure.SegmentList)

	rootIb, err := sl.ConstructExifBuilder()
	if err != nil {
		// Encoder output carries no EXIF block yet; start from scratch.
		rootIb, err = newRootBuilder()
		if err != nil {
			return jpegData, fmt.Errorf("build exif root: %w", err)
		}
	}

	if err := e.setRootTags(rootIb, meta, now); err != nil {
		return jpegData, err
	}
	if err := e.setExifTags(rootIb, meta, now); err != nil {
		return jpegData, err
	}

	if err := sl.SetExif(rootIb); err != nil {
		return jpegData, fmt.Errorf("set exif block: %w", err)
	}

	var buf bytes.Buffer
	if err := sl.Write(&buf); err != nil {
		return jpegData, fmt.Errorf("serialize jpeg: %w", err)
	}

	e.log.Debug().Int("size", buf.Len()).Msg("exif metadata embedded")
	return buf.Bytes(), nil
}

func newRootBuilder() (*exif.IfdBuilder, error) {
	im, err := exifcommon.NewIfdMappingWithStandard()
	if err != nil {
		return nil, err
	}
	ti := exif.NewTagIndex()
	if err := exif.LoadStandardTags(ti); err != nil {
		return nil, err
	}
	return exif.NewIfdBuilder(im, ti, exifcommon.IfdStandardIfdIdentity, exifcommon.EncodeDefaultByteOrder), nil
}

func (e *Embedder) setRootTags(rootIb *exif.IfdBuilder, meta domain.ExportMetadata, now time.Time) error {
	ifdIb, err := exif.GetOrCreateIbFromRootIb(rootIb, "IFD0")
	if err != nil {
		return fmt.Errorf("open IFD0: %w", err)
	}

	tags := map[string]string{
		"Make":             domain.ToolMake,
		"Model":            domain.ToolModel,
		"Software":         meta.Software(),
		"DateTime":         now.Format(exifTimeLayout),
		"Artist":           domain.ToolName,
		"Copyright":        domain.Disclaimer,
		"ImageDescription": meta.Description(),
	}
	for name, value := range tags {
		if err := ifdIb.SetStandardWithName(name, value); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	return nil
}

func (e *Embedder) setExifTags(rootIb *exif.IfdBuilder, meta domain.ExportMetadata, now time.Time) error {
	exifIb, err := exif.GetOrCreateIbFromRootIb(rootIb, "IFD0/Exif")
	if err != nil {
		return fmt.Errorf("open exif ifd: %w", err)
	}

	stamp := now.Format(exifTimeLayout)
	if err := exifIb.SetStandardWithName("DateTimeOriginal", stamp); err != nil {
		return fmt.Errorf("set DateTimeOriginal: %w", err)
	}
	if err := exifIb.SetStandardWithName("DateTimeDigitized", stamp); err != nil {
		return fmt.Errorf("set DateTimeDigitized: %w", err)
	}

	payload, err := json.Marshal(meta.CommentPayload())
	if err != nil {
		return fmt.Errorf("marshal user comment: %w", err)
	}
	comment := exifundefined.Tag9286UserComment{
		EncodingType:  exifundefined.TagUndefinedType_9286_UserComment_Encoding_ASCII,
		EncodingBytes: payload,
	}
	if err := exifIb.SetStandardWithName("UserComment", comment); err != nil {
		return fmt.Errorf("set UserComment: %w", err)
	}
	return nil
}
