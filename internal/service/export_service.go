package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"bancomeme-receipt-studio/internal/core/domain"
	"bancomeme-receipt-studio/internal/core/ports"
	"bancomeme-receipt-studio/pkg/apperror"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	filenamePrefix = "bancomeme"

	// Fixed names for the variants that skip filename derivation.
	pngExportName = "bancomeme-receipt.png"
	pdfExportName = "bancomeme-receipt.pdf"
)

var (
	receiverStripRe = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)

	// filenamePrinter groups the amount the way the receipt's home locale does.
	filenamePrinter = message.NewPrinter(language.Make("es-MX"))
)

// ExportOptions tunes the export pipeline.
type ExportOptions struct {
	// Quality is the JPEG compression quality (1-100).
	Quality int
	// Scale is the rasterization supersampling factor.
	Scale float64
	// SettleDelay is the pause before rasterizing.
	SettleDelay time.Duration
	// Clock overrides the wall clock (tests). Nil means time.Now.
	Clock func() time.Time
}

// ExportServiceImpl implements ports.ExportService. A single in-flight
// flag serializes exports: a second invocation while one runs is a
// silent no-op, neither queued nor failed.
type ExportServiceImpl struct {
	session  ports.SessionService
	view     ports.ReceiptView
	embedder ports.TagEmbedder
	docs     ports.DocumentBuilder
	sink     ports.FileSink

	quality     int
	scale       float64
	settleDelay time.Duration
	clock       func() time.Time

	inFlight atomic.Bool
	log      zerolog.Logger
}

// NewExportService creates a new ExportServiceImpl.
func NewExportService(
	session ports.SessionService,
	view ports.ReceiptView,
	embedder ports.TagEmbedder,
	docs ports.DocumentBuilder,
	sink ports.FileSink,
	opts ExportOptions,
	log zerolog.Logger,
) *ExportServiceImpl {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &ExportServiceImpl{
		session:     session,
		view:        view,
		embedder:    embedder,
		docs:        docs,
		sink:        sink,
		quality:     opts.Quality,
		scale:       opts.Scale,
		settleDelay: opts.SettleDelay,
		clock:       clock,
		log:         log,
	}
}

// ExportJPEG runs the full pipeline: style override, settle, rasterize at
// the supersampling scale, derive the filename, encode, embed EXIF tags
// and deliver. A metadata embedding failure degrades to the untagged
// bytes; any other failure aborts without producing a file.
func (s *ExportServiceImpl) ExportJPEG(ctx context.Context) (*ports.ExportResult, bool, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.log.Debug().Msg("export already in progress, ignoring")
		return nil, false, nil
	}
	defer s.inFlight.Store(false)

	rec := s.session.Current()

	img, err := s.rasterize(ctx, rec)
	if err != nil {
		s.log.Error().Err(err).Msg("jpeg export failed during rasterization")
		return nil, true, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: s.quality}); err != nil {
		s.log.Error().Err(err).Msg("jpeg encoding failed")
		return nil, true, apperror.ErrEncodeFailure(err)
	}

	now := s.clock().UTC()
	meta := domain.BuildExportMetadata(rec, now)

	data, embedErr := s.embedder.Embed(buf.Bytes(), meta, now)
	embedded := embedErr == nil
	if embedErr != nil {
		// Degrade to the untagged image rather than failing the export.
		s.log.Warn().Err(embedErr).Msg("metadata embedding failed, exporting untagged image")
		data = buf.Bytes()
	}

	filename := deriveFilename(rec, now)
	if err := s.sink.Deliver(ctx, filename, data); err != nil {
		s.log.Error().Err(err).Str("filename", filename).Msg("export delivery failed")
		return nil, true, apperror.ErrDeliveryFailure(err)
	}

	bounds := img.Bounds()
	result := &ports.ExportResult{
		Filename:         filename,
		Format:           string(ports.ExportFormatJPEG),
		Size:             len(data),
		Width:            bounds.Dx(),
		Height:           bounds.Dy(),
		MetadataEmbedded: embedded,
	}

	s.log.Info().
		Str("filename", filename).
		Int("size", result.Size).
		Str("dimensions", fmt.Sprintf("%dx%d", result.Width, result.Height)).
		Bool("metadata_embedded", embedded).
		Msg("receipt exported as jpeg")

	return result, true, nil
}

// ExportPNG delivers an untagged PNG of the receipt under a fixed name.
func (s *ExportServiceImpl) ExportPNG(ctx context.Context) (*ports.ExportResult, bool, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.log.Debug().Msg("export already in progress, ignoring")
		return nil, false, nil
	}
	defer s.inFlight.Store(false)

	rec := s.session.Current()

	img, err := s.rasterize(ctx, rec)
	if err != nil {
		s.log.Error().Err(err).Msg("png export failed during rasterization")
		return nil, true, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		s.log.Error().Err(err).Msg("png encoding failed")
		return nil, true, apperror.ErrEncodeFailure(err)
	}

	if err := s.sink.Deliver(ctx, pngExportName, buf.Bytes()); err != nil {
		s.log.Error().Err(err).Str("filename", pngExportName).Msg("export delivery failed")
		return nil, true, apperror.ErrDeliveryFailure(err)
	}

	bounds := img.Bounds()
	result := &ports.ExportResult{
		Filename: pngExportName,
		Format:   string(ports.ExportFormatPNG),
		Size:     buf.Len(),
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
	}

	s.log.Info().Str("filename", pngExportName).Int("size", result.Size).Msg("receipt exported as png")
	return result, true, nil
}

// ExportPDF delivers a PDF rendition of the receipt under a fixed name.
func (s *ExportServiceImpl) ExportPDF(ctx context.Context) (*ports.ExportResult, bool, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.log.Debug().Msg("export already in progress, ignoring")
		return nil, false, nil
	}
	defer s.inFlight.Store(false)

	rec := s.session.Current()
	meta := domain.BuildExportMetadata(rec, s.clock().UTC())

	data, err := s.docs.Build(rec, meta)
	if err != nil {
		s.log.Error().Err(err).Msg("pdf rendition failed")
		return nil, true, apperror.ErrDocumentFailure(err)
	}

	if err := s.sink.Deliver(ctx, pdfExportName, data); err != nil {
		s.log.Error().Err(err).Str("filename", pdfExportName).Msg("export delivery failed")
		return nil, true, apperror.ErrDeliveryFailure(err)
	}

	result := &ports.ExportResult{
		Filename: pdfExportName,
		Format:   string(ports.ExportFormatPDF),
		Size:     len(data),
	}

	s.log.Info().Str("filename", pdfExportName).Int("size", result.Size).Msg("receipt exported as pdf")
	return result, true, nil
}

// rasterize snapshots the view's layout style, applies the export
// overrides, waits for the settle delay and renders. The original style
// is restored unconditionally before returning.
func (s *ExportServiceImpl) rasterize(ctx context.Context, rec domain.ReceiptRecord) (image.Image, error) {
	if s.view == nil {
		return nil, apperror.ErrNoRenderTarget()
	}

	original := s.view.Style()
	s.view.SetStyle(domain.ExportViewStyle(s.scale))
	defer s.view.SetStyle(original)

	if s.settleDelay > 0 {
		timer := time.NewTimer(s.settleDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, apperror.ErrExportCancelled(ctx.Err())
		case <-timer.C:
		}
	}

	img, err := s.view.Render(ctx, rec)
	if err != nil {
		return nil, apperror.ErrRenderFailure(err)
	}
	return img, nil
}

// deriveFilename builds the JPEG export name from the record and instant:
// prefix, grouped integer amount, sanitized receiver, the first 7
// reference characters and a filesystem-safe UTC timestamp.
func deriveFilename(rec domain.ReceiptRecord, now time.Time) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(rec.Amount), 64)
	if err != nil {
		f = 0
	}
	amount := filenamePrinter.Sprint(number.Decimal(f, number.MaxFractionDigits(0)))

	receiver := receiverStripRe.ReplaceAllString(rec.ReceiverName, "")
	receiver = whitespaceRe.ReplaceAllString(receiver, "-")
	receiver = strings.ToLower(receiver)
	if len(receiver) > 15 {
		receiver = receiver[:15]
	}

	reference := rec.Reference
	if len(reference) > 7 {
		reference = reference[:7]
	}

	timestamp := now.UTC().Format("2006-01-02T15-04-05")

	return fmt.Sprintf("%s-%s-%s-%s-%s.jpg", filenamePrefix, amount, receiver, reference, timestamp)
}

var _ ports.ExportService = (*ExportServiceImpl)(nil)
