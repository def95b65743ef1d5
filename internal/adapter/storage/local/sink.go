// Package local delivers exported files to a directory on a filesystem
// abstraction, so tests can run against an in-memory filesystem.
package local

import (
	"context"
	"path/filepath"

	"bancomeme-receipt-studio/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Sink writes exported files under a single output directory.
type Sink struct {
	fs  afero.Fs
	dir string
	log zerolog.Logger
}

// NewSink ensures the output directory exists and returns a sink
// writing into it.
func NewSink(fs afero.Fs, dir string, log zerolog.Logger) (*Sink, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Sink{
		fs:  fs,
		dir: dir,
		log: log.With().Str("component", "export_sink").Logger(),
	}, nil
}

var _ ports.FileSink = (*Sink)(nil)
var _ ports.HealthChecker = (*Sink)(nil)

// Deliver writes data to the output directory under filename,
// replacing any previous export with the same name.
func (s *Sink) Deliver(ctx context.Context, filename string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(s.dir, filepath.Base(filename))
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return err
	}

	s.log.Info().Str("path", path).Int("size", len(data)).Msg("export written")
	return nil
}

// Ping verifies the output directory is present and writable.
func (s *Sink) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.fs.MkdirAll(s.dir, 0o755)
}

func (s *Sink) Name() string { return "export_sink" }
