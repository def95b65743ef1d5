package service

import (
	"sync"
	"time"

	"bancomeme-receipt-studio/internal/core/domain"
	"bancomeme-receipt-studio/internal/core/ports"
	"bancomeme-receipt-studio/pkg/apperror"

	"github.com/rs/zerolog"
)

// SessionServiceImpl implements ports.SessionService. It owns the single
// editable record for the lifetime of the process. Edits build a new
// record value and swap it in under the lock, so readers always see a
// consistent snapshot or the previous one.
type SessionServiceImpl struct {
	mu     sync.RWMutex
	record domain.ReceiptRecord

	gen   *domain.Generator
	clock func() time.Time
	log   zerolog.Logger
}

// NewSessionService creates a session with freshly generated defaults.
func NewSessionService(gen *domain.Generator, clock func() time.Time, log zerolog.Logger) *SessionServiceImpl {
	if clock == nil {
		clock = time.Now
	}
	return &SessionServiceImpl{
		record: gen.NewRecord(clock()),
		gen:    gen,
		clock:  clock,
		log:    log,
	}
}

// Current returns a snapshot of the record.
func (s *SessionServiceImpl) Current() domain.ReceiptRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record
}

// UpdateField replaces one field of the record and returns the new value.
func (s *SessionServiceImpl) UpdateField(name, value string) (domain.ReceiptRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.record.WithField(name, value)
	if err != nil {
		return s.record, apperror.ErrUnknownField(err)
	}
	s.record = next

	s.log.Debug().Str("field", name).Msg("receipt field updated")
	return next, nil
}

// Regenerate re-rolls the randomized defaults, discarding all edits.
func (s *SessionServiceImpl) Regenerate() domain.ReceiptRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record = s.gen.NewRecord(s.clock())
	s.log.Info().Msg("receipt record regenerated")
	return s.record
}

var _ ports.SessionService = (*SessionServiceImpl)(nil)
