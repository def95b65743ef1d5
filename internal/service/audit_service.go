package service

import (
	"context"

	"bancomeme-receipt-studio/internal/core/domain"
	"bancomeme-receipt-studio/internal/core/ports"

	"github.com/rs/zerolog"
)

type auditService struct {
	log zerolog.Logger
}

// NewAuditService creates a log-backed audit service. Nothing is
// persisted; the session's activity trail lives in the log stream.
func NewAuditService(log zerolog.Logger) ports.AuditService {
	return &auditService{log: log}
}

// Log records an audit entry asynchronously (fire-and-forget).
func (s *auditService) Log(ctx context.Context, event *domain.AuditEvent) {
	go func() {
		s.log.Info().
			Str("action", string(event.Action)).
			Str("resource_type", event.ResourceType).
			Str("resource_id", event.ResourceID).
			Str("ip", event.IPAddress).
			Msg("audit")
	}()
}
