// Package audit records interaction events. Writes are best-effort: a failed
// append is logged and never surfaces to the calling flow.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nio-menu/backend/internal/audit/domain"
	auditrepo "nio-menu/backend/internal/audit/repository"
)

// Recorder writes a single audit event. Used by the authorization flow as a
// fire-and-forget side effect.
type Recorder interface {
	Record(ctx context.Context, externalID, phone string, personnelID int64, kind, detail string)
}

// Logger implements Recorder using the audit repository.
type Logger struct {
	repo auditrepo.Repository
	log  *zap.Logger
}

// NewLogger returns a Recorder that persists to repo. log may be nil; then the
// global zap logger is used for failure reporting.
func NewLogger(repo auditrepo.Repository, log *zap.Logger) *Logger {
	if log == nil {
		log = zap.L()
	}
	return &Logger{repo: repo, log: log}
}

// Record writes one audit event. Best-effort: errors are logged and not returned.
func (l *Logger) Record(ctx context.Context, externalID, phone string, personnelID int64, kind, detail string) {
	if l.repo == nil {
		return
	}
	e := &domain.Event{
		ID:          uuid.New().String(),
		ExternalID:  externalID,
		Phone:       phone,
		PersonnelID: personnelID,
		Kind:        kind,
		Detail:      detail,
		CreatedAt:   time.Now().UTC(),
	}
	if err := l.repo.Create(ctx, e); err != nil {
		l.log.Warn("audit: failed to record event",
			zap.String("kind", kind),
			zap.String("external_id", externalID),
			zap.Error(err),
		)
	}
}
