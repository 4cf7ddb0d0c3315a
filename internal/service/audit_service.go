package service

import (
	"context"
	"encoding/json"

	"incentivehub/internal/model"
	"incentivehub/internal/repository"

	"go.uber.org/zap"
)

// AuditService records and lists the trail of review decisions.
type AuditService interface {
	Record(ctx context.Context, userID, action, entityID, entityName string, details map[string]any)
	List(ctx context.Context) ([]model.AuditEntry, error)
}

type auditService struct {
	entries repository.AuditRepository
}

func NewAuditService(entries repository.AuditRepository) AuditService {
	return &auditService{entries: entries}
}

// Record writes an audit entry. Failures are logged, not propagated: the
// trail must never block the decision that triggered it.
func (s *auditService) Record(ctx context.Context, userID, action, entityID, entityName string, details map[string]any) {
	var payload string
	if details != nil {
		raw, err := json.Marshal(details)
		if err == nil {
			payload = string(raw)
		}
	}

	entry := &model.AuditEntry{
		UserID:     userID,
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    payload,
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		zap.L().Error("failed to write audit entry",
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

func (s *auditService) List(ctx context.Context) ([]model.AuditEntry, error) {
	return s.entries.List(ctx)
}
