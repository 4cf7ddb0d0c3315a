package repository

import (
	"context"
	"time"

	"incentivehub/internal/model"

	"github.com/google/uuid"
)

// AuditRepository defines data access for the decision trail.
type AuditRepository interface {
	Create(ctx context.Context, entry *model.AuditEntry) error
	List(ctx context.Context) ([]model.AuditEntry, error)
}

type auditRepository struct {
	entries *collection[model.AuditEntry]
}

// NewAuditRepository returns an empty in-memory audit store.
func NewAuditRepository() AuditRepository {
	return &auditRepository{entries: newCollection[model.AuditEntry]()}
}

func (r *auditRepository) Create(_ context.Context, entry *model.AuditEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.CreatedAt = time.Now()
	r.entries.insert(entry.ID, *entry)
	return nil
}

// List returns entries newest first.
func (r *auditRepository) List(_ context.Context) ([]model.AuditEntry, error) {
	entries := r.entries.list()
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}
