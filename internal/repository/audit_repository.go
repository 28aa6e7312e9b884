package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/a2sh3r/holdengine/internal/models"
)

type AuditRepository interface {
	Record(ctx context.Context, entry models.AuditEntry) error
	ListByResource(ctx context.Context, resourceType, resourceID string) ([]models.AuditEntry, error)
}

type auditRepo struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) AuditRepository {
	return &auditRepo{db: db}
}

func (r *auditRepo) Record(ctx context.Context, entry models.AuditEntry) error {
	details, err := json.Marshal(entry.Details)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO audit_logs (id, actor_id, action, resource_type, resource_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, entry.ID, entry.ActorID, entry.Action, entry.ResourceType, entry.ResourceID, string(details), entry.CreatedAt)
	return err
}

func (r *auditRepo) ListByResource(ctx context.Context, resourceType, resourceID string) ([]models.AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, actor_id, action, resource_type, resource_id, details, created_at
		FROM audit_logs WHERE resource_type = $1 AND resource_id = $2
		ORDER BY created_at
	`, resourceType, resourceID)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var entries []models.AuditEntry
	for rows.Next() {
		var e models.AuditEntry
		var details []byte
		if err := rows.Scan(&e.ID, &e.ActorID, &e.Action, &e.ResourceType, &e.ResourceID, &details, &e.CreatedAt); err != nil {
			return nil, err
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &e.Details); err != nil {
				return nil, err
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
