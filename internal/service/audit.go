package service

import (
	"context"
	"errors"
	"time"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/a2sh3r/holdengine/internal/metrics"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/a2sh3r/holdengine/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SystemActor is the actor recorded for background sweeps.
const SystemActor = "system"

type auditor struct {
	repo repository.AuditRepository
}

func (a auditor) record(ctx context.Context, actorID, action, resourceType, resourceID string, details map[string]any) {
	if a.repo == nil {
		return
	}
	entry := models.AuditEntry{
		ID:           uuid.New(),
		ActorID:      actorID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Details:      details,
		CreatedAt:    time.Now().UTC(),
	}
	if err := a.repo.Record(context.WithoutCancel(ctx), entry); err != nil {
		logger.Log.Warn("failed to write audit entry", zap.String("action", action), zap.String("resource", resourceID), zap.Error(err))
	}
}

// reportViolation logs ledger invariant breaks loudly and passes err through.
func reportViolation(m *metrics.Metrics, err error, fields ...zap.Field) error {
	if err != nil && errors.Is(err, apperrors.ErrConsistencyViolation) {
		m.IncConsistencyViolation()
		logger.Log.Error("ledger consistency violation", append(fields, zap.Error(err))...)
	}
	return err
}
