package service

import (
	"context"
	"time"

	"healthcare-admin-portal/internal/delivery/http/middleware"
	"healthcare-admin-portal/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// AuditRecorder counts written audit entries.
type AuditRecorder interface {
	IncAuditEntry(action string)
}

// AuditService records every write the portal sends to the gateway. Entries
// go to the structured log; nothing is persisted by the portal.
type AuditService interface {
	LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{})
}

type auditService struct {
	log     *logrus.Logger
	metrics AuditRecorder
}

func NewAuditService(log *logrus.Logger, metrics AuditRecorder) AuditService {
	return &auditService{
		log:     log,
		metrics: metrics,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{}) {
	auditLog := &entity.AuditLog{
		Action: action,
		Metadata: entity.JSON{
			"entity":    entityName,
			"entity_id": entityID,
			"new_value": newValue,
		},
		CreatedAt: time.Now().UTC(),
	}
	auditLog.SessionID, _ = middleware.GetSessionIDFromContext(ctx)
	auditLog.RequestID, _ = middleware.GetRequestIDFromContext(ctx)

	s.log.WithFields(logrus.Fields{
		"audit":      true,
		"action":     auditLog.Action,
		"session_id": auditLog.SessionID,
		"request_id": auditLog.RequestID,
		"metadata":   auditLog.Metadata,
		"created_at": auditLog.CreatedAt,
	}).Info("audit")

	if s.metrics != nil {
		s.metrics.IncAuditEntry(action)
	}
}
