package service

import (
	"context"
	"strconv"

	"property-backoffice/internal/domain/entity"
	"property-backoffice/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditService records entity changes. Every method writes through tx so the
// entry commits or rolls back together with the change it describes. A failed
// write leaves tx usable.
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, secretaryID *uint, action string, entityName string, entityID uint, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, secretaryID *uint, action string, entityName string, entityID uint, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, secretaryID *uint, action string, entityName string, entityID uint, oldValue interface{}) error
}

const auditSavePoint = "audit_log"

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, secretaryID *uint, action string, entityName string, entityID uint, newValue interface{}) error {
	return s.write(ctx, tx, secretaryID, action, entityName, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, secretaryID *uint, action string, entityName string, entityID uint, oldValue, newValue interface{}) error {
	return s.write(ctx, tx, secretaryID, action, entityName, entityID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, secretaryID *uint, action string, entityName string, entityID uint, oldValue interface{}) error {
	return s.write(ctx, tx, secretaryID, action, entityName, entityID, oldValue, nil)
}

func (s *auditService) write(ctx context.Context, tx *gorm.DB, secretaryID *uint, action string, entityName string, entityID uint, oldValue, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		SecretaryID: secretaryID,
		Action:      action,
		Metadata: datatypes.JSONMap{
			"entity":    entityName,
			"entity_id": strconv.FormatUint(uint64(entityID), 10),
			"old_value": oldValue,
			"new_value": newValue,
		},
	}

	db := tx.WithContext(ctx)

	// A failed statement aborts a PostgreSQL transaction, so the insert runs
	// under a savepoint and a failure only undoes the audit entry.
	_, inTx := db.Statement.ConnPool.(gorm.TxCommitter)
	if inTx {
		if err := db.SavePoint(auditSavePoint).Error; err != nil {
			s.log.Warnf("Failed to create audit savepoint: %+v", err)
			return err
		}
	}

	if err := s.auditRepo.Create(db, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		if inTx {
			if rbErr := db.RollbackTo(auditSavePoint).Error; rbErr != nil {
				s.log.Warnf("Failed to roll back audit savepoint: %+v", rbErr)
			}
		}
		return err
	}

	return nil
}
