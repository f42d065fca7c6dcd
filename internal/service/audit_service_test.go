package service

import (
	"context"
	"io"
	"testing"

	"property-backoffice/internal/domain/entity"
	"property-backoffice/internal/infrastructure/database"
	"property-backoffice/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func newAuditTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteConnection(":memory:", "test")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newAuditTestService() AuditService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewAuditService(log, repository.NewAuditLogRepository())
}

func TestAuditServiceWritesMetadata(t *testing.T) {
	db := newAuditTestDB(t)
	svc := newAuditTestService()

	old := map[string]string{"nome": "Casa"}
	updated := map[string]string{"nome": "Casa Verde"}
	if err := svc.LogUpdate(context.Background(), db, nil, entity.AuditActionPropertyUpdate, "property", 7, old, updated); err != nil {
		t.Fatalf("LogUpdate: %v", err)
	}

	var logs []entity.AuditLog
	if err := db.Find(&logs).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("got %d audit logs, want 1", len(logs))
	}

	got := logs[0]
	if got.Action != entity.AuditActionPropertyUpdate || got.SecretaryID != nil {
		t.Fatalf("unexpected entry: %+v", got)
	}
	if got.Metadata["entity"] != "property" || got.Metadata["entity_id"] != "7" {
		t.Fatalf("metadata = %v", got.Metadata)
	}
	newValue, ok := got.Metadata["new_value"].(map[string]interface{})
	if !ok || newValue["nome"] != "Casa Verde" {
		t.Fatalf("new_value = %v", got.Metadata["new_value"])
	}
}

func TestAuditServiceRollsBackWithTransaction(t *testing.T) {
	db := newAuditTestDB(t)
	svc := newAuditTestService()

	tx := db.Begin()
	if err := svc.LogCreate(context.Background(), tx, nil, entity.AuditActionClientCreate, "client", 1, map[string]string{"nome": "Joao"}); err != nil {
		t.Fatalf("LogCreate: %v", err)
	}
	if err := tx.Rollback().Error; err != nil {
		t.Fatalf("rollback: %v", err)
	}

	var count int64
	if err := db.Model(&entity.AuditLog{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("audit log survived rollback: %d rows", count)
	}
}

func TestAuditServiceRejectsUnknownSecretary(t *testing.T) {
	db := newAuditTestDB(t)
	svc := newAuditTestService()

	missing := uint(404)
	if err := svc.LogDelete(context.Background(), db, &missing, entity.AuditActionStaffDelete, "staff", 3, nil); err == nil {
		t.Fatal("expected foreign key error for unknown secretary")
	}
}

func TestAuditServiceFailureKeepsTransactionUsable(t *testing.T) {
	db := newAuditTestDB(t)
	svc := newAuditTestService()

	tx := db.Begin()
	staff := &entity.Staff{Name: "Carla", Email: "carla@imobiliaria.com", Specialty: "Corretora"}
	if err := tx.Create(staff).Error; err != nil {
		t.Fatalf("create staff: %v", err)
	}

	missing := uint(404)
	if err := svc.LogCreate(context.Background(), tx, &missing, entity.AuditActionStaffCreate, "staff", staff.ID, staff); err == nil {
		t.Fatal("expected foreign key error for unknown secretary")
	}

	if err := tx.Create(&entity.Staff{Name: "Paula", Email: "paula@imobiliaria.com", Specialty: "Locacao"}).Error; err != nil {
		t.Fatalf("transaction unusable after audit failure: %v", err)
	}
	if err := tx.Commit().Error; err != nil {
		t.Fatalf("commit: %v", err)
	}

	var staffCount, auditCount int64
	db.Model(&entity.Staff{}).Count(&staffCount)
	db.Model(&entity.AuditLog{}).Count(&auditCount)
	if staffCount != 2 || auditCount != 0 {
		t.Fatalf("staff = %d, audit logs = %d; want 2 and 0", staffCount, auditCount)
	}
}
