package entity

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID          int64             `gorm:"primaryKey;autoIncrement"`
	SecretaryID *uint             `gorm:"index"`
	Action      string            `gorm:"type:varchar(100);not null;index"`
	Metadata    datatypes.JSONMap
	CreatedAt   time.Time         `gorm:"autoCreateTime;index"`

	// Relationships
	Secretary *Secretary `gorm:"foreignKey:SecretaryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionSecretaryLogin    = "secretary.login"
	AuditActionSecretaryCreate   = "secretary.create"
	AuditActionSecretaryUpdate   = "secretary.update"
	AuditActionSecretaryDelete   = "secretary.delete"
	AuditActionClientCreate      = "client.create"
	AuditActionClientUpdate      = "client.update"
	AuditActionClientDelete      = "client.delete"
	AuditActionStaffCreate       = "staff.create"
	AuditActionStaffUpdate       = "staff.update"
	AuditActionStaffDelete       = "staff.delete"
	AuditActionPropertyCreate    = "property.create"
	AuditActionPropertyUpdate    = "property.update"
	AuditActionPropertyDelete    = "property.delete"
	AuditActionAppointmentCreate = "appointment.create"
	AuditActionAppointmentUpdate = "appointment.update"
	AuditActionAppointmentDelete = "appointment.delete"
)
