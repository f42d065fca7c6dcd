package repository

import (
	"property-backoffice/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	// FindByID loads the appointment with summary projections of its relations.
	FindByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	// FindDetailByID loads the appointment with its relations in full.
	FindDetailByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	Update(db *gorm.DB, id uint, fields map[string]interface{}) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
