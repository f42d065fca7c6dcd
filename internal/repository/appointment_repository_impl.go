package repository

import (
	"errors"

	"property-backoffice/internal/domain/entity"
	domainRepo "property-backoffice/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

// withSummaries preloads only the relation columns shown in listings,
// keeping credentials out of the loaded rows.
func withSummaries(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Client", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name", "national_id")
		}).
		Preload("Staff", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name", "specialty")
		}).
		Preload("Property", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name", "address", "value")
		})
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit(clause.Associations).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := withSummaries(db).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindDetailByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Client").Preload("Staff").Preload("Property").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := withSummaries(db).
		Order("scheduled_at ASC").
		Order("id ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, id uint, fields map[string]interface{}) error {
	return db.Model(&entity.Appointment{}).Where("id = ?", id).Updates(fields).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
