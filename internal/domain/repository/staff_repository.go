package repository

import (
	"property-backoffice/internal/domain/entity"

	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(db *gorm.DB, staff *entity.Staff) error
	FindByID(db *gorm.DB, id uint) (*entity.Staff, error)
	FindAll(db *gorm.DB) ([]entity.Staff, error)
	Update(db *gorm.DB, staff *entity.Staff) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
