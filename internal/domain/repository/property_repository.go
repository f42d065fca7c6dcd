package repository

import (
	"property-backoffice/internal/domain/entity"

	"gorm.io/gorm"
)

type PropertyRepository interface {
	Create(db *gorm.DB, property *entity.Property) error
	FindByID(db *gorm.DB, id uint) (*entity.Property, error)
	FindAll(db *gorm.DB) ([]entity.Property, error)
	Update(db *gorm.DB, property *entity.Property) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
