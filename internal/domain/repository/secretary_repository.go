package repository

import (
	"property-backoffice/internal/domain/entity"

	"gorm.io/gorm"
)

type SecretaryRepository interface {
	Create(db *gorm.DB, secretary *entity.Secretary) error
	FindByID(db *gorm.DB, id uint) (*entity.Secretary, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Secretary, error)
	FindAll(db *gorm.DB) ([]entity.Secretary, error)
	Update(db *gorm.DB, secretary *entity.Secretary) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
