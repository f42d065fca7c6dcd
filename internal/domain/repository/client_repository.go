package repository

import (
	"property-backoffice/internal/domain/entity"

	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(db *gorm.DB, client *entity.Client) error
	FindByID(db *gorm.DB, id uint) (*entity.Client, error)
	FindAll(db *gorm.DB) ([]entity.Client, error)
	Update(db *gorm.DB, client *entity.Client) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
