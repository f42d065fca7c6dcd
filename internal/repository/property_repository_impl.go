package repository

import (
	"errors"

	"property-backoffice/internal/domain/entity"
	domainRepo "property-backoffice/internal/domain/repository"

	"gorm.io/gorm"
)

type propertyRepository struct{}

func NewPropertyRepository() domainRepo.PropertyRepository {
	return &propertyRepository{}
}

func (r *propertyRepository) Create(db *gorm.DB, property *entity.Property) error {
	return db.Create(property).Error
}

func (r *propertyRepository) FindByID(db *gorm.DB, id uint) (*entity.Property, error) {
	var property entity.Property
	err := db.Where("id = ?", id).First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) FindAll(db *gorm.DB) ([]entity.Property, error) {
	var properties []entity.Property
	err := db.Order("id ASC").Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) Update(db *gorm.DB, property *entity.Property) error {
	return db.Save(property).Error
}

func (r *propertyRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Property{})
	return result.RowsAffected, result.Error
}
