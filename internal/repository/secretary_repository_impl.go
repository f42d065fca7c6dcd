package repository

import (
	"errors"

	"property-backoffice/internal/domain/entity"
	domainRepo "property-backoffice/internal/domain/repository"

	"gorm.io/gorm"
)

type secretaryRepository struct{}

func NewSecretaryRepository() domainRepo.SecretaryRepository {
	return &secretaryRepository{}
}

func (r *secretaryRepository) Create(db *gorm.DB, secretary *entity.Secretary) error {
	return db.Create(secretary).Error
}

func (r *secretaryRepository) FindByID(db *gorm.DB, id uint) (*entity.Secretary, error) {
	var secretary entity.Secretary
	err := db.Where("id = ?", id).First(&secretary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &secretary, nil
}

func (r *secretaryRepository) FindByEmail(db *gorm.DB, email string) (*entity.Secretary, error) {
	var secretary entity.Secretary
	err := db.Where("email = ?", email).First(&secretary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &secretary, nil
}

func (r *secretaryRepository) FindAll(db *gorm.DB) ([]entity.Secretary, error) {
	var secretaries []entity.Secretary
	err := db.Order("id ASC").Find(&secretaries).Error
	if err != nil {
		return nil, err
	}
	return secretaries, nil
}

func (r *secretaryRepository) Update(db *gorm.DB, secretary *entity.Secretary) error {
	return db.Save(secretary).Error
}

func (r *secretaryRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Secretary{})
	return result.RowsAffected, result.Error
}
