package repository

import (
	"errors"

	"property-backoffice/internal/domain/entity"
	domainRepo "property-backoffice/internal/domain/repository"

	"gorm.io/gorm"
)

type staffRepository struct{}

func NewStaffRepository() domainRepo.StaffRepository {
	return &staffRepository{}
}

func (r *staffRepository) Create(db *gorm.DB, staff *entity.Staff) error {
	return db.Create(staff).Error
}

func (r *staffRepository) FindByID(db *gorm.DB, id uint) (*entity.Staff, error) {
	var staff entity.Staff
	err := db.Where("id = ?", id).First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) FindAll(db *gorm.DB) ([]entity.Staff, error) {
	var members []entity.Staff
	err := db.Order("id ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *staffRepository) Update(db *gorm.DB, staff *entity.Staff) error {
	return db.Save(staff).Error
}

func (r *staffRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Staff{})
	return result.RowsAffected, result.Error
}
