package usecase

import (
	"context"

	"property-backoffice/internal/converter"
	"property-backoffice/internal/delivery/dto"
	"property-backoffice/internal/domain/entity"
	"property-backoffice/internal/domain/repository"
	"property-backoffice/internal/service"
	"property-backoffice/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PropertyUsecase interface {
	CreateProperty(ctx context.Context, req *dto.CreatePropertyRequest) (*dto.PropertyResponse, error)
	GetAllProperties(ctx context.Context) (*dto.PropertyListResponse, error)
	GetProperty(ctx context.Context, id uint) (*dto.PropertyResponse, error)
	UpdateProperty(ctx context.Context, id uint, req *dto.UpdatePropertyRequest) (*dto.PropertyResponse, error)
	DeleteProperty(ctx context.Context, id uint) error
}

type propertyUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	propertyRepo repository.PropertyRepository
	auditService service.AuditService
}

func NewPropertyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	propertyRepo repository.PropertyRepository,
	auditService service.AuditService,
) PropertyUsecase {
	return &propertyUsecase{
		db:           db,
		log:          log,
		propertyRepo: propertyRepo,
		auditService: auditService,
	}
}

var errInvalidConstructionDate = apperror.Validation("Invalid construction date", map[string]string{
	"dataConstrucao": "dataConstrucao must be a valid date (2006-01-02)",
})

func parseOptionalDate(value *string) (*datatypes.Date, error) {
	if value == nil {
		return nil, nil
	}
	date, err := parseDate(*value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func (u *propertyUsecase) CreateProperty(ctx context.Context, req *dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	constructionDate, err := parseOptionalDate(req.ConstructionDate)
	if err != nil {
		return nil, errInvalidConstructionDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	property := &entity.Property{
		Name:             req.Name,
		Address:          req.Address,
		Value:            req.Value.Round(2),
		Description:      req.Description,
		ConstructionDate: constructionDate,
	}
	if err := u.propertyRepo.Create(tx, property); err != nil {
		u.log.Warnf("Failed to create property: %+v", err)
		return nil, unexpected(err)
	}

	result := converter.PropertyToResponse(property)
	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionPropertyCreate, "property", property.ID, result); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, unexpected(err)
	}

	return result, nil
}

func (u *propertyUsecase) GetAllProperties(ctx context.Context) (*dto.PropertyListResponse, error) {
	properties, err := u.propertyRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all properties: %+v", err)
		return nil, unexpected(err)
	}

	return &dto.PropertyListResponse{
		Properties: converter.PropertiesToResponses(properties),
		Total:      len(properties),
	}, nil
}

func (u *propertyUsecase) GetProperty(ctx context.Context, id uint) (*dto.PropertyResponse, error) {
	property, err := u.propertyRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find property: %+v", err)
		return nil, unexpected(err)
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	return converter.PropertyToResponse(property), nil
}

func (u *propertyUsecase) UpdateProperty(ctx context.Context, id uint, req *dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	constructionDate, err := parseOptionalDate(req.ConstructionDate)
	if err != nil {
		return nil, errInvalidConstructionDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	property, err := u.propertyRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find property: %+v", err)
		return nil, unexpected(err)
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	oldValue := converter.PropertyToResponse(property)

	if req.Name != nil {
		property.Name = *req.Name
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.Value != nil {
		property.Value = req.Value.Round(2)
	}
	if req.Description != nil {
		property.Description = req.Description
	}
	if constructionDate != nil {
		property.ConstructionDate = constructionDate
	}

	if err := u.propertyRepo.Update(tx, property); err != nil {
		u.log.Warnf("Failed to update property: %+v", err)
		return nil, unexpected(err)
	}

	result := converter.PropertyToResponse(property)
	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionPropertyUpdate, "property", id, oldValue, result); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, unexpected(err)
	}

	return result, nil
}

// DeleteProperty refuses to remove a property that appointments still point to.
func (u *propertyUsecase) DeleteProperty(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	property, err := u.propertyRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find property: %+v", err)
		return unexpected(err)
	}
	if property == nil {
		return ErrPropertyNotFound
	}
	oldValue := converter.PropertyToResponse(property)

	affectedRows, err := u.propertyRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed delete property: %+v", err)
		if isForeignKeyError(err) {
			return ErrPropertyInUse
		}
		return unexpected(err)
	}
	if affectedRows == 0 {
		return ErrPropertyNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionPropertyDelete, "property", id, oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return unexpected(err)
	}

	return nil
}
