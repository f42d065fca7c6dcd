package usecase

import (
	"context"

	"property-backoffice/internal/converter"
	"property-backoffice/internal/delivery/dto"
	"property-backoffice/internal/domain/entity"
	"property-backoffice/internal/domain/repository"
	"property-backoffice/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type StaffUsecase interface {
	CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error)
	GetAllStaff(ctx context.Context) (*dto.StaffListResponse, error)
	GetStaff(ctx context.Context, id uint) (*dto.StaffResponse, error)
	UpdateStaff(ctx context.Context, id uint, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error)
	DeleteStaff(ctx context.Context, id uint) error
}

type staffUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	staffRepo    repository.StaffRepository
	auditService service.AuditService
}

func NewStaffUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	staffRepo repository.StaffRepository,
	auditService service.AuditService,
) StaffUsecase {
	return &staffUsecase{
		db:           db,
		log:          log,
		staffRepo:    staffRepo,
		auditService: auditService,
	}
}

func (u *staffUsecase) CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	staff := &entity.Staff{
		Name:        req.Name,
		Email:       req.Email,
		Specialty:   req.Specialty,
		LicenseCode: req.LicenseCode,
		Phone:       req.Phone,
	}
	if err := u.staffRepo.Create(tx, staff); err != nil {
		u.log.Warnf("Failed to create staff: %+v", err)
		if isDuplicateKeyError(err) {
			return nil, ErrStaffAlreadyExists
		}
		return nil, unexpected(err)
	}

	result := converter.StaffToResponse(staff)
	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionStaffCreate, "staff", staff.ID, result); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, unexpected(err)
	}

	return result, nil
}

func (u *staffUsecase) GetAllStaff(ctx context.Context) (*dto.StaffListResponse, error) {
	members, err := u.staffRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all staff: %+v", err)
		return nil, unexpected(err)
	}

	return &dto.StaffListResponse{
		Staff: converter.StaffListToResponses(members),
		Total: len(members),
	}, nil
}

func (u *staffUsecase) GetStaff(ctx context.Context, id uint) (*dto.StaffResponse, error) {
	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return nil, unexpected(err)
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	return converter.StaffToResponse(staff), nil
}

func (u *staffUsecase) UpdateStaff(ctx context.Context, id uint, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	staff, err := u.staffRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return nil, unexpected(err)
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}
	oldValue := converter.StaffToResponse(staff)

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	if req.Specialty != nil {
		staff.Specialty = *req.Specialty
	}
	if req.LicenseCode != nil {
		staff.LicenseCode = req.LicenseCode
	}
	if req.Phone != nil {
		staff.Phone = req.Phone
	}

	if err := u.staffRepo.Update(tx, staff); err != nil {
		u.log.Warnf("Failed to update staff: %+v", err)
		if isDuplicateKeyError(err) {
			return nil, ErrStaffAlreadyExists
		}
		return nil, unexpected(err)
	}

	result := converter.StaffToResponse(staff)
	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionStaffUpdate, "staff", id, oldValue, result); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, unexpected(err)
	}

	return result, nil
}

func (u *staffUsecase) DeleteStaff(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	staff, err := u.staffRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return unexpected(err)
	}
	if staff == nil {
		return ErrStaffNotFound
	}
	oldValue := converter.StaffToResponse(staff)

	affectedRows, err := u.staffRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed delete staff: %+v", err)
		if isForeignKeyError(err) {
			return ErrStaffInUse
		}
		return unexpected(err)
	}
	if affectedRows == 0 {
		return ErrStaffNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionStaffDelete, "staff", id, oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return unexpected(err)
	}

	return nil
}
