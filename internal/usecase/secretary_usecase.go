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

type SecretaryUsecase interface {
	CreateSecretary(ctx context.Context, req *dto.CreateSecretaryRequest) (*dto.SecretaryResponse, error)
	GetAllSecretaries(ctx context.Context) (*dto.SecretaryListResponse, error)
	GetSecretary(ctx context.Context, id uint) (*dto.SecretaryResponse, error)
	UpdateSecretary(ctx context.Context, id uint, req *dto.UpdateSecretaryRequest) (*dto.SecretaryResponse, error)
	DeleteSecretary(ctx context.Context, id uint) error
}

type secretaryUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	secretaryRepo repository.SecretaryRepository
	auditService  service.AuditService
	tokenStore    service.TokenStore
}

func NewSecretaryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	secretaryRepo repository.SecretaryRepository,
	auditService service.AuditService,
	tokenStore service.TokenStore,
) SecretaryUsecase {
	return &secretaryUsecase{
		db:            db,
		log:           log,
		secretaryRepo: secretaryRepo,
		auditService:  auditService,
		tokenStore:    tokenStore,
	}
}

func (u *secretaryUsecase) CreateSecretary(ctx context.Context, req *dto.CreateSecretaryRequest) (*dto.SecretaryResponse, error) {
	// Hash password
	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	secretary := &entity.Secretary{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := u.secretaryRepo.Create(tx, secretary); err != nil {
		u.log.Warnf("Failed to create secretary: %+v", err)
		if isDuplicateKeyError(err) {
			return nil, ErrSecretaryAlreadyExists
		}
		return nil, unexpected(err)
	}

	result := converter.SecretaryToResponse(secretary)
	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionSecretaryCreate, "secretary", secretary.ID, result); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, unexpected(err)
	}

	return result, nil
}

func (u *secretaryUsecase) GetAllSecretaries(ctx context.Context) (*dto.SecretaryListResponse, error) {
	secretaries, err := u.secretaryRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all secretaries: %+v", err)
		return nil, unexpected(err)
	}

	return &dto.SecretaryListResponse{
		Secretaries: converter.SecretariesToResponses(secretaries),
		Total:       len(secretaries),
	}, nil
}

func (u *secretaryUsecase) GetSecretary(ctx context.Context, id uint) (*dto.SecretaryResponse, error) {
	secretary, err := u.secretaryRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find secretary: %+v", err)
		return nil, unexpected(err)
	}
	if secretary == nil {
		return nil, ErrSecretaryNotFound
	}

	return converter.SecretaryToResponse(secretary), nil
}

// UpdateSecretary revokes every session of the secretary when the password changes.
func (u *secretaryUsecase) UpdateSecretary(ctx context.Context, id uint, req *dto.UpdateSecretaryRequest) (*dto.SecretaryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	secretary, err := u.secretaryRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find secretary: %+v", err)
		return nil, unexpected(err)
	}
	if secretary == nil {
		return nil, ErrSecretaryNotFound
	}
	oldValue := converter.SecretaryToResponse(secretary)

	if req.Name != nil {
		secretary.Name = *req.Name
	}
	if req.Email != nil {
		secretary.Email = *req.Email
	}
	if req.Password != nil {
		hashedPassword, err := hashPassword(*req.Password)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		secretary.Password = hashedPassword
	}

	if err := u.secretaryRepo.Update(tx, secretary); err != nil {
		u.log.Warnf("Failed to update secretary: %+v", err)
		if isDuplicateKeyError(err) {
			return nil, ErrSecretaryAlreadyExists
		}
		return nil, unexpected(err)
	}

	result := converter.SecretaryToResponse(secretary)
	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionSecretaryUpdate, "secretary", id, oldValue, result); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, unexpected(err)
	}

	if req.Password != nil {
		u.revokeSessions(ctx, id)
	}

	return result, nil
}

func (u *secretaryUsecase) DeleteSecretary(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	secretary, err := u.secretaryRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find secretary: %+v", err)
		return unexpected(err)
	}
	if secretary == nil {
		return ErrSecretaryNotFound
	}
	oldValue := converter.SecretaryToResponse(secretary)

	affectedRows, err := u.secretaryRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed delete secretary: %+v", err)
		return unexpected(err)
	}
	if affectedRows == 0 {
		return ErrSecretaryNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionSecretaryDelete, "secretary", id, oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return unexpected(err)
	}

	u.revokeSessions(ctx, id)

	return nil
}

func (u *secretaryUsecase) revokeSessions(ctx context.Context, id uint) {
	if u.tokenStore == nil {
		return
	}
	if err := u.tokenStore.RevokeAll(ctx, id); err != nil {
		u.log.Warnf("Failed to revoke tokens of secretary %d: %+v", id, err)
	}
}
