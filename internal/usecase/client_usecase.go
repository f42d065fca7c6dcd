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
	"gorm.io/gorm"
)

type ClientUsecase interface {
	CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetAllClients(ctx context.Context) (*dto.ClientListResponse, error)
	GetClient(ctx context.Context, id uint) (*dto.ClientResponse, error)
	UpdateClient(ctx context.Context, id uint, req *dto.UpdateClientRequest) (*dto.ClientResponse, error)
	DeleteClient(ctx context.Context, id uint) error
}

type clientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	clientRepo   repository.ClientRepository
	auditService service.AuditService
}

func NewClientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clientRepo repository.ClientRepository,
	auditService service.AuditService,
) ClientUsecase {
	return &clientUsecase{
		db:           db,
		log:          log,
		clientRepo:   clientRepo,
		auditService: auditService,
	}
}

var errInvalidBirthDate = apperror.Validation("Invalid birth date", map[string]string{
	"dataNascimento": "dataNascimento must be a valid date (2006-01-02)",
})

func (u *clientUsecase) CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return nil, errInvalidBirthDate
	}

	// Hash password
	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	client := &entity.Client{
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashedPassword,
		Phone:      req.Phone,
		NationalID: req.NationalID,
		BirthDate:  birthDate,
	}
	if err := u.clientRepo.Create(tx, client); err != nil {
		u.log.Warnf("Failed to create client: %+v", err)
		if isDuplicateKeyError(err) {
			return nil, ErrClientAlreadyExists
		}
		return nil, unexpected(err)
	}

	result := converter.ClientToResponse(client)
	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionClientCreate, "client", client.ID, result); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, unexpected(err)
	}

	return result, nil
}

func (u *clientUsecase) GetAllClients(ctx context.Context) (*dto.ClientListResponse, error) {
	clients, err := u.clientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all clients: %+v", err)
		return nil, unexpected(err)
	}

	return &dto.ClientListResponse{
		Clients: converter.ClientsToResponses(clients),
		Total:   len(clients),
	}, nil
}

func (u *clientUsecase) GetClient(ctx context.Context, id uint) (*dto.ClientResponse, error) {
	client, err := u.clientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find client: %+v", err)
		return nil, unexpected(err)
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	return converter.ClientToResponse(client), nil
}

func (u *clientUsecase) UpdateClient(ctx context.Context, id uint, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	client, err := u.clientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find client: %+v", err)
		return nil, unexpected(err)
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	oldValue := converter.ClientToResponse(client)

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = req.Phone
	}
	if req.NationalID != nil {
		client.NationalID = *req.NationalID
	}
	if req.BirthDate != nil {
		birthDate, err := parseDate(*req.BirthDate)
		if err != nil {
			return nil, errInvalidBirthDate
		}
		client.BirthDate = birthDate
	}
	if req.Password != nil {
		hashedPassword, err := hashPassword(*req.Password)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		client.Password = hashedPassword
	}

	if err := u.clientRepo.Update(tx, client); err != nil {
		u.log.Warnf("Failed to update client: %+v", err)
		if isDuplicateKeyError(err) {
			return nil, ErrClientAlreadyExists
		}
		return nil, unexpected(err)
	}

	result := converter.ClientToResponse(client)
	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionClientUpdate, "client", id, oldValue, result); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, unexpected(err)
	}

	return result, nil
}

func (u *clientUsecase) DeleteClient(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	client, err := u.clientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find client: %+v", err)
		return unexpected(err)
	}
	if client == nil {
		return ErrClientNotFound
	}
	oldValue := converter.ClientToResponse(client)

	affectedRows, err := u.clientRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed delete client: %+v", err)
		if isForeignKeyError(err) {
			return ErrClientInUse
		}
		return unexpected(err)
	}
	if affectedRows == 0 {
		return ErrClientNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionClientDelete, "client", id, oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return unexpected(err)
	}

	return nil
}
