package usecase

import (
	"context"
	"time"
	"unicode/utf8"

	"property-backoffice/internal/converter"
	"property-backoffice/internal/delivery/dto"
	"property-backoffice/internal/domain/entity"
	"property-backoffice/internal/domain/repository"
	"property-backoffice/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// maxReasonLength matches the motivo rule of CreateAppointmentRequest.
const maxReasonLength = 500

// PropertyPolicy decides whether an appointment must reference a property.
type PropertyPolicy string

const (
	// PropertyOptional stores NULL when no property is sent and validates it otherwise.
	PropertyOptional PropertyPolicy = "optional"
	// PropertyRequired rejects appointments without a property and never clears it.
	PropertyRequired PropertyPolicy = "required"
)

type AppointmentOptions struct {
	PropertyPolicy PropertyPolicy
	// Location is used for date-times sent without an offset.
	Location *time.Location
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id uint) (*dto.AppointmentDetailResponse, error)
	ExportAppointments(ctx context.Context) ([]byte, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	clientRepo      repository.ClientRepository
	staffRepo       repository.StaffRepository
	propertyRepo    repository.PropertyRepository
	auditService    service.AuditService
	policy          PropertyPolicy
	location        *time.Location
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	clientRepo repository.ClientRepository,
	staffRepo repository.StaffRepository,
	propertyRepo repository.PropertyRepository,
	auditService service.AuditService,
	opts AppointmentOptions,
) AppointmentUsecase {
	if opts.PropertyPolicy == "" {
		opts.PropertyPolicy = PropertyOptional
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		staffRepo:       staffRepo,
		propertyRepo:    propertyRepo,
		auditService:    auditService,
		policy:          opts.PropertyPolicy,
		location:        opts.Location,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	scheduledAt, err := parseDateTime(req.ScheduledAt, u.location)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	client, err := u.clientRepo.FindByID(tx, req.ClientID)
	if err != nil {
		u.log.Warnf("Failed to find client: %+v", err)
		return nil, unexpected(err)
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	staff, err := u.staffRepo.FindByID(tx, req.StaffID)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return nil, unexpected(err)
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	if req.PropertyID == nil {
		if u.policy == PropertyRequired {
			return nil, ErrPropertyNotFound
		}
	} else if err := u.ensurePropertyExists(tx, *req.PropertyID); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		ScheduledAt: scheduledAt,
		ClientID:    client.ID,
		StaffID:     staff.ID,
		PropertyID:  req.PropertyID,
		Reason:      req.Reason,
	}
	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		if isForeignKeyError(err) {
			return nil, ErrAppointmentReference
		}
		return nil, unexpected(err)
	}

	created, err := u.appointmentRepo.FindByID(tx, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to reload appointment: %+v", err)
		return nil, unexpected(err)
	}
	result := converter.AppointmentToResponse(created)

	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionAppointmentCreate, "appointment", appointment.ID, result); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, unexpected(err)
	}

	return result, nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, unexpected(err)
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, unexpected(err)
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	fields := make(map[string]interface{})

	if req.ScheduledAt != nil {
		scheduledAt, err := parseDateTime(*req.ScheduledAt, u.location)
		if err != nil {
			return nil, ErrInvalidAppointmentDate
		}
		fields["scheduled_at"] = scheduledAt
	}

	if req.Reason.Set {
		if req.Reason.Value != nil && utf8.RuneCountInString(*req.Reason.Value) > maxReasonLength {
			return nil, ErrReasonTooLong
		}
		fields["reason"] = req.Reason.Value
	}

	if req.PropertyID.IsNull() && u.policy == PropertyRequired {
		return nil, ErrPropertyCannotBeCleared
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, unexpected(err)
	}
	if existing == nil {
		return nil, ErrAppointmentNotFound
	}
	oldValue := converter.AppointmentToResponse(existing)

	if req.PropertyID.Set {
		if req.PropertyID.Value == nil {
			fields["property_id"] = nil
		} else {
			if err := u.ensurePropertyExists(tx, *req.PropertyID.Value); err != nil {
				return nil, err
			}
			fields["property_id"] = *req.PropertyID.Value
		}
	}

	if len(fields) == 0 {
		return oldValue, nil
	}

	if err := u.appointmentRepo.Update(tx, id, fields); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		if isForeignKeyError(err) {
			return nil, ErrAppointmentReference
		}
		return nil, unexpected(err)
	}

	updated, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload appointment: %+v", err)
		return nil, unexpected(err)
	}
	result := converter.AppointmentToResponse(updated)

	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionAppointmentUpdate, "appointment", id, oldValue, result); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, unexpected(err)
	}

	return result, nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uint) (*dto.AppointmentDetailResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindDetailByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, unexpected(err)
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	result := converter.AppointmentToDetailResponse(appointment)

	affectedRows, err := u.appointmentRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed delete appointment: %+v", err)
		return nil, unexpected(err)
	}
	if affectedRows == 0 {
		return nil, ErrAppointmentNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionAppointmentDelete, "appointment", id, result); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, unexpected(err)
	}

	return result, nil
}

func (u *appointmentUsecase) ensurePropertyExists(tx *gorm.DB, propertyID uint) error {
	if propertyID == 0 {
		return ErrInvalidPropertyReference
	}

	property, err := u.propertyRepo.FindByID(tx, propertyID)
	if err != nil {
		u.log.Warnf("Failed to find property: %+v", err)
		return unexpected(err)
	}
	if property == nil {
		return ErrPropertyNotFound
	}
	return nil
}
