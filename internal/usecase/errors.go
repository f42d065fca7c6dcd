package usecase

import (
	"context"
	"errors"

	"property-backoffice/internal/delivery/http/middleware"
	"property-backoffice/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = apperror.NotFound("appointment", "Appointment not found")
	ErrClientNotFound      = apperror.NotFound("client", "Client not found")
	ErrStaffNotFound       = apperror.NotFound("staff", "Staff not found")
	ErrPropertyNotFound    = apperror.NotFound("property", "Property not found")
	ErrSecretaryNotFound   = apperror.NotFound("secretary", "Secretary not found")
	ErrAuditLogNotFound    = apperror.NotFound("audit_log", "Audit log not found")

	ErrInvalidAppointmentDate = apperror.Validation("Invalid appointment date", map[string]string{
		"dataHora": "dataHora must be a valid date-time",
	})
	ErrPropertyCannotBeCleared = apperror.Validation("Property is required", map[string]string{
		"imovelId": "imovelId cannot be null",
	})
	ErrReasonTooLong = apperror.Validation("Reason is too long", map[string]string{
		"motivo": "motivo must be at most 500 characters",
	})
	ErrPasswordTooLong = apperror.Validation("Password is too long", map[string]string{
		"senha": "senha must be at most 72 bytes",
	})
	ErrInvalidPropertyReference = apperror.Validation("Invalid property reference", map[string]string{
		"imovelId": "imovelId must be greater than 0",
	})

	ErrClientAlreadyExists    = apperror.Conflict("client", "A client with this email or CPF already exists")
	ErrStaffAlreadyExists     = apperror.Conflict("staff", "A staff member with this email or CRM already exists")
	ErrSecretaryAlreadyExists = apperror.Conflict("secretary", "A secretary with this email already exists")
	ErrClientInUse            = apperror.Conflict("client", "Client has appointments and cannot be deleted")
	ErrStaffInUse             = apperror.Conflict("staff", "Staff member has appointments and cannot be deleted")
	ErrPropertyInUse          = apperror.Conflict("property", "Property has appointments and cannot be deleted")
	ErrAppointmentReference   = apperror.Conflict("appointment", "A referenced record no longer exists")

	ErrInvalidCredentials = apperror.Unauthorized("Invalid email or password")
	ErrInvalidToken       = apperror.Unauthorized("Invalid or expired token")
	ErrTokenRevoked       = apperror.Unauthorized("Token has been revoked")
)

// isDuplicateKeyError reports a unique constraint violation, either already
// translated by gorm or as a raw PostgreSQL error (code 23505).
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyError reports a foreign key violation, either already
// translated by gorm or as a raw PostgreSQL error (code 23503).
func isForeignKeyError(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// unexpected wraps a store failure that has no domain meaning.
func unexpected(err error) error {
	if _, ok := apperror.As(err); ok {
		return err
	}
	return apperror.Unexpected(err)
}

// actorFromContext returns the logged-in secretary for audit entries, if any.
func actorFromContext(ctx context.Context) *uint {
	secretaryID, ok := middleware.GetSecretaryIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &secretaryID
}
