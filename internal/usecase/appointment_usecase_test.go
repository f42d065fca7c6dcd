package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"property-backoffice/internal/delivery/dto"
	"property-backoffice/internal/delivery/http/middleware"
	"property-backoffice/internal/domain/entity"
	"property-backoffice/internal/repository"
	"property-backoffice/pkg/apperror"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type appointmentFixture struct {
	db       *gorm.DB
	usecase  AppointmentUsecase
	client   *entity.Client
	staff    *entity.Staff
	property *entity.Property
}

func newAppointmentFixture(t *testing.T, policy PropertyPolicy) *appointmentFixture {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	return &appointmentFixture{
		db: db,
		usecase: NewAppointmentUsecase(
			db,
			log,
			repository.NewAppointmentRepository(),
			repository.NewClientRepository(),
			repository.NewStaffRepository(),
			repository.NewPropertyRepository(),
			newTestAuditService(log),
			AppointmentOptions{PropertyPolicy: policy, Location: saoPaulo},
		),
		client:   seedClient(t, db, "Maria Souza", "12345678901"),
		staff:    seedStaff(t, db, "Carlos", "Vendas"),
		property: seedProperty(t, db, "Casa Jardim"),
	}
}

func (f *appointmentFixture) request(scheduledAt string) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		ScheduledAt: scheduledAt,
		ClientID:    f.client.ID,
		StaffID:     f.staff.ID,
		PropertyID:  &f.property.ID,
	}
}

func uintPtr(v uint) *uint { return &v }

func TestCreateAppointmentRoundTripsUTCInstant(t *testing.T) {
	f := newAppointmentFixture(t, PropertyOptional)
	ctx := context.Background()

	created, err := f.usecase.CreateAppointment(ctx, f.request("2025-12-25T23:00:00.000Z"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	want := time.Date(2025, 12, 25, 23, 0, 0, 0, time.UTC)
	if !created.ScheduledAt.Equal(want) {
		t.Fatalf("created dataHora = %s, want %s", created.ScheduledAt, want)
	}

	got, err := f.usecase.GetAppointment(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.ScheduledAt.Equal(want) {
		t.Fatalf("stored dataHora = %s, want %s", got.ScheduledAt, want)
	}
	if got.Client.Name != "Maria Souza" || got.Staff.Specialty != "Vendas" {
		t.Fatalf("unexpected summaries: %+v %+v", got.Client, got.Staff)
	}
	if got.Property == nil || got.Property.Name != "Casa Jardim" {
		t.Fatalf("unexpected property summary: %+v", got.Property)
	}
}

func TestCreateAppointmentReadsLocalTimeInConfiguredZone(t *testing.T) {
	f := newAppointmentFixture(t, PropertyOptional)

	created, err := f.usecase.CreateAppointment(context.Background(), f.request("2025-03-10T09:30"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Sao Paulo has no DST since 2019: UTC-3.
	want := time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)
	if !created.ScheduledAt.Equal(want) {
		t.Fatalf("dataHora = %s, want %s", created.ScheduledAt, want)
	}
}

func TestCreateAppointmentRejectsUnknownReferences(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *appointmentFixture, req *dto.CreateAppointmentRequest)
		wantErr error
	}{
		{
			name:    "invalid date",
			mutate:  func(f *appointmentFixture, req *dto.CreateAppointmentRequest) { req.ScheduledAt = "25/12/2025" },
			wantErr: ErrInvalidAppointmentDate,
		},
		{
			name:    "unknown client",
			mutate:  func(f *appointmentFixture, req *dto.CreateAppointmentRequest) { req.ClientID = 999 },
			wantErr: ErrClientNotFound,
		},
		{
			name:    "unknown staff",
			mutate:  func(f *appointmentFixture, req *dto.CreateAppointmentRequest) { req.StaffID = 999 },
			wantErr: ErrStaffNotFound,
		},
		{
			name:    "unknown property",
			mutate:  func(f *appointmentFixture, req *dto.CreateAppointmentRequest) { req.PropertyID = uintPtr(999) },
			wantErr: ErrPropertyNotFound,
		},
		{
			name:    "zero property",
			mutate:  func(f *appointmentFixture, req *dto.CreateAppointmentRequest) { req.PropertyID = uintPtr(0) },
			wantErr: ErrInvalidPropertyReference,
		},
		{
			name: "client checked before staff",
			mutate: func(f *appointmentFixture, req *dto.CreateAppointmentRequest) {
				req.ClientID = 999
				req.StaffID = 999
			},
			wantErr: ErrClientNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAppointmentFixture(t, PropertyOptional)
			req := f.request("2025-12-25T23:00:00Z")
			tt.mutate(f, req)

			_, err := f.usecase.CreateAppointment(context.Background(), req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if n := countRows(t, f.db, &entity.Appointment{}); n != 0 {
				t.Fatalf("appointments = %d, want 0", n)
			}
		})
	}
}

func TestCreateAppointmentWithoutProperty(t *testing.T) {
	t.Run("optional stores null", func(t *testing.T) {
		f := newAppointmentFixture(t, PropertyOptional)
		req := f.request("2025-12-25T23:00:00Z")
		req.PropertyID = nil

		created, err := f.usecase.CreateAppointment(context.Background(), req)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.PropertyID != nil || created.Property != nil {
			t.Fatalf("expected no property, got %v %+v", created.PropertyID, created.Property)
		}
	})

	t.Run("required rejects", func(t *testing.T) {
		f := newAppointmentFixture(t, PropertyRequired)
		req := f.request("2025-12-25T23:00:00Z")
		req.PropertyID = nil

		_, err := f.usecase.CreateAppointment(context.Background(), req)
		if !errors.Is(err, ErrPropertyNotFound) {
			t.Fatalf("error = %v, want %v", err, ErrPropertyNotFound)
		}
		if n := countRows(t, f.db, &entity.Appointment{}); n != 0 {
			t.Fatalf("appointments = %d, want 0", n)
		}
	})
}

func TestUpdateAppointmentProperty(t *testing.T) {
	t.Run("null clears under optional policy", func(t *testing.T) {
		f := newAppointmentFixture(t, PropertyOptional)
		ctx := context.Background()
		created, err := f.usecase.CreateAppointment(ctx, f.request("2025-12-25T23:00:00Z"))
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		updated, err := f.usecase.UpdateAppointment(ctx, created.ID, &dto.UpdateAppointmentRequest{
			PropertyID: dto.Null[uint](),
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.PropertyID != nil || updated.Property != nil {
			t.Fatalf("property not cleared: %v %+v", updated.PropertyID, updated.Property)
		}
		if !updated.ScheduledAt.Equal(created.ScheduledAt.Time) {
			t.Fatalf("dataHora changed: %s", updated.ScheduledAt)
		}
	})

	t.Run("null rejected under required policy", func(t *testing.T) {
		f := newAppointmentFixture(t, PropertyRequired)
		ctx := context.Background()
		created, err := f.usecase.CreateAppointment(ctx, f.request("2025-12-25T23:00:00Z"))
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		_, err = f.usecase.UpdateAppointment(ctx, created.ID, &dto.UpdateAppointmentRequest{
			PropertyID: dto.Null[uint](),
		})
		if !errors.Is(err, ErrPropertyCannotBeCleared) {
			t.Fatalf("error = %v, want %v", err, ErrPropertyCannotBeCleared)
		}
		if apperror.KindOf(err) != apperror.KindValidation {
			t.Fatalf("kind = %v", apperror.KindOf(err))
		}
	})

	t.Run("unknown property keeps row", func(t *testing.T) {
		f := newAppointmentFixture(t, PropertyOptional)
		ctx := context.Background()
		created, err := f.usecase.CreateAppointment(ctx, f.request("2025-12-25T23:00:00Z"))
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		_, err = f.usecase.UpdateAppointment(ctx, created.ID, &dto.UpdateAppointmentRequest{
			PropertyID: dto.Some[uint](999),
		})
		if !errors.Is(err, ErrPropertyNotFound) {
			t.Fatalf("error = %v, want %v", err, ErrPropertyNotFound)
		}

		got, err := f.usecase.GetAppointment(ctx, created.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.PropertyID == nil || *got.PropertyID != f.property.ID {
			t.Fatalf("property changed: %v", got.PropertyID)
		}
	})
}

func TestUpdateAppointmentFields(t *testing.T) {
	f := newAppointmentFixture(t, PropertyOptional)
	ctx := context.Background()
	created, err := f.usecase.CreateAppointment(ctx, f.request("2025-12-25T23:00:00Z"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newDate := "2026-01-05T14:00:00Z"
	updated, err := f.usecase.UpdateAppointment(ctx, created.ID, &dto.UpdateAppointmentRequest{
		ScheduledAt: &newDate,
		Reason:      dto.Some("Visita ao imóvel"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.ScheduledAt.Equal(time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC)) {
		t.Fatalf("dataHora = %s", updated.ScheduledAt)
	}
	if updated.Reason == nil || *updated.Reason != "Visita ao imóvel" {
		t.Fatalf("motivo = %v", updated.Reason)
	}
	if updated.PropertyID == nil {
		t.Fatalf("omitted imovelId must keep the property")
	}

	if _, err := f.usecase.UpdateAppointment(ctx, 999, &dto.UpdateAppointmentRequest{ScheduledAt: &newDate}); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("error = %v, want %v", err, ErrAppointmentNotFound)
	}

	_, err = f.usecase.UpdateAppointment(ctx, created.ID, &dto.UpdateAppointmentRequest{
		Reason: dto.Some(strings.Repeat("a", maxReasonLength+1)),
	})
	if !errors.Is(err, ErrReasonTooLong) {
		t.Fatalf("error = %v, want %v", err, ErrReasonTooLong)
	}
	got, err := f.usecase.GetAppointment(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Reason == nil || *got.Reason != "Visita ao imóvel" {
		t.Fatalf("motivo changed: %v", got.Reason)
	}

	atLimit := strings.Repeat("é", maxReasonLength)
	if _, err := f.usecase.UpdateAppointment(ctx, created.ID, &dto.UpdateAppointmentRequest{Reason: dto.Some(atLimit)}); err != nil {
		t.Fatalf("reason at the limit: %v", err)
	}
}

func TestGetAllAppointmentsOrderedBySchedule(t *testing.T) {
	f := newAppointmentFixture(t, PropertyOptional)
	ctx := context.Background()

	dates := []string{"2025-12-27T10:00:00Z", "2025-12-25T10:00:00Z", "2025-12-26T10:00:00Z"}
	for _, d := range dates {
		if _, err := f.usecase.CreateAppointment(ctx, f.request(d)); err != nil {
			t.Fatalf("create %s: %v", d, err)
		}
	}

	list, err := f.usecase.GetAllAppointments(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.Total != 3 || len(list.Appointments) != 3 {
		t.Fatalf("total = %d", list.Total)
	}
	for i := 1; i < len(list.Appointments); i++ {
		if list.Appointments[i].ScheduledAt.Before(list.Appointments[i-1].ScheduledAt.Time) {
			t.Fatalf("listing not ordered: %v", list.Appointments)
		}
	}
}

func TestDeleteAppointmentReturnsDetail(t *testing.T) {
	f := newAppointmentFixture(t, PropertyOptional)
	ctx := context.Background()
	created, err := f.usecase.CreateAppointment(ctx, f.request("2025-12-25T23:00:00Z"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := f.usecase.DeleteAppointment(ctx, created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.Client.Email != f.client.Email || deleted.Property == nil {
		t.Fatalf("unexpected detail: %+v", deleted)
	}

	if _, err := f.usecase.GetAppointment(ctx, created.ID); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("error = %v, want %v", err, ErrAppointmentNotFound)
	}
	if _, err := f.usecase.DeleteAppointment(ctx, created.ID); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("second delete error = %v", err)
	}
}

func TestAppointmentChangesAreAudited(t *testing.T) {
	f := newAppointmentFixture(t, PropertyOptional)
	secretary := seedSecretary(t, f.db, "ana@imobiliaria.com", "segredo123")
	ctx := middleware.WithSecretary(context.Background(), secretary.ID, secretary.Email, "token")

	if _, err := f.usecase.CreateAppointment(ctx, f.request("2025-12-25T23:00:00Z")); err != nil {
		t.Fatalf("create: %v", err)
	}

	var logs []entity.AuditLog
	if err := f.db.Find(&logs).Error; err != nil {
		t.Fatalf("find logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("audit logs = %d, want 1", len(logs))
	}
	if logs[0].Action != entity.AuditActionAppointmentCreate {
		t.Fatalf("action = %s", logs[0].Action)
	}
	if logs[0].SecretaryID == nil || *logs[0].SecretaryID != secretary.ID {
		t.Fatalf("actor = %v", logs[0].SecretaryID)
	}
}

func TestExportAppointments(t *testing.T) {
	f := newAppointmentFixture(t, PropertyOptional)
	ctx := context.Background()
	if _, err := f.usecase.CreateAppointment(ctx, f.request("2025-12-25T23:00:00Z")); err != nil {
		t.Fatalf("create: %v", err)
	}

	data, err := f.usecase.ExportAppointments(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	book, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer book.Close()

	rows, err := book.GetRows(appointmentSheet)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	// 23:00 UTC is 20:00 in Sao Paulo.
	if rows[1][1] != "25/12/2025 20:00" || rows[1][2] != "Maria Souza" {
		t.Fatalf("unexpected row: %v", rows[1])
	}
}
