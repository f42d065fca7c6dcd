package usecase

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const appointmentSheet = "Consultas"

var appointmentExportHeader = []interface{}{
	"ID", "Data/Hora", "Cliente", "CPF", "Atendente", "Especialidade", "Imóvel", "Endereço", "Valor", "Motivo",
}

// ExportAppointments renders the ordered appointment listing as an xlsx workbook.
// Date-times are written in the configured location.
func (u *appointmentUsecase) ExportAppointments(ctx context.Context) ([]byte, error) {
	list, err := u.GetAllAppointments(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), appointmentSheet); err != nil {
		u.log.Warnf("Failed to prepare export sheet: %+v", err)
		return nil, unexpected(err)
	}

	if err := f.SetSheetRow(appointmentSheet, "A1", &appointmentExportHeader); err != nil {
		u.log.Warnf("Failed to write export header: %+v", err)
		return nil, unexpected(err)
	}

	for i, a := range list.Appointments {
		row := []interface{}{
			a.ID,
			a.ScheduledAt.In(u.location).Format("02/01/2006 15:04"),
			a.Client.Name,
			a.Client.NationalID,
			a.Staff.Name,
			a.Staff.Specialty,
			"", "", "", "",
		}
		if a.Property != nil {
			value, _ := a.Property.Value.Float64()
			row[6] = a.Property.Name
			row[7] = a.Property.Address
			row[8] = value
		}
		if a.Reason != nil {
			row[9] = *a.Reason
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, unexpected(err)
		}
		if err := f.SetSheetRow(appointmentSheet, cell, &row); err != nil {
			u.log.Warnf("Failed to write export row: %+v", err)
			return nil, unexpected(err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		u.log.Warnf("Failed to render export: %+v", err)
		return nil, unexpected(fmt.Errorf("write workbook: %w", err))
	}

	return buf.Bytes(), nil
}
