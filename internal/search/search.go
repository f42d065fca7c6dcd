// Package search filters listings that were already fetched from the API.
package search

import (
	"strings"
	"time"

	"property-backoffice/internal/delivery/dto"
)

// Period names an appointment date filter.
type Period string

const (
	PeriodAll    Period = ""
	PeriodToday  Period = "hoje"
	PeriodWeek   Period = "semana"
	PeriodMonth  Period = "mes"
	PeriodPast   Period = "passadas"
	PeriodFuture Period = "futuras"
)

func normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

func matchesAny(term string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func filter[T any](items []T, term string, fields func(T) []string) []T {
	term = normalize(term)
	if term == "" {
		return items
	}

	result := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAny(term, fields(item)...) {
			result = append(result, item)
		}
	}
	return result
}

// Appointments matches client name and CPF, staff name and specialty, and reason.
func Appointments(items []dto.AppointmentResponse, term string) []dto.AppointmentResponse {
	return filter(items, term, func(a dto.AppointmentResponse) []string {
		fields := []string{a.Client.Name, a.Client.NationalID, a.Staff.Name, a.Staff.Specialty}
		if a.Reason != nil {
			fields = append(fields, *a.Reason)
		}
		return fields
	})
}

func Properties(items []dto.PropertyResponse, term string) []dto.PropertyResponse {
	return filter(items, term, func(p dto.PropertyResponse) []string {
		return []string{p.Name, p.Address, p.Value.String()}
	})
}

func Clients(items []dto.ClientResponse, term string) []dto.ClientResponse {
	return filter(items, term, func(c dto.ClientResponse) []string {
		return []string{c.Name, c.Email, c.NationalID}
	})
}

func Staff(items []dto.StaffResponse, term string) []dto.StaffResponse {
	return filter(items, term, func(s dto.StaffResponse) []string {
		return []string{s.Name, s.Email, s.Specialty}
	})
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// InPeriod compares the calendar day of scheduledAt in loc with the day of now.
// An unknown period matches everything.
func InPeriod(scheduledAt time.Time, period Period, now time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	day := startOfDay(scheduledAt, loc)
	today := startOfDay(now, loc)

	switch period {
	case PeriodToday:
		return day.Equal(today)
	case PeriodWeek:
		return !day.Before(today) && !day.After(today.AddDate(0, 0, 7))
	case PeriodMonth:
		return day.Year() == today.Year() && day.Month() == today.Month()
	case PeriodPast:
		return day.Before(today)
	case PeriodFuture:
		return day.After(today)
	default:
		return true
	}
}

// AppointmentsInPeriod keeps the appointments scheduled within period.
func AppointmentsInPeriod(items []dto.AppointmentResponse, period Period, now time.Time, loc *time.Location) []dto.AppointmentResponse {
	if period == PeriodAll {
		return items
	}

	result := make([]dto.AppointmentResponse, 0, len(items))
	for _, a := range items {
		if InPeriod(a.ScheduledAt.Time, period, now, loc) {
			result = append(result, a)
		}
	}
	return result
}
