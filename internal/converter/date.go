package converter

import (
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

func formatOptionalDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := formatDate(*d)
	return &s
}
