package entity

import "time"

// Staff is an agent who attends appointments.
type Staff struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Specialty   string    `gorm:"type:varchar(100);not null"`
	LicenseCode *string   `gorm:"type:varchar(30);uniqueIndex"`
	Phone       *string   `gorm:"type:varchar(20)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Staff) TableName() string {
	return "staff"
}
