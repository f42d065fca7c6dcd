package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Client is a customer of the agency. Password holds a bcrypt hash.
type Client struct {
	ID         uint           `gorm:"primaryKey"`
	Name       string         `gorm:"type:varchar(100);not null"`
	Email      string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password   string         `gorm:"type:varchar(255);not null"`
	Phone      *string        `gorm:"type:varchar(20)"`
	NationalID string         `gorm:"column:national_id;type:varchar(14);not null;uniqueIndex"`
	BirthDate  datatypes.Date `gorm:"not null"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (Client) TableName() string {
	return "clients"
}
