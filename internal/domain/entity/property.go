package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Property struct {
	ID               uint            `gorm:"primaryKey"`
	Name             string          `gorm:"type:varchar(100);not null"`
	Address          string          `gorm:"type:varchar(255);not null"`
	Value            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description      *string         `gorm:"type:varchar(500)"`
	ConstructionDate *datatypes.Date
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (Property) TableName() string {
	return "properties"
}
