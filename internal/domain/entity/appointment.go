package entity

import "time"

// Appointment links a client and a staff member at a date-time, optionally
// about a property. ScheduledAt is stored in UTC.
type Appointment struct {
	ID          uint      `gorm:"primaryKey"`
	ScheduledAt time.Time `gorm:"not null;index"`
	ClientID    uint      `gorm:"not null;index"`
	StaffID     uint      `gorm:"not null;index"`
	PropertyID  *uint     `gorm:"index"`
	Reason      *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	// Relationships. Deletes default to NO ACTION so a referenced row is
	// reported as a foreign key violation by every driver.
	Client   Client    `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE"`
	Staff    Staff     `gorm:"foreignKey:StaffID;constraint:OnUpdate:CASCADE"`
	Property *Property `gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE"`
}

func (Appointment) TableName() string {
	return "appointments"
}
