package models

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	FirstName string    `gorm:"size:100;not null" json:"first_name"`
	LastName  string    `gorm:"size:100" json:"last_name"`
	Email     string    `gorm:"size:200;index" json:"email"`
	Phone     string    `gorm:"size:20;index" json:"phone"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Addresses []Address `gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Contact) TableName() string {
	return "contacts"
}
