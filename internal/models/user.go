package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User owns contacts. Token holds the current opaque session token, nil when logged out.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	Username  string    `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Token     *string   `gorm:"size:100;index" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Contacts  []Contact `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (User) TableName() string {
	return "users"
}
