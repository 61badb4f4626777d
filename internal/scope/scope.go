package scope

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy returns a GORM scope that filters contacts by their owning user.
func OwnedBy(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// InContact returns a GORM scope that filters addresses by their owning contact.
func InContact(contactID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("contact_id = ?", contactID)
	}
}
