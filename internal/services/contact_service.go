package services

import (
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/config"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/models"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/scope"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/validation"
	"gorm.io/gorm"
)

type ContactService struct {
	db       *gorm.DB
	pageSize int
}

func NewContactService(db *gorm.DB, cfg *config.Config) *ContactService {
	return &ContactService{db: db, pageSize: cfg.ContactPageSize}
}

func (s *ContactService) Create(user *models.User, req *dto.ContactRequest) (*models.Contact, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	contact := models.Contact{
		UserID:    user.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.db.Create(&contact).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return &contact, nil
}

// Resolve loads a contact only if user owns it. A contact owned by someone
// else is reported exactly like a missing one.
func (s *ContactService) Resolve(user *models.User, contactID uint) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.Scopes(scope.OwnedBy(user.ID)).First(&contact, "id = ?", contactID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}
	return &contact, nil
}

func (s *ContactService) Get(user *models.User, contactID uint) (*models.Contact, error) {
	return s.Resolve(user, contactID)
}

// Update replaces every mutable field of the contact.
func (s *ContactService) Update(user *models.User, contactID uint, req *dto.ContactRequest) (*models.Contact, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	contact, err := s.Resolve(user, contactID)
	if err != nil {
		return nil, err
	}

	contact.FirstName = req.FirstName
	contact.LastName = req.LastName
	contact.Email = req.Email
	contact.Phone = req.Phone

	if err := s.db.Model(contact).Select("first_name", "last_name", "email", "phone").Updates(contact).Error; err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return contact, nil
}

// Delete removes the contact and every address it owns.
func (s *ContactService) Delete(user *models.User, contactID uint) error {
	contact, err := s.Resolve(user, contactID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(scope.InContact(contact.ID)).Delete(&models.Address{}).Error; err != nil {
			return fmt.Errorf("failed to delete addresses: %w", err)
		}
		if err := tx.Delete(contact).Error; err != nil {
			return fmt.Errorf("failed to delete contact: %w", err)
		}
		return nil
	})
}
