package services

import (
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/models"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/scope"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/validation"
	"gorm.io/gorm"
)

// AddressService scopes every operation to a contact the caller owns. The
// contact is resolved before the request body is looked at.
type AddressService struct {
	db       *gorm.DB
	contacts *ContactService
}

func NewAddressService(db *gorm.DB, contacts *ContactService) *AddressService {
	return &AddressService{db: db, contacts: contacts}
}

func (s *AddressService) Create(user *models.User, contactID uint, req *dto.AddressRequest) (*models.Address, error) {
	contact, err := s.contacts.Resolve(user, contactID)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	address := models.Address{
		ContactID:  contact.ID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	if err := s.db.Create(&address).Error; err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}
	return &address, nil
}

func (s *AddressService) Get(user *models.User, contactID, addressID uint) (*models.Address, error) {
	contact, err := s.contacts.Resolve(user, contactID)
	if err != nil {
		return nil, err
	}
	return s.find(contact, addressID)
}

func (s *AddressService) List(user *models.User, contactID uint) ([]models.Address, error) {
	contact, err := s.contacts.Resolve(user, contactID)
	if err != nil {
		return nil, err
	}

	addresses := make([]models.Address, 0)
	if err := s.db.Scopes(scope.InContact(contact.ID)).Order("id ASC").Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}

func (s *AddressService) Update(user *models.User, contactID, addressID uint, req *dto.AddressRequest) (*models.Address, error) {
	contact, err := s.contacts.Resolve(user, contactID)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	address, err := s.find(contact, addressID)
	if err != nil {
		return nil, err
	}

	address.Street = req.Street
	address.City = req.City
	address.Province = req.Province
	address.Country = req.Country
	address.PostalCode = req.PostalCode

	err = s.db.Model(address).
		Select("street", "city", "province", "country", "postal_code").
		Updates(address).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update address: %w", err)
	}
	return address, nil
}

func (s *AddressService) Delete(user *models.User, contactID, addressID uint) error {
	contact, err := s.contacts.Resolve(user, contactID)
	if err != nil {
		return err
	}

	address, err := s.find(contact, addressID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(address).Error; err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	return nil
}

func (s *AddressService) find(contact *models.Contact, addressID uint) (*models.Address, error) {
	var address models.Address
	if err := s.db.Scopes(scope.InContact(contact.ID)).First(&address, "id = ?", addressID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to find address: %w", err)
	}
	return &address, nil
}
