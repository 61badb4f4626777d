package services

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	users    *UserService
	contacts *ContactService
	addrs    *AddressService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := dbtest.Config()
	db := dbtest.New(t, cfg)
	contacts := NewContactService(db, cfg)
	return &fixture{
		db:       db,
		users:    NewUserService(db, cfg),
		contacts: contacts,
		addrs:    NewAddressService(db, contacts),
	}
}

// register creates a user and returns the stored row.
func (f *fixture) register(t *testing.T, username string) *models.User {
	t.Helper()
	_, err := f.users.Register(&dto.RegisterRequest{Username: username, Password: "rahasia", Name: username})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, f.db.Where("username = ?", username).First(&user).Error)
	return &user
}

func (f *fixture) contact(t *testing.T, owner *models.User, req dto.ContactRequest) *models.Contact {
	t.Helper()
	contact, err := f.contacts.Create(owner, &req)
	require.NoError(t, err)
	return contact
}

func (f *fixture) address(t *testing.T, owner *models.User, contactID uint) *models.Address {
	t.Helper()
	address, err := f.addrs.Create(owner, contactID, &dto.AddressRequest{
		Street:     "Jalan test",
		City:       "Kota test",
		Province:   "Provinsi test",
		Country:    "Indonesia",
		PostalCode: "12345",
	})
	require.NoError(t, err)
	return address
}
