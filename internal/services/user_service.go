package services

import (
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/config"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/models"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/validation"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db         *gorm.DB
	bcryptCost int
}

func NewUserService(db *gorm.DB, cfg *config.Config) *UserService {
	return &UserService{db: db, bcryptCost: cfg.BcryptCost}
}

func (s *UserService) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := s.hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: req.Username,
		Password: hash,
		Name:     req.Name,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toUserResponse(&user), nil
}

func (s *UserService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.db.Model(&user).Update("token", token).Error; err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	return &dto.TokenResponse{Token: token}, nil
}

// Authenticate resolves a raw session token to its user.
func (s *UserService) Authenticate(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	var user models.User
	if err := s.db.Where("token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}
	return &user, nil
}

func (s *UserService) GetCurrent(user *models.User) *dto.UserResponse {
	return toUserResponse(user)
}

func (s *UserService) UpdateCurrent(user *models.User, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Password != nil {
		hash, err := s.hash(*req.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hash
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		if name, ok := updates["name"].(string); ok {
			user.Name = name
		}
		if hash, ok := updates["password"].(string); ok {
			user.Password = hash
		}
	}

	return toUserResponse(user), nil
}

func (s *UserService) Logout(user *models.User) error {
	if err := s.db.Model(&models.User{}).Where("id = ?", user.ID).Update("token", nil).Error; err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	user.Token = nil
	return nil
}

// Delete removes a user together with its contacts and their addresses.
func (s *UserService) Delete(username string) error {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&models.Contact{}).Select("id").Where("user_id = ?", user.ID)
		if err := tx.Where("contact_id IN (?)", owned).Delete(&models.Address{}).Error; err != nil {
			return fmt.Errorf("failed to delete addresses: %w", err)
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Contact{}).Error; err != nil {
			return fmt.Errorf("failed to delete contacts: %w", err)
		}
		return tx.Delete(&user).Error
	})
}

func (s *UserService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func toUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{Username: user.Username, Name: user.Name}
}
