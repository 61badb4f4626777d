package services

import (
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/models"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/scope"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/validation"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search returns one page of the user's contacts matching every supplied
// filter, ordered by id.
func (s *ContactService) Search(user *models.User, req *dto.SearchContactRequest) ([]models.Contact, dto.Paging, error) {
	if err := validation.Struct(req); err != nil {
		return nil, dto.Paging{}, err
	}

	filtered := func() *gorm.DB {
		return s.db.Model(&models.Contact{}).Scopes(scope.OwnedBy(user.ID), matching(req))
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, dto.Paging{}, fmt.Errorf("failed to count contacts: %w", err)
	}

	paging := dto.Paging{
		Page:      req.Page,
		TotalPage: int((total + int64(s.pageSize) - 1) / int64(s.pageSize)),
		TotalItem: total,
	}

	contacts := make([]models.Contact, 0)
	if req.Page > paging.TotalPage {
		return contacts, paging, nil
	}

	err := filtered().
		Order("id ASC").
		Limit(s.pageSize).
		Offset((req.Page - 1) * s.pageSize).
		Find(&contacts).Error
	if err != nil {
		return nil, dto.Paging{}, fmt.Errorf("failed to fetch contacts: %w", err)
	}

	return contacts, paging, nil
}

// matching ANDs the filters present in req. Name matches first or last name
// and email matches case-insensitively on every driver; phone is a plain
// substring match.
func matching(req *dto.SearchContactRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if req.Name != "" {
			pattern := contains(strings.ToLower(req.Name))
			db = db.Where(`(LOWER(first_name) LIKE ? ESCAPE '\' OR LOWER(last_name) LIKE ? ESCAPE '\')`, pattern, pattern)
		}
		if req.Email != "" {
			db = db.Where(`LOWER(email) LIKE ? ESCAPE '\'`, contains(strings.ToLower(req.Email)))
		}
		if req.Phone != "" {
			db = db.Where(`phone LIKE ? ESCAPE '\'`, contains(req.Phone))
		}
		return db
	}
}

func contains(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
