package dto

import "strings"

// ContactRequest carries the mutable contact fields for both create and full-replace update.
type ContactRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Email     string `json:"email" validate:"omitempty,max=200,email"`
	Phone     string `json:"phone" validate:"omitempty,max=20,phone"`
}

func (r *ContactRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
}

// SearchContactRequest is bound from the query string of GET /api/contacts.
type SearchContactRequest struct {
	Page  int    `query:"page" validate:"min=1"`
	Name  string `query:"name" validate:"max=100"`
	Email string `query:"email" validate:"max=200"`
	Phone string `query:"phone" validate:"max=20"`
}

func (r *SearchContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
}

type Paging struct {
	Page      int   `json:"page"`
	TotalPage int   `json:"total_page"`
	TotalItem int64 `json:"total_item"`
}
