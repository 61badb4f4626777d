package dto

import "strings"

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,notblank,max=100,bcryptlen"`
	Name     string `json:"name" validate:"required,max=100"`
}

func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Name = strings.TrimSpace(r.Name)
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100,bcryptlen"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

// UpdateUserRequest is a partial update: nil fields are left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Password *string `json:"password" validate:"omitempty,notblank,max=100,bcryptlen"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
	}
}

type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
