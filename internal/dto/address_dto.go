package dto

import "strings"

type AddressRequest struct {
	Street     string `json:"street" validate:"max=255"`
	City       string `json:"city" validate:"max=100"`
	Province   string `json:"province" validate:"max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
}

func (r *AddressRequest) Normalize() {
	r.Street = strings.TrimSpace(r.Street)
	r.City = strings.TrimSpace(r.City)
	r.Province = strings.TrimSpace(r.Province)
	r.Country = strings.TrimSpace(r.Country)
	r.PostalCode = strings.TrimSpace(r.PostalCode)
}
