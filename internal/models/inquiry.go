package models

import "github.com/google/uuid"

// BulkOrder is a wholesale inquiry submitted from the storefront form.
// Write-only for customers, read-only for admins.
type BulkOrder struct {
	BaseModel
	Name         string     `json:"name"`
	Company      string     `json:"company"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Quantity     int        `json:"quantity"`
	DeliveryDate string     `json:"delivery_date"`
	Message      string     `json:"message"`
	UserID       *uuid.UUID `gorm:"type:uuid" json:"user_id"`
}

// StylistInquiry is a contact-a-stylist form submission.
type StylistInquiry struct {
	BaseModel
	Name     string `json:"name"`
	Email    string `json:"email"`
	Occasion string `json:"occasion"`
	Message  string `json:"message"`
}
