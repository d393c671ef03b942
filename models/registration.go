package models

import "time"

// Registration is one submitted student/parent record.
type Registration struct {
	ID                 int       `json:"id"`
	StudentName        string    `json:"studentName"`
	Gender             string    `json:"gender"`
	Grade              string    `json:"grade"`
	FatherName         string    `json:"fatherName"`
	MotherName         string    `json:"motherName"`
	WhatsappNumber     string    `json:"whatsappNumber"`
	ParentMobileNumber string    `json:"parentMobileNumber"`
	AlternateNumber    *string   `json:"alternateNumber"`
	Address            string    `json:"address"`
	Photo              *string   `json:"photo"`
	CreatedAt          time.Time `json:"createdAt"`
}

// CreateRegistrationRequest is the public registration payload.
// Phone fields only require a minimum length of 10; no digit/format check
// is applied beyond that (matches the shipped form contract).
type CreateRegistrationRequest struct {
	StudentName        string  `json:"studentName" validate:"required"`
	Gender             string  `json:"gender" validate:"required"`
	Grade              string  `json:"grade" validate:"required"`
	FatherName         string  `json:"fatherName" validate:"required"`
	MotherName         string  `json:"motherName" validate:"required"`
	WhatsappNumber     string  `json:"whatsappNumber" validate:"required,min=10"`
	ParentMobileNumber string  `json:"parentMobileNumber" validate:"required,min=10"`
	AlternateNumber    *string `json:"alternateNumber" validate:"omitempty"`
	Address            string  `json:"address" validate:"required"`
	Photo              *string `json:"photo" validate:"omitempty"`
}
