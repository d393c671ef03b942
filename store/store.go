package store

import (
	"context"
	"errors"

	"sansa-learn/models"
)

// ErrNotFound is returned when no registration matches the given id.
var ErrNotFound = errors.New("registration not found")

// GradeCount is the number of registrations in one grade label.
type GradeCount struct {
	Grade string `json:"grade"`
	Count int    `json:"count"`
}

// RegistrationStore persists student registrations.
//
// There is deliberately no update operation: records are created by the
// public form and only ever removed, never edited. Duplicate submissions
// are accepted as separate rows.
type RegistrationStore interface {
	Create(ctx context.Context, req models.CreateRegistrationRequest) (models.Registration, error)
	// List returns every registration, newest first.
	List(ctx context.Context) ([]models.Registration, error)
	Get(ctx context.Context, id int) (models.Registration, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	CountByGrade(ctx context.Context) ([]GradeCount, error)
}
