package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sansa-learn/models"
)

// PostgresStore persists registrations in Postgres via a pgx pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store backed by the given pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const registrationColumns = `id, student_name, gender, grade, father_name, mother_name,
	whatsapp_number, parent_mobile_number, alternate_number, address, photo, created_at`

func scanRegistration(row pgx.Row) (models.Registration, error) {
	var r models.Registration
	err := row.Scan(
		&r.ID,
		&r.StudentName,
		&r.Gender,
		&r.Grade,
		&r.FatherName,
		&r.MotherName,
		&r.WhatsappNumber,
		&r.ParentMobileNumber,
		&r.AlternateNumber,
		&r.Address,
		&r.Photo,
		&r.CreatedAt,
	)
	return r, err
}

// Create inserts a new registration and returns the stored row, including
// the generated id and created_at.
func (s *PostgresStore) Create(ctx context.Context, req models.CreateRegistrationRequest) (models.Registration, error) {
	query := `
		INSERT INTO registrations
			(student_name, gender, grade, father_name, mother_name,
			 whatsapp_number, parent_mobile_number, alternate_number, address, photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + registrationColumns
	row := s.pool.QueryRow(ctx, query,
		req.StudentName,
		req.Gender,
		req.Grade,
		req.FatherName,
		req.MotherName,
		req.WhatsappNumber,
		req.ParentMobileNumber,
		req.AlternateNumber,
		req.Address,
		req.Photo,
	)
	reg, err := scanRegistration(row)
	if err != nil {
		return models.Registration{}, fmt.Errorf("insert registration: %w", err)
	}
	return reg, nil
}

// List returns all registrations, newest first.
func (s *PostgresStore) List(ctx context.Context) ([]models.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations ORDER BY created_at DESC`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	registrations := []models.Registration{}
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		registrations = append(registrations, reg)
	}
	return registrations, rows.Err()
}

// Get returns the registration with the given id, or ErrNotFound.
func (s *PostgresStore) Get(ctx context.Context, id int) (models.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`
	reg, err := scanRegistration(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Registration{}, ErrNotFound
		}
		return models.Registration{}, fmt.Errorf("get registration %d: %w", id, err)
	}
	return reg, nil
}

// Delete removes the registration permanently. Deleting an id that does
// not exist reports ErrNotFound, not success.
func (s *PostgresStore) Delete(ctx context.Context, id int) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete registration %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of registrations.
func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return count, nil
}

// CountByGrade returns per-grade totals for the admin dashboard. The
// 20-per-batch cap is informational only and never enforced here.
func (s *PostgresStore) CountByGrade(ctx context.Context) ([]GradeCount, error) {
	rows, err := s.pool.Query(ctx, `SELECT grade, COUNT(*) FROM registrations GROUP BY grade ORDER BY grade`)
	if err != nil {
		return nil, fmt.Errorf("count by grade: %w", err)
	}
	defer rows.Close()

	counts := []GradeCount{}
	for rows.Next() {
		var gc GradeCount
		if err := rows.Scan(&gc.Grade, &gc.Count); err != nil {
			return nil, fmt.Errorf("scan grade count: %w", err)
		}
		counts = append(counts, gc)
	}
	return counts, rows.Err()
}
