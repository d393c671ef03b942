package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"sansa-learn/models"
)

// MemoryStore is an in-memory RegistrationStore used by tests and local
// development without a database. Ids are monotonically increasing, as
// with the Postgres sequence.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int
	rows   map[int]models.Registration
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, rows: make(map[int]models.Registration)}
}

func (s *MemoryStore) Create(_ context.Context, req models.CreateRegistrationRequest) (models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg := models.Registration{
		ID:                 s.nextID,
		StudentName:        req.StudentName,
		Gender:             req.Gender,
		Grade:              req.Grade,
		FatherName:         req.FatherName,
		MotherName:         req.MotherName,
		WhatsappNumber:     req.WhatsappNumber,
		ParentMobileNumber: req.ParentMobileNumber,
		AlternateNumber:    req.AlternateNumber,
		Address:            req.Address,
		Photo:              req.Photo,
		CreatedAt:          time.Now().UTC(),
	}
	s.nextID++
	s.rows[reg.ID] = reg
	return reg, nil
}

func (s *MemoryStore) List(_ context.Context) ([]models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	registrations := make([]models.Registration, 0, len(s.rows))
	for _, reg := range s.rows {
		registrations = append(registrations, reg)
	}
	// Newest first; ids break ties since same-instant inserts share a
	// clock reading.
	sort.Slice(registrations, func(i, j int) bool {
		if registrations[i].CreatedAt.Equal(registrations[j].CreatedAt) {
			return registrations[i].ID > registrations[j].ID
		}
		return registrations[i].CreatedAt.After(registrations[j].CreatedAt)
	})
	return registrations, nil
}

func (s *MemoryStore) Get(_ context.Context, id int) (models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reg, ok := s.rows[id]
	if !ok {
		return models.Registration{}, ErrNotFound
	}
	return reg, nil
}

func (s *MemoryStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows), nil
}

func (s *MemoryStore) CountByGrade(_ context.Context) ([]GradeCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byGrade := map[string]int{}
	for _, reg := range s.rows {
		byGrade[reg.Grade]++
	}
	grades := make([]string, 0, len(byGrade))
	for grade := range byGrade {
		grades = append(grades, grade)
	}
	sort.Strings(grades)

	counts := make([]GradeCount, 0, len(grades))
	for _, grade := range grades {
		counts = append(counts, GradeCount{Grade: grade, Count: byGrade[grade]})
	}
	return counts, nil
}
