package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sansa-learn/models"
	"sansa-learn/store"
)

func request(name string) models.CreateRegistrationRequest {
	return models.CreateRegistrationRequest{
		StudentName:        name,
		Gender:             "Female",
		Grade:              "Class 12th",
		FatherName:         "Father",
		MotherName:         "Mother",
		WhatsappNumber:     "9876543210",
		ParentMobileNumber: "9876543210",
		Address:            "Kankarbagh, Patna",
	}
}

func TestCreateAssignsIDAndTimestamp(t *testing.T) {
	s := store.NewMemoryStore()
	before := time.Now().Add(-time.Second)

	reg, err := s.Create(context.Background(), request("Asha"))
	require.NoError(t, err)
	assert.Equal(t, 1, reg.ID)
	assert.Equal(t, "Asha", reg.StudentName)
	assert.False(t, reg.CreatedAt.Before(before))

	second, err := s.Create(context.Background(), request("Bina"))
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestDuplicateSubmissionsAccepted(t *testing.T) {
	s := store.NewMemoryStore()

	a, err := s.Create(context.Background(), request("Same Name"))
	require.NoError(t, err)
	b, err := s.Create(context.Background(), request("Same Name"))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)

	count, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestListNewestFirst(t *testing.T) {
	s := store.NewMemoryStore()

	a, err := s.Create(context.Background(), request("A"))
	require.NoError(t, err)
	b, err := s.Create(context.Background(), request("B"))
	require.NoError(t, err)

	list, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, a.ID, list[1].ID)
}

func TestGetAndDelete(t *testing.T) {
	s := store.NewMemoryStore()

	reg, err := s.Create(context.Background(), request("A"))
	require.NoError(t, err)

	got, err := s.Get(context.Background(), reg.ID)
	require.NoError(t, err)
	assert.Equal(t, reg, got)

	require.NoError(t, s.Delete(context.Background(), reg.ID))

	_, err = s.Get(context.Background(), reg.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Repeated delete is not success.
	assert.ErrorIs(t, s.Delete(context.Background(), reg.ID), store.ErrNotFound)
}

func TestGetUnknownID(t *testing.T) {
	s := store.NewMemoryStore()

	_, err := s.Get(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCountByGrade(t *testing.T) {
	s := store.NewMemoryStore()

	for _, grade := range []string{"Class 9th", "Class 10th", "Class 10th"} {
		req := request("Student")
		req.Grade = grade
		_, err := s.Create(context.Background(), req)
		require.NoError(t, err)
	}

	counts, err := s.CountByGrade(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, store.GradeCount{Grade: "Class 10th", Count: 2}, counts[0])
	assert.Equal(t, store.GradeCount{Grade: "Class 9th", Count: 1}, counts[1])
}
