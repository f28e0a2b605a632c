package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prescription-screening-server/internal/models"
)

func TestMemoryConsultationStoreCreate(t *testing.T) {
	store := NewMemoryConsultationStore()
	ctx := context.Background()

	c1, err := store.Create(ctx, "patient-123")
	require.NoError(t, err)
	assert.NotEmpty(t, c1.ID)
	assert.Equal(t, "patient-123", c1.PatientID)
	assert.Equal(t, models.StatusPending, c1.Status)
	assert.Empty(t, c1.Answers)

	c2, err := store.Create(ctx, "patient-123")
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)

	stored, err := store.Get(ctx, c1.ID)
	require.NoError(t, err)
	assert.Equal(t, c1, stored)
}

func TestMemoryConsultationStoreGetNotFound(t *testing.T) {
	store := NewMemoryConsultationStore()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryConsultationStoreUpdate(t *testing.T) {
	store := NewMemoryConsultationStore()
	ctx := context.Background()

	created, err := store.Create(ctx, "patient-123")
	require.NoError(t, err)

	created.Answers = []models.Answer{{QuestionID: "Q1", Value: "yes"}}
	created.Status = models.StatusRequiresReview
	_, err = store.Update(ctx, created)
	require.NoError(t, err)

	stored, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRequiresReview, stored.Status)
	assert.Equal(t, created.Answers, stored.Answers)
}

func TestMemoryConsultationStoreCopiesOut(t *testing.T) {
	store := NewMemoryConsultationStore()
	ctx := context.Background()

	created, err := store.Create(ctx, "patient-123")
	require.NoError(t, err)

	first, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	first.Status = models.StatusEligible

	// Mutating a returned value must not leak into the store.
	second, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, second.Status)
}

func TestMemoryConsultationStoreCopiesAnswers(t *testing.T) {
	store := NewMemoryConsultationStore()
	ctx := context.Background()

	created, err := store.Create(ctx, "patient-123")
	require.NoError(t, err)

	answers := []models.Answer{{QuestionID: "Q1", Value: "yes"}}
	created.Answers = answers
	_, err = store.Update(ctx, created)
	require.NoError(t, err)

	// Mutating the slice handed to Update must not reach the store.
	answers[0].Value = "no"
	stored, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "yes", stored.Answers[0].Value)

	// Same for in-place edits of a returned value's answer elements.
	stored.Answers[0].Value = "no"
	again, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "yes", again.Answers[0].Value)
}

func TestMemoryConsultationStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryConsultationStore()
	ctx := context.Background()

	seed, err := store.Create(ctx, "patient-123")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c, err := store.Create(ctx, fmt.Sprintf("patient-%d", n))
			assert.NoError(t, err)

			c.Status = models.StatusEligible
			_, err = store.Update(ctx, c)
			assert.NoError(t, err)

			_, err = store.Get(ctx, seed.ID)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
}

func TestMemoryPatientStore(t *testing.T) {
	store := NewMemoryPatientStore()
	ctx := context.Background()

	_, err := store.FindByID(ctx, "patient-123")
	assert.ErrorIs(t, err, ErrNotFound)

	saved, err := store.Save(ctx, &models.Patient{ID: "patient-123", Name: "John Doe"})
	require.NoError(t, err)
	assert.Equal(t, "patient-123", saved.ID)

	found, err := store.FindByID(ctx, "patient-123")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", found.Name)
}

func TestSeedPatients(t *testing.T) {
	store := NewMemoryPatientStore()
	ctx := context.Background()

	require.NoError(t, SeedPatients(ctx, store))

	// Two distinct demo identities so ownership separation is testable
	// end to end.
	first, err := store.FindByID(ctx, "patient-123")
	require.NoError(t, err)
	second, err := store.FindByID(ctx, "patient-456")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}
