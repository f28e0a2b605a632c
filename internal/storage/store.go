package storage

import (
	"context"
	"errors"

	"prescription-screening-server/internal/models"
)

// ErrNotFound is returned when a record does not exist for the given key.
var ErrNotFound = errors.New("record not found")

// ConsultationStore is keyed storage for consultation sessions. All three
// operations must be atomic per key under concurrent callers; no cross-key
// coordination is required since sessions are independent. Concurrent
// updates to the same key resolve last-writer-wins.
type ConsultationStore interface {
	// Create persists a fresh pending consultation owned by the given
	// patient and returns the stored value.
	Create(ctx context.Context, patientID string) (*models.Consultation, error)

	// Get returns the consultation with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*models.Consultation, error)

	// Update overwrites the stored consultation keyed by its ID.
	Update(ctx context.Context, consultation *models.Consultation) (*models.Consultation, error)
}

// PatientStore looks up and stores patient records.
type PatientStore interface {
	// FindByID returns the patient with the given ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*models.Patient, error)

	// Save persists a patient record keyed by its ID.
	Save(ctx context.Context, patient *models.Patient) (*models.Patient, error)
}
