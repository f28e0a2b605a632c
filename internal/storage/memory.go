package storage

import (
	"context"
	"sync"

	"prescription-screening-server/internal/models"
)

// MemoryConsultationStore keeps consultations in a mutex-guarded map.
// Suitable for single-process deployments and tests.
type MemoryConsultationStore struct {
	mu            sync.RWMutex
	consultations map[string]models.Consultation
}

// NewMemoryConsultationStore creates an empty in-memory consultation store.
func NewMemoryConsultationStore() *MemoryConsultationStore {
	return &MemoryConsultationStore{
		consultations: make(map[string]models.Consultation),
	}
}

func (s *MemoryConsultationStore) Create(ctx context.Context, patientID string) (*models.Consultation, error) {
	consultation := models.NewConsultation(patientID)

	s.mu.Lock()
	s.consultations[consultation.ID] = cloneConsultation(consultation)
	s.mu.Unlock()

	return consultation, nil
}

func (s *MemoryConsultationStore) Get(ctx context.Context, id string) (*models.Consultation, error) {
	s.mu.RLock()
	consultation, ok := s.consultations[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	// Clone on the way out so callers never share state with the store,
	// including the answers backing array.
	clone := cloneConsultation(&consultation)
	return &clone, nil
}

func (s *MemoryConsultationStore) Update(ctx context.Context, consultation *models.Consultation) (*models.Consultation, error) {
	s.mu.Lock()
	s.consultations[consultation.ID] = cloneConsultation(consultation)
	s.mu.Unlock()

	return consultation, nil
}

// cloneConsultation copies a consultation along with its answers slice, so
// stored values and returned values never alias each other.
func cloneConsultation(c *models.Consultation) models.Consultation {
	clone := *c
	if c.Answers != nil {
		clone.Answers = make([]models.Answer, len(c.Answers))
		copy(clone.Answers, c.Answers)
	}
	return clone
}

// MemoryPatientStore keeps patients in a mutex-guarded map.
type MemoryPatientStore struct {
	mu       sync.RWMutex
	patients map[string]models.Patient
}

// NewMemoryPatientStore creates an empty in-memory patient store.
func NewMemoryPatientStore() *MemoryPatientStore {
	return &MemoryPatientStore{
		patients: make(map[string]models.Patient),
	}
}

func (s *MemoryPatientStore) FindByID(ctx context.Context, id string) (*models.Patient, error) {
	s.mu.RLock()
	patient, ok := s.patients[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return &patient, nil
}

func (s *MemoryPatientStore) Save(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	s.mu.Lock()
	s.patients[patient.ID] = *patient
	s.mu.Unlock()

	return patient, nil
}
