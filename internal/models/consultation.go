package models

import (
	"github.com/google/uuid"
)

// EligibilityStatus represents the outcome of a consultation
type EligibilityStatus string

const (
	StatusPending        EligibilityStatus = "PENDING"
	StatusEligible       EligibilityStatus = "ELIGIBLE"
	StatusNotEligible    EligibilityStatus = "NOT_ELIGIBLE"
	StatusRequiresReview EligibilityStatus = "REQUIRES_REVIEW"
)

// Answer represents a patient's answer to a single screening question.
type Answer struct {
	QuestionID string `json:"questionId"`
	Value      string `json:"value"`
}

// Consultation represents one patient's screening session for a product.
// The owning patient is fixed at creation; answers and status are replaced
// as a whole on each submission.
type Consultation struct {
	ID        string            `json:"id"`
	PatientID string            `json:"patientId"`
	Answers   []Answer          `json:"answers"`
	Status    EligibilityStatus `json:"status"`
}

// NewConsultation creates a pending consultation owned by the given patient.
func NewConsultation(patientID string) *Consultation {
	return &Consultation{
		ID:        uuid.New().String(),
		PatientID: patientID,
		Status:    StatusPending,
	}
}
