package consultation

import "fmt"

// ProductNotFoundError is returned when a session is started for an unknown
// product.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product not found: %s", e.ProductID)
}

// ConsultationNotFoundError is returned when answers are submitted against a
// session ID that does not exist.
type ConsultationNotFoundError struct {
	ConsultationID string
}

func (e *ConsultationNotFoundError) Error() string {
	return fmt.Sprintf("Consultation not found: %s", e.ConsultationID)
}

// PatientNotFoundError is returned when the acting patient identity has no
// matching patient record.
type PatientNotFoundError struct {
	PatientID string
}

func (e *PatientNotFoundError) Error() string {
	return fmt.Sprintf("Patient not found: %s", e.PatientID)
}

// AccessDeniedError is returned when a patient submits answers against a
// consultation owned by someone else.
type AccessDeniedError struct {
	PatientID      string
	ConsultationID string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("Patient %s is not authorized to access consultation %s", e.PatientID, e.ConsultationID)
}
