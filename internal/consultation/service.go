package consultation

import (
	"context"
	"errors"
	"fmt"

	"prescription-screening-server/internal/catalog"
	"prescription-screening-server/internal/eligibility"
	"prescription-screening-server/internal/models"
	"prescription-screening-server/internal/storage"
)

// StartSessionResult is the outcome of opening a screening session: the
// product's questions in catalog order plus the session to answer them under.
type StartSessionResult struct {
	Questions      []models.Question
	ConsultationID string
}

// Verdict is the outcome of a completed submission.
type Verdict struct {
	ConsultationID string
	Eligible       bool
	Message        string
	Status         models.EligibilityStatus
}

// Service orchestrates the consultation lifecycle: session creation against
// the product catalog, answer collection, ownership verification, and the
// eligibility decision. The acting patient identity is always supplied by
// the caller's authenticated context.
type Service struct {
	catalog       catalog.Catalog
	consultations storage.ConsultationStore
	patients      storage.PatientStore
	engine        *eligibility.Engine
}

// NewService wires the orchestrator with its collaborators.
func NewService(cat catalog.Catalog, consultations storage.ConsultationStore, patients storage.PatientStore, engine *eligibility.Engine) *Service {
	return &Service{
		catalog:       cat,
		consultations: consultations,
		patients:      patients,
		engine:        engine,
	}
}

// StartSession resolves the product's questions and opens a pending
// consultation owned by the acting patient. The session row is persisted
// before any answers exist; it is what later ownership checks verify
// against. Catalog resolution strictly precedes the store create, so an
// unknown product never leaves a session behind.
func (s *Service) StartSession(ctx context.Context, patientID, productID string) (*StartSessionResult, error) {
	product, ok := s.catalog.FindProduct(productID)
	if !ok {
		return nil, &ProductNotFoundError{ProductID: productID}
	}

	questions := s.catalog.FindQuestions(product.QuestionIDs)

	consultation, err := s.consultations.Create(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to create consultation: %w", err)
	}

	return &StartSessionResult{
		Questions:      questions,
		ConsultationID: consultation.ID,
	}, nil
}

// SubmitAnswers records the patient's answers on their session and returns
// the eligibility verdict. Checks run in a fixed order: session existence,
// patient existence, then ownership. Answers and status are overwritten as
// a whole, so a resubmission replaces the previous verdict.
func (s *Service) SubmitAnswers(ctx context.Context, consultationID, patientID string, answers []models.Answer) (*Verdict, error) {
	consultation, err := s.consultations.Get(ctx, consultationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, &ConsultationNotFoundError{ConsultationID: consultationID}
		}
		return nil, fmt.Errorf("failed to load consultation: %w", err)
	}

	if _, err := s.patients.FindByID(ctx, patientID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, &PatientNotFoundError{PatientID: patientID}
		}
		return nil, fmt.Errorf("failed to load patient: %w", err)
	}

	if consultation.PatientID != patientID {
		return nil, &AccessDeniedError{PatientID: patientID, ConsultationID: consultationID}
	}

	consultation.Answers = answers

	assessment := s.engine.Evaluate(answers)
	consultation.Status = assessment.Status

	if _, err := s.consultations.Update(ctx, consultation); err != nil {
		return nil, fmt.Errorf("failed to save consultation: %w", err)
	}

	return &Verdict{
		ConsultationID: consultationID,
		Eligible:       assessment.Eligible,
		Message:        assessment.Message,
		Status:         assessment.Status,
	}, nil
}
