package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"prescription-screening-server/internal/models"
)

// ConsultationRecord is the MySQL row shape for a consultation. Answers are
// stored as a JSON column so the row stays a plain key-value record.
type ConsultationRecord struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	PatientID string `gorm:"size:36;index"`
	Answers   []byte `gorm:"type:json"`
	Status    string `gorm:"size:20"`
}

// TableName overrides gorm's pluralization for consistency with the API naming.
func (ConsultationRecord) TableName() string {
	return "consultations"
}

// PatientRecord is the MySQL row shape for a patient.
type PatientRecord struct {
	ID          string `gorm:"primaryKey;type:varchar(64)"`
	Name        string `gorm:"size:100"`
	DateOfBirth string `gorm:"size:20"`
	Address     string `gorm:"size:200"`
}

func (PatientRecord) TableName() string {
	return "patients"
}

// InitDB opens the MySQL connection and migrates the schema.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&ConsultationRecord{}, &PatientRecord{}); err != nil {
		return nil, err
	}

	return db, nil
}

// MySQLConsultationStore persists consultations through gorm.
type MySQLConsultationStore struct {
	db *gorm.DB
}

// NewMySQLConsultationStore creates a MySQL-backed consultation store.
func NewMySQLConsultationStore(db *gorm.DB) *MySQLConsultationStore {
	return &MySQLConsultationStore{db: db}
}

func (s *MySQLConsultationStore) Create(ctx context.Context, patientID string) (*models.Consultation, error) {
	consultation := models.NewConsultation(patientID)

	record, err := toConsultationRecord(consultation)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to create consultation: %w", err)
	}

	return consultation, nil
}

func (s *MySQLConsultationStore) Get(ctx context.Context, id string) (*models.Consultation, error) {
	var record ConsultationRecord
	if err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return fromConsultationRecord(&record)
}

func (s *MySQLConsultationStore) Update(ctx context.Context, consultation *models.Consultation) (*models.Consultation, error) {
	record, err := toConsultationRecord(consultation)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, fmt.Errorf("failed to update consultation: %w", err)
	}

	return consultation, nil
}

func toConsultationRecord(c *models.Consultation) (*ConsultationRecord, error) {
	answersJSON, err := json.Marshal(c.Answers)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal answers: %w", err)
	}
	return &ConsultationRecord{
		ID:        c.ID,
		PatientID: c.PatientID,
		Answers:   answersJSON,
		Status:    string(c.Status),
	}, nil
}

func fromConsultationRecord(record *ConsultationRecord) (*models.Consultation, error) {
	consultation := &models.Consultation{
		ID:        record.ID,
		PatientID: record.PatientID,
		Status:    models.EligibilityStatus(record.Status),
	}
	if len(record.Answers) > 0 {
		if err := json.Unmarshal(record.Answers, &consultation.Answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
		}
	}
	return consultation, nil
}

// MySQLPatientStore persists patients through gorm.
type MySQLPatientStore struct {
	db *gorm.DB
}

// NewMySQLPatientStore creates a MySQL-backed patient store.
func NewMySQLPatientStore(db *gorm.DB) *MySQLPatientStore {
	return &MySQLPatientStore{db: db}
}

func (s *MySQLPatientStore) FindByID(ctx context.Context, id string) (*models.Patient, error) {
	var record PatientRecord
	if err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &models.Patient{
		ID:          record.ID,
		Name:        record.Name,
		DateOfBirth: record.DateOfBirth,
		Address:     record.Address,
	}, nil
}

func (s *MySQLPatientStore) Save(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	record := PatientRecord{
		ID:          patient.ID,
		Name:        patient.Name,
		DateOfBirth: patient.DateOfBirth,
		Address:     patient.Address,
	}
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to save patient: %w", err)
	}
	return patient, nil
}
