package storage

import (
	"context"

	"prescription-screening-server/internal/models"
)

// SeedPatients loads the demo patient records used until registration is
// hooked up to a real identity provider. Idempotent on restart since Save
// overwrites by ID.
func SeedPatients(ctx context.Context, patients PatientStore) error {
	demo := []models.Patient{
		{
			ID:          "patient-123",
			Name:        "John Doe",
			DateOfBirth: "1990-01-01",
			Address:     "123 Main Street, Test City, TC 12345",
		},
		{
			ID:          "patient-456",
			Name:        "Jane Roe",
			DateOfBirth: "1985-06-15",
			Address:     "456 Oak Avenue, Test City, TC 12345",
		},
	}

	for _, p := range demo {
		if _, err := patients.Save(ctx, &p); err != nil {
			return err
		}
	}
	return nil
}
