package repositories

import (
	"context"

	"github.com/medlocate/medlocate-backend/internal/domain/entities"
)

// DoctorRepository defines the interface for doctor roster operations
type DoctorRepository interface {
	// Create creates a new doctor record
	Create(ctx context.Context, doctor *entities.Doctor) error

	// GetByID retrieves a doctor by ID
	GetByID(ctx context.Context, id string) (*entities.Doctor, error)

	// ListByHospital retrieves the roster for one hospital
	ListByHospital(ctx context.Context, hospitalID string) ([]*entities.Doctor, error)

	// Update writes shift start/end and status for one doctor
	Update(ctx context.Context, doctor *entities.Doctor) error

	// Delete removes one doctor record by ID
	Delete(ctx context.Context, id string) error
}
