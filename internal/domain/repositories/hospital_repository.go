package repositories

import (
	"context"

	"github.com/medlocate/medlocate-backend/internal/domain/entities"
)

// HospitalRepository defines the interface for hospital data operations
type HospitalRepository interface {
	// Create creates a new hospital (provisioning only; the API never
	// creates hospitals)
	Create(ctx context.Context, hospital *entities.Hospital) error

	// GetByID retrieves a hospital by ID
	GetByID(ctx context.Context, id string) (*entities.Hospital, error)

	// List retrieves the full hospital set
	List(ctx context.Context) ([]*entities.Hospital, error)

	// SetEmergencyAvailable writes the emergency availability flag
	SetEmergencyAvailable(ctx context.Context, id string, available bool) error

	// SetOTAvailable writes the operating theatre availability flag
	SetOTAvailable(ctx context.Context, id string, available bool) error

	// UpdateBeds writes all three bed counts as a single record update
	UpdateBeds(ctx context.Context, id string, beds entities.BedCounts) error
}
