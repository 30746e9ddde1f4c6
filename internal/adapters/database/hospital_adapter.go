package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/medlocate/medlocate-backend/internal/domain/entities"
	"github.com/medlocate/medlocate-backend/internal/domain/repositories"
	"github.com/medlocate/medlocate-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/medlocate/medlocate-backend/pkg/errors"
)

// HospitalAdapter implements the HospitalRepository interface
type HospitalAdapter struct {
	client *postgres.Client
}

// NewHospitalAdapter creates a new hospital adapter
func NewHospitalAdapter(client *postgres.Client) repositories.HospitalRepository {
	return &HospitalAdapter{
		client: client,
	}
}

const hospitalColumns = `
	id, name, latitude, longitude,
	emergency_available, ot_available,
	general_beds, ac_beds, private_beds,
	created_at, updated_at
`

func scanHospital(row interface{ Scan(...interface{}) error }) (*entities.Hospital, error) {
	h := &entities.Hospital{}
	err := row.Scan(
		&h.ID,
		&h.Name,
		&h.Latitude,
		&h.Longitude,
		&h.EmergencyAvailable,
		&h.OTAvailable,
		&h.GeneralBeds,
		&h.ACBeds,
		&h.PrivateBeds,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	return h, err
}

// Create creates a new hospital
func (a *HospitalAdapter) Create(ctx context.Context, hospital *entities.Hospital) error {
	query := `
		INSERT INTO hospitals (` + hospitalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	now := time.Now()
	if hospital.CreatedAt.IsZero() {
		hospital.CreatedAt = now
	}
	hospital.UpdatedAt = now

	_, err := a.client.DB().ExecContext(ctx, query,
		hospital.ID,
		hospital.Name,
		hospital.Latitude,
		hospital.Longitude,
		hospital.EmergencyAvailable,
		hospital.OTAvailable,
		hospital.GeneralBeds,
		hospital.ACBeds,
		hospital.PrivateBeds,
		hospital.CreatedAt,
		hospital.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewInternalError("failed to create hospital", err)
	}

	return nil
}

// GetByID retrieves a hospital by ID
func (a *HospitalAdapter) GetByID(ctx context.Context, id string) (*entities.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE id = $1`

	hospital, err := scanHospital(a.client.DB().QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("hospital with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get hospital", err)
	}

	return hospital, nil
}

// List retrieves the full hospital set. The directory ranks and filters
// in memory, so no filters are pushed down.
func (a *HospitalAdapter) List(ctx context.Context) ([]*entities.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals ORDER BY created_at`

	rows, err := a.client.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list hospitals", err)
	}
	defer rows.Close()

	hospitals := []*entities.Hospital{}
	for rows.Next() {
		hospital, err := scanHospital(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan hospital", err)
		}
		hospitals = append(hospitals, hospital)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating hospitals", err)
	}

	return hospitals, nil
}

// SetEmergencyAvailable writes the emergency availability flag
func (a *HospitalAdapter) SetEmergencyAvailable(ctx context.Context, id string, available bool) error {
	return a.setFlag(ctx, id, "emergency_available", available)
}

// SetOTAvailable writes the operating theatre availability flag
func (a *HospitalAdapter) SetOTAvailable(ctx context.Context, id string, available bool) error {
	return a.setFlag(ctx, id, "ot_available", available)
}

func (a *HospitalAdapter) setFlag(ctx context.Context, id, column string, available bool) error {
	query := fmt.Sprintf(`UPDATE hospitals SET %s = $2, updated_at = $3 WHERE id = $1`, column)

	result, err := a.client.DB().ExecContext(ctx, query, id, available, time.Now())
	if err != nil {
		return apperrors.NewInternalError("failed to update hospital availability", err)
	}

	return requireRowAffected(result, id)
}

// UpdateBeds writes all three bed counts in a single record update
func (a *HospitalAdapter) UpdateBeds(ctx context.Context, id string, beds entities.BedCounts) error {
	query := `
		UPDATE hospitals SET
			general_beds = $2, ac_beds = $3, private_beds = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := a.client.DB().ExecContext(ctx, query, id, beds.General, beds.AC, beds.Private, time.Now())
	if err != nil {
		return apperrors.NewInternalError("failed to update bed counts", err)
	}

	return requireRowAffected(result, id)
}

func requireRowAffected(result sql.Result, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("hospital with id %s not found", id))
	}
	return nil
}
