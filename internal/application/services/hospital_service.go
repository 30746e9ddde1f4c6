package services

import (
	"context"
	"log"

	"github.com/medlocate/medlocate-backend/internal/domain/entities"
	"github.com/medlocate/medlocate-backend/internal/domain/providers"
	"github.com/medlocate/medlocate-backend/internal/domain/repositories"
	appErrors "github.com/medlocate/medlocate-backend/pkg/errors"
)

// HospitalService handles admin mutations of a hospital record. Every
// write publishes a change notification and returns the freshly re-read
// record, never an optimistic copy.
type HospitalService struct {
	hospitalRepo repositories.HospitalRepository
	doctorRepo   repositories.DoctorRepository
	eventBus     providers.EventBus
}

// NewHospitalService creates a new hospital service
func NewHospitalService(hospitalRepo repositories.HospitalRepository, doctorRepo repositories.DoctorRepository, eventBus providers.EventBus) *HospitalService {
	return &HospitalService{
		hospitalRepo: hospitalRepo,
		doctorRepo:   doctorRepo,
		eventBus:     eventBus,
	}
}

// Dashboard is the admin view of a managed hospital: the full record plus
// the complete roster.
type Dashboard struct {
	Hospital *entities.Hospital `json:"hospital"`
	Doctors  []*entities.Doctor `json:"doctors"`
}

// GetDashboard loads the managed hospital and its roster
func (s *HospitalService) GetDashboard(ctx context.Context, hospitalID string) (*Dashboard, error) {
	hospital, err := s.hospitalRepo.GetByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	doctors, err := s.doctorRepo.ListByHospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	return &Dashboard{Hospital: hospital, Doctors: doctors}, nil
}

// SetEmergencyAvailable writes the emergency flag and returns the re-read
// record
func (s *HospitalService) SetEmergencyAvailable(ctx context.Context, hospitalID string, available bool) (*entities.Hospital, error) {
	if err := s.hospitalRepo.SetEmergencyAvailable(ctx, hospitalID, available); err != nil {
		return nil, err
	}
	s.publishHospitalUpdate(ctx, hospitalID, map[string]interface{}{"emergency_available": available})
	return s.hospitalRepo.GetByID(ctx, hospitalID)
}

// SetOTAvailable writes the operating theatre flag and returns the re-read
// record
func (s *HospitalService) SetOTAvailable(ctx context.Context, hospitalID string, available bool) (*entities.Hospital, error) {
	if err := s.hospitalRepo.SetOTAvailable(ctx, hospitalID, available); err != nil {
		return nil, err
	}
	s.publishHospitalUpdate(ctx, hospitalID, map[string]interface{}{"ot_available": available})
	return s.hospitalRepo.GetByID(ctx, hospitalID)
}

// UpdateBeds writes all three bed counts in one update and returns the
// re-read record. Negative counts are rejected before any write.
func (s *HospitalService) UpdateBeds(ctx context.Context, hospitalID string, beds entities.BedCounts) (*entities.Hospital, error) {
	if !beds.Valid() {
		return nil, appErrors.NewValidationError("bed counts must be non-negative integers")
	}
	if err := s.hospitalRepo.UpdateBeds(ctx, hospitalID, beds); err != nil {
		return nil, err
	}
	s.publishHospitalUpdate(ctx, hospitalID, map[string]interface{}{
		"general_beds": beds.General,
		"ac_beds":      beds.AC,
		"private_beds": beds.Private,
	})
	return s.hospitalRepo.GetByID(ctx, hospitalID)
}

// publishHospitalUpdate notifies both the global directory channel and the
// hospital's own channel. Delivery is best effort; the database write has
// already committed.
func (s *HospitalService) publishHospitalUpdate(ctx context.Context, hospitalID string, changed map[string]interface{}) {
	if s.eventBus == nil {
		return
	}
	event := entities.NewChangeEvent(entities.TableHospitals, entities.ActionUpdate, hospitalID, hospitalID, changed)
	if err := s.eventBus.Publish(ctx, providers.EventChannelHospitalUpdates, event); err != nil {
		log.Printf("Warning: Failed to publish hospital update for %s: %v", hospitalID, err)
	}
	if err := s.eventBus.Publish(ctx, providers.GetHospitalChannel(hospitalID), event); err != nil {
		log.Printf("Warning: Failed to publish hospital-scoped update for %s: %v", hospitalID, err)
	}
}
