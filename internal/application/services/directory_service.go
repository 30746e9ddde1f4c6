package services

import (
	"context"

	"github.com/medlocate/medlocate-backend/internal/domain/entities"
	"github.com/medlocate/medlocate-backend/internal/domain/repositories"
	"github.com/medlocate/medlocate-backend/pkg/geo"
)

// DirectoryService serves the public hospital directory: the ranked
// listing and the per-hospital detail view.
type DirectoryService struct {
	hospitalRepo repositories.HospitalRepository
	doctorRepo   repositories.DoctorRepository
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(hospitalRepo repositories.HospitalRepository, doctorRepo repositories.DoctorRepository) *DirectoryService {
	return &DirectoryService{
		hospitalRepo: hospitalRepo,
		doctorRepo:   doctorRepo,
	}
}

// ListParams are the directory listing filters. Origin is nil when the
// caller shared no location.
type ListParams struct {
	Origin        *geo.Point
	NameQuery     string
	EmergencyOnly bool
}

// List returns all hospitals matching the filters, ordered nearest first.
// Hospitals without a computable distance sort last.
func (s *DirectoryService) List(ctx context.Context, params ListParams) ([]RankedHospital, error) {
	hospitals, err := s.hospitalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return RankHospitals(hospitals, params.Origin, params.NameQuery, params.EmergencyOnly), nil
}

// GetDetail returns one hospital shaped for the caller. Anonymous callers
// see public fields only; authenticated callers also get bed counts and
// the roster with available doctors first.
func (s *DirectoryService) GetDetail(ctx context.Context, id string, authenticated bool, origin *geo.Point) (*HospitalDetail, error) {
	hospital, err := s.hospitalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var roster []*entities.Doctor
	if authenticated {
		roster, err = s.doctorRepo.ListByHospital(ctx, id)
		if err != nil {
			return nil, err
		}
	}
	return GateHospitalDetail(hospital, roster, authenticated, origin), nil
}

// GetHospital returns the raw hospital record
func (s *DirectoryService) GetHospital(ctx context.Context, id string) (*entities.Hospital, error) {
	return s.hospitalRepo.GetByID(ctx, id)
}
