package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/medlocate/medlocate-backend/internal/domain/entities"
	"github.com/medlocate/medlocate-backend/internal/domain/providers"
	"github.com/medlocate/medlocate-backend/internal/domain/repositories"
	appErrors "github.com/medlocate/medlocate-backend/pkg/errors"
)

// DoctorService handles roster mutations for a managed hospital. Every
// mutation is scoped to one hospital, publishes a change notification on
// that hospital's channel, and returns the freshly re-read roster.
type DoctorService struct {
	doctorRepo repositories.DoctorRepository
	eventBus   providers.EventBus
}

// NewDoctorService creates a new doctor service
func NewDoctorService(doctorRepo repositories.DoctorRepository, eventBus providers.EventBus) *DoctorService {
	return &DoctorService{
		doctorRepo: doctorRepo,
		eventBus:   eventBus,
	}
}

// AddDoctorInput is the payload for adding a doctor to a roster
type AddDoctorInput struct {
	Name       string                `json:"name"`
	ShiftStart string                `json:"shift_start"`
	ShiftEnd   string                `json:"shift_end"`
	Status     entities.DoctorStatus `json:"status"`
}

// EditDoctorInput is the payload for editing a roster entry. Name is not
// editable after creation.
type EditDoctorInput struct {
	ShiftStart string                `json:"shift_start"`
	ShiftEnd   string                `json:"shift_end"`
	Status     entities.DoctorStatus `json:"status"`
}

// Add creates a doctor on the hospital's roster and returns the re-read
// roster. The name must be non-empty after trimming; a missing status
// defaults to "available".
func (s *DoctorService) Add(ctx context.Context, hospitalID string, input AddDoctorInput) ([]*entities.Doctor, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("doctor name is required")
	}
	status := input.Status
	if status == "" {
		status = entities.DoctorStatusAvailable
	}
	if !status.Valid() {
		return nil, appErrors.NewValidationError("status must be 'available' or 'upcoming'")
	}

	doctor := &entities.Doctor{
		ID:         uuid.New().String(),
		HospitalID: hospitalID,
		Name:       name,
		ShiftStart: strings.TrimSpace(input.ShiftStart),
		ShiftEnd:   strings.TrimSpace(input.ShiftEnd),
		Status:     status,
	}
	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		return nil, err
	}

	s.publishRosterUpdate(ctx, hospitalID, entities.ActionInsert, doctor.ID)
	return s.doctorRepo.ListByHospital(ctx, hospitalID)
}

// Edit updates shift times and status for one doctor on the hospital's
// roster and returns the re-read roster. Editing a doctor that belongs to
// another hospital is forbidden.
func (s *DoctorService) Edit(ctx context.Context, hospitalID, doctorID string, input EditDoctorInput) ([]*entities.Doctor, error) {
	doctor, err := s.ownedDoctor(ctx, hospitalID, doctorID)
	if err != nil {
		return nil, err
	}
	if input.Status != "" && !input.Status.Valid() {
		return nil, appErrors.NewValidationError("status must be 'available' or 'upcoming'")
	}

	if input.ShiftStart != "" {
		doctor.ShiftStart = strings.TrimSpace(input.ShiftStart)
	}
	if input.ShiftEnd != "" {
		doctor.ShiftEnd = strings.TrimSpace(input.ShiftEnd)
	}
	if input.Status != "" {
		doctor.Status = input.Status
	}
	if err := s.doctorRepo.Update(ctx, doctor); err != nil {
		return nil, err
	}

	s.publishRosterUpdate(ctx, hospitalID, entities.ActionUpdate, doctorID)
	return s.doctorRepo.ListByHospital(ctx, hospitalID)
}

// Remove deletes one doctor from the hospital's roster and returns the
// re-read roster
func (s *DoctorService) Remove(ctx context.Context, hospitalID, doctorID string) ([]*entities.Doctor, error) {
	if _, err := s.ownedDoctor(ctx, hospitalID, doctorID); err != nil {
		return nil, err
	}
	if err := s.doctorRepo.Delete(ctx, doctorID); err != nil {
		return nil, err
	}

	s.publishRosterUpdate(ctx, hospitalID, entities.ActionDelete, doctorID)
	return s.doctorRepo.ListByHospital(ctx, hospitalID)
}

// ownedDoctor loads a doctor and verifies it belongs to hospitalID
func (s *DoctorService) ownedDoctor(ctx context.Context, hospitalID, doctorID string) (*entities.Doctor, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor.HospitalID != hospitalID {
		return nil, appErrors.NewForbiddenError("doctor belongs to a different hospital")
	}
	return doctor, nil
}

// publishRosterUpdate notifies the hospital's channel that its roster
// changed. Delivery is best effort.
func (s *DoctorService) publishRosterUpdate(ctx context.Context, hospitalID string, action entities.ChangeAction, doctorID string) {
	if s.eventBus == nil {
		return
	}
	event := entities.NewChangeEvent(entities.TableDoctors, action, hospitalID, doctorID, nil)
	if err := s.eventBus.Publish(ctx, providers.GetHospitalChannel(hospitalID), event); err != nil {
		log.Printf("Warning: Failed to publish roster update for hospital %s: %v", hospitalID, err)
	}
}
