package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlocate/medlocate-backend/internal/domain/entities"
	"github.com/medlocate/medlocate-backend/internal/domain/providers"
	appErrors "github.com/medlocate/medlocate-backend/pkg/errors"
)

func TestDoctorService_Add_DefaultsStatusAndTrimsName(t *testing.T) {
	repo := newStubDoctorRepo()
	bus := &stubEventBus{}
	svc := NewDoctorService(repo, bus)

	roster, err := svc.Add(context.Background(), "hosp-1", AddDoctorInput{
		Name:       "  Dr. Rao  ",
		ShiftStart: "9:00 AM",
		ShiftEnd:   "5:00 PM",
	})

	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "Dr. Rao", roster[0].Name)
	assert.Equal(t, entities.DoctorStatusAvailable, roster[0].Status)
	assert.Equal(t, "hosp-1", roster[0].HospitalID)
	assert.NotEmpty(t, roster[0].ID)

	require.Len(t, bus.published, 1)
	assert.Equal(t, providers.GetHospitalChannel("hosp-1"), bus.published[0].channel)
	assert.Equal(t, entities.TableDoctors, bus.published[0].event.Table)
	assert.Equal(t, entities.ActionInsert, bus.published[0].event.Action)
}

func TestDoctorService_Add_RejectsBlankName(t *testing.T) {
	repo := newStubDoctorRepo()
	bus := &stubEventBus{}
	svc := NewDoctorService(repo, bus)

	_, err := svc.Add(context.Background(), "hosp-1", AddDoctorInput{Name: "   "})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrorTypeValidation, appErrors.TypeOf(err))
	assert.Empty(t, repo.doctors)
	assert.Empty(t, bus.published)
}

func TestDoctorService_Add_RejectsUnknownStatus(t *testing.T) {
	svc := NewDoctorService(newStubDoctorRepo(), &stubEventBus{})

	_, err := svc.Add(context.Background(), "hosp-1", AddDoctorInput{Name: "Dr. Rao", Status: "off-duty"})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrorTypeValidation, appErrors.TypeOf(err))
}

func TestDoctorService_Edit_UpdatesShiftAndStatus(t *testing.T) {
	repo := newStubDoctorRepo(&entities.Doctor{
		ID: "doc-1", HospitalID: "hosp-1", Name: "Dr. Rao",
		ShiftStart: "9:00 AM", ShiftEnd: "5:00 PM",
		Status: entities.DoctorStatusAvailable,
	})
	bus := &stubEventBus{}
	svc := NewDoctorService(repo, bus)

	roster, err := svc.Edit(context.Background(), "hosp-1", "doc-1", EditDoctorInput{
		ShiftStart: "1:00 PM",
		Status:     entities.DoctorStatusUpcoming,
	})

	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "1:00 PM", roster[0].ShiftStart)
	assert.Equal(t, "5:00 PM", roster[0].ShiftEnd)
	assert.Equal(t, entities.DoctorStatusUpcoming, roster[0].Status)

	require.Len(t, bus.published, 1)
	assert.Equal(t, entities.ActionUpdate, bus.published[0].event.Action)
}

func TestDoctorService_Edit_ForbidsCrossHospitalAccess(t *testing.T) {
	repo := newStubDoctorRepo(&entities.Doctor{ID: "doc-1", HospitalID: "hosp-2", Name: "Dr. Iyer"})
	bus := &stubEventBus{}
	svc := NewDoctorService(repo, bus)

	_, err := svc.Edit(context.Background(), "hosp-1", "doc-1", EditDoctorInput{Status: entities.DoctorStatusUpcoming})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrorTypeForbidden, appErrors.TypeOf(err))
	assert.Empty(t, bus.published)
}

func TestDoctorService_Remove(t *testing.T) {
	repo := newStubDoctorRepo(
		&entities.Doctor{ID: "doc-1", HospitalID: "hosp-1", Name: "Dr. Rao"},
		&entities.Doctor{ID: "doc-2", HospitalID: "hosp-1", Name: "Dr. Khan"},
	)
	bus := &stubEventBus{}
	svc := NewDoctorService(repo, bus)

	roster, err := svc.Remove(context.Background(), "hosp-1", "doc-1")

	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "doc-2", roster[0].ID)

	require.Len(t, bus.published, 1)
	assert.Equal(t, entities.ActionDelete, bus.published[0].event.Action)
	assert.Equal(t, "doc-1", bus.published[0].event.RecordID)
}

func TestDoctorService_Remove_UnknownDoctor(t *testing.T) {
	svc := NewDoctorService(newStubDoctorRepo(), &stubEventBus{})

	_, err := svc.Remove(context.Background(), "hosp-1", "missing")

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrorTypeNotFound, appErrors.TypeOf(err))
}
