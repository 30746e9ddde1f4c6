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

func newHospitalServiceFixture() (*HospitalService, *stubHospitalRepo, *stubEventBus) {
	repo := newStubHospitalRepo(&entities.Hospital{
		ID:          "hosp-1",
		Name:        "City General",
		GeneralBeds: 10,
		ACBeds:      5,
		PrivateBeds: 2,
	})
	bus := &stubEventBus{}
	svc := NewHospitalService(repo, newStubDoctorRepo(), bus)
	return svc, repo, bus
}

func TestHospitalService_SetEmergencyAvailable_PublishesAndRefetches(t *testing.T) {
	svc, repo, bus := newHospitalServiceFixture()

	updated, err := svc.SetEmergencyAvailable(context.Background(), "hosp-1", true)

	require.NoError(t, err)
	assert.True(t, updated.EmergencyAvailable)
	assert.True(t, repo.gets >= 1, "mutation must re-read the record")

	require.Len(t, bus.published, 2)
	assert.Equal(t, providers.EventChannelHospitalUpdates, bus.published[0].channel)
	assert.Equal(t, providers.GetHospitalChannel("hosp-1"), bus.published[1].channel)
	assert.Equal(t, entities.TableHospitals, bus.published[0].event.Table)
	assert.Equal(t, entities.ActionUpdate, bus.published[0].event.Action)
}

func TestHospitalService_SetOTAvailable(t *testing.T) {
	svc, _, bus := newHospitalServiceFixture()

	updated, err := svc.SetOTAvailable(context.Background(), "hosp-1", true)

	require.NoError(t, err)
	assert.True(t, updated.OTAvailable)
	require.Len(t, bus.published, 2)
	assert.Equal(t, true, bus.published[0].event.ChangedFields["ot_available"])
}

func TestHospitalService_UpdateBeds_WritesAllThreeCounts(t *testing.T) {
	svc, _, _ := newHospitalServiceFixture()

	updated, err := svc.UpdateBeds(context.Background(), "hosp-1", entities.BedCounts{General: 7, AC: 3, Private: 0})

	require.NoError(t, err)
	assert.Equal(t, 7, updated.GeneralBeds)
	assert.Equal(t, 3, updated.ACBeds)
	assert.Equal(t, 0, updated.PrivateBeds)
}

func TestHospitalService_UpdateBeds_RejectsNegativeCounts(t *testing.T) {
	svc, repo, bus := newHospitalServiceFixture()

	_, err := svc.UpdateBeds(context.Background(), "hosp-1", entities.BedCounts{General: -1, AC: 3, Private: 0})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrorTypeValidation, appErrors.TypeOf(err))
	assert.Empty(t, bus.published, "rejected update must not publish")
	assert.Equal(t, 10, repo.hospitals["hosp-1"].GeneralBeds, "rejected update must not write")
}

func TestHospitalService_MutationOnUnknownHospital(t *testing.T) {
	svc, _, bus := newHospitalServiceFixture()

	_, err := svc.SetEmergencyAvailable(context.Background(), "missing", true)

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrorTypeNotFound, appErrors.TypeOf(err))
	assert.Empty(t, bus.published)
}

func TestHospitalService_GetDashboard(t *testing.T) {
	repo := newStubHospitalRepo(&entities.Hospital{ID: "hosp-1", Name: "City General"})
	doctors := newStubDoctorRepo(
		&entities.Doctor{ID: "doc-1", HospitalID: "hosp-1", Name: "Dr. Rao"},
		&entities.Doctor{ID: "doc-2", HospitalID: "hosp-2", Name: "Dr. Iyer"},
	)
	svc := NewHospitalService(repo, doctors, &stubEventBus{})

	dashboard, err := svc.GetDashboard(context.Background(), "hosp-1")

	require.NoError(t, err)
	assert.Equal(t, "City General", dashboard.Hospital.Name)
	require.Len(t, dashboard.Doctors, 1)
	assert.Equal(t, "doc-1", dashboard.Doctors[0].ID)
}
