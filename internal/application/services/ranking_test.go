package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlocate/medlocate-backend/internal/domain/entities"
	"github.com/medlocate/medlocate-backend/pkg/geo"
)

func hospital(name string, lat, lon float64, emergency bool) *entities.Hospital {
	return &entities.Hospital{
		ID:                 "hosp-" + name,
		Name:               name,
		Latitude:           lat,
		Longitude:          lon,
		EmergencyAvailable: emergency,
	}
}

func TestRankHospitals_SortsByDistanceAscending(t *testing.T) {
	hospitals := []*entities.Hospital{
		hospital("Far", 0, 2, true),
		hospital("Near", 0, 0.1, true),
		hospital("Mid", 0, 1, true),
	}
	origin := &geo.Point{Latitude: 0, Longitude: 0}

	ranked := RankHospitals(hospitals, origin, "", false)

	require.Len(t, ranked, 3)
	assert.Equal(t, "Near", ranked[0].Name)
	assert.Equal(t, "Mid", ranked[1].Name)
	assert.Equal(t, "Far", ranked[2].Name)
	require.NotNil(t, ranked[0].DistanceKm)
	assert.InDelta(t, 11.1, *ranked[0].DistanceKm, 0.05)
}

func TestRankHospitals_NoOriginLeavesDistanceNilAndOrderStable(t *testing.T) {
	hospitals := []*entities.Hospital{
		hospital("Alpha", 0, 2, true),
		hospital("Beta", 0, 0.1, true),
		hospital("Gamma", 0, 1, true),
	}

	ranked := RankHospitals(hospitals, nil, "", false)

	require.Len(t, ranked, 3)
	for _, r := range ranked {
		assert.Nil(t, r.DistanceKm)
	}
	assert.Equal(t, "Alpha", ranked[0].Name)
	assert.Equal(t, "Beta", ranked[1].Name)
	assert.Equal(t, "Gamma", ranked[2].Name)
}

func TestRankHospitals_UnknownDistanceSortsLast(t *testing.T) {
	broken := hospital("Broken", math.NaN(), math.NaN(), true)
	hospitals := []*entities.Hospital{
		broken,
		hospital("Near", 0, 0.1, true),
	}
	origin := &geo.Point{Latitude: 0, Longitude: 0}

	ranked := RankHospitals(hospitals, origin, "", false)

	require.Len(t, ranked, 2)
	assert.Equal(t, "Near", ranked[0].Name)
	assert.Equal(t, "Broken", ranked[1].Name)
	assert.Nil(t, ranked[1].DistanceKm)
}

func TestRankHospitals_NameFilterIsCaseInsensitiveSubstring(t *testing.T) {
	hospitals := []*entities.Hospital{
		hospital("City General Hospital", 0, 0, true),
		hospital("Seaside Clinic", 0, 0, true),
		hospital("GENERAL MEDICAL", 0, 0, true),
	}

	ranked := RankHospitals(hospitals, nil, "general", false)

	require.Len(t, ranked, 2)
	assert.Equal(t, "City General Hospital", ranked[0].Name)
	assert.Equal(t, "GENERAL MEDICAL", ranked[1].Name)
}

func TestRankHospitals_EmergencyOnlyFilter(t *testing.T) {
	hospitals := []*entities.Hospital{
		hospital("WithER", 0, 0, true),
		hospital("WithoutER", 0, 0, false),
	}

	ranked := RankHospitals(hospitals, nil, "", true)

	require.Len(t, ranked, 1)
	assert.Equal(t, "WithER", ranked[0].Name)
}

func TestRankHospitals_EmptyInput(t *testing.T) {
	ranked := RankHospitals(nil, &geo.Point{}, "", false)
	assert.Empty(t, ranked)
}
