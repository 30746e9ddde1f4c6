package services

import (
	"math"
	"sort"
	"strings"

	"github.com/medlocate/medlocate-backend/internal/domain/entities"
	"github.com/medlocate/medlocate-backend/pkg/geo"
)

// RankedHospital pairs a hospital with its distance from the caller's
// origin. DistanceKm is nil when no origin was supplied or the distance
// could not be computed.
type RankedHospital struct {
	*entities.Hospital
	DistanceKm *float64 `json:"distance_km"`
}

// distanceSentinel sorts hospitals without a known distance after every
// hospital with one.
const distanceSentinel = math.MaxFloat64

// RankHospitals filters and orders hospitals for the directory listing.
// The name filter is a case-insensitive substring match, emergencyOnly
// keeps only hospitals with emergency availability, and the result is
// sorted by distance ascending with unknown distances last. The sort is
// stable, so hospitals that tie keep their stored order.
func RankHospitals(hospitals []*entities.Hospital, origin *geo.Point, nameQuery string, emergencyOnly bool) []RankedHospital {
	needle := strings.ToLower(strings.TrimSpace(nameQuery))

	ranked := make([]RankedHospital, 0, len(hospitals))
	for _, h := range hospitals {
		if needle != "" && !strings.Contains(strings.ToLower(h.Name), needle) {
			continue
		}
		if emergencyOnly && !h.EmergencyAvailable {
			continue
		}
		ranked = append(ranked, RankedHospital{
			Hospital:   h,
			DistanceKm: distanceFrom(origin, h),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return sortKey(ranked[i].DistanceKm) < sortKey(ranked[j].DistanceKm)
	})
	return ranked
}

func distanceFrom(origin *geo.Point, h *entities.Hospital) *float64 {
	if origin == nil {
		return nil
	}
	d := geo.Between(*origin, geo.Point{Latitude: h.Latitude, Longitude: h.Longitude})
	if math.IsNaN(d) {
		return nil
	}
	return &d
}

func sortKey(d *float64) float64 {
	if d == nil {
		return distanceSentinel
	}
	return *d
}
