package services

import (
	"sort"

	"github.com/medlocate/medlocate-backend/internal/domain/entities"
	"github.com/medlocate/medlocate-backend/pkg/geo"
)

// HospitalDetail is the detail view of a hospital shaped for the caller.
// Bed counts and the doctor roster are only populated for authenticated
// callers; anonymous callers see identity, location and availability
// flags only.
type HospitalDetail struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Latitude           float64            `json:"latitude"`
	Longitude          float64            `json:"longitude"`
	EmergencyAvailable bool               `json:"emergency_available"`
	OTAvailable        bool               `json:"ot_available"`
	DistanceKm         *float64           `json:"distance_km"`
	GeneralBeds        *int               `json:"general_beds,omitempty"`
	ACBeds             *int               `json:"ac_beds,omitempty"`
	PrivateBeds        *int               `json:"private_beds,omitempty"`
	Doctors            []*entities.Doctor `json:"doctors,omitempty"`
}

// GateHospitalDetail builds the detail view for a single hospital,
// withholding bed counts and the roster from anonymous callers. The
// roster is ordered with available doctors first.
func GateHospitalDetail(h *entities.Hospital, roster []*entities.Doctor, authenticated bool, origin *geo.Point) *HospitalDetail {
	detail := &HospitalDetail{
		ID:                 h.ID,
		Name:               h.Name,
		Latitude:           h.Latitude,
		Longitude:          h.Longitude,
		EmergencyAvailable: h.EmergencyAvailable,
		OTAvailable:        h.OTAvailable,
		DistanceKm:         distanceFrom(origin, h),
	}
	if !authenticated {
		return detail
	}

	general, ac, private := h.GeneralBeds, h.ACBeds, h.PrivateBeds
	detail.GeneralBeds = &general
	detail.ACBeds = &ac
	detail.PrivateBeds = &private
	detail.Doctors = SortRoster(roster)
	return detail
}

// SortRoster orders doctors with status "available" before "upcoming",
// preserving the stored order within each group. The input slice is not
// modified.
func SortRoster(doctors []*entities.Doctor) []*entities.Doctor {
	sorted := make([]*entities.Doctor, len(doctors))
	copy(sorted, doctors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Status == entities.DoctorStatusAvailable && sorted[j].Status != entities.DoctorStatusAvailable
	})
	return sorted
}
