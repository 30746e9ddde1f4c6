package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/medlocate/medlocate-backend/internal/api/middleware"
	"github.com/medlocate/medlocate-backend/internal/application/services"
	"github.com/medlocate/medlocate-backend/internal/domain/entities"
)

// AdminHandler serves the hospital management endpoints. Every route is
// wrapped by RequireAdmin, so the request context carries the caller's
// bound hospital.
type AdminHandler struct {
	hospitals *services.HospitalService
	doctors   *services.DoctorService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(hospitals *services.HospitalService, doctors *services.DoctorService) *AdminHandler {
	return &AdminHandler{hospitals: hospitals, doctors: doctors}
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

// GetDashboard handles GET /api/admin/hospital
func (h *AdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := boundHospital(w, r)
	if !ok {
		return
	}

	dashboard, err := h.hospitals.GetDashboard(r.Context(), hospitalID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, dashboard)
}

// SetEmergencyAvailability handles PUT /api/admin/hospital/emergency
func (h *AdminHandler) SetEmergencyAvailability(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := boundHospital(w, r)
	if !ok {
		return
	}

	var req availabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	hospital, err := h.hospitals.SetEmergencyAvailable(r.Context(), hospitalID, req.Available)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, hospital)
}

// SetOTAvailability handles PUT /api/admin/hospital/ot
func (h *AdminHandler) SetOTAvailability(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := boundHospital(w, r)
	if !ok {
		return
	}

	var req availabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	hospital, err := h.hospitals.SetOTAvailable(r.Context(), hospitalID, req.Available)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, hospital)
}

// UpdateBeds handles PUT /api/admin/hospital/beds. All three counts are
// required and written together.
func (h *AdminHandler) UpdateBeds(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := boundHospital(w, r)
	if !ok {
		return
	}

	var beds entities.BedCounts
	if err := json.NewDecoder(r.Body).Decode(&beds); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	hospital, err := h.hospitals.UpdateBeds(r.Context(), hospitalID, beds)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, hospital)
}

// AddDoctor handles POST /api/admin/hospital/doctors
func (h *AdminHandler) AddDoctor(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := boundHospital(w, r)
	if !ok {
		return
	}

	var input services.AddDoctorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	roster, err := h.doctors.Add(r.Context(), hospitalID, input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"doctors": roster})
}

// UpdateDoctor handles PUT /api/admin/hospital/doctors/{doctorId}
func (h *AdminHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := boundHospital(w, r)
	if !ok {
		return
	}
	doctorID := r.PathValue("doctorId")
	if doctorID == "" {
		respondWithError(w, http.StatusBadRequest, "doctor ID is required")
		return
	}

	var input services.EditDoctorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	roster, err := h.doctors.Edit(r.Context(), hospitalID, doctorID, input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"doctors": roster})
}

// DeleteDoctor handles DELETE /api/admin/hospital/doctors/{doctorId}
func (h *AdminHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := boundHospital(w, r)
	if !ok {
		return
	}
	doctorID := r.PathValue("doctorId")
	if doctorID == "" {
		respondWithError(w, http.StatusBadRequest, "doctor ID is required")
		return
	}

	roster, err := h.doctors.Remove(r.Context(), hospitalID, doctorID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"doctors": roster})
}

// boundHospital reads the admin's bound hospital from the request context.
// An admin row without a hospital binding manages nothing.
func boundHospital(w http.ResponseWriter, r *http.Request) (string, bool) {
	hospitalID, ok := middleware.AdminHospitalFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusNotFound, "no hospital assigned to this administrator")
		return "", false
	}
	return hospitalID, true
}
