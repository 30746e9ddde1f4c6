package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/medlocate/medlocate-backend/internal/api/middleware"
	"github.com/medlocate/medlocate-backend/internal/application/services"
	"github.com/medlocate/medlocate-backend/pkg/geo"
)

// HospitalHandler serves the public hospital directory
type HospitalHandler struct {
	directory *services.DirectoryService
}

// NewHospitalHandler creates a new hospital handler
func NewHospitalHandler(directory *services.DirectoryService) *HospitalHandler {
	return &HospitalHandler{directory: directory}
}

// ListHospitals handles GET /api/hospitals?lat=X&lon=Y&q=name&emergency_only=true
func (h *HospitalHandler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	origin, err := parseOrigin(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := services.ListParams{
		Origin:        origin,
		NameQuery:     r.URL.Query().Get("q"),
		EmergencyOnly: r.URL.Query().Get("emergency_only") == "true",
	}

	hospitals, err := h.directory.List(r.Context(), params)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}

// GetHospital handles GET /api/hospitals/{id}. The response shape depends
// on whether the caller is authenticated.
func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID := r.PathValue("id")
	if hospitalID == "" {
		respondWithError(w, http.StatusBadRequest, "hospital ID is required")
		return
	}

	origin, err := parseOrigin(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, authenticated := middleware.IdentityFromContext(r.Context())
	detail, err := h.directory.GetDetail(r.Context(), hospitalID, authenticated, origin)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, detail)
}

// GetDirections handles GET /api/hospitals/{id}/directions and redirects
// to a Google Maps navigation link for the hospital's coordinates.
func (h *HospitalHandler) GetDirections(w http.ResponseWriter, r *http.Request) {
	hospitalID := r.PathValue("id")
	if hospitalID == "" {
		respondWithError(w, http.StatusBadRequest, "hospital ID is required")
		return
	}

	hospital, err := h.directory.GetHospital(r.Context(), hospitalID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	url := fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%f,%f", hospital.Latitude, hospital.Longitude)
	http.Redirect(w, r, url, http.StatusFound)
}

// parseOrigin reads the optional lat/lon pair. Both present and parseable,
// or both absent; anything else is a client error.
func parseOrigin(r *http.Request) (*geo.Point, error) {
	latStr := strings.TrimSpace(r.URL.Query().Get("lat"))
	lonStr := strings.TrimSpace(r.URL.Query().Get("lon"))
	if latStr == "" && lonStr == "" {
		return nil, nil
	}
	if latStr == "" || lonStr == "" {
		return nil, fmt.Errorf("lat and lon must be provided together")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid lat parameter")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid lon parameter")
	}
	return &geo.Point{Latitude: lat, Longitude: lon}, nil
}
