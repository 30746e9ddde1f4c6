package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlocate/medlocate-backend/internal/api/handlers"
	"github.com/medlocate/medlocate-backend/internal/api/middleware"
	"github.com/medlocate/medlocate-backend/internal/application/services"
	"github.com/medlocate/medlocate-backend/internal/domain/entities"
	appErrors "github.com/medlocate/medlocate-backend/pkg/errors"
)

type stubHospitalRepo struct {
	hospitals []*entities.Hospital
}

func (r *stubHospitalRepo) Create(ctx context.Context, h *entities.Hospital) error { return nil }

func (r *stubHospitalRepo) GetByID(ctx context.Context, id string) (*entities.Hospital, error) {
	for _, h := range r.hospitals {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, appErrors.NewNotFoundError("hospital not found")
}

func (r *stubHospitalRepo) List(ctx context.Context) ([]*entities.Hospital, error) {
	return r.hospitals, nil
}

func (r *stubHospitalRepo) SetEmergencyAvailable(ctx context.Context, id string, available bool) error {
	return nil
}

func (r *stubHospitalRepo) SetOTAvailable(ctx context.Context, id string, available bool) error {
	return nil
}

func (r *stubHospitalRepo) UpdateBeds(ctx context.Context, id string, beds entities.BedCounts) error {
	return nil
}

type stubDoctorRepo struct {
	doctors []*entities.Doctor
}

func (r *stubDoctorRepo) Create(ctx context.Context, d *entities.Doctor) error { return nil }

func (r *stubDoctorRepo) GetByID(ctx context.Context, id string) (*entities.Doctor, error) {
	for _, d := range r.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, appErrors.NewNotFoundError("doctor not found")
}

func (r *stubDoctorRepo) ListByHospital(ctx context.Context, hospitalID string) ([]*entities.Doctor, error) {
	var out []*entities.Doctor
	for _, d := range r.doctors {
		if d.HospitalID == hospitalID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *stubDoctorRepo) Update(ctx context.Context, d *entities.Doctor) error { return nil }
func (r *stubDoctorRepo) Delete(ctx context.Context, id string) error          { return nil }

type stubVerifier struct{}

func (v *stubVerifier) VerifyAccessToken(raw string) (*entities.Identity, error) {
	if raw == "good-token" {
		return &entities.Identity{UserID: "u1", Email: "a@b.com"}, nil
	}
	return nil, appErrors.NewUnauthorizedError("invalid or expired access token")
}

func directoryFixture() *services.DirectoryService {
	hospitals := &stubHospitalRepo{hospitals: []*entities.Hospital{
		{ID: "h1", Name: "City General", Latitude: 0, Longitude: 1, EmergencyAvailable: true, GeneralBeds: 10, ACBeds: 4, PrivateBeds: 2},
		{ID: "h2", Name: "Seaside Clinic", Latitude: 0, Longitude: 0.1, EmergencyAvailable: false},
	}}
	doctors := &stubDoctorRepo{doctors: []*entities.Doctor{
		{ID: "d1", HospitalID: "h1", Name: "Dr. Rao", Status: entities.DoctorStatusUpcoming},
		{ID: "d2", HospitalID: "h1", Name: "Dr. Iyer", Status: entities.DoctorStatusAvailable},
	}}
	return services.NewDirectoryService(hospitals, doctors)
}

func TestHospitalHandler_ListHospitals_RankedByDistance(t *testing.T) {
	handler := handlers.NewHospitalHandler(directoryFixture())

	req := httptest.NewRequest("GET", "/api/hospitals?lat=0&lon=0", nil)
	w := httptest.NewRecorder()
	handler.ListHospitals(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Hospitals []struct {
			ID         string   `json:"id"`
			DistanceKm *float64 `json:"distance_km"`
		} `json:"hospitals"`
		Count int `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Equal(t, 2, response.Count)
	assert.Equal(t, "h2", response.Hospitals[0].ID)
	assert.Equal(t, "h1", response.Hospitals[1].ID)
	require.NotNil(t, response.Hospitals[0].DistanceKm)
	assert.Less(t, *response.Hospitals[0].DistanceKm, *response.Hospitals[1].DistanceKm)
}

func TestHospitalHandler_ListHospitals_Filters(t *testing.T) {
	handler := handlers.NewHospitalHandler(directoryFixture())

	req := httptest.NewRequest("GET", "/api/hospitals?emergency_only=true", nil)
	w := httptest.NewRecorder()
	handler.ListHospitals(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, 1, response.Count)
}

func TestHospitalHandler_ListHospitals_RejectsHalfOrigin(t *testing.T) {
	handler := handlers.NewHospitalHandler(directoryFixture())

	req := httptest.NewRequest("GET", "/api/hospitals?lat=12.5", nil)
	w := httptest.NewRecorder()
	handler.ListHospitals(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHospitalHandler_GetHospital_AnonymousHidesBedsAndRoster(t *testing.T) {
	handler := handlers.NewHospitalHandler(directoryFixture())
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/hospitals/{id}", handler.GetHospital)

	req := httptest.NewRequest("GET", "/api/hospitals/h1", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "City General", body["name"])
	assert.NotContains(t, body, "general_beds")
	assert.NotContains(t, body, "doctors")
}

func TestHospitalHandler_GetHospital_AuthenticatedSeesRosterAvailableFirst(t *testing.T) {
	handler := handlers.NewHospitalHandler(directoryFixture())
	mux := http.NewServeMux()
	mux.Handle("GET /api/hospitals/{id}", middleware.Authenticate(&stubVerifier{})(http.HandlerFunc(handler.GetHospital)))

	req := httptest.NewRequest("GET", "/api/hospitals/h1", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		GeneralBeds *int `json:"general_beds"`
		Doctors     []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"doctors"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.NotNil(t, body.GeneralBeds)
	assert.Equal(t, 10, *body.GeneralBeds)
	require.Len(t, body.Doctors, 2)
	assert.Equal(t, "d2", body.Doctors[0].ID)
	assert.Equal(t, "available", body.Doctors[0].Status)
}

func TestHospitalHandler_GetHospital_NotFound(t *testing.T) {
	handler := handlers.NewHospitalHandler(directoryFixture())
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/hospitals/{id}", handler.GetHospital)

	req := httptest.NewRequest("GET", "/api/hospitals/missing", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHospitalHandler_GetDirections_RedirectsToMapsLink(t *testing.T) {
	handler := handlers.NewHospitalHandler(directoryFixture())
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/hospitals/{id}/directions", handler.GetDirections)

	req := httptest.NewRequest("GET", "/api/hospitals/h1/directions", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")
	assert.Contains(t, location, "https://www.google.com/maps/dir/?api=1&destination=")
	assert.Contains(t, location, "0.000000,1.000000")
}
