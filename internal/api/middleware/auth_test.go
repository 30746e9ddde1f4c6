package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlocate/medlocate-backend/internal/domain/entities"
	appErrors "github.com/medlocate/medlocate-backend/pkg/errors"
)

type stubVerifier struct {
	identity *entities.Identity
}

func (v *stubVerifier) VerifyAccessToken(raw string) (*entities.Identity, error) {
	if raw == "good-token" && v.identity != nil {
		return v.identity, nil
	}
	return nil, appErrors.NewUnauthorizedError("invalid or expired access token")
}

type stubResolver struct {
	assignment *entities.RoleAssignment
}

func (r *stubResolver) ResolveRole(ctx context.Context, userID string) (*entities.RoleAssignment, error) {
	return r.assignment, nil
}

func passthrough(captured **http.Request) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = r
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_NoTokenPassesAnonymous(t *testing.T) {
	var got *http.Request
	handler := Authenticate(&stubVerifier{})(passthrough(&got))

	req := httptest.NewRequest("GET", "/api/hospitals", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	_, ok := IdentityFromContext(got.Context())
	assert.False(t, ok)
}

func TestAuthenticate_ValidTokenAttachesIdentity(t *testing.T) {
	var got *http.Request
	verifier := &stubVerifier{identity: &entities.Identity{UserID: "u1", Email: "a@b.com"}}
	handler := Authenticate(verifier)(passthrough(&got))

	req := httptest.NewRequest("GET", "/api/hospitals", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	identity, ok := IdentityFromContext(got.Context())
	require.True(t, ok)
	assert.Equal(t, "u1", identity.UserID)
}

func TestAuthenticate_BadTokenRejected(t *testing.T) {
	var got *http.Request
	handler := Authenticate(&stubVerifier{})(passthrough(&got))

	req := httptest.NewRequest("GET", "/api/hospitals", nil)
	req.Header.Set("Authorization", "Bearer forged")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, got)
}

func TestRequireAuth(t *testing.T) {
	var got *http.Request
	handler := RequireAuth(passthrough(&got))

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	ctx := context.WithValue(req.Context(), identityKey, &entities.Identity{UserID: "u1"})
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req.WithContext(ctx))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_NonAdminForbidden(t *testing.T) {
	var got *http.Request
	resolver := &stubResolver{assignment: &entities.RoleAssignment{Role: entities.RoleUser}}
	handler := RequireAdmin(resolver)(passthrough(&got))

	req := httptest.NewRequest("GET", "/api/admin/hospital", nil)
	ctx := context.WithValue(req.Context(), identityKey, &entities.Identity{UserID: "u1"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req.WithContext(ctx))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_BindsHospitalIntoContext(t *testing.T) {
	var got *http.Request
	hospID := "hosp-1"
	resolver := &stubResolver{assignment: &entities.RoleAssignment{Role: entities.RoleAdmin, HospitalID: &hospID}}
	handler := RequireAdmin(resolver)(passthrough(&got))

	req := httptest.NewRequest("GET", "/api/admin/hospital", nil)
	ctx := context.WithValue(req.Context(), identityKey, &entities.Identity{UserID: "u1"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req.WithContext(ctx))

	require.Equal(t, http.StatusOK, w.Code)
	bound, ok := AdminHospitalFromContext(got.Context())
	require.True(t, ok)
	assert.Equal(t, "hosp-1", bound)
}

func TestRequireAdmin_AnonymousUnauthorized(t *testing.T) {
	var got *http.Request
	resolver := &stubResolver{assignment: &entities.RoleAssignment{Role: entities.RoleAdmin}}
	handler := RequireAdmin(resolver)(passthrough(&got))

	req := httptest.NewRequest("GET", "/api/admin/hospital", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
