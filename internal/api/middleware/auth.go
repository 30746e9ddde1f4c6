package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/medlocate/medlocate-backend/internal/domain/entities"
)

type ctxKey string

const (
	identityKey      ctxKey = "identity"
	assignmentKey    ctxKey = "role_assignment"
	adminHospitalKey ctxKey = "admin_hospital"
)

// TokenVerifier validates a signed access token
type TokenVerifier interface {
	VerifyAccessToken(raw string) (*entities.Identity, error)
}

// RoleResolver computes the effective role of a user
type RoleResolver interface {
	ResolveRole(ctx context.Context, userID string) (*entities.RoleAssignment, error)
}

// Authenticate attaches the caller's identity to the request context when a
// valid bearer token is presented. Requests without a token pass through
// anonymous; a malformed or expired token is rejected.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := verifier.VerifyAccessToken(raw)
			if err != nil {
				denyJSON(w, http.StatusUnauthorized, "invalid or expired access token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests. Must run after Authenticate.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			denyJSON(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects callers whose effective role is not admin. The
// resolved assignment, including the bound hospital, is attached to the
// request context. Must run after Authenticate.
func RequireAdmin(resolver RoleResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				denyJSON(w, http.StatusUnauthorized, "authentication required")
				return
			}

			assignment, err := resolver.ResolveRole(r.Context(), identity.UserID)
			if err != nil {
				denyJSON(w, http.StatusInternalServerError, "failed to resolve role")
				return
			}
			if assignment.Role != entities.RoleAdmin {
				denyJSON(w, http.StatusForbidden, "admin access required")
				return
			}

			ctx := context.WithValue(r.Context(), assignmentKey, assignment)
			if assignment.HospitalID != nil {
				ctx = context.WithValue(ctx, adminHospitalKey, *assignment.HospitalID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the authenticated caller, if any
func IdentityFromContext(ctx context.Context) (*entities.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*entities.Identity)
	return identity, ok
}

// AssignmentFromContext returns the resolved role assignment set by
// RequireAdmin
func AssignmentFromContext(ctx context.Context) (*entities.RoleAssignment, bool) {
	assignment, ok := ctx.Value(assignmentKey).(*entities.RoleAssignment)
	return assignment, ok
}

// AdminHospitalFromContext returns the hospital bound to the admin caller.
// Absent when the admin row has no hospital binding.
func AdminHospitalFromContext(ctx context.Context) (string, bool) {
	hospitalID, ok := ctx.Value(adminHospitalKey).(string)
	return hospitalID, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func denyJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
