package routes

import (
	"net/http"

	"github.com/medlocate/medlocate-backend/internal/api/handlers"
	"github.com/medlocate/medlocate-backend/internal/api/middleware"
	"github.com/medlocate/medlocate-backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	hospitalHandler    *handlers.HospitalHandler
	authHandler        *handlers.AuthHandler
	adminHandler       *handlers.AdminHandler
	sseHandler         *handlers.SSEHandler
	geolocationHandler *handlers.GeolocationHandler

	verifier    middleware.TokenVerifier
	resolver    middleware.RoleResolver
	rateLimiter *middleware.RateLimiter
	metrics     *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	hospitalHandler *handlers.HospitalHandler,
	authHandler *handlers.AuthHandler,
	adminHandler *handlers.AdminHandler,
	sseHandler *handlers.SSEHandler,
	geolocationHandler *handlers.GeolocationHandler,
	verifier middleware.TokenVerifier,
	resolver middleware.RoleResolver,
	rateLimiter *middleware.RateLimiter,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		hospitalHandler:    hospitalHandler,
		authHandler:        authHandler,
		adminHandler:       adminHandler,
		sseHandler:         sseHandler,
		geolocationHandler: geolocationHandler,

		verifier:    verifier,
		resolver:    resolver,
		rateLimiter: rateLimiter,
		metrics:     metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	requireAdmin := middleware.RequireAdmin(r.resolver)
	admin := func(h http.HandlerFunc) http.Handler {
		return requireAdmin(h)
	}

	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Directory endpoints. The detail view changes shape with the
	// caller's session, gated inside the handler.
	r.mux.HandleFunc("GET /api/hospitals", r.hospitalHandler.ListHospitals)
	r.mux.HandleFunc("GET /api/hospitals/{id}", r.hospitalHandler.GetHospital)
	r.mux.HandleFunc("GET /api/hospitals/{id}/directions", r.hospitalHandler.GetDirections)

	// Auth endpoints. Credential endpoints are rate limited per IP.
	if r.rateLimiter != nil {
		r.mux.Handle("POST /api/auth/signup", r.rateLimiter.Limit(http.HandlerFunc(r.authHandler.SignUp)))
		r.mux.Handle("POST /api/auth/login", r.rateLimiter.Limit(http.HandlerFunc(r.authHandler.Login)))
	} else {
		r.mux.HandleFunc("POST /api/auth/signup", r.authHandler.SignUp)
		r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)
	}
	r.mux.HandleFunc("POST /api/auth/refresh", r.authHandler.Refresh)
	r.mux.HandleFunc("POST /api/auth/logout", r.authHandler.Logout)
	r.mux.HandleFunc("GET /api/auth/me", r.authHandler.Me)

	// Admin endpoints, all scoped to the caller's bound hospital
	r.mux.Handle("GET /api/admin/hospital", admin(r.adminHandler.GetDashboard))
	r.mux.Handle("PUT /api/admin/hospital/emergency", admin(r.adminHandler.SetEmergencyAvailability))
	r.mux.Handle("PUT /api/admin/hospital/ot", admin(r.adminHandler.SetOTAvailability))
	r.mux.Handle("PUT /api/admin/hospital/beds", admin(r.adminHandler.UpdateBeds))
	r.mux.Handle("POST /api/admin/hospital/doctors", admin(r.adminHandler.AddDoctor))
	r.mux.Handle("PUT /api/admin/hospital/doctors/{doctorId}", admin(r.adminHandler.UpdateDoctor))
	r.mux.Handle("DELETE /api/admin/hospital/doctors/{doctorId}", admin(r.adminHandler.DeleteDoctor))

	// Change notification streams
	r.mux.HandleFunc("GET /api/stream/hospitals", r.sseHandler.StreamDirectoryUpdates)
	r.mux.HandleFunc("GET /api/stream/hospitals/{id}", r.sseHandler.StreamHospitalUpdates)

	// Geolocation endpoints
	r.mux.HandleFunc("GET /api/geocode", r.geolocationHandler.Geocode)
	r.mux.HandleFunc("GET /api/reverse-geocode", r.geolocationHandler.ReverseGeocode)

	// Apply middleware in reverse order (last middleware wraps first).
	// Authenticate runs inside logging so every handler sees the identity.
	var handler http.Handler = r.mux
	handler = middleware.Authenticate(r.verifier)(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so even rejected requests get headers
	handler = middleware.CORSMiddleware(handler)

	return handler
}
