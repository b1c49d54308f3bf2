package http

import (
	"net/http"

	"hospital-management-api/internal/delivery/http/handler"
	"hospital-management-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	authHandler    *handler.AuthHandler
	adminHandler   *handler.AdminHandler
	patientHandler *handler.PatientHandler
	doctorHandler  *handler.DoctorHandler
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
	rateLimiter    *middleware.RateLimiter
}

func NewRouter(
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		authHandler:    authHandler,
		adminHandler:   adminHandler,
		patientHandler: patientHandler,
		doctorHandler:  doctorHandler,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
		rateLimiter:    rateLimiter,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public, credential endpoints rate limited)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(r.rateLimiter.Handle)
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/dashboard", r.adminHandler.Dashboard).Methods(http.MethodGet)
	admin.HandleFunc("/doctors", r.adminHandler.CreateDoctor).Methods(http.MethodPost)

	// Patient routes
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/dashboard", r.patientHandler.Dashboard).Methods(http.MethodGet)
	patient.HandleFunc("/doctors/{doctorId}/appointments", r.patientHandler.BookAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/appointments/{id}", r.patientHandler.CancelAppointment).Methods(http.MethodDelete)

	// Doctor routes
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/dashboard", r.doctorHandler.Dashboard).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}/treatment", r.doctorHandler.UpdateTreatment).Methods(http.MethodPut)
	doctor.HandleFunc("/availability", r.doctorHandler.SetAvailability).Methods(http.MethodPut)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
