package http

import (
	"net/http"

	"dental-office-backend/internal/delivery/http/handler"
	"dental-office-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	patientHandler     *handler.PatientHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	patientHandler *handler.PatientHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		patientHandler:     patientHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Doctor directory (public)
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Authenticated routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Availability
	protected.HandleFunc("/doctors/{id}/slots", r.appointmentHandler.GetDaySlots).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}/availability", r.doctorHandler.ListAvailabilityRules).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}/time-off", r.doctorHandler.ListTimeOff).Methods(http.MethodGet)

	// Doctor-day schedule view and schedule management (staff only)
	staff := api.PathPrefix("/doctors").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)
	staff.HandleFunc("/{id}/schedule", r.doctorHandler.GetSchedule).Methods(http.MethodGet)
	staff.HandleFunc("/{id}/availability", r.doctorHandler.UpsertAvailabilityRule).Methods(http.MethodPut)
	staff.HandleFunc("/{id}/time-off", r.doctorHandler.AddTimeOff).Methods(http.MethodPost)

	// Appointments
	protected.HandleFunc("/appointments/check-availability", r.appointmentHandler.CheckAvailability).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)

	// Patient views
	protected.HandleFunc("/patients/{id}/appointments", r.patientHandler.GetAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}/medical-records", r.patientHandler.ListMedicalRecords).Methods(http.MethodGet)

	// Medical record writes (staff only)
	staffPatients := api.PathPrefix("/patients").Subrouter()
	staffPatients.Use(r.authMiddleware.Authenticate)
	staffPatients.Use(middleware.RequireStaff)
	staffPatients.HandleFunc("/{id}/medical-records", r.patientHandler.CreateMedicalRecord).Methods(http.MethodPost)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
