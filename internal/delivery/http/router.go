package http

import (
	"net/http"

	"property-backoffice/internal/delivery/http/handler"
	"property-backoffice/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	appointmentHandler *handler.AppointmentHandler
	clientHandler      *handler.ClientHandler
	staffHandler       *handler.StaffHandler
	propertyHandler    *handler.PropertyHandler
	secretaryHandler   *handler.SecretaryHandler
	authHandler        *handler.AuthHandler
	auditLogHandler    *handler.AuditLogHandler
	healthHandler      *handler.HealthHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
	loginLimiter       *middleware.RateLimiter
}

func NewRouter(
	appointmentHandler *handler.AppointmentHandler,
	clientHandler *handler.ClientHandler,
	staffHandler *handler.StaffHandler,
	propertyHandler *handler.PropertyHandler,
	secretaryHandler *handler.SecretaryHandler,
	authHandler *handler.AuthHandler,
	auditLogHandler *handler.AuditLogHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	loginLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		appointmentHandler: appointmentHandler,
		clientHandler:      clientHandler,
		staffHandler:       staffHandler,
		propertyHandler:    propertyHandler,
		secretaryHandler:   secretaryHandler,
		authHandler:        authHandler,
		auditLogHandler:    auditLogHandler,
		healthHandler:      healthHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
		loginLimiter:       loginLimiter,
	}
}

// Setup registers every route and returns the handler to serve. CORS wraps
// the router itself so preflight requests never need a matching route.
func (r *Router) Setup() http.Handler {
	// Health check
	r.router.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Auth routes (public)
	auth := r.router.PathPrefix("/autenticacao").Subrouter()
	auth.Handle("/login", r.loginLimiter.Handle(http.HandlerFunc(r.authHandler.Login))).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := r.router.PathPrefix("/autenticacao").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentSecretary).Methods(http.MethodGet)
	authProtected.HandleFunc("/lembrar-me", r.authHandler.GetRememberMe).Methods(http.MethodGet)

	// Back-office routes. Public, but a valid token attributes audit entries.
	api := r.router.PathPrefix("/").Subrouter()
	api.Use(r.authMiddleware.OptionalAuthenticate)

	// Appointments
	api.HandleFunc("/consultas", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/consultas", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	api.HandleFunc("/consultas/export", r.appointmentHandler.ExportAppointments).Methods(http.MethodGet)
	api.HandleFunc("/consultas/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/consultas/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/consultas/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Clients
	api.HandleFunc("/pacientes", r.clientHandler.CreateClient).Methods(http.MethodPost)
	api.HandleFunc("/pacientes", r.clientHandler.GetAllClients).Methods(http.MethodGet)
	api.HandleFunc("/pacientes/{id}", r.clientHandler.GetClient).Methods(http.MethodGet)
	api.HandleFunc("/pacientes/{id}", r.clientHandler.UpdateClient).Methods(http.MethodPut)
	api.HandleFunc("/pacientes/{id}", r.clientHandler.DeleteClient).Methods(http.MethodDelete)

	// Staff
	api.HandleFunc("/medicos", r.staffHandler.CreateStaff).Methods(http.MethodPost)
	api.HandleFunc("/medicos", r.staffHandler.GetAllStaff).Methods(http.MethodGet)
	api.HandleFunc("/medicos/{id}", r.staffHandler.GetStaff).Methods(http.MethodGet)
	api.HandleFunc("/medicos/{id}", r.staffHandler.UpdateStaff).Methods(http.MethodPut)
	api.HandleFunc("/medicos/{id}", r.staffHandler.DeleteStaff).Methods(http.MethodDelete)

	// Properties
	api.HandleFunc("/cadastro-imoveis", r.propertyHandler.CreateProperty).Methods(http.MethodPost)
	api.HandleFunc("/cadastro-imoveis", r.propertyHandler.GetAllProperties).Methods(http.MethodGet)
	api.HandleFunc("/cadastro-imoveis/{id}", r.propertyHandler.GetProperty).Methods(http.MethodGet)
	api.HandleFunc("/cadastro-imoveis/{id}", r.propertyHandler.UpdateProperty).Methods(http.MethodPut)
	api.HandleFunc("/cadastro-imoveis/{id}", r.propertyHandler.DeleteProperty).Methods(http.MethodDelete)

	// Secretaries
	api.HandleFunc("/secretarios", r.secretaryHandler.CreateSecretary).Methods(http.MethodPost)
	api.HandleFunc("/secretarios", r.secretaryHandler.GetAllSecretaries).Methods(http.MethodGet)
	api.HandleFunc("/secretarios/{id}", r.secretaryHandler.GetSecretary).Methods(http.MethodGet)
	api.HandleFunc("/secretarios/{id}", r.secretaryHandler.UpdateSecretary).Methods(http.MethodPut)
	api.HandleFunc("/secretarios/{id}", r.secretaryHandler.DeleteSecretary).Methods(http.MethodDelete)

	// Audit logs
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	api.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	return r.loggingMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}
