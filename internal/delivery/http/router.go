package http

import (
	"net/http"

	"clinic-agenda/internal/delivery/http/handler"
	"clinic-agenda/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	settingsHandler *handler.AgendaSettingsHandler
	blockedHandler  *handler.BlockedDateHandler
	roomHandler     *handler.ConsultorioHandler
	slotHandler     *handler.SlotHandler
	apptHandler     *handler.AppointmentHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	settingsHandler *handler.AgendaSettingsHandler,
	blockedHandler *handler.BlockedDateHandler,
	roomHandler *handler.ConsultorioHandler,
	slotHandler *handler.SlotHandler,
	apptHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		settingsHandler: settingsHandler,
		blockedHandler:  blockedHandler,
		roomHandler:     roomHandler,
		slotHandler:     slotHandler,
		apptHandler:     apptHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/agenda/settings", r.settingsHandler.GetSettings).Methods(http.MethodGet)
	admin.HandleFunc("/agenda/settings", r.settingsHandler.UpdateSettings).Methods(http.MethodPut)
	admin.HandleFunc("/agenda/blocked-dates", r.blockedHandler.ListBlockedDates).Methods(http.MethodGet)
	admin.HandleFunc("/agenda/blocked-dates", r.blockedHandler.CreateBlockedDate).Methods(http.MethodPost)
	admin.HandleFunc("/agenda/blocked-dates/{id}", r.blockedHandler.DeleteBlockedDate).Methods(http.MethodDelete)
	admin.HandleFunc("/consultorios", r.roomHandler.ListConsultorios).Methods(http.MethodGet)
	admin.HandleFunc("/consultorios", r.roomHandler.UpdateConsultorios).Methods(http.MethodPut)

	// Staff routes (protected - any authenticated clinic user)
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)

	staff.HandleFunc("/agenda/slots", r.slotHandler.GetSlots).Methods(http.MethodGet)
	staff.HandleFunc("/agenda/availability", r.slotHandler.GetAvailability).Methods(http.MethodGet)
	staff.HandleFunc("/appointments", r.apptHandler.ListAppointments).Methods(http.MethodGet)
	staff.HandleFunc("/appointments", r.apptHandler.CreateAppointment).Methods(http.MethodPost)
	staff.HandleFunc("/appointments/{id}/cancel", r.apptHandler.CancelAppointment).Methods(http.MethodPost)
	staff.HandleFunc("/appointments/{id}/reschedule", r.apptHandler.RescheduleAppointment).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
