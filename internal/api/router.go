package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers"

	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers/admin_login"
	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers/check_availability"
	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers/create_booking"
	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers/delete_booking"
	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers/get_availability_range"
	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers/get_booking"
	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers/health"
	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers/list_bookings"
	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/WeddingSalon-BookingService/internal/api/middleware"
)

// Handlers HTTP обработчики всех маршрутов
type Handlers struct {
	Health              *health.Handler
	CheckAvailability   *check_availability.Handler
	AvailabilityRange   *get_availability_range.Handler
	CreateBooking       *create_booking.Handler
	AdminLogin          *admin_login.Handler
	ListBookings        *list_bookings.Handler
	GetBooking          *get_booking.Handler
	UpdateBookingStatus *update_booking_status.Handler
	DeleteBooking       *delete_booking.Handler
}

// RouterConfig инфраструктура роутера. Nil Metrics или Limiter выключают соответствующий middleware.
type RouterConfig struct {
	Auth           middleware.TokenParser
	Metrics        middleware.HTTPMetrics
	MetricsPath    string
	MetricsHandler http.Handler
	Limiter        middleware.Limiter
	TrustProxy     bool
	CORS           cors.Options
	Logger         middleware.Logger
}

// NewRouter собирает маршруты /api
func NewRouter(cfg RouterConfig, h Handlers) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Recovery(cfg.Logger))

	// r.Use не применяется к 404/405, их оборачиваем отдельно
	var notFound, methodNotAllowed http.Handler = http.HandlerFunc(routeNotFound), http.HandlerFunc(routeMethodNotAllowed)
	if cfg.Metrics != nil {
		track := middleware.MetricsMiddleware(cfg.Metrics)
		r.Use(track)
		notFound, methodNotAllowed = track(notFound), track(methodNotAllowed)
	}
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = methodNotAllowed

	if cfg.MetricsHandler != nil && cfg.MetricsPath != "" {
		r.Handle(cfg.MetricsPath, cfg.MetricsHandler).Methods(http.MethodGet)
	}

	admin := middleware.AdminAuth(cfg.Auth, cfg.Logger)
	limit := func(scope string, next http.HandlerFunc) http.Handler {
		if cfg.Limiter == nil {
			return next
		}
		return middleware.RateLimit(cfg.Limiter, scope, cfg.TrustProxy, cfg.Logger)(next)
	}

	api := r.PathPrefix("/api").Subrouter()

	// Public endpoints
	api.HandleFunc("/", h.Health.Root).Methods(http.MethodGet)
	api.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	api.HandleFunc("/availability", h.CheckAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/availability/range", h.AvailabilityRange.Handle).Methods(http.MethodGet)
	api.Handle("/bookings", limit("bookings", h.CreateBooking.Handle)).Methods(http.MethodPost)
	api.Handle("/admin/login", limit("login", h.AdminLogin.Handle)).Methods(http.MethodPost)

	// Admin endpoints
	api.Handle("/bookings", admin(http.HandlerFunc(h.ListBookings.Handle))).Methods(http.MethodGet)
	api.Handle("/bookings/{id}", admin(http.HandlerFunc(h.GetBooking.Handle))).Methods(http.MethodGet)
	api.Handle("/bookings/{id}", admin(http.HandlerFunc(h.UpdateBookingStatus.Handle))).Methods(http.MethodPut)
	api.Handle("/bookings/{id}", admin(http.HandlerFunc(h.DeleteBooking.Handle))).Methods(http.MethodDelete)

	return cors.New(cfg.CORS).Handler(r)
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondNotFound(w, "маршрут не найден")
}

func routeMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondError(w, http.StatusMethodNotAllowed, handlers.CodeMethodNotAllowed, "метод не поддерживается")
}
