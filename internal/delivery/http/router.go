package http

import (
	"net/http"

	"healthcare-admin-portal/internal/delivery/http/handler"
	"healthcare-admin-portal/internal/delivery/http/middleware"
	"healthcare-admin-portal/internal/delivery/http/view"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router                    *mux.Router
	log                       *logrus.Logger
	homeHandler               *handler.HomeHandler
	registrationHandler       *handler.RegistrationHandler
	doctorHandler             *handler.DoctorHandler
	appointmentHandler        *handler.AppointmentHandler
	billingHandler            *handler.BillingHandler
	healthHandler             *handler.HealthHandler
	notFoundHandler           *handler.NotFoundHandler
	sessionMiddleware         *middleware.SessionMiddleware
	securityHeadersMiddleware *middleware.SecurityHeadersMiddleware
	requestMetrics            middleware.RequestMetrics
	metricsHandler            http.Handler
}

func NewRouter(
	log *logrus.Logger,
	homeHandler *handler.HomeHandler,
	registrationHandler *handler.RegistrationHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	billingHandler *handler.BillingHandler,
	healthHandler *handler.HealthHandler,
	notFoundHandler *handler.NotFoundHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	securityHeadersMiddleware *middleware.SecurityHeadersMiddleware,
	requestMetrics middleware.RequestMetrics,
	metricsHandler http.Handler,
) *Router {
	return &Router{
		router:                    mux.NewRouter(),
		log:                       log,
		homeHandler:               homeHandler,
		registrationHandler:       registrationHandler,
		doctorHandler:             doctorHandler,
		appointmentHandler:        appointmentHandler,
		billingHandler:            billingHandler,
		healthHandler:             healthHandler,
		notFoundHandler:           notFoundHandler,
		sessionMiddleware:         sessionMiddleware,
		securityHeadersMiddleware: securityHeadersMiddleware,
		requestMetrics:            requestMetrics,
		metricsHandler:            metricsHandler,
	}
}

func (r *Router) Setup() *mux.Router {
	requestLogger := middleware.RequestLogger(r.log, r.requestMetrics)

	// Operational endpoints
	r.router.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)
	r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)
	r.router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", view.StaticHandler())).Methods(http.MethodGet)

	// Portal pages
	pages := r.router.NewRoute().Subrouter()
	pages.Use(r.sessionMiddleware.Handle)

	pages.HandleFunc("/", r.homeHandler.Show).Methods(http.MethodGet)

	pages.HandleFunc("/register", r.registrationHandler.Show).Methods(http.MethodGet)
	pages.HandleFunc("/register", r.registrationHandler.Register).Methods(http.MethodPost)
	pages.HandleFunc("/register/doctor-profile", r.registrationHandler.CompleteDoctorProfile).Methods(http.MethodPost)

	pages.HandleFunc("/doctors", r.doctorHandler.List).Methods(http.MethodGet)
	pages.HandleFunc("/doctors/filter", r.doctorHandler.Filter).Methods(http.MethodGet)

	pages.HandleFunc("/appointments", r.appointmentHandler.Show).Methods(http.MethodGet)
	pages.HandleFunc("/appointments", r.appointmentHandler.Book).Methods(http.MethodPost)

	pages.HandleFunc("/billing", r.billingHandler.Show).Methods(http.MethodGet)
	pages.HandleFunc("/billing", r.billingHandler.Lookup).Methods(http.MethodPost)

	// Unmatched routes bypass router middleware, so wrap the 404 page here.
	r.router.NotFoundHandler = r.securityHeadersMiddleware.Handle(requestLogger(r.notFoundHandler))
	r.router.MethodNotAllowedHandler = r.securityHeadersMiddleware.Handle(requestLogger(http.HandlerFunc(r.notFoundHandler.MethodNotAllowed)))

	r.router.Use(requestLogger)
	r.router.Use(r.securityHeadersMiddleware.Handle)

	return r.router
}
