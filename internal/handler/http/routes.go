package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, h.withCORS())

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	// promhttp negotiates its own compression
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{Registry: h.registry}))

	router.Route("/api", func(r chi.Router) {
		r.Use(h.withGZip)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		// public routes
		r.Group(func(r chi.Router) {
			public := SkipTokenVerification()

			r.Get("/health", h.manage("HealthController.health", h.health, public))
			r.Get("/events", h.manage("EventController.listEvents", h.listEvents, public))
			r.Get("/events/{"+eventIDParam+"}", h.manage("EventController.getEvent", h.getEvent, public))
		})

		// routes with token verification
		r.Group(func(r chi.Router) {
			r.Post("/events", h.manage("EventAdminController.createEvent", h.createEvent))

			r.Post("/tickets", h.manage("TicketController.purchase", h.purchase))
			r.Get("/tickets", h.manage("TicketController.listTickets", h.listTickets))
			r.Get("/tickets/{"+ticketNoParam+"}", h.manage("TicketController.getTicket", h.getTicket))
			r.Delete("/tickets/{"+ticketNoParam+"}", h.manage("TicketController.cancel", h.cancel))
		})
	})

	return router
}
