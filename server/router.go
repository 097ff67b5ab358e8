package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers is the set of endpoints the router exposes.
type Handlers interface {
	Ask(w http.ResponseWriter, r *http.Request)
	GetZones(w http.ResponseWriter, r *http.Request)
	GetPrayerTimes(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	handlers Handlers
	router   *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(handlers Handlers, router *mux.Router) *Router {
	return &Router{
		handlers: handlers,
		router:   router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(requestLogger())

	// expects {"text": "..."}
	r.router.HandleFunc("/v1/ask", r.handlers.Ask).Methods("POST")
	r.router.HandleFunc("/v1/zones", r.handlers.GetZones).Methods("GET")
	// expects ?zone={zone code}&date={YYYY-MM-DD}, both optional
	r.router.HandleFunc("/v1/times", r.handlers.GetPrayerTimes).Methods("GET")

	r.router.HandleFunc("/ping", r.handlers.Ping).Methods("GET")
	r.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}
