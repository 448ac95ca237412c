package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ViewHandler serves the energy view page and its form actions.
type ViewHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Smooth(w http.ResponseWriter, r *http.Request)
	Optimize(w http.ResponseWriter, r *http.Request)
	ChartJSON(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	viewHandler ViewHandler
	router      *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	viewHandler ViewHandler,
	router *mux.Router) *Router {
	return &Router{
		viewHandler: viewHandler,
		router:      router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/", r.viewHandler.Index).Methods("GET")

	// both expect the page form: sessionId, data and the five parameter fields
	r.router.HandleFunc("/smooth", r.viewHandler.Smooth).Methods("POST")
	r.router.HandleFunc("/optimize", r.viewHandler.Optimize).Methods("POST")

	// expects ?sessionId={uuid}
	r.router.HandleFunc("/chart.json", r.viewHandler.ChartJSON).Methods("GET")

	r.router.HandleFunc("/ping", r.viewHandler.Ping).Methods("GET")
}
