package handlers

import (
	"bytes"
	"net/http"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"

	services "energy-viewer/service"
	"energy-viewer/session"
)

type ViewHandler struct {
	viewService *services.ViewService
}

func NewViewHandler(viewService *services.ViewService) *ViewHandler {
	return &ViewHandler{viewService: viewService}
}

// Index handles GET /, loading the dataset into a new session.
func (h *ViewHandler) Index(w http.ResponseWriter, r *http.Request) {
	view, err := h.viewService.Load(r.Context())
	h.writePage(w, view, err)
}

// Smooth handles POST /smooth, re-plotting with the posted parameters.
func (h *ViewHandler) Smooth(w http.ResponseWriter, r *http.Request) {
	state, ok := parseState(w, r)
	if !ok {
		return
	}
	view, err := h.viewService.Replot(r.Context(), state)
	h.writePage(w, view, err)
}

// Optimize handles POST /optimize.
func (h *ViewHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	state, ok := parseState(w, r)
	if !ok {
		return
	}
	view, err := h.viewService.Optimize(r.Context(), state)
	h.writePage(w, view, err)
}

// ChartJSON handles GET /chart.json?sessionId=, returning the session's current chart spec.
func (h *ViewHandler) ChartJSON(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(session.SESSION_ID_FIELD)
	spec, ok := h.viewService.CurrentSpec(id)
	if !ok {
		http.Error(w, "Unknown session "+session.SESSION_ID_FIELD, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(spec); err != nil {
		log.WithError(err).Println("[ViewHandler] Error encoding chart spec")
	}
}

// Ping handles GET /ping
func (h *ViewHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}

func parseState(w http.ResponseWriter, r *http.Request) (session.State, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return session.State{}, false
	}
	return session.FromForm(r.PostForm), true
}

func (h *ViewHandler) writePage(w http.ResponseWriter, view *services.View, err error) {
	if err != nil {
		log.WithError(err).Println("[ViewHandler] Error building view")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPageData(view, session.SESSION_ID_FIELD)); err != nil {
		log.WithError(err).Println("[ViewHandler] Error executing page template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
