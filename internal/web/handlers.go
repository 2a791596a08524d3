package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/idilsaglam/showcase/internal/model"
	"github.com/idilsaglam/showcase/internal/showcase"
)

// htmxHeader marks partial update requests.
const htmxHeader = "HX-Request"

// ProjectHandler serves the showcase page and its status fragment.
type ProjectHandler struct {
	src showcase.Source
	log *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(src showcase.Source, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{src: src, log: logger}
}

// Index handles GET / - the shell page, status still initial
func (h *ProjectHandler) Index(w http.ResponseWriter, r *http.Request) {
	category, ok := categoryParam(w, r)
	if !ok {
		return
	}
	ctrl := showcase.New(category)
	render(w, r, http.StatusOK, page(pageView{
		Category: ctrl.Category(),
		Status:   ctrl.Status(),
		Autoload: true,
	}))
}

// ListProjects handles GET /projects?category=X
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	category, ok := categoryParam(w, r)
	if !ok {
		return
	}
	ctrl := showcase.New(category)
	if err := ctrl.Fetch(r.Context(), h.src); err != nil {
		h.log.Warn("fetch failed", "category", category, "err", err)
	}

	v := pageView{
		Category: ctrl.Category(),
		Status:   ctrl.Status(),
		Projects: ctrl.Projects(),
	}
	if isHTMXRequest(r) {
		// htmx only swaps 2xx answers
		render(w, r, http.StatusOK, statusFragment(v))
		return
	}
	status := http.StatusOK
	if v.Status == model.StatusFailure {
		status = http.StatusBadGateway
	}
	render(w, r, status, page(v))
}

// categoryParam reads ?category=, defaulting to ALL. It answers 400 itself
// for unknown values.
func categoryParam(w http.ResponseWriter, r *http.Request) (model.Category, bool) {
	raw := r.URL.Query().Get("category")
	if raw == "" {
		return model.DefaultCategory, true
	}
	c, err := model.ParseCategory(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", false
	}
	return c, true
}

func isHTMXRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(htmxHeader), "true")
}

func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
