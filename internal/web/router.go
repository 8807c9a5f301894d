package web

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/samvad-hq/defamation-console/internal/domain"
	"github.com/samvad-hq/defamation-console/internal/logger"
	"github.com/samvad-hq/defamation-console/pkg/httpclient"
)

// Views is the subset of the defamation API the view routes read from.
type Views interface {
	FetchModels(ctx context.Context) ([]domain.Model, error)
	FetchRecentCases(ctx context.Context, limit int, q string) (*domain.Page[domain.Case], error)
	FetchRecentModelCases(ctx context.Context, limit int, q string) (*domain.Page[domain.ClassificationRecord], error)
}

// DashboardView is served on "/".
type DashboardView struct {
	Models []domain.Model `json:"models"`
}

// RecentCasesView is served on "/cases".
type RecentCasesView struct {
	Cases      *domain.Page[domain.Case]                 `json:"cases"`
	ModelCases *domain.Page[domain.ClassificationRecord] `json:"model_cases"`
}

type handler struct {
	views Views
	log   logger.Logger
}

// NewRouter registers the dashboard and recent-cases routes.
func NewRouter(views Views, log logger.Logger) http.Handler {
	h := &handler{views: views, log: logger.Ensure(log)}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	r.Get("/", h.handleDashboard)
	r.Get("/cases", h.handleRecentCases)
	return r
}

func (h *handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	models, err := h.views.FetchModels(r.Context())
	if err != nil {
		h.writeUpstreamError(w, r, err)
		return
	}
	if models == nil {
		models = []domain.Model{}
	}
	writeJSON(w, http.StatusOK, DashboardView{Models: models})
}

func (h *handler) handleRecentCases(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	q := r.URL.Query().Get("q")

	var view RecentCasesView
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		page, err := h.views.FetchRecentCases(ctx, limit, q)
		view.Cases = page
		return err
	})
	g.Go(func() error {
		page, err := h.views.FetchRecentModelCases(ctx, limit, q)
		view.ModelCases = page
		return err
	})
	if err := g.Wait(); err != nil {
		h.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// writeUpstreamError maps an adapter failure to a gateway status. The failure
// itself was already logged by the request client.
func (h *handler) writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadGateway
	if httpclient.IsTimeout(err) {
		status = http.StatusGatewayTimeout
	}
	h.log.DebugObj("view request failed", "view_error", map[string]any{
		"path":            r.URL.Path,
		"request_id":      chimiddleware.GetReqID(r.Context()),
		"upstream_status": httpclient.StatusCode(err),
		"status":          status,
	})
	writeJSON(w, status, map[string]string{"message": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
