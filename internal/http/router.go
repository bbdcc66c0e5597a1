package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	nidhandler "egid/internal/nationalid/handler"
	platformmetrics "egid/internal/platform/metrics"
	"egid/pkg/platform/httputil"
	"egid/pkg/platform/middleware/requestid"
	"egid/pkg/platform/middleware/requesttime"
)

// Deps are the collaborators the router mounts.
type Deps struct {
	Logger     *slog.Logger
	NationalID nidhandler.Service
	Metrics    *platformmetrics.Metrics
	Gatherer   prometheus.Gatherer
}

// NewRouter wires all public endpoints. Handlers stay thin and delegate to
// services so transport concerns remain isolated.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	nidhandler.New(d.NationalID, d.Logger).Register(r)
	return r
}
