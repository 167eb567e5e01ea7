package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/suryalovesjs/dema-inventory-service/api/controllers"
	"github.com/suryalovesjs/dema-inventory-service/api/middleware"
	"github.com/suryalovesjs/dema-inventory-service/pkg/config"
	"github.com/suryalovesjs/dema-inventory-service/pkg/db"
	"github.com/suryalovesjs/dema-inventory-service/pkg/logger"
	"github.com/suryalovesjs/dema-inventory-service/pkg/metrics"
)

// NewRouter assembles the HTTP surface: the GraphQL endpoint plus the
// health and metrics sidecar routes.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	schema *graphql.Schema,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	var reg prometheus.Registerer
	if registry != nil {
		reg = registry
	}
	httpMetrics := metrics.NewHTTPMetrics(reg)

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		httpMetrics.Middleware,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Handle(cfg.GraphQL.Path, &relay.Handler{Schema: schema})

	return r
}
