package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Alberto-Moura/pedidos-backend/api/controllers"
	"github.com/Alberto-Moura/pedidos-backend/api/middleware"
	"github.com/Alberto-Moura/pedidos-backend/internal/capture"
	"github.com/Alberto-Moura/pedidos-backend/internal/catalog"
	"github.com/Alberto-Moura/pedidos-backend/pkg/config"
	"github.com/Alberto-Moura/pedidos-backend/pkg/logger"
	"github.com/Alberto-Moura/pedidos-backend/pkg/redis"
)

// NewRouter assembles the order-capture API.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	catalogService *catalog.Service,
	captureService *capture.Service,
	sessionBackend *redis.Client,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		if sessionBackend != nil {
			r.Get("/ready", controllers.HealthReady(cfg, logg, sessionBackend))
		} else {
			r.Get("/ready", controllers.HealthReady(cfg, logg, nil))
		}
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/variants", controllers.CatalogVariants(captureService, catalogService, logg))
			r.Get("/franchisees", controllers.CatalogFranchisees(catalogService, logg))
			r.Get("/payment-conditions", controllers.CatalogPaymentConditions())
		})

		r.Route("/order", func(r chi.Router) {
			r.Put("/draft", controllers.OrderDraftUpsert(captureService, logg))
			r.Post("/build", controllers.OrderBuild(captureService, logg))
			r.Get("/", controllers.OrderFetch(captureService, logg))
			r.Get("/summary", controllers.OrderSummary(captureService, logg))
			r.Get("/export", controllers.OrderExport(captureService, logg))
		})
	})

	return r
}
