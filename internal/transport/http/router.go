package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gppgateway/internal/platform/config"
	"gppgateway/internal/platform/metrics"
	"gppgateway/internal/platform/middleware"
	"gppgateway/internal/platform/tracing"
	"gppgateway/pkg/platform/httputil"
)

// APIPrefix is where the gateway operations are mounted.
const APIPrefix = "/api/v1"

// Registrar is implemented by feature handlers.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports whether a backing dependency is usable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps carries what the router needs besides the feature handlers.
type Deps struct {
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer
	CORS         config.CORS
	MaxBodyBytes int64
	// Health is optional; when set, /health reports 503 while it fails.
	Health HealthChecker
}

// NewRouter wires the middleware chain, the operational endpoints at the root
// and every feature handler under APIPrefix.
func NewRouter(deps Deps, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(tracing.Middleware)
	r.Use(middleware.AccessLog(deps.Logger, deps.Metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.CORS.AllowedOrigins,
		AllowedMethods: deps.CORS.AllowedMethods,
		AllowedHeaders: deps.CORS.AllowedHeaders,
		ExposedHeaders: []string{middleware.HeaderRequestID},
		MaxAge:         300,
	}))

	r.Get("/health", healthHandler(deps.Health))
	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route(APIPrefix, func(api chi.Router) {
		if deps.MaxBodyBytes > 0 {
			api.Use(middleware.MaxBody(deps.MaxBodyBytes))
		}
		for _, h := range handlers {
			h.Register(api)
		}
	})
	return r
}

func healthHandler(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := checker.Health(ctx); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
