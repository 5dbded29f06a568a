package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/seaboard/dashkit/chart"
	"github.com/seaboard/dashkit/handler"
	"github.com/seaboard/dashkit/pkg/binder"
	"github.com/seaboard/dashkit/pkg/environment"
	"github.com/seaboard/dashkit/pkg/httpserver"
	"github.com/seaboard/dashkit/pkg/logger"
	"github.com/seaboard/dashkit/pkg/requestid"
	"github.com/seaboard/dashkit/userform"
)

// Service serves the dashboard pages, panel endpoints and the user form.
type Service struct {
	catalog     *Catalog
	log         *slog.Logger
	metrics     *Metrics
	gatherer    prometheus.Gatherer
	env         environment.Environment
	title       string
	chartJSURL  string
	metricsPath string
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRegistry registers the service metrics with reg and serves reg on the
// metrics path.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Service) {
		if reg != nil {
			s.metrics = NewMetrics(reg)
			s.gatherer = reg
		}
	}
}

func WithEnvironment(env environment.Environment) Option {
	return func(s *Service) { s.env = env }
}

func WithTitle(title string) Option {
	return func(s *Service) {
		if title != "" {
			s.title = title
		}
	}
}

func WithChartJSURL(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.chartJSURL = url
		}
	}
}

// WithMetricsPath sets where metrics are served. Empty disables the endpoint.
func WithMetricsPath(path string) Option {
	return func(s *Service) { s.metricsPath = path }
}

// New returns a Service for catalog.
func New(catalog *Catalog, opts ...Option) (*Service, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	reg := prometheus.NewRegistry()
	s := &Service{
		catalog:     catalog,
		log:         logger.Discard(),
		metrics:     NewMetrics(reg),
		gatherer:    reg,
		env:         environment.Development,
		title:       "Dashboard",
		chartJSURL:  "https://cdn.jsdelivr.net/npm/chart.js@4",
		metricsPath: "/metrics",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Router mounts every route on a chi router.
func (s *Service) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, environment.Middleware(s.env))

	errHandler := handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
		ErrorPage:  ErrorPage,
		ErrorToast: ErrorToast,
	})

	r.Get("/", handler.Wrap(s.index,
		handler.WithDecorators(timed[struct{}](s.metrics, "index")),
		handler.WithErrorHandler[handler.Context, struct{}](errHandler)))

	r.Route("/panels/{id}", func(r chi.Router) {
		r.Get("/", handler.Wrap(s.showPanel,
			handler.WithDecorators(timed[panelRequest](s.metrics, "panel")),
			handler.WithBinders[handler.Context, panelRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, panelRequest](errHandler)))
		r.Get("/config", handler.Wrap(s.panelConfig,
			handler.WithDecorators(timed[panelRequest](s.metrics, "panel_config")),
			handler.WithBinders[handler.Context, panelRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, panelRequest](jsonErrorHandler)))
		r.Post("/events", handler.Wrap(s.panelEvent,
			handler.WithDecorators(timed[eventRequest](s.metrics, "panel_events")),
			handler.WithBinders[handler.Context, eventRequest](binder.Path(chi.URLParam), binder.JSON()),
			handler.WithErrorHandler[handler.Context, eventRequest](jsonErrorHandler)))
	})

	r.Get("/users/new", handler.Wrap(s.newUser,
		handler.WithDecorators(timed[struct{}](s.metrics, "user_new")),
		handler.WithErrorHandler[handler.Context, struct{}](errHandler)))
	r.Post("/users", handler.Wrap(s.createUser,
		handler.WithDecorators(timed[userform.Form](s.metrics, "user_create")),
		handler.WithBinders[handler.Context, userform.Form](binder.Form()),
		handler.WithErrorHandler[handler.Context, userform.Form](errHandler)))

	r.Get("/health", httpserver.HealthCheckHandler(s.log, s.ready))
	r.Method(http.MethodGet, chart.ScriptPath, chart.ScriptHandler())
	if s.metricsPath != "" {
		r.Method(http.MethodGet, s.metricsPath, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

func (s *Service) ready(context.Context) error {
	return s.catalog.Validate()
}

// jsonErrorHandler renders errors of JSON endpoints as a JSON envelope.
func jsonErrorHandler(ctx handler.Context, err error) {
	_ = handler.JSONError(err).Render(ctx.ResponseWriter(), ctx.Request())
}
