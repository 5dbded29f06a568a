package dashboard

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/seaboard/dashkit/handler"
)

// Metrics counts dashboard activity.
type Metrics struct {
	PanelRenders    *prometheus.CounterVec
	ChartEvents     *prometheus.CounterVec
	UserValidations *prometheus.CounterVec
	HandlerDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PanelRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashkit",
			Name:      "panel_renders_total",
			Help:      "Chart panels rendered, by panel id.",
		}, []string{"panel"}),
		ChartEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashkit",
			Name:      "chart_events_total",
			Help:      "Chart click events dispatched, by panel id and kind.",
		}, []string{"panel", "kind"}),
		UserValidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashkit",
			Name:      "user_validations_total",
			Help:      "User form submissions, by outcome.",
		}, []string{"result"}),
		HandlerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dashkit",
			Name:      "handler_duration_seconds",
			Help:      "Time spent in route handlers, by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	if reg != nil {
		reg.MustRegister(m.PanelRenders, m.ChartEvents, m.UserValidations, m.HandlerDuration)
	}
	return m
}

func (m *Metrics) panelRendered(id string) {
	m.PanelRenders.WithLabelValues(id).Inc()
}

func (m *Metrics) chartEvent(id, kind string) {
	m.ChartEvents.WithLabelValues(id, kind).Inc()
}

func (m *Metrics) userValidated(ok bool) {
	result := "invalid"
	if ok {
		result = "valid"
	}
	m.UserValidations.WithLabelValues(result).Inc()
}

// timed records how long the wrapped handler takes to build its response.
func timed[R any](m *Metrics, route string) handler.Decorator[handler.Context, R] {
	observer := m.HandlerDuration.WithLabelValues(route)
	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		return func(ctx handler.Context, req R) handler.Response {
			start := time.Now()
			defer func() { observer.Observe(time.Since(start).Seconds()) }()
			return next(ctx, req)
		}
	}
}
