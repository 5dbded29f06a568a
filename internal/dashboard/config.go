package dashboard

import (
	"github.com/seaboard/dashkit/pkg/httpserver"
)

// Config is the service configuration loaded from the environment.
type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	AppName     string `env:"APP_NAME" envDefault:"dashkit"`
	PanelsFile  string `env:"DASHBOARD_PANELS_FILE" envDefault:"panels.yaml"`
	MetricsPath string `env:"METRICS_PATH" envDefault:"/metrics"`
	ChartJSURL  string `env:"CHARTJS_URL" envDefault:"https://cdn.jsdelivr.net/npm/chart.js@4"`

	HTTP httpserver.Config
}
