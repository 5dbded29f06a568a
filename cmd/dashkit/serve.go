package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/seaboard/dashkit/internal/dashboard"
	"github.com/seaboard/dashkit/pkg/environment"
	"github.com/seaboard/dashkit/pkg/httpserver"
	"github.com/seaboard/dashkit/pkg/logger"
	"github.com/seaboard/dashkit/pkg/requestid"
)

func serveCmd(load loader) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, catalog, err := load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			env := environment.Parse(cfg.Env)
			log := logger.New(
				logger.WithEnvironment(env, cfg.AppName),
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithContextExtractors(requestid.LoggerExtractor(), environment.LoggerExtractor()),
			)
			logger.SetAsDefault(log)

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			svc, err := dashboard.New(catalog,
				dashboard.WithLogger(log),
				dashboard.WithRegistry(reg),
				dashboard.WithEnvironment(env),
				dashboard.WithTitle(cfg.AppName),
				dashboard.WithChartJSURL(cfg.ChartJSURL),
				dashboard.WithMetricsPath(cfg.MetricsPath),
			)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.InfoContext(ctx, "catalog loaded", logger.Component("cli"), logger.Event("catalog_loaded"))
			return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, svc.Router())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides HTTP_ADDR")
	return cmd
}

