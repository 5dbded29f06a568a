// Package main provides the dashkit binary: the dashboard server and
// offline helpers for panels and the user form.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seaboard/dashkit/internal/dashboard"
	"github.com/seaboard/dashkit/pkg/config"
)

const appName = "dashkit"

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var panelsFile string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Chart panel dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&panelsFile, "panels", "p", "", "Panel catalog file (YAML), overrides DASHBOARD_PANELS_FILE")

	load := func() (dashboard.Config, *dashboard.Catalog, error) {
		var cfg dashboard.Config
		if err := config.Load(&cfg); err != nil {
			return cfg, nil, err
		}
		if panelsFile != "" {
			cfg.PanelsFile = panelsFile
		}
		catalog, err := dashboard.LoadCatalog(cfg.PanelsFile)
		return cfg, catalog, err
	}

	cmd.AddCommand(
		serveCmd(load),
		renderCmd(load),
		optionsCmd(load),
		validateUserCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, _ []string) {
				cmd.Printf("%s version %s\n", appName, version)
			},
		},
	)
	return cmd
}

type loader func() (dashboard.Config, *dashboard.Catalog, error)
