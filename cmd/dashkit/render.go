package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seaboard/dashkit/chart"
	"github.com/seaboard/dashkit/internal/dashboard"
)

func panelFrom(load loader, id string) (chart.Inputs, error) {
	_, catalog, err := load()
	if err != nil {
		return chart.Inputs{}, err
	}
	def, ok := catalog.Get(id)
	if !ok {
		return chart.Inputs{}, fmt.Errorf("%w: %q", dashboard.ErrPanelNotFound, id)
	}
	return def.Inputs(), nil
}

func renderCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "render <panel>",
		Short: "Write a panel's HTML to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := panelFrom(load, args[0])
			if err != nil {
				return err
			}
			return chart.Panel(in).Render(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func optionsCmd(load loader) *cobra.Command {
	var optionsOnly bool

	cmd := &cobra.Command{
		Use:   "options <panel>",
		Short: "Print the derived chart config as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := panelFrom(load, args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if optionsOnly {
				return enc.Encode(chart.BuildOptions(in))
			}
			return enc.Encode(chart.BuildConfig(in))
		},
	}
	cmd.Flags().BoolVar(&optionsOnly, "options-only", false, "Print only the options object")
	return cmd
}
