package cli

import (
	"encoding/json"
	"errors"

	"github.com/GlitchedDuck/Manager-hub/internal/model"
	"github.com/spf13/cobra"
)

func newReportCommand(e *env) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the period report as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 0 {
				return errors.New("--window must not be negative")
			}
			svc, err := e.services(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, svc.Reports.Report(model.Window(days)))
		},
	}
	cmd.Flags().IntVarP(&days, "window", "w", int(model.Last30Days), "Trailing window in days (0 = all time)")

	var limit int
	attention := &cobra.Command{
		Use:   "attention",
		Short: "List Not Started and Overdue actions, earliest due first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.services(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, svc.Reports.RequiresAttention(limit))
		},
	}
	attention.Flags().IntVarP(&limit, "limit", "n", 5, "Maximum actions to list")

	dashboard := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the dashboard summary as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.services(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, svc.Reports.Dashboard())
		},
	}

	cmd.AddCommand(attention, dashboard)
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(stdout(cmd))
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
