package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/GlitchedDuck/Manager-hub/internal/export"
	"github.com/GlitchedDuck/Manager-hub/internal/model"
	"github.com/spf13/cobra"
)

func newExportCommand(e *env) *cobra.Command {
	var (
		format string
		out    string
		filter model.Filter
	)

	cmd := &cobra.Command{
		Use:   "export <collection>",
		Short: "Export a collection as CSV or XLSX",
		Long:  `Export one collection (checkins, actions, training, matrix, bookings, resources, team) to a file or stdout.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.services(cmd.Context())
			if err != nil {
				return err
			}
			table, err := svc.Export(args[0], filter)
			if err != nil {
				return err
			}

			if out == "" {
				return export.Write(stdout(cmd), table, format)
			}
			if err := writeFile(out, table, format); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d rows to %s\n", len(table.Rows), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", export.FormatCSV, "Output format (csv, xlsx)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&filter.Member, "member", "", "Only this team member")
	cmd.Flags().StringVar(&filter.Status, "status", "", "Only this status")
	cmd.Flags().IntVar(&filter.Days, "days", 0, "Only the last N days (0 = all time)")

	return cmd
}

// writeFile writes the table to path. A failed close is reported like a
// failed write, since buffered data may not have reached the disk.
func writeFile(path string, t export.Table, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return export.Write(f, t, format)
}
