package cli

import (
	"fmt"

	"github.com/GlitchedDuck/Manager-hub/internal/model"
	"github.com/GlitchedDuck/Manager-hub/internal/seed"
	"github.com/spf13/cobra"
)

func newSeedCommand(e *env) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write sample data",
		Long:  `Write a sample data set for the default team. Refuses to run against a store that already holds records unless --force is given.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.services(cmd.Context())
			if err != nil {
				return err
			}
			sum, err := seed.Run(cmd.Context(), svc, force)
			if err != nil {
				return err
			}
			for _, kind := range model.Kinds {
				if n, ok := sum[kind]; ok {
					fmt.Fprintf(stdout(cmd), "%-20s %d\n", kind, n)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Seed even when records already exist")

	return cmd
}
