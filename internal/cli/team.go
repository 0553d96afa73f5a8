package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTeamCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Show or change the team roster",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List team members",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := e.services(cmd.Context())
				if err != nil {
					return err
				}
				for _, name := range svc.Roster.Members() {
					fmt.Fprintln(stdout(cmd), name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <name>",
			Short: "Add a team member",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := e.services(cmd.Context())
				if err != nil {
					return err
				}
				members, err := svc.Roster.Add(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(stdout(cmd), "%d members\n", len(members))
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <name>",
			Short: "Remove a team member; their records are kept",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := e.services(cmd.Context())
				if err != nil {
					return err
				}
				members, err := svc.Roster.Remove(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(stdout(cmd), "%d members\n", len(members))
				return nil
			},
		},
	)

	return cmd
}
