// Package cli holds the hubctl commands: roster upkeep, exports, reports,
// seeding and password hashing, all run against the configured store.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/GlitchedDuck/Manager-hub/internal/config"
	"github.com/GlitchedDuck/Manager-hub/internal/logger"
	"github.com/GlitchedDuck/Manager-hub/internal/service"
	"github.com/GlitchedDuck/Manager-hub/internal/store"
	"github.com/spf13/cobra"
)

// env is shared by every subcommand of one root.
type env struct {
	configPath string
	cfg        *config.Config
}

func NewRootCommand() *cobra.Command {
	e := &env{}
	cmd := &cobra.Command{
		Use:           "hubctl",
		Short:         "Manager hub administration",
		Long:          `hubctl works on the same data store as the hub server: roster changes, CSV/XLSX exports, period reports and sample data.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			e.cfg = config.Load(e.configPath)
			// stdout carries command output; logs go to stderr.
			slog.SetDefault(slog.New(logger.NewHandler(e.cfg.Log, cmd.ErrOrStderr())))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&e.configPath, "config", "c", "", "Path to config file (default: etc/config-dev.yaml)")

	cmd.AddCommand(
		newTeamCommand(e),
		newExportCommand(e),
		newReportCommand(e),
		newSeedCommand(e),
		newHashPasswordCommand(),
	)

	return cmd
}

// services opens the configured store and loads every collection.
func (e *env) services(ctx context.Context) (*service.Services, error) {
	loc, err := e.cfg.Team.Location()
	if err != nil {
		return nil, err
	}
	gw, err := store.Open(ctx, e.cfg.Storage)
	if err != nil {
		return nil, err
	}
	st := service.NewState(gw, service.WithDefaultMembers(e.cfg.Team.DefaultMembers), service.WithLocation(loc))
	for _, w := range st.Load(ctx) {
		logger.Warn("collection not loaded", "err", w)
	}
	return service.New(st), nil
}

func stdout(cmd *cobra.Command) io.Writer { return cmd.OutOrStdout() }
