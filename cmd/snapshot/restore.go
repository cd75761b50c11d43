package snapshot

import (
	"context"
	"fmt"
	"os"

	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/config"
	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/runner"
	"github.com/spf13/cobra"
)

// RestoreCmd returns the interactive restore command.
func RestoreCmd(cliCtx *config.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Interactively restore snapshots matching the pattern",
		Long: `Restore snapshots from the configured repository. Each matching snapshot
is confirmed individually; the restore request waits for the server to
finish, which can take a long time for large snapshots.`,
		Run: func(_ *cobra.Command, _ []string) {
			if err := runInteractive(cliCtx, runner.ModeRestore); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
		},
	}
}

func runInteractive(cliCtx *config.Context, mode runner.Mode) error {
	env, err := newEnv(cliCtx)
	if err != nil {
		return err
	}

	ctx := context.Background()

	set, err := env.fetcher.Fetch(ctx, cliCtx.Config.Pattern, cliCtx.Config.Reload)
	if err != nil {
		return err
	}

	if len(set) == 0 {
		env.log.Infof("No snapshots match pattern '%s'", cliCtx.Config.Pattern)
		return nil
	}

	r := runner.New(env.client, env.fetcher, runner.NewTerminalConfirmer(), env.cfg.ProtectedIndices, env.log)
	return r.Run(ctx, set, mode)
}
