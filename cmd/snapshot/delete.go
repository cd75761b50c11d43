package snapshot

import (
	"fmt"
	"os"

	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/config"
	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/runner"
	"github.com/spf13/cobra"
)

// DeleteCmd returns the interactive index-delete command.
func DeleteCmd(cliCtx *config.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Interactively delete the indices covered by matching snapshots",
		Long: `For each confirmed snapshot, delete every index it covers from the
cluster. Protected index names are refused outright. The snapshots
themselves are not removed from the repository.`,
		Run: func(_ *cobra.Command, _ []string) {
			if err := runInteractive(cliCtx, runner.ModeDelete); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
		},
	}
}
