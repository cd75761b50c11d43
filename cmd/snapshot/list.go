package snapshot

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/config"
	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/output"
	"github.com/spf13/cobra"
)

// ListCmd returns the non-interactive listing command.
func ListCmd(cliCtx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List snapshots matching the pattern",
		Run: func(_ *cobra.Command, _ []string) {
			if err := runList(cliCtx); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVarP(&cliCtx.Config.OutputFormat, "output", "o", "table", "Output format (table, json)")
	return cmd
}

func runList(cliCtx *config.Context) error {
	env, err := newEnv(cliCtx)
	if err != nil {
		return err
	}

	set, err := env.fetcher.Fetch(context.Background(), cliCtx.Config.Pattern, cliCtx.Config.Reload)
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(cliCtx.Config.OutputFormat)

	if len(set) == 0 {
		formatter.PrintMessage(fmt.Sprintf("No snapshots match pattern '%s'", cliCtx.Config.Pattern))
		return nil
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	table := output.Table{
		Headers: []string{"SNAPSHOT", "STATE", "START TIME", "INDICES"},
		Rows:    make([][]string, 0, len(set)),
	}

	for _, name := range names {
		snap := set[name]
		table.Rows = append(table.Rows, []string{
			snap.Snapshot,
			snap.State,
			snap.StartTime,
			strings.Join(snap.Indices, ","),
		})
	}

	return formatter.PrintTable(table)
}
