package cmd

import (
	"os"

	"github.com/runningstream/RestoreElasticSearchSnapshots/cmd/snapshot"
	"github.com/runningstream/RestoreElasticSearchSnapshots/cmd/version"
	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/config"
	"github.com/spf13/cobra"
)

var (
	cliCtx *config.Context
)

// addConnectionFlags adds the cluster connection and snapshot selection
// flags shared by the restore, delete and list commands. Connection
// defaults live in internal/config so a config file can override them;
// the flag help text documents them.
func addConnectionFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&cliCtx.Config.Host, "host", "", `Elasticsearch host address (default "localhost")`)
	pf.IntVarP(&cliCtx.Config.Port, "port", "p", 0, "Elasticsearch TCP port (default 9200)")
	pf.StringVarP(&cliCtx.Config.Repository, "repository", "r", "", `Snapshot repository name (default "my_s3_repository")`)
	pf.StringVarP(&cliCtx.Config.Pattern, "snapshot", "s", "*", "Glob pattern selecting the snapshots to act on")
	pf.BoolVar(&cliCtx.Config.Reload, "reload", false, "Force a reload of the snapshot listing cache")
	pf.BoolVar(&cliCtx.Config.Debug, "debug", false, "Enable debug output")
	pf.BoolVarP(&cliCtx.Config.Quiet, "quiet", "q", false, "Suppress operational messages (only show errors and prompts)")
	pf.StringVar(&cliCtx.Config.ConfigFile, "config", "", "Path to a YAML config file")
	pf.StringVar(&cliCtx.Config.CacheFile, "cache-file", "", `Snapshot listing cache path (default "snapshotdat.json")`)
}

func init() {
	cliCtx = config.NewContext()

	addConnectionFlags(rootCmd)
	rootCmd.AddCommand(snapshot.RestoreCmd(cliCtx))
	rootCmd.AddCommand(snapshot.DeleteCmd(cliCtx))
	rootCmd.AddCommand(snapshot.ListCmd(cliCtx))
	rootCmd.AddCommand(version.Cmd())
}

var rootCmd = &cobra.Command{
	Use:   "restore-snapshots",
	Short: "Manage Elasticsearch snapshot restores and deletes",
	Long: `An interactive CLI for restoring Elasticsearch snapshots from a repository,
or deleting the indices they cover. Snapshot listings are cached on disk
for a day to avoid re-listing large repositories on every invocation.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
