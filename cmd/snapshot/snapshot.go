// Package snapshot holds the restore, delete and list subcommands.
package snapshot

import (
	"time"

	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/config"
	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/elasticsearch"
	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/logger"
	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/snapshot"
)

// env bundles the resolved configuration and the wired-up collaborators a
// subcommand needs.
type env struct {
	cfg     *config.Config
	log     *logger.Logger
	client  *elasticsearch.Client
	fetcher *snapshot.Fetcher
}

// newEnv resolves configuration and builds the cluster client, cache and
// fetcher for one command invocation.
func newEnv(cliCtx *config.Context) (*env, error) {
	log := logger.New(cliCtx.Config.Quiet, cliCtx.Config.Debug)

	cfg, err := cliCtx.Config.Resolve()
	if err != nil {
		return nil, err
	}

	client, err := elasticsearch.NewClient(
		cfg.Elasticsearch.Host,
		cfg.Elasticsearch.Port,
		cfg.Elasticsearch.Repository,
		log,
	)
	if err != nil {
		return nil, err
	}

	cache := snapshot.NewCache(cfg.Cache.Path, time.Duration(cfg.Cache.MaxAge))
	fetcher := snapshot.NewFetcher(client, cache, log)

	return &env{
		cfg:     cfg,
		log:     log,
		client:  client,
		fetcher: fetcher,
	}, nil
}
