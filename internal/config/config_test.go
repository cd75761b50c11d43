package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsOnly(t *testing.T) {
	config, err := Load("", Config{})

	require.NoError(t, err)
	assert.Equal(t, "localhost", config.Elasticsearch.Host)
	assert.Equal(t, 9200, config.Elasticsearch.Port)
	assert.Equal(t, "my_s3_repository", config.Elasticsearch.Repository)
	assert.Equal(t, "snapshotdat.json", config.Cache.Path)
	assert.Equal(t, Duration(24*time.Hour), config.Cache.MaxAge)
	assert.Equal(t, []string{".kibana"}, config.ProtectedIndices)
}

func TestLoad_FromFile(t *testing.T) {
	config, err := Load(filepath.Join("testdata", "valid.yaml"), Config{})

	require.NoError(t, err)
	assert.Equal(t, "es.internal.example", config.Elasticsearch.Host)
	assert.Equal(t, 9201, config.Elasticsearch.Port)
	assert.Equal(t, "nightly_backups", config.Elasticsearch.Repository)
	assert.Equal(t, "/tmp/snapshots-cache.json", config.Cache.Path)
	assert.Equal(t, Duration(12*time.Hour), config.Cache.MaxAge)
	assert.Equal(t, []string{".kibana", ".security"}, config.ProtectedIndices)
}

func TestLoad_PartialFileFallsBackToDefaults(t *testing.T) {
	config, err := Load(filepath.Join("testdata", "partial.yaml"), Config{})

	require.NoError(t, err)
	assert.Equal(t, "weekly_backups", config.Elasticsearch.Repository)
	assert.Equal(t, "localhost", config.Elasticsearch.Host)
	assert.Equal(t, 9200, config.Elasticsearch.Port)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	overrides := Config{
		Elasticsearch: ElasticsearchConfig{
			Host: "flag-host",
			Port: 9300,
		},
	}

	config, err := Load(filepath.Join("testdata", "valid.yaml"), overrides)

	require.NoError(t, err)
	assert.Equal(t, "flag-host", config.Elasticsearch.Host)
	assert.Equal(t, 9300, config.Elasticsearch.Port)
	// Untouched fields still come from the file
	assert.Equal(t, "nightly_backups", config.Elasticsearch.Repository)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.yaml"), Config{})
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("elasticsearch: [not a mapping"), 0o644))

	_, err := Load(path, Config{})
	assert.Error(t, err)
}

func TestLoad_ValidationRejectsBadPort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badport.yaml")
	require.NoError(t, os.WriteFile(path, []byte("elasticsearch:\n  port: 70000\n"), 0o644))

	_, err := Load(path, Config{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dur.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  maxAge: 90m\n"), 0o644))

	config, err := Load(path, Config{})
	require.NoError(t, err)
	assert.Equal(t, Duration(90*time.Minute), config.Cache.MaxAge)
}

func TestCLIConfig_Resolve(t *testing.T) {
	cli := &CLIConfig{
		Host:       "example.org",
		Repository: "repo-a",
		CacheFile:  "custom-cache.json",
	}

	config, err := cli.Resolve()

	require.NoError(t, err)
	assert.Equal(t, "example.org", config.Elasticsearch.Host)
	assert.Equal(t, 9200, config.Elasticsearch.Port)
	assert.Equal(t, "repo-a", config.Elasticsearch.Repository)
	assert.Equal(t, "custom-cache.json", config.Cache.Path)
}
