package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vukan322/devdash/internal/core"
	"github.com/vukan322/devdash/internal/lib/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
env: prod
timezone: Europe/Belgrade
refresh_timeout: 5s
http_server:
  address: 0.0.0.0:9090
handles:
  github: octocat
  leetcode: lc-user
upstream:
  timeout: 3s
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.EnvProd, cfg.Env)
	assert.Equal(t, 5*time.Second, cfg.RefreshTimeout)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTPServer.Address)
	assert.Equal(t, 5*time.Second, cfg.HTTPServer.ReadTimeout)
	assert.Equal(t, "octocat", cfg.Handles.GitHub)
	assert.Equal(t, "lc-user", cfg.Handles.LeetCode)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "https://api.github.com", cfg.Upstream.GitHubBaseURL)
	assert.Equal(t, "https://leetcode.com/graphql", cfg.Upstream.LeetCodeURL)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Belgrade", loc.String())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "env: local\nhandles:\n  github: from-file\n")
	t.Setenv("DEVDASH_GITHUB_USER", "from-env")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Handles.GitHub)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("DEVDASH_GITHUB_USER", "octocat")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.EnvLocal, cfg.Env)
	assert.Equal(t, "octocat", cfg.Handles.GitHub)
	assert.Equal(t, 20*time.Second, cfg.RefreshTimeout)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "env: staging\n"))
	assert.ErrorContains(t, err, "unknown env")

	_, err = config.Load(writeConfig(t, "env: local\ntimezone: Mars/Olympus\n"))
	assert.ErrorContains(t, err, "load timezone")
}

func TestResolvePath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/etc/devdash.yaml")

	assert.Equal(t, "flag.yaml", config.ResolvePath("flag.yaml"))
	assert.Equal(t, "/etc/devdash.yaml", config.ResolvePath(""))
}

func TestHandlesWith(t *testing.T) {
	cfg := &config.Config{Handles: config.Handles{GitHub: "gh", LeetCode: "lc"}}

	assert.Equal(t, core.Handles{GitHub: "gh", LeetCode: "lc"}, cfg.HandlesWith("", ""))
	assert.Equal(t, core.Handles{GitHub: "other", LeetCode: "lc"}, cfg.HandlesWith("other", ""))
	assert.Equal(t, core.Handles{GitHub: "gh", LeetCode: "x"}, cfg.HandlesWith("", "x"))
}
