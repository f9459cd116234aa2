package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobquest/internal/config"
)

func TestVersion(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "jobquest version: unknown\n", out.String())
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobquest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store:
  backend: memory
memory:
  capacity: 3
llm:
  provider: OpenAI
  timeout: 2s
matcher:
  top_n: 3
`), 0o600))

	opts := &rootOptions{cfgFile: path, v: viper.New()}
	require.NoError(t, opts.readConfig())

	cfg, err := opts.load()
	require.NoError(t, err)
	assert.Equal(t, config.StoreMemory, cfg.Store.Backend)
	assert.Equal(t, 3, cfg.Memory.Capacity)
	assert.Equal(t, config.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, 2*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "8080", cfg.HTTP.Port)
}

func TestEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("JOBQUEST_MATCHER_TOP_N=7\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("JOBQUEST_MATCHER_TOP_N") })

	opts := &rootOptions{envFile: envPath, v: viper.New()}
	require.NoError(t, opts.readConfig())

	cfg, err := opts.load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Matcher.TopN)
}

func TestMissingConfigFile(t *testing.T) {
	opts := &rootOptions{cfgFile: filepath.Join(t.TempDir(), "absent.yaml"), v: viper.New()}
	assert.Error(t, opts.readConfig())
}

func TestMigrateMemoryStore(t *testing.T) {
	t.Setenv("JOBQUEST_STORE_BACKEND", "memory")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"migrate", "--env-file", ""})
	assert.NoError(t, cmd.Execute())
}
