package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type nodeConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type testConfig struct {
	Label       string     `mapstructure:"label"`
	MaxAttempts int        `mapstructure:"max_attempts"`
	Node        nodeConfig `mapstructure:"node"`
}

func defaults() testConfig {
	return testConfig{
		Label:       "default_wallet",
		MaxAttempts: 1,
		Node: nodeConfig{
			URL:     "http://127.0.0.1:8332",
			Timeout: 30 * time.Second,
		},
	}
}

const yamlConfig = `
max_attempts: 3
node:
  url: http://yaml.node:8332
  timeout: 5s
`

const jsonConfig = `{
  "max_attempts": 5,
  "node": {
    "url": "http://json.node:8332"
  }
}`

const dotEnvConfig = `
TEST_MAX_ATTEMPTS=4
TEST_NODE_URL=http://dotenv.node:8332
TEST_NODE_TIMEOUT=1m
`

func tempConfig(t *testing.T, content, ext string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config."+ext)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
