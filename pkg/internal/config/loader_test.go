package config_test

import (
	"testing"
	"time"

	"github.com/4chain-ag/go-hit-simulator/pkg/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoader_Defaults(t *testing.T) {
	// given:
	l := config.NewLoader(defaults, "TEST")

	// when:
	cfg, err := l.Load()

	// then:
	require.NoError(t, err)
	require.Equal(t, defaults(), cfg)
}

func TestLoader_EnvVariables(t *testing.T) {
	// given:
	l := config.NewLoader(defaults, "TEST")

	// and:
	t.Setenv("TEST_MAX_ATTEMPTS", "2")
	t.Setenv("TEST_NODE_TIMEOUT", "90s")

	// when:
	cfg, err := l.Load()

	// then:
	require.NoError(t, err)
	require.Equal(t, "default_wallet", cfg.Label)
	require.Equal(t, 2, cfg.MaxAttempts)
	require.Equal(t, 90*time.Second, cfg.Node.Timeout)
}

func TestLoader_Files(t *testing.T) {
	tests := map[string]struct {
		content  string
		ext      string
		expected testConfig
	}{
		"yaml file": {
			content: yamlConfig,
			ext:     "yaml",
			expected: testConfig{
				Label:       "default_wallet",
				MaxAttempts: 3,
				Node:        nodeConfig{URL: "http://yaml.node:8332", Timeout: 5 * time.Second},
			},
		},
		"json file": {
			content: jsonConfig,
			ext:     "json",
			expected: testConfig{
				Label:       "default_wallet",
				MaxAttempts: 5,
				Node:        nodeConfig{URL: "http://json.node:8332", Timeout: 30 * time.Second},
			},
		},
		"dotenv file": {
			content: dotEnvConfig,
			ext:     "env",
			expected: testConfig{
				Label:       "default_wallet",
				MaxAttempts: 4,
				Node:        nodeConfig{URL: "http://dotenv.node:8332", Timeout: time.Minute},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			l := config.NewLoader(defaults, "TEST")
			require.NoError(t, l.SetConfigFilePath(tempConfig(t, tc.content, tc.ext)))

			// when:
			cfg, err := l.Load()

			// then:
			require.NoError(t, err)
			require.Equal(t, tc.expected, cfg)
		})
	}
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	// given:
	l := config.NewLoader(defaults, "TEST")
	require.NoError(t, l.SetConfigFilePath(tempConfig(t, yamlConfig, "yaml")))

	// and:
	t.Setenv("TEST_MAX_ATTEMPTS", "7")
	t.Setenv("TEST_LABEL", "env_wallet")

	// when:
	cfg, err := l.Load()

	// then:
	require.NoError(t, err)
	require.Equal(t, "env_wallet", cfg.Label)
	require.Equal(t, 7, cfg.MaxAttempts)
	require.Equal(t, "http://yaml.node:8332", cfg.Node.URL)
}

func TestLoader_EmptyPrefix(t *testing.T) {
	// given:
	l := config.NewLoader(defaults, "")

	// and:
	t.Setenv("LABEL", "env_wallet")

	// when:
	cfg, err := l.Load()

	// then:
	require.NoError(t, err)
	require.Equal(t, "env_wallet", cfg.Label)
}

func TestLoader_SetConfigFilePath_UnsupportedExt(t *testing.T) {
	// given:
	l := config.NewLoader(defaults, "TEST")

	// when:
	err := l.SetConfigFilePath("config.toml")

	// then:
	require.ErrorIs(t, err, config.ErrUnsupportedExt)
}

func TestLoader_MissingExplicitFile(t *testing.T) {
	// given:
	l := config.NewLoader(defaults, "TEST")
	require.NoError(t, l.SetConfigFilePath(t.TempDir()+"/missing.yaml"))

	// when:
	_, err := l.Load()

	// then:
	require.Error(t, err)
}
