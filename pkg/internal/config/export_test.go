package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/4chain-ag/go-hit-simulator/pkg/internal/config"
	"github.com/stretchr/testify/require"
)

func TestToEnvFile(t *testing.T) {
	// given:
	path := filepath.Join(t.TempDir(), "config.env")

	// when:
	err := config.ToEnvFile(defaults(), path, "TEST")

	// then:
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	expected := `TEST_LABEL="default_wallet"
TEST_MAX_ATTEMPTS="1"
TEST_NODE_TIMEOUT="30s"
TEST_NODE_URL="http://127.0.0.1:8332"
`
	require.Equal(t, expected, string(data))
}

func TestToYAMLFile(t *testing.T) {
	// given:
	path := filepath.Join(t.TempDir(), "config.yaml")

	// when:
	err := config.ToYAMLFile(defaults(), path)

	// then:
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "label: default_wallet")
	require.Contains(t, string(data), "timeout: 30s")
}

func TestToJSONFile(t *testing.T) {
	// given:
	path := filepath.Join(t.TempDir(), "config.json")

	// when:
	err := config.ToJSONFile(defaults(), path)

	// then:
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"max_attempts": 1`)
	require.Contains(t, string(data), `"timeout": "30s"`)
}

func TestExport_RoundTrip(t *testing.T) {
	tests := map[string]struct {
		ext string
	}{
		"yaml":   {ext: "yaml"},
		"json":   {ext: "json"},
		"dotenv": {ext: "env"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			exported := defaults()
			exported.MaxAttempts = 9
			exported.Node.URL = "http://exported.node:8332"
			path := filepath.Join(t.TempDir(), "config."+tc.ext)

			// when:
			require.NoError(t, config.Export(exported, path, "TEST"))

			// and:
			l := config.NewLoader(defaults, "TEST")
			require.NoError(t, l.SetConfigFilePath(path))
			loaded, err := l.Load()

			// then:
			require.NoError(t, err)
			require.Equal(t, exported, loaded)
		})
	}
}

func TestExport_UnsupportedExt(t *testing.T) {
	// when:
	err := config.Export(defaults(), filepath.Join(t.TempDir(), "config.ini"), "TEST")

	// then:
	require.ErrorIs(t, err, config.ErrUnsupportedExt)
}

func TestPrettyPrintAs(t *testing.T) {
	tests := map[string]struct {
		format   string
		contains string
	}{
		"json": {format: "json", contains: `"url": "http://127.0.0.1:8332"`},
		"yaml": {format: "yaml", contains: "url: http://127.0.0.1:8332"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			var buf bytes.Buffer

			// when:
			err := config.PrettyPrintAs(&buf, defaults(), tc.format)

			// then:
			require.NoError(t, err)
			require.Contains(t, buf.String(), tc.contains)
		})
	}
}

func TestPrettyPrintAs_UnsupportedFormat(t *testing.T) {
	// given:
	var buf bytes.Buffer

	// when:
	err := config.PrettyPrintAs(&buf, defaults(), "xml")

	// then:
	require.ErrorIs(t, err, config.ErrUnsupportedPrintFormat)
	require.Empty(t, buf.String())
}
