package simulation_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/4chain-ag/go-hit-simulator/pkg/simulation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestWalletLabelsFile(t *testing.T) {
	// given:
	path := filepath.Join(t.TempDir(), "wallets.json")
	labels := []string{"Exchange", "00aa11bb22cc33dd"}

	// when:
	require.NoError(t, simulation.SaveWalletLabels(path, labels))
	loaded, err := simulation.LoadWalletLabels(path)

	// then:
	require.NoError(t, err)
	require.Equal(t, labels, loaded)
}

func TestLoadWalletLabels_ErrorCases(t *testing.T) {
	tests := map[string]func(t *testing.T) string{
		"Missing file.": func(t *testing.T) string {
			return filepath.Join(t.TempDir(), "missing.json")
		},
		"Not a JSON array of strings.": func(t *testing.T) string {
			path := filepath.Join(t.TempDir(), "wallets.json")
			require.NoError(t, os.WriteFile(path, []byte(`{"wallets": ["a"]}`), 0o600))
			return path
		},
	}

	for name, setup := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			path := setup(t)

			// when:
			labels, err := simulation.LoadWalletLabels(path)

			// then:
			require.Error(t, err)
			require.Nil(t, labels)
		})
	}
}

func TestWriteReport(t *testing.T) {
	// given:
	path := filepath.Join(t.TempDir(), "report.json")
	report := simulation.Report{
		RunID:   uuid.New(),
		Wallets: []simulation.WalletResult{{Label: "V", Status: simulation.WalletEvaluated, Tally: simulation.Tally{Both: 1}}},
		Tally:   simulation.Tally{Both: 1},
	}

	// when:
	err := simulation.WriteReport(path, report)

	// then:
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, report.RunID.String(), decoded["run_id"])
	require.Equal(t, map[string]any{"both": 1.0, "standard_only": 0.0, "alternate_only": 0.0, "neither": 0.0}, decoded["tally"])
}
