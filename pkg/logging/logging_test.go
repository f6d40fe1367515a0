package logging_test

import (
	"bytes"
	"testing"

	"github.com/4chain-ag/go-hit-simulator/pkg/logging"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesMessagesAtOrAboveLevel(t *testing.T) {
	tests := map[string]struct {
		cfg logging.Config
	}{
		"text formatter": {cfg: logging.Config{Level: "info", Format: "text"}},
		"json formatter": {cfg: logging.Config{Level: "info", Format: "json"}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			var buf bytes.Buffer
			logger := logging.New(tc.cfg, &buf)

			// when:
			logger.Infof("fetched %d transactions for %s", 24, "MineField.BitcoinLab.org")
			logger.Debugf("dropped below level")

			// then:
			require.Contains(t, buf.String(), "fetched 24 transactions for MineField.BitcoinLab.org")
			require.NotContains(t, buf.String(), "dropped below level")
		})
	}
}

func TestDiscard_SatisfiesLogger(t *testing.T) {
	// given:
	var logger logging.Logger = logging.Discard()

	// then:
	require.NotPanics(t, func() {
		logger.Debugf("a")
		logger.Infof("b")
		logger.Warnf("c")
		logger.Errorf("d")
	})
}
