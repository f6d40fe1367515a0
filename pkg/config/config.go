// Package config assembles the simulator configuration from its component sections.
package config

import (
	"fmt"
	"io"

	"github.com/4chain-ag/go-hit-simulator/pkg/bitcoind"
	"github.com/4chain-ag/go-hit-simulator/pkg/hit"
	internalconfig "github.com/4chain-ag/go-hit-simulator/pkg/internal/config"
	"github.com/4chain-ag/go-hit-simulator/pkg/logging"
	"github.com/4chain-ag/go-hit-simulator/pkg/server"
	"github.com/4chain-ag/go-hit-simulator/pkg/simulation"
	"github.com/4chain-ag/go-hit-simulator/pkg/walletexplorer"
)

// EnvPrefix prefixes every environment variable read by LoadFromPath, e.g. HITSIM_BITCOIND_URL.
const EnvPrefix = "HITSIM"

// MatcherConfig holds the HIT form matcher settings.
type MatcherConfig struct {
	// MaxStandardFormAttempts caps the candidate amounts tried per standard form search.
	// Zero or below tries every candidate.
	MaxStandardFormAttempts int `mapstructure:"max_standard_form_attempts"`
}

// SimulationConfig groups the settings of both simulation modes.
type SimulationConfig struct {
	Random simulation.RandomConfig `mapstructure:"random"`
	Wallet simulation.WalletConfig `mapstructure:"wallet"`
}

// Config contains the configuration of the simulator and its data sources.
type Config struct {
	Logger         logging.Config        `mapstructure:"logger"`
	Matcher        MatcherConfig         `mapstructure:"matcher"`
	WalletExplorer walletexplorer.Config `mapstructure:"walletexplorer"`
	Bitcoind       bitcoind.Config       `mapstructure:"bitcoind"`
	Simulation     SimulationConfig      `mapstructure:"simulation"`
	Server         server.Config         `mapstructure:"server"`
}

// NewDefault returns a Config with every section at its default.
func NewDefault() Config {
	return Config{
		Logger:         logging.DefaultConfig(),
		Matcher:        MatcherConfig{MaxStandardFormAttempts: hit.DefaultMaxStandardFormAttempts},
		WalletExplorer: walletexplorer.DefaultConfig,
		Bitcoind:       bitcoind.DefaultConfig,
		Simulation: SimulationConfig{
			Random: simulation.DefaultRandomConfig,
			Wallet: simulation.DefaultWalletConfig,
		},
		Server: server.DefaultConfig,
	}
}

// Export writes the configuration to path. The file extension selects the format:
// JSON for ".json", environment variables for ".env" and ".dotenv", YAML otherwise.
func (c *Config) Export(path string) error {
	if err := internalconfig.Export(c, path, EnvPrefix); err != nil {
		return fmt.Errorf("failed to export configuration: %w", err)
	}
	return nil
}

// Print writes the configuration to w as "json" or "yaml".
func (c *Config) Print(w io.Writer, format string) error {
	return internalconfig.PrettyPrintAs(w, c, format)
}

// LoadFromPath loads the configuration from defaults, the file at path and HITSIM_ environment variables.
// An empty path reads config.yaml from the working directory when it exists.
func LoadFromPath(path string) (Config, error) {
	loader := internalconfig.NewLoader(NewDefault, EnvPrefix)
	if path != "" {
		if err := loader.SetConfigFilePath(path); err != nil {
			return Config{}, fmt.Errorf("invalid config file path: %w", err)
		}
	}

	cfg, err := loader.Load()
	if err != nil {
		return Config{}, fmt.Errorf("config loader load operation failed: %w", err)
	}
	return cfg, nil
}
