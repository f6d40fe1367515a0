// Package config loads typed configuration from defaults, an optional file and environment variables,
// and exports it back to any of the supported file formats.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// DefaultConfigFilePath is read when present and no other file is set.
const DefaultConfigFilePath = "config.yaml"

// SupportedExts lists the config file extensions the loader and the exporters understand.
var SupportedExts = []string{"yaml", "yml", "json", "dotenv", "env"}

// ErrUnsupportedExt is returned for config files with an extension outside SupportedExts.
var ErrUnsupportedExt = errors.New("unsupported config file extension")

// Loader builds a T from its defaults, a config file and environment variables.
type Loader[T any] struct {
	cfg            T
	envPrefix      string
	configFilePath string
	configFileExt  string
	viper          *viper.Viper
}

// NewLoader creates a Loader seeded with defaults(). Environment variables are read with envPrefix.
func NewLoader[T any](defaults func() T, envPrefix string) *Loader[T] {
	return &Loader[T]{
		cfg:            defaults(),
		envPrefix:      envPrefix,
		configFilePath: DefaultConfigFilePath,
		configFileExt:  "yaml",
		viper:          viper.New(),
	}
}

// SetConfigFilePath selects the config file. Unlike the default path, an explicitly set file must exist.
func (l *Loader[T]) SetConfigFilePath(path string) error {
	ext, err := fileExt(path)
	if err != nil {
		return err
	}

	l.configFilePath = path
	l.configFileExt = ext
	return nil
}

// Load resolves the configuration. Values are taken, from highest priority to lowest, from:
//  1. environment variables
//  2. the config file
//  3. the defaults
//
// Nested keys map to environment variables joined by underscores, so the key
// bitcoind.retry_count is read from <PREFIX>_BITCOIND_RETRY_COUNT.
func (l *Loader[T]) Load() (T, error) {
	if err := l.setViperDefaults(); err != nil {
		return l.cfg, err
	}

	l.viper.SetEnvPrefix(l.envPrefix)
	l.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.viper.AutomaticEnv()

	if err := l.readFile(); err != nil {
		return l.cfg, err
	}

	err := l.viper.Unmarshal(&l.cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return l.cfg, fmt.Errorf("failed to decode config: %w", err)
	}
	return l.cfg, nil
}

func (l *Loader[T]) setViperDefaults() error {
	defaults := make(map[string]any)
	if err := mapstructure.Decode(l.cfg, &defaults); err != nil {
		return fmt.Errorf("failed to decode config defaults: %w", err)
	}

	for k, v := range defaults {
		l.viper.SetDefault(k, v)
	}
	return nil
}

func (l *Loader[T]) readFile() error {
	if l.configFilePath == DefaultConfigFilePath {
		if _, err := os.Stat(l.configFilePath); os.IsNotExist(err) {
			return nil
		}
	}

	l.viper.SetConfigFile(l.configFilePath)
	if l.configFileExt == "env" || l.configFileExt == "dotenv" {
		l.viper.SetConfigType("env")
	}
	if err := l.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", l.configFilePath, err)
	}

	if l.configFileExt == "env" || l.configFileExt == "dotenv" {
		// .env keys are flat, so every nested key gets an alias spelled the way the file spells it
		prefix := l.envPrefix
		if prefix != "" {
			prefix += "_"
		}
		for _, key := range l.viper.AllKeys() {
			l.viper.RegisterAlias(prefix+strings.ReplaceAll(key, ".", "_"), key)
		}
	}
	return nil
}

func fileExt(path string) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if !slices.Contains(SupportedExts, ext) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedExt, ext)
	}
	return ext, nil
}
