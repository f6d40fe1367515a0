package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedPrintFormat is returned when an unsupported print format is provided.
var ErrUnsupportedPrintFormat = errors.New("unsupported print format")

// PrettyPrintAs writes cfg to w as "json" or "yaml", keyed by its mapstructure tags.
func PrettyPrintAs(w io.Writer, cfg any, format string) error {
	m, err := toMap(cfg)
	if err != nil {
		return err
	}

	var data []byte
	switch strings.ToLower(format) {
	case "json":
		data, err = json.MarshalIndent(m, "", "  ")
	case "yaml", "yml":
		data, err = yaml.Marshal(m)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPrintFormat, format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config for printing: %w", err)
	}

	_, err = fmt.Fprintf(w, "Loaded Configuration (%s):\n%s\n", strings.ToUpper(format), data)
	return err
}
