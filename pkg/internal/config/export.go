package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// Export writes cfg to path in the format its extension names. Env files use envPrefix for their keys.
func Export(cfg any, path, envPrefix string) error {
	ext, err := fileExt(path)
	if err != nil {
		return err
	}

	switch ext {
	case "json":
		return ToJSONFile(cfg, path)
	case "env", "dotenv":
		return ToEnvFile(cfg, path, envPrefix)
	default:
		return ToYAMLFile(cfg, path)
	}
}

// ToYAMLFile writes cfg as YAML keyed by its mapstructure tags.
func ToYAMLFile(cfg any, path string) error {
	m, err := toMap(cfg)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return writeFile(path, data)
}

// ToJSONFile writes cfg as indented JSON keyed by its mapstructure tags.
func ToJSONFile(cfg any, path string) error {
	m, err := toMap(cfg)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config to json: %w", err)
	}
	return writeFile(path, data)
}

// ToEnvFile writes cfg as sorted KEY="value" lines, nested keys joined by underscores.
func ToEnvFile(cfg any, path, envPrefix string) error {
	m, err := toMap(cfg)
	if err != nil {
		return err
	}

	flat := make(map[string]string)
	flatten(strings.ToUpper(envPrefix), m, flat)

	lines := make([]string, 0, len(flat))
	for k, v := range flat {
		lines = append(lines, fmt.Sprintf("%s=%q", k, v))
	}
	sort.Strings(lines)

	return writeFile(path, []byte(strings.Join(lines, "\n")+"\n"))
}

// toMap decodes cfg into nested maps with durations spelled as strings such as "30s".
func toMap(cfg any) (map[string]any, error) {
	var m map[string]any
	if err := mapstructure.Decode(cfg, &m); err != nil {
		return nil, fmt.Errorf("failed to decode config to map: %w", err)
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("config appears empty or unsupported, nothing to write")
	}
	return normalize(m).(map[string]any), nil
}

func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, inner := range val {
			val[k] = normalize(inner)
		}
		return val
	case time.Duration:
		return val.String()
	default:
		return v
	}
}

func flatten(prefix string, in map[string]any, out map[string]string) {
	for k, v := range in {
		key := strings.ToUpper(k)
		if prefix != "" {
			key = prefix + "_" + key
		}

		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = fmt.Sprintf("%v", v)
	}
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config to %s: %w", path, err)
	}
	return nil
}
