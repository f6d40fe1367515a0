package simulation

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadWalletLabels reads a JSON array of wallet labels.
func LoadWalletLabels(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wallet labels: %w", err)
	}

	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return nil, fmt.Errorf("failed to parse wallet labels in %s: %w", path, err)
	}
	return labels, nil
}

// SaveWalletLabels writes labels as a JSON array.
func SaveWalletLabels(path string, labels []string) error {
	return writeJSON(path, labels)
}

// WriteReport writes the report as indented JSON.
func WriteReport(path string, report Report) error {
	return writeJSON(path, report)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
