package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// IsValidConfig reports whether the YAML file at path defines every key in
// mandatoryKeys with a non-null value. It returns false on the first key
// that is absent or null. Read and parse failures are returned unwrapped;
// the caller decides how to report them.
func IsValidConfig(path string, mandatoryKeys []string) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return false, err
	}

	for _, key := range mandatoryKeys {
		value, ok := data[key]
		if !ok || value == nil {
			return false, nil
		}
	}

	return true, nil
}

// MissingKeys returns the mandatory keys that are absent or null in the YAML
// file at path, in the order given.
func MissingKeys(path string, mandatoryKeys []string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, err
	}

	var missing []string
	for _, key := range mandatoryKeys {
		if value, ok := data[key]; !ok || value == nil {
			missing = append(missing, key)
		}
	}
	return missing, nil
}
