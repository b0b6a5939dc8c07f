package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const tuningFileName = "platformer.yaml"

// Load resolves the tuning configuration. Search order:
//  1. customPath, when non-empty (an unreadable explicit path is an error)
//  2. ~/.platformer/configs/platformer.yaml
//  3. ./configs/platformer.yaml
//  4. the embedded default
//
// Files only need to specify the fields they override; everything else
// keeps the default value.
func Load(customPath string) (Tuning, error) {
	if customPath != "" {
		t, err := loadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("load tuning from %s: %w", customPath, err)
		}
		return t, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(home, ".platformer", "configs", tuningFileName)
		if t, err := loadFile(userPath); err == nil {
			return t, nil
		}
	}

	localPath := filepath.Join("configs", tuningFileName)
	if t, err := loadFile(localPath); err == nil {
		return t, nil
	}

	t := Default()
	if err := yaml.Unmarshal(defaultTuningYAML, &t); err != nil {
		// Embedded default is validated by tests; fall back to the
		// hardcoded values if it is ever broken.
		return Default(), nil
	}
	return t, nil
}

func loadFile(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, err
	}
	t := Default()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse yaml: %w", err)
	}
	return t, nil
}
