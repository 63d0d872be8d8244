package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"realestate/server/internal/models"
)

//go:embed seed.json
var defaultSeed []byte

// LoadSeed reads the startup catalog from path, or the built-in sample
// catalog when path is empty
func LoadSeed(path string) (*models.SeedCatalog, error) {
	data := defaultSeed
	if path != "" {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		}

		data, err = os.ReadFile(absPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %v", err)
		}
	}

	var catalog models.SeedCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse seed catalog: %v", err)
	}
	return &catalog, nil
}
