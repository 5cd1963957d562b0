package config

import (
	"os"

	"github.com/lixenwraith/mirrorvis/toml"
)

// LoadFile reads a TOML config file and overlays it onto DefaultConfig,
// so a file only needs to mention the knobs it wants to override.
func LoadFile(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveFile writes cfg to path as TOML.
func SaveFile(path string, cfg *EngineConfig) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
