package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// LoadIssuanceConfig reads the issuance parameters from the provided TOML file
func LoadIssuanceConfig(path string) (IssuanceConfig, error) {
	var cfg IssuanceConfig
	buff, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	err = toml.Unmarshal(buff, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}
