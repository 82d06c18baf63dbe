package userconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDirName  = "brainsentry"
	configFileName = "config.json"
)

// UserConfig is the per-user local configuration stored in
// ~/.config/brainsentry/config.json. TenantID is the tenant slot every
// request is scoped with; it is kept separate from the session so a user can
// operate on another tenant without re-authenticating.
type UserConfig struct {
	APIURL   string `json:"api_url,omitempty"`
	TenantID string `json:"tenant_id,omitempty"`
}

// GetConfigPath returns the path to the user config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", configDirName)
	return filepath.Join(configDir, configFileName), nil
}

// Load reads the user configuration file, returning an empty config when
// none exists yet
func Load() (*UserConfig, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &UserConfig{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read user config file: %w", err)
	}

	var cfg UserConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse user config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the user configuration to disk
func Save(cfg *UserConfig) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write user config file: %w", err)
	}

	return nil
}

// SetTenant updates the stored tenant identifier. An empty id resets the
// slot so requests fall back to the pipeline's default scope.
func SetTenant(tenantID string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	cfg.TenantID = tenantID
	return Save(cfg)
}

// GetTenant returns the stored tenant identifier, or "" if none is set
func GetTenant() (string, error) {
	cfg, err := Load()
	if err != nil {
		return "", err
	}

	return cfg.TenantID, nil
}

// SetAPIURL updates the stored API base URL override
func SetAPIURL(apiURL string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	cfg.APIURL = apiURL
	return Save(cfg)
}
