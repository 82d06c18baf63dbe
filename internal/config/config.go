package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/integraltech/brainsentry-cli/internal/userconfig"
)

// ProjectFileName is the shared, checked-in project configuration searched
// for in the current directory and its parents
const ProjectFileName = "brainsentry.json"

// DefaultAPIURL is used when no configuration names a backend
const DefaultAPIURL = "http://localhost:8080/api"

// ProjectConfig is the contents of brainsentry.json
type ProjectConfig struct {
	APIURL string `json:"api_url"`
}

// Config is the effective client configuration after merging defaults, the
// nearest project file, the user config and environment variables (highest
// priority last).
type Config struct {
	APIURL  string
	Logging LoggingConfig
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // json, console
}

// Load resolves the effective configuration. Missing project or user config
// files are not errors; .env files fail silently when absent.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	apiURL := DefaultAPIURL

	if projectPath, err := FindProjectFile(); err == nil {
		project, err := LoadProjectFile(projectPath)
		if err != nil {
			return nil, err
		}
		if project.APIURL != "" {
			apiURL = project.APIURL
		}
	}

	if userCfg, err := userconfig.Load(); err == nil && userCfg.APIURL != "" {
		apiURL = userCfg.APIURL
	}

	if env := os.Getenv("BRAINSENTRY_API_URL"); env != "" {
		apiURL = env
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "warn"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "console"
	}

	return &Config{
		APIURL: apiURL,
		Logging: LoggingConfig{
			Level:  logLevel,
			Format: logFormat,
		},
	}, nil
}

// FindProjectFile searches for brainsentry.json in the current directory and
// its parents
func FindProjectFile() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := currentDir
	for {
		configPath := filepath.Join(dir, ProjectFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found in %s or any parent directory", ProjectFileName, currentDir)
}

// LoadProjectFile reads a project configuration file
func LoadProjectFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg ProjectConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// SaveProjectFile writes a project configuration file
func SaveProjectFile(path string, cfg *ProjectConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
