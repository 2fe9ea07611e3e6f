package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppConfig holds all application configuration
type AppConfig struct {
	// Business information printed on receipts
	Business BusinessConfig `json:"business"`

	// System settings
	System SystemConfig `json:"system"`

	// bcrypt hash of the admin report access PIN (empty = not set)
	AdminPINHash string `json:"admin_pin_hash"`

	// First run flag
	FirstRun bool `json:"first_run"`
}

// BusinessConfig holds business information
type BusinessConfig struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SystemConfig holds system settings
type SystemConfig struct {
	DataPath    string `json:"data_path"`
	PrinterName string `json:"printer_name"`
	Language    string `json:"language"`
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine home directory: %w", err)
		}
		appData = filepath.Join(homeDir, ".config")
	}

	configDir := filepath.Join(appData, "SalonApp")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("could not create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.json"), nil
}

// DataDir resolves the directory holding the database, receipts and backups.
// An explicit data_path wins; otherwise it lives next to config.json.
func (cfg *AppConfig) DataDir() (string, error) {
	if cfg.System.DataPath != "" {
		return cfg.System.DataPath, nil
	}
	configPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(configPath), "data"), nil
}

// LoadConfig loads configuration from config.json
func LoadConfig() (*AppConfig, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to config.json
func SaveConfig(cfg *AppConfig) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("could not write config file: %w", err)
	}

	return nil
}

// ConfigExists checks if config file exists
func ConfigExists() (bool, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return false, err
	}

	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// CreateDefaultConfig creates a default configuration file
func CreateDefaultConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		Business: BusinessConfig{
			Name: "صالون مينا العربي",
		},
		System: SystemConfig{
			DataPath:    "",
			PrinterName: "",
			Language:    "ar",
		},
		FirstRun: true,
	}

	if err := SaveConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MarkSetupComplete marks the first run as complete
func MarkSetupComplete() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	cfg.FirstRun = false
	return SaveConfig(cfg)
}
