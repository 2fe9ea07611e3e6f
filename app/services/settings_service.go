package services

import (
	"SalonApp/app/config"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// SettingsService manages the stored configuration and the admin PIN that
// gates the monthly report screen. Only the bcrypt hash of the PIN is ever
// written to disk.
type SettingsService struct{}

// NewSettingsService creates a new settings service
func NewSettingsService() *SettingsService {
	return &SettingsService{}
}

// GetConfig returns the current configuration.
func (s *SettingsService) GetConfig() (*config.AppConfig, error) {
	return config.LoadConfig()
}

// UpdateBusinessInfo saves the business details printed on receipts.
func (s *SettingsService) UpdateBusinessInfo(name, phone, address string) error {
	if name == "" {
		return fmt.Errorf("business name is required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	cfg.Business.Name = name
	cfg.Business.Phone = phone
	cfg.Business.Address = address
	return config.SaveConfig(cfg)
}

// SetAdminPIN hashes and stores a new admin PIN.
func (s *SettingsService) SetAdminPIN(pin string) error {
	if len(pin) < 4 {
		return fmt.Errorf("PIN must be at least 4 digits")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	cfg.AdminPINHash = string(hash)
	return config.SaveConfig(cfg)
}

// VerifyAdminPIN checks a PIN against the stored hash. With no PIN set the
// report screen stays open.
func (s *SettingsService) VerifyAdminPIN(pin string) (bool, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return false, err
	}

	if cfg.AdminPINHash == "" {
		return true, nil
	}

	err = bcrypt.CompareHashAndPassword([]byte(cfg.AdminPINHash), []byte(pin))
	return err == nil, nil
}
