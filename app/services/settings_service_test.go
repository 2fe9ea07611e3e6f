package services

import (
	"SalonApp/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminPIN(t *testing.T) {
	t.Setenv("APPDATA", t.TempDir())
	_, err := config.CreateDefaultConfig()
	require.NoError(t, err)

	svc := NewSettingsService()

	// no PIN configured yet: the gate stays open
	ok, err := svc.VerifyAdminPIN("anything")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Error(t, svc.SetAdminPIN("12"))
	require.NoError(t, svc.SetAdminPIN("4321"))

	ok, err = svc.VerifyAdminPIN("4321")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.VerifyAdminPIN("0000")
	require.NoError(t, err)
	assert.False(t, ok)

	// only the hash lands on disk
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.NotEqual(t, "4321", cfg.AdminPINHash)
	assert.NotEmpty(t, cfg.AdminPINHash)
}

func TestUpdateBusinessInfo(t *testing.T) {
	t.Setenv("APPDATA", t.TempDir())
	_, err := config.CreateDefaultConfig()
	require.NoError(t, err)

	svc := NewSettingsService()

	assert.Error(t, svc.UpdateBusinessInfo("", "", ""))
	require.NoError(t, svc.UpdateBusinessInfo("صالون مينا العربي", "0100000000", "القاهرة"))

	cfg, err := svc.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "0100000000", cfg.Business.Phone)
	assert.Equal(t, "القاهرة", cfg.Business.Address)
}
