package database

import (
	"SalonApp/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAdditiveMigrationsAreIdempotent(t *testing.T) {
	require.NoError(t, InitializeInMemory())

	// the columns already exist after the first pass; a second pass must
	// skip the duplicates without failing
	require.NoError(t, RunAdditionalMigrations(GetDB()))
	require.NoError(t, RunAdditionalMigrations(GetDB()))
}

func TestMigratedColumnsAreUsable(t *testing.T) {
	require.NoError(t, InitializeInMemory())

	sale := models.Sale{
		Total:     100,
		Type:      models.SaleTypeService,
		BuyerType: models.BuyerTypeCustomer,
	}
	require.NoError(t, GetDB().Create(&sale).Error)

	var loaded models.Sale
	require.NoError(t, GetDB().First(&loaded, sale.ID).Error)
	assert.Equal(t, models.BuyerTypeCustomer, loaded.BuyerType)
	assert.False(t, loaded.Cleared)
	assert.Zero(t, loaded.MaterialDeduction)
}

func TestTransactionRollsBackOnError(t *testing.T) {
	require.NoError(t, InitializeInMemory())

	err := Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Employee{Name: "سارة"}).Error; err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, GetDB().Model(&models.Employee{}).Count(&count).Error)
	assert.Zero(t, count)
}
