package services

import (
	"SalonApp/app/database"
	"SalonApp/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordExpenseValidation(t *testing.T) {
	ts := setupTest(t)

	_, err := ts.expenses.RecordExpense("", 50, nil)
	assert.Error(t, err)

	_, err = ts.expenses.RecordExpense(models.CategoryRent, 0, nil)
	assert.Error(t, err)

	_, err = ts.expenses.RecordExpense(models.CategoryRent, -10, nil)
	assert.Error(t, err)

	expense, err := ts.expenses.RecordExpense(models.CategoryRent, 3000, nil)
	require.NoError(t, err)
	assert.Nil(t, expense.ShiftID)
}

func TestRecordExpenseStampedWithActiveShift(t *testing.T) {
	ts := setupTest(t)

	shift, err := ts.shifts.OpenShift("كريم")
	require.NoError(t, err)

	expense, err := ts.expenses.RecordExpense(models.CategoryDailyLabor, 150, nil)
	require.NoError(t, err)
	require.NotNil(t, expense.ShiftID)
	assert.Equal(t, shift.ID, *expense.ShiftID)
}

func TestFreeTextCategoryAccepted(t *testing.T) {
	ts := setupTest(t)

	_, err := ts.expenses.RecordExpense("سباكة", 75, nil)
	assert.NoError(t, err)
}

func TestDeleteShopDataInMonth(t *testing.T) {
	ts := setupTest(t)

	now := time.Now()

	_, err := ts.sales.RecordSale(SaleInput{
		Type:      models.SaleTypeProduct,
		BuyerType: models.BuyerTypeShop,
		Total:     100,
		Items:     []SaleItemInput{{ItemName: "مناشف", UnitPrice: 100, Quantity: 1}},
	})
	require.NoError(t, err)

	// a customer sale in the same month must survive the purge
	_, err = ts.sales.RecordSale(SaleInput{
		Type:  models.SaleTypeProduct,
		Total: 80,
		Items: []SaleItemInput{{ItemName: "شامبو", UnitPrice: 80, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, ts.expenses.DeleteShopDataInMonth(now.Year(), now.Month()))

	var shopSales int64
	require.NoError(t, database.GetDB().Model(&models.Sale{}).
		Where("is_shop = ?", true).Count(&shopSales).Error)
	assert.Zero(t, shopSales)

	var shopExpenses int64
	require.NoError(t, database.GetDB().Model(&models.Expense{}).
		Where("category = ?", models.CategoryShopPurchases).Count(&shopExpenses).Error)
	assert.Zero(t, shopExpenses)

	var remaining int64
	require.NoError(t, database.GetDB().Model(&models.Sale{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)

	var items int64
	require.NoError(t, database.GetDB().Model(&models.SaleItem{}).Count(&items).Error)
	assert.EqualValues(t, 1, items)
}
