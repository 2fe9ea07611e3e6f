package services

import (
	"SalonApp/app/database"
	"SalonApp/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSaleWithItems(t *testing.T) {
	ts := setupTest(t)

	employee, err := ts.employees.AddEmployee("سارة")
	require.NoError(t, err)

	customer := "منى"
	sale, err := ts.sales.RecordSale(SaleInput{
		EmployeeID:   &employee.ID,
		CustomerName: &customer,
		Type:         models.SaleTypeService,
		Total:        150,
		Items: []SaleItemInput{
			{ItemName: "قص شعر", UnitPrice: 100, Quantity: 1},
			{ItemName: "استشوار", UnitPrice: 50, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, sale.ID)

	loaded, err := ts.sales.GetSale(sale.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 2)
	assert.Equal(t, "قص شعر", loaded.Items[0].ItemName)
	assert.Equal(t, "استشوار", loaded.Items[1].ItemName)
	assert.Equal(t, models.BuyerTypeCustomer, loaded.BuyerType)
	assert.False(t, loaded.Cleared)
}

func TestRecordSaleValidation(t *testing.T) {
	ts := setupTest(t)

	_, err := ts.sales.RecordSale(SaleInput{Type: "rental", Total: 10})
	assert.Error(t, err)

	_, err = ts.sales.RecordSale(SaleInput{Type: models.SaleTypeService, Total: -1})
	assert.Error(t, err)

	_, err = ts.sales.RecordSale(SaleInput{Type: models.SaleTypeService, Total: 10, DiscountPercent: 101})
	assert.Error(t, err)

	_, err = ts.sales.RecordSale(SaleInput{Type: models.SaleTypeService, Total: 10, MaterialDeduction: -5})
	assert.Error(t, err)

	_, err = ts.sales.RecordSale(SaleInput{
		Type:  models.SaleTypeService,
		Total: 10,
		Items: []SaleItemInput{{ItemName: "", UnitPrice: 10, Quantity: 1}},
	})
	assert.Error(t, err)
}

func TestProductSaleDecrementsInventory(t *testing.T) {
	ts := setupTest(t)

	product, err := ts.products.AddProduct("شامبو", 80, 10)
	require.NoError(t, err)

	_, err = ts.sales.RecordSale(SaleInput{
		Type:  models.SaleTypeProduct,
		Total: 240,
		Items: []SaleItemInput{
			{ItemName: product.Name, UnitPrice: 80, Quantity: 3, ProductID: &product.ID},
		},
	})
	require.NoError(t, err)

	updated, err := ts.products.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)
}

func TestInventoryMayGoNegative(t *testing.T) {
	ts := setupTest(t)

	product, err := ts.products.AddProduct("بلسم", 60, 1)
	require.NoError(t, err)

	_, err = ts.sales.RecordSale(SaleInput{
		Type:  models.SaleTypeProduct,
		Total: 180,
		Items: []SaleItemInput{
			{ItemName: product.Name, UnitPrice: 60, Quantity: 3, ProductID: &product.ID},
		},
	})
	require.NoError(t, err)

	updated, err := ts.products.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, -2, updated.Quantity)
}

func TestShopSaleFansOutExpensePerItem(t *testing.T) {
	ts := setupTest(t)

	sale, err := ts.sales.RecordSale(SaleInput{
		Type:      models.SaleTypeProduct,
		BuyerType: models.BuyerTypeShop,
		Total:     170,
		Items: []SaleItemInput{
			{ItemName: "صبغة", UnitPrice: 50, Quantity: 2},
			{ItemName: "فوط", UnitPrice: 70, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.True(t, sale.IsShop)
	assert.Nil(t, sale.CustomerName)

	var expenses []models.Expense
	require.NoError(t, database.GetDB().
		Where("category = ?", models.CategoryShopPurchases).
		Order("id").
		Find(&expenses).Error)
	require.Len(t, expenses, 2)
	assert.InDelta(t, 100, expenses[0].Amount, 0.0001)
	assert.InDelta(t, 70, expenses[1].Amount, 0.0001)
	require.NotNil(t, expenses[0].Note)
	assert.Equal(t, "صبغة", *expenses[0].Note)
}

func TestSaleDatedToShiftOpeningDay(t *testing.T) {
	ts := setupTest(t)

	shift, err := ts.shifts.OpenShift("كريم")
	require.NoError(t, err)

	// Shift opened late yesterday evening; the clock has rolled past
	// midnight before this sale is rung up.
	yesterday := time.Now().AddDate(0, 0, -1)
	openedAt := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(),
		23, 50, 0, 0, time.Local)
	require.NoError(t, database.GetDB().Model(&models.Shift{}).
		Where("id = ?", shift.ID).
		Update("opened_at", openedAt).Error)

	afterMidnight := openedAt.Add(15 * time.Minute)
	sale, err := ts.sales.RecordSale(SaleInput{
		Date:  afterMidnight,
		Type:  models.SaleTypeService,
		Total: 60,
		Items: []SaleItemInput{{ItemName: "حلاقة", UnitPrice: 60, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, openedAt.Day(), sale.Date.Day())
	assert.Equal(t, 0, sale.Date.Hour())
	assert.Equal(t, 5, sale.Date.Minute())
	require.NotNil(t, sale.ShiftID)
	assert.Equal(t, shift.ID, *sale.ShiftID)
}

func TestDeleteSaleRemovesItems(t *testing.T) {
	ts := setupTest(t)

	sale, err := ts.sales.RecordSale(SaleInput{
		Type:  models.SaleTypeService,
		Total: 40,
		Items: []SaleItemInput{{ItemName: "حواجب", UnitPrice: 40, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, ts.sales.DeleteSale(sale.ID))

	var count int64
	require.NoError(t, database.GetDB().Model(&models.SaleItem{}).
		Where("sale_id = ?", sale.ID).Count(&count).Error)
	assert.Zero(t, count)

	assert.Error(t, ts.sales.DeleteSale(sale.ID))
}

func TestClearSale(t *testing.T) {
	ts := setupTest(t)

	sale, err := ts.sales.RecordSale(SaleInput{
		Type:  models.SaleTypeService,
		Total: 40,
	})
	require.NoError(t, err)

	require.NoError(t, ts.sales.ClearSale(sale.ID))

	loaded, err := ts.sales.GetSale(sale.ID)
	require.NoError(t, err)
	assert.True(t, loaded.Cleared)
}
