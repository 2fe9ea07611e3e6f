package services

import (
	"SalonApp/app/database"
	"SalonApp/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnlyOneActiveShift(t *testing.T) {
	ts := setupTest(t)

	first, err := ts.shifts.OpenShift("كريم")
	require.NoError(t, err)
	assert.Equal(t, 1, first.ShiftNumber)

	_, err = ts.shifts.OpenShift("هاني")
	assert.ErrorIs(t, err, ErrShiftAlreadyOpen)

	_, err = ts.shifts.CloseShift(first.ID)
	require.NoError(t, err)

	second, err := ts.shifts.OpenShift("هاني")
	require.NoError(t, err)
	assert.Equal(t, 2, second.ShiftNumber)
}

func TestCloseShiftTwice(t *testing.T) {
	ts := setupTest(t)

	shift, err := ts.shifts.OpenShift("كريم")
	require.NoError(t, err)

	closed, err := ts.shifts.CloseShift(shift.ID)
	require.NoError(t, err)
	assert.False(t, closed.Active)
	assert.NotNil(t, closed.ClosedAt)

	_, err = ts.shifts.CloseShift(shift.ID)
	assert.ErrorIs(t, err, ErrShiftClosed)
}

func TestActiveShiftWhenNoneOpen(t *testing.T) {
	ts := setupTest(t)

	shift, err := ts.shifts.ActiveShift()
	require.NoError(t, err)
	assert.Nil(t, shift)
}

func TestNormalizeDateWithoutShift(t *testing.T) {
	ts := setupTest(t)

	now := time.Now()
	normalized, shiftID, err := ts.shifts.NormalizeDate(now)
	require.NoError(t, err)
	assert.Nil(t, shiftID)
	assert.Equal(t, now, normalized)
}

func TestShiftSummaryScopes(t *testing.T) {
	ts := setupTest(t)

	shift, err := ts.shifts.OpenShift("كريم")
	require.NoError(t, err)

	_, err = ts.sales.RecordSale(SaleInput{
		Type:            models.SaleTypeService,
		Total:           200,
		DiscountPercent: 10,
	})
	require.NoError(t, err)

	note := "ثلج"
	_, err = ts.expenses.RecordExpense(models.CategoryOwner, 30, &note)
	require.NoError(t, err)

	// A stray sale on the same day without a shift stamp: the day scope
	// picks it up, the shift scope does not.
	stray := models.Sale{
		Date:      time.Now(),
		Total:     100,
		Type:      models.SaleTypeService,
		BuyerType: models.BuyerTypeCustomer,
	}
	require.NoError(t, database.GetDB().Create(&stray).Error)

	byDay, err := ts.shifts.Summary(shift.ID, SummaryByDay)
	require.NoError(t, err)
	assert.Equal(t, 2, byDay.InvoiceCount)
	assert.InDelta(t, 280, byDay.TotalSales, 0.0001)
	assert.InDelta(t, 20, byDay.CustomerDiscounts, 0.0001)
	assert.InDelta(t, 30, byDay.TotalExpenses, 0.0001)

	byShift, err := ts.shifts.Summary(shift.ID, SummaryByShift)
	require.NoError(t, err)
	assert.Equal(t, 1, byShift.InvoiceCount)
	assert.InDelta(t, 180, byShift.TotalSales, 0.0001)
}

func TestShiftSummaryDuration(t *testing.T) {
	ts := setupTest(t)

	shift, err := ts.shifts.OpenShift("كريم")
	require.NoError(t, err)

	openedAt := time.Now().Add(-(2*time.Hour + 35*time.Minute))
	require.NoError(t, database.GetDB().Model(&models.Shift{}).
		Where("id = ?", shift.ID).
		Update("opened_at", openedAt).Error)

	closed, err := ts.shifts.CloseShift(shift.ID)
	require.NoError(t, err)

	summary, err := ts.shifts.Summary(closed.ID, SummaryByShift)
	require.NoError(t, err)
	assert.Equal(t, "02:35", summary.Duration)
}
