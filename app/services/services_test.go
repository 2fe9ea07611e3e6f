package services

import (
	"SalonApp/app/database"
	"testing"

	"github.com/stretchr/testify/require"
)

// testServices wires the full service graph over a fresh in-memory store.
type testServices struct {
	shifts     *ShiftService
	sales      *SalesService
	expenses   *ExpenseService
	suppliers  *SupplierService
	attendance *AttendanceService
	employees  *EmployeeService
	products   *ProductService
	reports    *ReportsService
}

func setupTest(t *testing.T) *testServices {
	t.Helper()
	require.NoError(t, database.InitializeInMemory())

	shifts := NewShiftService()
	suppliers := NewSupplierService(shifts)
	return &testServices{
		shifts:     shifts,
		sales:      NewSalesService(shifts),
		expenses:   NewExpenseService(shifts),
		suppliers:  suppliers,
		attendance: NewAttendanceService(shifts),
		employees:  NewEmployeeService(shifts),
		products:   NewProductService(),
		reports:    NewReportsService(suppliers),
	}
}
