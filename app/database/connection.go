package database

import (
	"SalonApp/app/models"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}

// DBPath returns the location of the store file inside the data directory.
func DBPath(dataDir string) string {
	return filepath.Join(dataDir, "salon.db")
}

// ReceiptsDir returns the directory receipt payloads are written to.
func ReceiptsDir(dataDir string) string {
	return filepath.Join(dataDir, "receipts")
}

// BackupsDir returns the directory point-in-time copies are written to.
func BackupsDir(dataDir string) string {
	return filepath.Join(dataDir, "backups")
}

// Initialize opens the store file and brings the schema up to date.
func Initialize(dataDir string) error {
	for _, dir := range []string{dataDir, ReceiptsDir(dataDir), BackupsDir(dataDir)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now()
		},
	}

	var err error
	db, err = gorm.Open(sqlite.Open(DBPath(dataDir)), gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// InitializeInMemory opens a throwaway in-memory store. Used by tests.
func InitializeInMemory() error {
	var err error
	db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open in-memory database: %w", err)
	}
	return RunMigrations(db)
}

// RunMigrations creates tables and applies additive column migrations
func RunMigrations(conn *gorm.DB) error {
	err := conn.AutoMigrate(
		&models.Employee{},
		&models.Service{},
		&models.Product{},
		&models.Sale{},
		&models.SaleItem{},
		&models.Expense{},
		&models.Attendance{},
		&models.Loan{},
		&models.Supplier{},
		&models.SupplierInvoice{},
		&models.SupplierPayment{},
		&models.Shift{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if err := RunAdditionalMigrations(conn); err != nil {
		return err
	}

	createIndexes(conn)

	return nil
}

// RunAdditionalMigrations adds columns introduced after the first release.
// Stores created before a column existed gain it here; on stores that
// already have it the ALTER fails with "duplicate column name" and is
// skipped, so the routine is safe to run any number of times.
func RunAdditionalMigrations(conn *gorm.DB) error {
	additive := []string{
		`ALTER TABLE sales ADD COLUMN buyer_type TEXT NOT NULL DEFAULT 'customer'`,
		`ALTER TABLE sales ADD COLUMN material_deduction REAL NOT NULL DEFAULT 0`,
		`ALTER TABLE sales ADD COLUMN shift_id INTEGER`,
		`ALTER TABLE sales ADD COLUMN cleared NUMERIC NOT NULL DEFAULT 0`,
		`ALTER TABLE expenses ADD COLUMN shift_id INTEGER`,
		`ALTER TABLE attendance ADD COLUMN manual NUMERIC NOT NULL DEFAULT 0`,
		`ALTER TABLE attendance ADD COLUMN note TEXT`,
		`ALTER TABLE loans ADD COLUMN cleared NUMERIC NOT NULL DEFAULT 0`,
	}

	for _, stmt := range additive {
		if err := conn.Exec(stmt).Error; err != nil {
			if strings.Contains(err.Error(), "duplicate column") {
				continue
			}
			return fmt.Errorf("additive migration failed (%s): %w", stmt, err)
		}
	}

	return nil
}

// createIndexes creates database indexes for query performance
func createIndexes(conn *gorm.DB) {
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_sales_date ON sales(date)")
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_sales_employee_id ON sales(employee_id)")
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_sale_items_sale_id ON sale_items(sale_id)")
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date)")
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category)")
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_attendance_employee_date ON attendance(employee_id, date)")
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_shifts_active ON shifts(active)")
}

// Close closes the database connection
func Close() error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction executes a function within a database transaction
func Transaction(fn func(*gorm.DB) error) error {
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	return db.Transaction(fn)
}
