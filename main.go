package main

import (
	"SalonApp/app/config"
	"SalonApp/app/database"
	"SalonApp/app/models"
	"SalonApp/app/services"
	"context"
	"embed"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

//go:embed all:frontend/dist
var assets embed.FS

// App struct
type App struct {
	ctx               context.Context
	dataDir           string
	LoggerService     *services.LoggerService
	ShiftService      *services.ShiftService
	SalesService      *services.SalesService
	ExpenseService    *services.ExpenseService
	SupplierService   *services.SupplierService
	AttendanceService *services.AttendanceService
	EmployeeService   *services.EmployeeService
	ProductService    *services.ProductService
	ReportsService    *services.ReportsService
	ReceiptService    *services.ReceiptService
	PrinterService    *services.PrinterService
	SettingsService   *services.SettingsService
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	runtime.WindowMaximise(a.ctx)
}

// beforeClose is called when the application is about to quit,
// either by clicking the window close button or calling runtime.Quit.
func (a *App) beforeClose(ctx context.Context) (prevent bool) {
	a.LoggerService.LogInfo("Application closing")

	if _, err := database.Backup(a.dataDir); err != nil {
		a.LoggerService.LogWarning("Closing backup failed", err.Error())
	}

	if err := database.Close(); err != nil {
		a.LoggerService.LogError("Error closing database", err)
	} else {
		a.LoggerService.LogInfo("Database connection closed successfully")
	}

	a.LoggerService.LogInfo("Application shutdown complete")
	return false
}

// BackupNow copies the store file into the backups directory on demand.
func (a *App) BackupNow() (string, error) {
	path, err := database.Backup(a.dataDir)
	if err != nil {
		a.LoggerService.LogError("Backup failed", err)
		return "", err
	}
	a.LoggerService.LogInfo("Backup created", path)
	return path, nil
}

// RecordSaleWithReceipt records an invoice and renders its receipt files.
// The sale is committed first; receipt failures are logged and do not undo
// the sale.
func (a *App) RecordSaleWithReceipt(input services.SaleInput) (*models.Sale, error) {
	sale, err := a.SalesService.RecordSale(input)
	if err != nil {
		a.LoggerService.LogError("Failed to record sale", err)
		return nil, err
	}

	employeeName := ""
	if sale.EmployeeID != nil {
		var employee models.Employee
		if err := database.GetDB().First(&employee, *sale.EmployeeID).Error; err == nil {
			employeeName = employee.Name
		}
	}

	if _, err := a.ReceiptService.WriteTextReceipt(sale, employeeName); err != nil {
		a.LoggerService.LogWarning("Text receipt failed", err.Error())
	}
	if _, err := a.ReceiptService.WriteHTMLReceipt(sale, employeeName); err != nil {
		a.LoggerService.LogWarning("HTML receipt failed", err.Error())
	}

	return sale, nil
}

func main() {
	loggerService := services.NewLoggerService()
	if loggerService == nil {
		fmt.Println("CRITICAL: Logger service failed to initialize")
		os.Exit(1)
	}
	defer loggerService.Close()

	defer func() {
		if r := recover(); r != nil {
			loggerService.LogPanic(r)
			os.Exit(1)
		}
	}()

	loggerService.LogInfo("Application starting", "Salon Management System")

	if err := godotenv.Load(".env"); err != nil {
		loggerService.LogWarning(".env file not found, using config.json defaults")
	}

	exists, err := config.ConfigExists()
	if err != nil {
		loggerService.LogFatal("Could not resolve config path", err)
	}

	var cfg *config.AppConfig
	if exists {
		cfg, err = config.LoadConfig()
		if err != nil {
			loggerService.LogFatal("Could not load config.json", err)
		}
	} else {
		loggerService.LogInfo("First run detected, creating default configuration")
		cfg, err = config.CreateDefaultConfig()
		if err != nil {
			loggerService.LogFatal("Could not create default config", err)
		}
	}

	dataDir, err := cfg.DataDir()
	if err != nil {
		loggerService.LogFatal("Could not resolve data directory", err)
	}

	loggerService.LogInfo("Initializing database", dataDir)
	if err := database.Initialize(dataDir); err != nil {
		loggerService.LogFatal("Failed to initialize database", err)
	}

	app := NewApp()
	app.dataDir = dataDir
	app.LoggerService = loggerService
	app.ShiftService = services.NewShiftService()
	app.SalesService = services.NewSalesService(app.ShiftService)
	app.ExpenseService = services.NewExpenseService(app.ShiftService)
	app.SupplierService = services.NewSupplierService(app.ShiftService)
	app.AttendanceService = services.NewAttendanceService(app.ShiftService)
	app.EmployeeService = services.NewEmployeeService(app.ShiftService)
	app.ProductService = services.NewProductService()
	app.ReportsService = services.NewReportsService(app.SupplierService)
	app.ReceiptService = services.NewReceiptService(dataDir, cfg.Business)
	app.PrinterService = services.NewPrinterService(dataDir)
	app.SettingsService = services.NewSettingsService()

	if cfg.FirstRun {
		if err := config.MarkSetupComplete(); err != nil {
			loggerService.LogWarning("Could not mark setup complete", err.Error())
		}
	}

	bindList := []interface{}{
		app,
		app.LoggerService,
		app.ShiftService,
		app.SalesService,
		app.ExpenseService,
		app.SupplierService,
		app.AttendanceService,
		app.EmployeeService,
		app.ProductService,
		app.ReportsService,
		app.ReceiptService,
		app.PrinterService,
		app.SettingsService,
	}

	err = wails.Run(&options.App{
		Title:  "Salon Management System",
		Width:  1400,
		Height: 900,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.startup,
		OnBeforeClose:    app.beforeClose,
		Bind:             bindList,
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			DisableWindowIcon:    false,
		},
		Menu: nil,
	})

	if err != nil {
		loggerService.LogError("Wails application error", err)
		println("Error:", err.Error())
	}
}
