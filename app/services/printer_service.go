package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Virtual printer drivers produce files, not paper; selecting one would make
// receipts silently disappear into documents nobody opens.
var virtualPrinters = []string{
	"Microsoft Print to PDF",
	"Microsoft XPS Document Writer",
	"OneNote",
	"Fax",
}

// PrinterService remembers which physical printer receipts go to. The choice
// is kept in a plain file inside the data directory so it survives restarts
// and travels with the data folder.
type PrinterService struct {
	dataDir string
}

// NewPrinterService creates a new printer service
func NewPrinterService(dataDir string) *PrinterService {
	return &PrinterService{dataDir: dataDir}
}

func (s *PrinterService) printerFile() string {
	return filepath.Join(s.dataDir, "printer.txt")
}

// IsVirtualPrinter reports whether the name belongs to a file-producing
// driver rather than a physical printer.
func (s *PrinterService) IsVirtualPrinter(name string) bool {
	for _, v := range virtualPrinters {
		if strings.Contains(strings.ToLower(name), strings.ToLower(v)) {
			return true
		}
	}
	return false
}

// SetPrinter records the printer receipts are sent to.
func (s *PrinterService) SetPrinter(name string) error {
	if name == "" {
		return fmt.Errorf("printer name is required")
	}
	if s.IsVirtualPrinter(name) {
		return fmt.Errorf("%q is a virtual printer; choose a physical printer", name)
	}
	if err := os.WriteFile(s.printerFile(), []byte(name), 0644); err != nil {
		return fmt.Errorf("failed to save printer selection: %w", err)
	}
	return nil
}

// SelectedPrinter returns the saved printer name, or empty when none is set.
func (s *PrinterService) SelectedPrinter() string {
	data, err := os.ReadFile(s.printerFile())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// ClearPrinter forgets the saved printer selection.
func (s *PrinterService) ClearPrinter() error {
	err := os.Remove(s.printerFile())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear printer selection: %w", err)
	}
	return nil
}
