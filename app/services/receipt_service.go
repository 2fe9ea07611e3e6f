package services

import (
	"SalonApp/app/config"
	"SalonApp/app/database"
	"SalonApp/app/models"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

// ReceiptService renders invoices as printable files in the receipts
// directory. Receipts are a convenience artifact: a failure here is reported
// to the caller but never rolls back the sale it describes.
type ReceiptService struct {
	receiptsDir string
	business    config.BusinessConfig
}

// NewReceiptService creates a new receipt service
func NewReceiptService(dataDir string, business config.BusinessConfig) *ReceiptService {
	return &ReceiptService{
		receiptsDir: database.ReceiptsDir(dataDir),
		business:    business,
	}
}

// WriteTextReceipt writes a plain-text receipt for the sale and returns its
// path. Plain text feeds thermal printers directly.
func (s *ReceiptService) WriteTextReceipt(sale *models.Sale, employeeName string) (string, error) {
	var b strings.Builder

	line := strings.Repeat("=", 32)
	b.WriteString(line + "\n")
	b.WriteString(centerText(s.business.Name, 32) + "\n")
	if s.business.Phone != "" {
		b.WriteString(centerText(s.business.Phone, 32) + "\n")
	}
	b.WriteString(line + "\n")
	b.WriteString(fmt.Sprintf("Invoice #%d\n", sale.ID))
	b.WriteString(sale.Date.Format("2006-01-02 15:04") + "\n")
	if employeeName != "" {
		b.WriteString(employeeName + "\n")
	}
	if sale.CustomerName != nil && *sale.CustomerName != "" {
		b.WriteString(*sale.CustomerName + "\n")
	}
	b.WriteString(strings.Repeat("-", 32) + "\n")

	for _, item := range sale.Items {
		b.WriteString(fmt.Sprintf("%s\n", item.ItemName))
		b.WriteString(fmt.Sprintf("  %d x %.2f = %.2f\n", item.Quantity, item.UnitPrice, item.LineTotal()))
	}

	b.WriteString(strings.Repeat("-", 32) + "\n")
	b.WriteString(fmt.Sprintf("Total: %.2f\n", sale.Total))
	if sale.DiscountPercent > 0 {
		afterDiscount := sale.Total * (1 - float64(sale.DiscountPercent)/100.0)
		b.WriteString(fmt.Sprintf("Discount: %d%%\n", sale.DiscountPercent))
		b.WriteString(fmt.Sprintf("To pay: %.2f\n", afterDiscount))
	}
	b.WriteString(line + "\n")

	path := s.receiptPath(sale, "txt")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}
	return path, nil
}

// WriteHTMLReceipt writes a styled receipt next to a QR code image carrying
// the invoice reference, and returns the HTML file's path.
func (s *ReceiptService) WriteHTMLReceipt(sale *models.Sale, employeeName string) (string, error) {
	qrPath := s.receiptPath(sale, "png")
	qrErr := qrcode.WriteFile(fmt.Sprintf("sale:%d:%s", sale.ID, sale.Date.Format("2006-01-02")),
		qrcode.Medium, 128, qrPath)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html dir=\"rtl\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<style>body{font-family:sans-serif;width:280px;margin:auto;text-align:center}")
	b.WriteString("table{width:100%;border-collapse:collapse}td{padding:2px 0;text-align:right}")
	b.WriteString(".total{border-top:1px dashed #000;font-weight:bold}</style>\n</head>\n<body>\n")
	b.WriteString(fmt.Sprintf("<h2>%s</h2>\n", html.EscapeString(s.business.Name)))
	if s.business.Phone != "" {
		b.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(s.business.Phone)))
	}
	b.WriteString(fmt.Sprintf("<p>فاتورة #%d<br>%s</p>\n", sale.ID, sale.Date.Format("2006-01-02 15:04")))
	if employeeName != "" {
		b.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(employeeName)))
	}

	b.WriteString("<table>\n")
	for _, item := range sale.Items {
		b.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%d x %.2f</td><td>%.2f</td></tr>\n",
			html.EscapeString(item.ItemName), item.Quantity, item.UnitPrice, item.LineTotal()))
	}
	b.WriteString(fmt.Sprintf("<tr class=\"total\"><td colspan=\"2\">الإجمالي</td><td>%.2f</td></tr>\n", sale.Total))
	if sale.DiscountPercent > 0 {
		afterDiscount := sale.Total * (1 - float64(sale.DiscountPercent)/100.0)
		b.WriteString(fmt.Sprintf("<tr><td colspan=\"2\">الخصم %d%%</td><td>%.2f</td></tr>\n",
			sale.DiscountPercent, afterDiscount))
	}
	b.WriteString("</table>\n")

	if qrErr == nil {
		b.WriteString(fmt.Sprintf("<img src=\"%s\" width=\"96\" height=\"96\">\n", filepath.Base(qrPath)))
	}
	b.WriteString("</body>\n</html>\n")

	path := s.receiptPath(sale, "html")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}
	return path, nil
}

func (s *ReceiptService) receiptPath(sale *models.Sale, ext string) string {
	name := fmt.Sprintf("receipt_%s_%d_%s.%s",
		sale.Type, sale.ID, time.Now().Format("20060102_150405"), ext)
	return filepath.Join(s.receiptsDir, name)
}

func centerText(text string, width int) string {
	runes := []rune(text)
	if len(runes) >= width {
		return text
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + text
}
