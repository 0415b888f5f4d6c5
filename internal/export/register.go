// Package export writes the invoice register as CSV or XLSX for GST filing
// workflows.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"gstpro/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// registerDateLayout matches the DD-MM-YYYY presentation used on printed
// invoices.
const registerDateLayout = "02-01-2006"

// columns defines the register header row.
var columns = []string{
	"Invoice Number",
	"Invoice Date",
	"Document Type",
	"Supply Type",
	"Tax Type",
	"Status",
	"Payment Status",
	"Subtotal",
	"CGST",
	"SGST",
	"IGST",
	"Tax Amount",
	"Discount",
	"Round Off",
	"Total",
	"Currency",
	"IRN",
	"Imported",
}

func registerRow(inv *domain.Invoice) []string {
	imported := "No"
	if inv.IsImported {
		imported = "Yes"
	}
	return []string{
		inv.InvoiceNumber,
		inv.InvoiceDate.Format(registerDateLayout),
		string(inv.DocumentType),
		string(inv.SupplyType),
		string(inv.TaxType),
		string(inv.Status),
		string(inv.PaymentStatus),
		fixed2(inv.Subtotal),
		fixed2(inv.CGSTTotal),
		fixed2(inv.SGSTTotal),
		fixed2(inv.IGSTTotal),
		fixed2(inv.TaxAmount),
		fixed2(inv.DiscountAmount),
		fixed2(inv.RoundOff),
		fixed2(inv.Total),
		inv.Currency,
		inv.IRN,
		imported,
	}
}

func fixed2(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}

// CSVWriter wraps csv.Writer for exporting the invoice register.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w. The BOM is the caller's
// responsibility so streamed responses can prepend it once.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the register header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteInvoices converts a batch of invoices to rows and writes them.
func (w *CSVWriter) WriteInvoices(invoices []domain.Invoice) error {
	for i := range invoices {
		if err := w.csv.Write(registerRow(&invoices[i])); err != nil {
			return fmt.Errorf("write register row: %w", err)
		}
	}
	return nil
}

// Flush flushes buffered rows and reports any write error.
func (w *CSVWriter) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

// WriteCSV writes the full register with BOM, header, and rows.
func WriteCSV(w io.Writer, invoices []domain.Invoice) error {
	if _, err := w.Write(BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}
	cw := NewCSVWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return fmt.Errorf("write register header: %w", err)
	}
	if err := cw.WriteInvoices(invoices); err != nil {
		return err
	}
	return cw.Flush()
}

// WriteXLSX writes the register as a single-sheet workbook.
func WriteXLSX(w io.Writer, invoices []domain.Invoice) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Invoice Register"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create register sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write register header: %w", err)
	}

	for i := range invoices {
		cells := registerRow(&invoices[i])
		row := make([]interface{}, len(cells))
		for j, c := range cells {
			row[j] = c
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("register cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write register row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
