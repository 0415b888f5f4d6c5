package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// styledStrategy draws the full native layout: boxed party blocks, a ruled
// item table with jurisdiction-dependent tax columns, a totals panel, the
// amount in words, and bank and e-invoice details.
type styledStrategy struct{}

func (s *styledStrategy) name() string { return "styled" }

func (s *styledStrategy) render(_ context.Context, v *viewModel) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, v.Title, "", 1, "C", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(95, 6, "Invoice No: "+v.InvoiceNumber, "", 0, "L", false, 0, "")
	doc.CellFormat(95, 6, "Date: "+v.InvoiceDate, "", 1, "R", false, 0, "")
	if v.DueDate != "" {
		doc.CellFormat(0, 6, "Due Date: "+v.DueDate, "", 1, "R", false, 0, "")
	}
	if v.PlaceOfSupply != "" {
		doc.CellFormat(0, 6, "Place of Supply: "+v.PlaceOfSupply, "", 1, "L", false, 0, "")
	}
	doc.Ln(2)

	partyTop := doc.GetY()
	s.partyBlock(doc, 10, partyTop, "Seller", []string{
		v.SellerName,
		"GSTIN: " + v.SellerGSTIN,
		v.SellerAddress,
		v.SellerState,
	})
	s.partyBlock(doc, 105, partyTop, "Bill To", []string{
		v.BuyerName,
		"GSTIN: " + v.BuyerGSTIN,
		v.BuyerAddress,
		buyerLocation(v),
	})
	doc.Ln(4)

	s.itemTable(doc, v)
	s.totalsPanel(doc, v)

	doc.Ln(4)
	doc.SetFont("Helvetica", "I", 9)
	doc.MultiCell(0, 5, "Amount in words: "+v.TotalInWords+" Only", "", "L", false)

	if v.IRN != "" {
		doc.Ln(2)
		doc.SetFont("Helvetica", "", 8)
		doc.MultiCell(0, 4, "IRN: "+v.IRN, "", "L", false)
		if v.AckNo != "" {
			doc.CellFormat(0, 4, "Ack No: "+v.AckNo+"  Ack Date: "+v.AckDate, "", 1, "L", false, 0, "")
		}
	}

	if v.BankName != "" {
		doc.Ln(3)
		doc.SetFont("Helvetica", "B", 9)
		doc.CellFormat(0, 5, "Bank Details", "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 9)
		doc.CellFormat(0, 4, "Bank: "+v.BankName, "", 1, "L", false, 0, "")
		doc.CellFormat(0, 4, "Account No: "+v.AccountNumber, "", 1, "L", false, 0, "")
		doc.CellFormat(0, 4, "IFSC: "+v.IFSCCode, "", 1, "L", false, 0, "")
	}

	if v.Notes != "" {
		doc.Ln(3)
		doc.SetFont("Helvetica", "", 8)
		doc.MultiCell(0, 4, v.Notes, "", "L", false)
	}

	doc.Ln(8)
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 5, "For "+v.SellerName, "", 1, "R", false, 0, "")
	doc.Ln(12)
	doc.CellFormat(0, 5, "Authorised Signatory", "", 1, "R", false, 0, "")

	doc.Ln(4)
	doc.SetFont("Helvetica", "I", 7)
	doc.CellFormat(0, 4, generatedDisclaimer(v), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("styled layout: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *styledStrategy) partyBlock(doc *gofpdf.Fpdf, x, y float64, label string, rows []string) {
	doc.SetXY(x, y)
	doc.SetFont("Helvetica", "B", 8)
	doc.CellFormat(95, 5, label, "LTR", 2, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	for i, row := range rows {
		border := "LR"
		if i == len(rows)-1 {
			border = "LRB"
		}
		doc.SetX(x)
		doc.CellFormat(95, 5, row, border, 2, "L", false, 0, "")
	}
}

func (s *styledStrategy) itemTable(doc *gofpdf.Fpdf, v *viewModel) {
	type col struct {
		width float64
		title string
		align string
	}
	cols := []col{
		{8, "#", "C"},
		{50, "Description", "L"},
		{18, "HSN/SAC", "C"},
		{14, "Qty", "R"},
		{22, "Rate", "R"},
		{22, "Taxable", "R"},
		{14, "Rate %", "R"},
	}
	if v.Intra {
		cols = append(cols, col{16, "CGST", "R"}, col{16, "SGST", "R"})
	} else {
		cols = append(cols, col{32, "IGST", "R"})
	}
	cols = append(cols, col{26, "Total", "R"})

	doc.SetY(doc.GetY() + 8)
	doc.SetFont("Helvetica", "B", 8)
	doc.SetFillColor(235, 235, 235)
	for _, c := range cols {
		doc.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 8)
	for _, item := range v.Items {
		cells := []string{
			fmt.Sprintf("%d", item.SlNo),
			item.Description,
			item.HSNSAC,
			item.Quantity,
			item.Rate,
			item.Subtotal,
			item.TaxRate,
		}
		if v.Intra {
			cells = append(cells, item.CGST, item.SGST)
		} else {
			cells = append(cells, item.IGST)
		}
		cells = append(cells, item.Total)
		for i, c := range cols {
			doc.CellFormat(c.width, 6, cells[i], "1", 0, c.align, false, 0, "")
		}
		doc.Ln(-1)
	}
}

func (s *styledStrategy) totalsPanel(doc *gofpdf.Fpdf, v *viewModel) {
	rows := [][2]string{{"Subtotal", v.Subtotal}}
	if v.Intra {
		rows = append(rows, [2]string{"CGST", v.CGSTTotal}, [2]string{"SGST", v.SGSTTotal})
	} else {
		rows = append(rows, [2]string{"IGST", v.IGSTTotal})
	}
	if v.HasDiscount {
		rows = append(rows, [2]string{"Discount", "- " + v.Discount})
	}
	if v.HasRoundOff {
		rows = append(rows, [2]string{"Round Off", v.RoundOff})
	}

	doc.Ln(2)
	doc.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		doc.CellFormat(130, 6, "", "", 0, "L", false, 0, "")
		doc.CellFormat(30, 6, row[0], "", 0, "L", false, 0, "")
		doc.CellFormat(30, 6, row[1], "", 1, "R", false, 0, "")
	}
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(130, 7, "", "", 0, "L", false, 0, "")
	doc.CellFormat(30, 7, "Total", "T", 0, "L", false, 0, "")
	doc.CellFormat(30, 7, v.Total, "T", 1, "R", false, 0, "")
}

func generatedDisclaimer(v *viewModel) string {
	return "This is a computer-generated invoice and requires no signature. Generated on " + v.GeneratedAt
}

func buyerLocation(v *viewModel) string {
	if v.BuyerCountry != "" && v.BuyerCountry != "India" {
		return v.BuyerState + ", " + v.BuyerCountry
	}
	return v.BuyerState
}
