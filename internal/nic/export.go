package nic

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"gstpro/internal/domain"
	"gstpro/internal/gst"
)

// exportDateLayout is the DD/MM/YYYY format required by the GST portal.
const exportDateLayout = "02/01/2006"

// supplyTypeCodes maps internal supply types to portal codes. Unrecognized
// values fall through to B2B.
var supplyTypeCodes = map[domain.SupplyType]string{
	domain.SupplyTypeB2B:              "B2B",
	domain.SupplyTypeB2C:              "B2C",
	domain.SupplyTypeExportWithTax:    "EXPWP",
	domain.SupplyTypeExportWithoutTax: "EXPWOP",
	domain.SupplyTypeSEZWithTax:       "SEZWP",
	domain.SupplyTypeSEZWithoutTax:    "SEZWOP",
}

// docTypeCodes maps document types to portal codes, defaulting to INV.
var docTypeCodes = map[domain.DocumentType]string{
	domain.DocumentTypeInvoice:    "INV",
	domain.DocumentTypeCreditNote: "CRN",
	domain.DocumentTypeDebitNote:  "DBN",
}

// SupplyTypeCode resolves the portal code for a supply type, defaulting to
// B2B for unrecognized values.
func SupplyTypeCode(st domain.SupplyType) string {
	if code, ok := supplyTypeCodes[st]; ok {
		return code
	}
	return "B2B"
}

// IsExportSupply reports whether a portal supply code is an export
// transaction (place of supply forced to the foreign-country sentinel).
func IsExportSupply(code string) bool {
	return code == "EXPWP" || code == "EXPWOP"
}

// Exporter builds IRP documents from computed invoices.
type Exporter struct {
	defaultStateCode string
}

// NewExporter creates an Exporter. defaultStateCode is used for state names
// missing from the statutory table; empty selects DefaultStateCode.
func NewExporter(defaultStateCode string) *Exporter {
	if defaultStateCode == "" {
		defaultStateCode = DefaultStateCode
	}
	return &Exporter{defaultStateCode: defaultStateCode}
}

// Export converts a computed invoice and its related records into the IRP
// document. Failures are explicit errors, never degraded payloads.
func (e *Exporter) Export(
	inv *domain.Invoice,
	profile *domain.BusinessProfile,
	customer *domain.Customer,
	lines []domain.InvoiceLine,
) (*Document, error) {
	if inv == nil || profile == nil || customer == nil {
		return nil, fmt.Errorf("%w: invoice, business profile, and customer are required", domain.ErrEInvoiceGenerationFailed)
	}
	if inv.InvoiceDate.IsZero() {
		return nil, fmt.Errorf("%w: invoice date is required", domain.ErrEInvoiceGenerationFailed)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrEInvoiceGenerationFailed, domain.ErrInvoiceHasNoItems)
	}

	supplyCode := SupplyTypeCode(inv.SupplyType)
	isExport := IsExportSupply(supplyCode)

	sellerAddr1, sellerAddr2 := splitAddress(profile.Address)
	buyerAddr1, buyerAddr2 := splitAddress(customer.Address)

	buyerStcd := e.stateCode(customer.State)
	pos := buyerStcd
	buyerGstin := buyerGSTIN(customer.GSTIN, supplyCode)
	if isExport {
		pos = ExportStateCode
		buyerStcd = ExportStateCode
		buyerGstin = ""
	}

	doc := &Document{
		Version: SchemaVersion,
		TranDtls: TranDtls{
			TaxSch:      "GST",
			SupTyp:      supplyCode,
			RegRev:      "N",
			EcmGstin:    nil,
			IgstOnIntra: "N",
		},
		DocDtls: DocDtls{
			Typ: docTypeCode(inv.DocumentType),
			No:  inv.InvoiceNumber,
			Dt:  inv.InvoiceDate.Format(exportDateLayout),
		},
		SellerDtls: SellerDtls{
			Gstin: profile.GSTIN,
			LglNm: profile.Name,
			TrdNm: profile.Name,
			Addr1: sellerAddr1,
			Addr2: sellerAddr2,
			Loc:   profile.State,
			Pin:   FlexString(profile.PIN),
			Stcd:  e.stateCode(profile.State),
			Ph:    profile.Phone,
			Em:    profile.Email,
		},
		BuyerDtls: BuyerDtls{
			Gstin: buyerGstin,
			LglNm: customer.Name,
			TrdNm: customer.Name,
			Pos:   pos,
			Addr1: buyerAddr1,
			Addr2: buyerAddr2,
			Loc:   customer.State,
			Pin:   FlexString(customer.Pincode),
			Stcd:  buyerStcd,
			Ph:    customer.Phone,
			Em:    customer.Email,
		},
		ItemList: make([]Item, 0, len(lines)),
		ValDtls: ValDtls{
			AssVal:    round2(inv.Subtotal),
			CgstVal:   round2(inv.CGSTTotal),
			SgstVal:   round2(inv.SGSTTotal),
			IgstVal:   round2(inv.IGSTTotal),
			Discount:  round2(inv.DiscountAmount),
			RndOffAmt: round2(inv.RoundOff),
			TotInvVal: round2(inv.Total),
		},
	}

	for i, line := range lines {
		doc.ItemList = append(doc.ItemList, exportItem(i+1, inv.TaxType, line))
	}
	return doc, nil
}

func exportItem(serial int, taxType domain.TaxType, line domain.InvoiceLine) Item {
	item := line.Item
	product := line.Product

	hsn := item.HSNSAC
	if hsn == "" {
		hsn = product.HSNSAC
	}
	desc := product.Name
	if desc == "" {
		desc = "Product"
	}
	unit := product.Unit
	if unit == "" {
		unit = "NOS"
	}

	out := Item{
		SlNo:       fmt.Sprintf("%d", serial),
		PrdDesc:    desc,
		IsServc:    serviceFlag(hsn),
		HsnCd:      hsn,
		Qty:        round3(item.Quantity),
		Unit:       unit,
		UnitPrice:  round2(item.Rate),
		TotAmt:     round2(item.Subtotal),
		Discount:   round2(item.DiscountAmount),
		AssAmt:     round2(item.Subtotal),
		GstRt:      round2(item.TaxRate),
		TotItemVal: round2(item.Total),
	}
	if taxType == domain.TaxTypeIGST {
		out.IgstAmt = round2(item.IGST)
	} else {
		out.CgstAmt = round2(item.CGST)
		out.SgstAmt = round2(item.SGST)
	}
	return out
}

// serviceFlag derives the Y/N service indicator from the code prefix: SAC
// codes for services start with 99.
func serviceFlag(hsnSAC string) string {
	if strings.HasPrefix(hsnSAC, "99") {
		return "Y"
	}
	return "N"
}

// buyerGSTIN substitutes URP for B2B buyers without a registration.
func buyerGSTIN(gstin, supplyCode string) string {
	if gstin == "" && supplyCode == "B2B" {
		return gst.URPSentinel
	}
	return gstin
}

func docTypeCode(dt domain.DocumentType) string {
	if code, ok := docTypeCodes[dt]; ok {
		return code
	}
	return "INV"
}

// splitAddress breaks a multi-line address into Addr1 (first line) and Addr2
// (remaining lines joined with spaces).
func splitAddress(addr string) (string, string) {
	first, rest, found := strings.Cut(addr, "\n")
	if !found {
		return addr, ""
	}
	return first, strings.Join(strings.Fields(strings.ReplaceAll(rest, "\n", " ")), " ")
}

func (e *Exporter) stateCode(stateName string) string {
	if code, ok := gst.StateCode(stateName); ok {
		return code
	}
	return e.defaultStateCode
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func round3(d decimal.Decimal) float64 {
	return d.Round(3).InexactFloat64()
}
