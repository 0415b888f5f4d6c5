package nic

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gstpro/internal/domain"
	"gstpro/internal/gst"
)

// ParseDocument decodes and validates an IRP payload. All structural
// problems are aggregated into a single error; nothing is partially
// accepted.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedEInvoicePayload, err)
	}

	var problems []string
	if doc.DocDtls.No == "" {
		problems = append(problems, "DocDtls.No is required")
	}
	if doc.DocDtls.Dt == "" {
		problems = append(problems, "DocDtls.Dt is required")
	} else if _, err := time.Parse(exportDateLayout, doc.DocDtls.Dt); err != nil {
		problems = append(problems, fmt.Sprintf("DocDtls.Dt %q is not DD/MM/YYYY", doc.DocDtls.Dt))
	}
	if doc.SellerDtls.Gstin == "" {
		problems = append(problems, "SellerDtls.Gstin is required")
	}
	if doc.SellerDtls.LglNm == "" {
		problems = append(problems, "SellerDtls.LglNm is required")
	}
	if doc.BuyerDtls.LglNm == "" {
		problems = append(problems, "BuyerDtls.LglNm is required")
	}
	if len(doc.ItemList) == 0 {
		problems = append(problems, "ItemList must contain at least one item")
	}
	for i := range doc.ItemList {
		if doc.ItemList[i].HsnCd == "" {
			problems = append(problems, fmt.Sprintf("ItemList[%d].HsnCd is required", i))
		}
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMalformedEInvoicePayload, strings.Join(problems, "; "))
	}
	return &doc, nil
}

// TaxType infers the jurisdiction from the declared aggregates: any IGST
// value marks an inter-state supply.
func (d *Document) TaxType() domain.TaxType {
	if d.ValDtls.IgstVal > 0 {
		return domain.TaxTypeIGST
	}
	return domain.TaxTypeCGSTSGST
}

// SellerProfile builds a new business profile from the seller block, used
// when no profile with this GSTIN exists. The PAN is sliced from the GSTIN
// and the invoice counter seeded from the document number when numeric.
func (d *Document) SellerProfile(ownerID uuid.UUID) *domain.BusinessProfile {
	seller := d.SellerDtls
	counter := 1
	if n, err := strconv.Atoi(d.DocDtls.No); err == nil {
		counter = n + 1
	}
	state := seller.Loc
	if state == "" {
		if name, ok := gst.StateFromGSTIN(seller.Gstin); ok {
			state = name
		}
	}
	return &domain.BusinessProfile{
		ID:                   uuid.New(),
		OwnerID:              ownerID,
		Name:                 seller.LglNm,
		GSTIN:                seller.Gstin,
		PAN:                  gst.PANFromGSTIN(seller.Gstin),
		Address:              joinAddress(seller.Addr1, seller.Addr2),
		State:                state,
		StateCode:            seller.Stcd,
		PIN:                  string(seller.Pin),
		Phone:                seller.Ph,
		Email:                seller.Em,
		CurrentInvoiceNumber: counter,
	}
}

// BuyerCustomer builds a new customer from the buyer block, used when no
// customer with this GSTIN exists.
func (d *Document) BuyerCustomer(ownerID uuid.UUID) *domain.Customer {
	buyer := d.BuyerDtls
	return &domain.Customer{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    buyer.LglNm,
		GSTIN:   buyer.Gstin,
		Address: joinAddress(buyer.Addr1, buyer.Addr2),
		State:   buyer.Loc,
		Country: "India",
		Pincode: string(buyer.Pin),
		Email:   buyer.Em,
		Phone:   buyer.Ph,
	}
}

// ItemProduct builds a new product from a line item, used when no product
// matches the item's HSN code and description.
func (d *Document) ItemProduct(item *Item, ownerID uuid.UUID) *domain.Product {
	unit := item.Unit
	if unit == "" {
		unit = "NOS"
	}
	return &domain.Product{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      item.PrdDesc,
		HSNSAC:    item.HsnCd,
		IsService: item.IsServc == "Y",
		Price:     decimal.NewFromFloat(item.UnitPrice),
		TaxRate:   decimal.NewFromFloat(item.GstRt),
		Unit:      unit,
	}
}

// Invoice reconstructs the invoice header from the declared aggregates. The
// payload's tax math is trusted as-is and never recomputed; this asymmetry
// with the create path is deliberate.
func (d *Document) Invoice(profileID, customerID uuid.UUID) *domain.Invoice {
	invoiceDate, _ := time.Parse(exportDateLayout, d.DocDtls.Dt)
	taxType := d.TaxType()
	vals := d.ValDtls
	return &domain.Invoice{
		ID:                uuid.New(),
		InvoiceNumber:     d.DocDtls.No,
		InvoiceDate:       invoiceDate,
		BusinessProfileID: profileID,
		CustomerID:        customerID,
		TaxType:           taxType,
		Subtotal:          decimal.NewFromFloat(vals.AssVal),
		TaxAmount:         decimal.NewFromFloat(vals.CgstVal + vals.SgstVal + vals.IgstVal),
		Total:             decimal.NewFromFloat(vals.TotInvVal),
		CGSTTotal:         decimal.NewFromFloat(vals.CgstVal),
		SGSTTotal:         decimal.NewFromFloat(vals.SgstVal),
		IGSTTotal:         decimal.NewFromFloat(vals.IgstVal),
		DiscountAmount:    decimal.NewFromFloat(vals.Discount),
		RoundOff:          decimal.NewFromFloat(vals.RndOffAmt),
		Status:            domain.InvoiceStatusDraft,
		PaymentStatus:     domain.PaymentStatusUnpaid,
		DocumentType:      docTypeFromCode(d.DocDtls.Typ),
		SupplyType:        supplyTypeFromCode(d.TranDtls.SupTyp),
		Currency:          "INR",
		IsImported:        true,
	}
}

// InvoiceItem reconstructs one line, taking the declared tax amounts
// directly from the payload.
func (d *Document) InvoiceItem(item *Item, invoiceID, productID uuid.UUID) domain.InvoiceItem {
	taxType := d.TaxType()
	return domain.InvoiceItem{
		ID:             uuid.New(),
		InvoiceID:      invoiceID,
		ProductID:      productID,
		Quantity:       decimal.NewFromFloat(item.Qty),
		Rate:           decimal.NewFromFloat(item.UnitPrice),
		TaxRate:        decimal.NewFromFloat(item.GstRt),
		TaxAmount:      decimal.NewFromFloat(item.IgstAmt + item.CgstAmt + item.SgstAmt),
		Subtotal:       decimal.NewFromFloat(item.AssAmt),
		Total:          decimal.NewFromFloat(item.TotItemVal),
		CGST:           decimal.NewFromFloat(item.CgstAmt),
		SGST:           decimal.NewFromFloat(item.SgstAmt),
		IGST:           decimal.NewFromFloat(item.IgstAmt),
		TaxType:        taxType,
		HSNSAC:         item.HsnCd,
		Description:    item.PrdDesc,
		DiscountAmount: decimal.NewFromFloat(item.Discount),
	}
}

func docTypeFromCode(code string) domain.DocumentType {
	switch code {
	case "CRN":
		return domain.DocumentTypeCreditNote
	case "DBN":
		return domain.DocumentTypeDebitNote
	default:
		return domain.DocumentTypeInvoice
	}
}

func supplyTypeFromCode(code string) domain.SupplyType {
	switch code {
	case "B2C":
		return domain.SupplyTypeB2C
	case "EXPWP":
		return domain.SupplyTypeExportWithTax
	case "EXPWOP":
		return domain.SupplyTypeExportWithoutTax
	case "SEZWP":
		return domain.SupplyTypeSEZWithTax
	case "SEZWOP":
		return domain.SupplyTypeSEZWithoutTax
	default:
		return domain.SupplyTypeB2B
	}
}

func joinAddress(addr1, addr2 string) string {
	if addr2 == "" {
		return addr1
	}
	return addr1 + "\n" + addr2
}
