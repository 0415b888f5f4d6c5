package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceDraft is the caller-supplied input to invoice creation. Monetary
// aggregates are absent: they are derived by the tax engine. InvoiceNumber is
// honored only for imported documents; otherwise the numbering policy mints
// the next sequential number.
type InvoiceDraft struct {
	BusinessProfileID uuid.UUID
	CustomerID        uuid.UUID
	InvoiceNumber     string
	InvoiceDate       time.Time
	DueDate           *time.Time
	Notes             string
	DocumentType      DocumentType
	SupplyType        SupplyType
	Status            InvoiceStatus
	PaymentStatus     PaymentStatus
	ReferenceNumber   string
	PlaceOfSupply     string
	DispatchFrom      string
	ShipTo            string
	Currency          string
	PortOfExport      string
	DiscountAmount    decimal.Decimal
	RoundOff          decimal.Decimal

	IRN           string
	AckNo         string
	AckDate       string
	SignedInvoice string
	QRCode        string

	EwbNo        string
	EwbDate      string
	EwbValidTill string

	IsImported bool
	Items      []ItemDraft
}

// ItemDraft is one requested line. Tax fields are derived from the product's
// rate and the invoice jurisdiction; HSNSAC and Description override the
// product's values when set.
type ItemDraft struct {
	ProductID       uuid.UUID
	Quantity        decimal.Decimal
	Rate            decimal.Decimal
	HSNSAC          string
	Description     string
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
}
