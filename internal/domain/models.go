package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BusinessProfile is the seller of record. CurrentInvoiceNumber is the
// monotonic counter used to mint sequential invoice numbers: it is
// incremented exactly once per committed invoice, never decremented, and
// never reused even when an invoice is later deleted.
type BusinessProfile struct {
	ID                   uuid.UUID `db:"id" json:"id"`
	OwnerID              uuid.UUID `db:"owner_id" json:"owner_id"`
	Name                 string    `db:"name" json:"name"`
	GSTIN                string    `db:"gstin" json:"gstin"`
	PAN                  string    `db:"pan" json:"pan"`
	Address              string    `db:"address" json:"address"`
	City                 string    `db:"city" json:"city"`
	State                string    `db:"state" json:"state"`
	StateCode            string    `db:"state_code" json:"state_code"`
	PIN                  string    `db:"pin" json:"pin"`
	Phone                string    `db:"phone" json:"phone"`
	Email                string    `db:"email" json:"email"`
	BankName             string    `db:"bank_name" json:"bank_name"`
	AccountNumber        string    `db:"account_number" json:"account_number"`
	IFSCCode             string    `db:"ifsc_code" json:"ifsc_code"`
	IsDefault            bool      `db:"is_default" json:"is_default"`
	CurrentInvoiceNumber int       `db:"current_invoice_number" json:"current_invoice_number"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

// Customer is the buyer. GSTIN is the literal sentinel "URP" for non-Indian
// customers without a registration, and a syntactically valid Indian GSTIN
// otherwise.
type Customer struct {
	ID        uuid.UUID `db:"id" json:"id"`
	OwnerID   uuid.UUID `db:"owner_id" json:"owner_id"`
	Name      string    `db:"name" json:"name"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	Address   string    `db:"address" json:"address"`
	City      string    `db:"city" json:"city"`
	State     string    `db:"state" json:"state"`
	Country   string    `db:"country" json:"country"`
	Pincode   string    `db:"pincode" json:"pincode"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Product carries either an HSN code (goods) or a SAC code (services),
// selected by IsService. TaxRate is a percentage applied uniformly.
type Product struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	OwnerID           uuid.UUID       `db:"owner_id" json:"owner_id"`
	Name              string          `db:"name" json:"name"`
	Description       string          `db:"description" json:"description"`
	HSNSAC            string          `db:"hsn_sac" json:"hsn_sac"`
	SKU               string          `db:"sku" json:"sku"`
	IsService         bool            `db:"is_service" json:"is_service"`
	Price             decimal.Decimal `db:"price" json:"price"`
	TaxRate           decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	Unit              string          `db:"unit" json:"unit"`
	StockQuantity     *int            `db:"stock_quantity" json:"stock_quantity"`
	LowStockThreshold *int            `db:"low_stock_threshold" json:"low_stock_threshold"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

// Invoice is a fully computed document. Exactly one of the CGST/SGST pair or
// IGST totals is populated, per TaxType. Monetary invariant:
// Total = Subtotal + TaxAmount - DiscountAmount + RoundOff.
type Invoice struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	InvoiceNumber     string          `db:"invoice_number" json:"invoice_number"`
	InvoiceDate       time.Time       `db:"invoice_date" json:"invoice_date"`
	DueDate           *time.Time      `db:"due_date" json:"due_date"`
	BusinessProfileID uuid.UUID       `db:"business_profile_id" json:"business_profile_id"`
	CustomerID        uuid.UUID       `db:"customer_id" json:"customer_id"`
	Subtotal          decimal.Decimal `db:"subtotal" json:"subtotal"`
	TaxAmount         decimal.Decimal `db:"tax_amount" json:"tax_amount"`
	Total             decimal.Decimal `db:"total" json:"total"`
	Notes             string          `db:"notes" json:"notes"`
	TaxType           TaxType         `db:"tax_type" json:"tax_type"`
	CGSTTotal         decimal.Decimal `db:"cgst_total" json:"cgst_total"`
	SGSTTotal         decimal.Decimal `db:"sgst_total" json:"sgst_total"`
	IGSTTotal         decimal.Decimal `db:"igst_total" json:"igst_total"`
	Status            InvoiceStatus   `db:"status" json:"status"`
	PaymentStatus     PaymentStatus   `db:"payment_status" json:"payment_status"`
	DocumentType      DocumentType    `db:"document_type" json:"document_type"`
	SupplyType        SupplyType      `db:"supply_type" json:"supply_type"`
	ReferenceNumber   string          `db:"reference_number" json:"reference_number"`
	PlaceOfSupply     string          `db:"place_of_supply" json:"place_of_supply"`
	DispatchFrom      string          `db:"dispatch_from" json:"dispatch_from"`
	ShipTo            string          `db:"ship_to" json:"ship_to"`
	Currency          string          `db:"currency" json:"currency"`
	PortOfExport      string          `db:"port_of_export" json:"port_of_export"`
	DiscountAmount    decimal.Decimal `db:"discount_amount" json:"discount_amount"`
	RoundOff          decimal.Decimal `db:"round_off" json:"round_off"`

	// E-invoice fields issued by the IRP.
	IRN           string `db:"irn" json:"irn"`
	AckNo         string `db:"ack_no" json:"ack_no"`
	AckDate       string `db:"ack_date" json:"ack_date"`
	SignedInvoice string `db:"signed_invoice" json:"signed_invoice"`
	QRCode        string `db:"qr_code" json:"qr_code"`

	// E-way bill fields.
	EwbNo        string `db:"ewb_no" json:"ewb_no"`
	EwbDate      string `db:"ewb_date" json:"ewb_date"`
	EwbValidTill string `db:"ewb_valid_till" json:"ewb_valid_till"`

	IsImported bool      `db:"is_imported" json:"is_imported"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// InvoiceItem is owned exclusively by its Invoice and is created and
// destroyed atomically with it. The per-line CGST/SGST/IGST split mirrors
// the invoice-level TaxType.
type InvoiceItem struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	InvoiceID       uuid.UUID       `db:"invoice_id" json:"invoice_id"`
	ProductID       uuid.UUID       `db:"product_id" json:"product_id"`
	Quantity        decimal.Decimal `db:"quantity" json:"quantity"`
	Rate            decimal.Decimal `db:"rate" json:"rate"`
	TaxRate         decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	TaxAmount       decimal.Decimal `db:"tax_amount" json:"tax_amount"`
	Subtotal        decimal.Decimal `db:"subtotal" json:"subtotal"`
	Total           decimal.Decimal `db:"total" json:"total"`
	CGST            decimal.Decimal `db:"cgst" json:"cgst"`
	SGST            decimal.Decimal `db:"sgst" json:"sgst"`
	IGST            decimal.Decimal `db:"igst" json:"igst"`
	TaxType         TaxType         `db:"tax_type" json:"tax_type"`
	HSNSAC          string          `db:"hsn_sac" json:"hsn_sac"`
	Description     string          `db:"description" json:"description"`
	DiscountPercent decimal.Decimal `db:"discount_percent" json:"discount_percent"`
	DiscountAmount  decimal.Decimal `db:"discount_amount" json:"discount_amount"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// InvoiceLine pairs a computed item with the product it references, assembled
// by the persistence boundary before rendering or export.
type InvoiceLine struct {
	Item    InvoiceItem
	Product Product
}
