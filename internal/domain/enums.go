package domain

// TaxType is the jurisdiction classification of an invoice. Intra-state
// supplies split the levy into CGST+SGST; inter-state and export supplies
// carry IGST in full. Exactly one of the two applies to a given invoice.
type TaxType string

const (
	TaxTypeIGST     TaxType = "IGST"
	TaxTypeCGSTSGST TaxType = "CGST_SGST"
)

// DocumentType distinguishes invoices from credit and debit notes.
type DocumentType string

const (
	DocumentTypeInvoice    DocumentType = "Invoice"
	DocumentTypeCreditNote DocumentType = "Credit Note"
	DocumentTypeDebitNote  DocumentType = "Debit Note"
)

// SupplyType classifies the transaction for GST reporting purposes.
type SupplyType string

const (
	SupplyTypeB2B              SupplyType = "B2B"
	SupplyTypeB2C              SupplyType = "B2C"
	SupplyTypeExportWithTax    SupplyType = "Export with Tax"
	SupplyTypeExportWithoutTax SupplyType = "Export without Tax"
	SupplyTypeSEZWithTax       SupplyType = "SEZ with Tax"
	SupplyTypeSEZWithoutTax    SupplyType = "SEZ without Tax"
)

// InvoiceStatus represents the lifecycle of an invoice. Approved is a side
// state reached directly whenever an IRN is present on the document.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "Draft"
	InvoiceStatusFinalized InvoiceStatus = "Finalized"
	InvoiceStatusSent      InvoiceStatus = "Sent"
	InvoiceStatusEInvoice  InvoiceStatus = "E-Invoice"
	InvoiceStatusGSTFiled  InvoiceStatus = "GST-Filed"
	InvoiceStatusArchived  InvoiceStatus = "Archived"
	InvoiceStatusApproved  InvoiceStatus = "Approved"
)

// PaymentStatus tracks settlement of an invoice.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "Unpaid"
	PaymentStatusPartial PaymentStatus = "Partial"
	PaymentStatusPaid    PaymentStatus = "Paid"
)
