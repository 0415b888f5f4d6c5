package domain

import "errors"

var (
	ErrBusinessProfileNotFound   = errors.New("business profile not found")
	ErrCustomerNotFound          = errors.New("customer not found")
	ErrProductNotFound           = errors.New("product not found")
	ErrInvoiceNotFound           = errors.New("invoice not found")
	ErrDuplicateInvoiceNumber    = errors.New("invoice number already exists for this business profile")
	ErrInvalidGSTIN              = errors.New("invalid GSTIN")
	ErrInvalidHSNSAC             = errors.New("invalid HSN/SAC code")
	ErrInvalidPincode            = errors.New("invalid pincode")
	ErrMalformedEInvoicePayload  = errors.New("malformed e-invoice JSON payload")
	ErrEInvoiceGenerationFailed  = errors.New("e-invoice JSON generation failed")
	ErrInvoiceHasNoItems         = errors.New("invoice must have at least one line item")
	ErrNumberingConflict         = errors.New("invoice numbering conflict, retry with a fresh counter")
)
