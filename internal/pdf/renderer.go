// Package pdf renders invoices to PDF through a chain of strategies, from a
// wkhtmltopdf-backed HTML layout down to a static byte literal. Rendering
// never fails: every strategy error falls through to the next tier.
package pdf

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"gstpro/internal/domain"
)

// dateLayout is the DD-MM-YYYY presentation format used on printed invoices.
const dateLayout = "02-01-2006"

// Config controls the HTML tier. EnginePath is the wkhtmltopdf binary; empty
// skips the HTML tier entirely. Timeout bounds a single conversion run.
type Config struct {
	EnginePath string
	Timeout    time.Duration
	PageSize   string
}

type strategy interface {
	name() string
	render(ctx context.Context, v *viewModel) ([]byte, error)
}

// Renderer converts computed invoices to PDF bytes.
type Renderer struct {
	log        zerolog.Logger
	strategies []strategy
}

// NewRenderer builds the tier chain: HTML conversion when an engine binary is
// configured, then the styled, simplified, and minimal native layouts.
func NewRenderer(cfg Config, log zerolog.Logger) *Renderer {
	r := &Renderer{log: log}
	if cfg.EnginePath != "" {
		r.strategies = append(r.strategies, newHTMLStrategy(cfg))
	}
	r.strategies = append(r.strategies,
		&styledStrategy{},
		&simplifiedStrategy{},
		&minimalStrategy{},
	)
	return r
}

// Render produces PDF bytes for an invoice. It never returns an error: if
// every strategy fails, the static fallback document is returned so the
// caller always holds a well-formed PDF.
func (r *Renderer) Render(
	ctx context.Context,
	inv *domain.Invoice,
	profile *domain.BusinessProfile,
	customer *domain.Customer,
	lines []domain.InvoiceLine,
) []byte {
	v := buildViewModel(inv, profile, customer, lines)
	for _, s := range r.strategies {
		b, err := s.render(ctx, v)
		if err == nil && len(b) > 0 {
			return b
		}
		r.log.Warn().
			Err(err).
			Str("strategy", s.name()).
			Str("invoice_number", v.InvoiceNumber).
			Msg("pdf strategy failed, falling back")
	}
	r.log.Error().
		Str("invoice_number", v.InvoiceNumber).
		Msg("all pdf strategies failed, returning static fallback")
	return []byte(staticFallbackPDF)
}

// viewModel is the normalized, nil-safe presentation form of an invoice.
// Every field is prefilled so no strategy has to guard against missing data.
type viewModel struct {
	Title         string
	InvoiceNumber string
	InvoiceDate   string
	DueDate       string
	Status        string

	SellerName    string
	SellerGSTIN   string
	SellerAddress string
	SellerState   string
	SellerPhone   string
	SellerEmail   string
	BankName      string
	AccountNumber string
	IFSCCode      string

	BuyerName    string
	BuyerGSTIN   string
	BuyerAddress string
	BuyerState   string
	BuyerCountry string

	PlaceOfSupply string
	SupplyType    string
	Notes         string

	// Intra selects the CGST/SGST column pair; otherwise a single IGST column.
	Intra bool
	Items []viewItem

	Subtotal  string
	CGSTTotal string
	SGSTTotal string
	IGSTTotal string
	TaxAmount string
	Discount  string
	RoundOff  string
	Total     string

	HasDiscount bool
	HasRoundOff bool

	TotalInWords string

	IRN     string
	AckNo   string
	AckDate string

	GeneratedAt string
}

type viewItem struct {
	SlNo        int
	Description string
	HSNSAC      string
	Quantity    string
	Rate        string
	Subtotal    string
	TaxRate     string
	CGST        string
	SGST        string
	IGST        string
	Total       string
}

func buildViewModel(
	inv *domain.Invoice,
	profile *domain.BusinessProfile,
	customer *domain.Customer,
	lines []domain.InvoiceLine,
) *viewModel {
	if inv == nil {
		inv = &domain.Invoice{}
	}
	if profile == nil {
		profile = &domain.BusinessProfile{}
	}
	if customer == nil {
		customer = &domain.Customer{}
	}

	v := &viewModel{
		Title:         titleFor(inv.DocumentType),
		InvoiceNumber: orNA(inv.InvoiceNumber),
		InvoiceDate:   formatDate(inv.InvoiceDate),
		Status:        string(inv.Status),

		SellerName:    orNA(profile.Name),
		SellerGSTIN:   orNA(profile.GSTIN),
		SellerAddress: orNA(profile.Address),
		SellerState:   orNA(profile.State),
		SellerPhone:   profile.Phone,
		SellerEmail:   profile.Email,
		BankName:      profile.BankName,
		AccountNumber: profile.AccountNumber,
		IFSCCode:      profile.IFSCCode,

		BuyerName:    orNA(customer.Name),
		BuyerGSTIN:   orNA(customer.GSTIN),
		BuyerAddress: orNA(customer.Address),
		BuyerState:   orNA(customer.State),
		BuyerCountry: customer.Country,

		PlaceOfSupply: inv.PlaceOfSupply,
		SupplyType:    string(inv.SupplyType),
		Notes:         inv.Notes,

		Intra: inv.TaxType != domain.TaxTypeIGST,

		Subtotal:  money(inv.Subtotal),
		CGSTTotal: money(inv.CGSTTotal),
		SGSTTotal: money(inv.SGSTTotal),
		IGSTTotal: money(inv.IGSTTotal),
		TaxAmount: money(inv.TaxAmount),
		Discount:  money(inv.DiscountAmount),
		RoundOff:  money(inv.RoundOff),
		Total:     money(inv.Total),

		HasDiscount: inv.DiscountAmount.Sign() != 0,
		HasRoundOff: inv.RoundOff.Sign() != 0,

		TotalInWords: AmountInWords(inv.Total),

		IRN:     inv.IRN,
		AckNo:   inv.AckNo,
		AckDate: inv.AckDate,

		GeneratedAt: time.Now().Format(dateLayout + " 15:04"),
	}
	if inv.DueDate != nil {
		v.DueDate = inv.DueDate.Format(dateLayout)
	}

	for i, line := range lines {
		item := line.Item
		desc := item.Description
		if desc == "" {
			desc = line.Product.Name
		}
		hsn := item.HSNSAC
		if hsn == "" {
			hsn = line.Product.HSNSAC
		}
		v.Items = append(v.Items, viewItem{
			SlNo:        i + 1,
			Description: orNA(desc),
			HSNSAC:      orNA(hsn),
			Quantity:    item.Quantity.Round(3).String(),
			Rate:        money(item.Rate),
			Subtotal:    money(item.Subtotal),
			TaxRate:     item.TaxRate.Round(2).String() + "%",
			CGST:        money(item.CGST),
			SGST:        money(item.SGST),
			IGST:        money(item.IGST),
			Total:       money(item.Total),
		})
	}
	return v
}

func titleFor(dt domain.DocumentType) string {
	switch dt {
	case domain.DocumentTypeCreditNote:
		return "CREDIT NOTE"
	case domain.DocumentTypeDebitNote:
		return "DEBIT NOTE"
	default:
		return "TAX INVOICE"
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(dateLayout)
}

// money formats with the ASCII "Rs." prefix: the core PDF fonts are cp1252
// and cannot encode the rupee sign.
func money(d decimal.Decimal) string {
	return "Rs. " + d.Round(2).StringFixed(2)
}
