// Package service orchestrates invoice creation, rendering, and e-invoice
// exchange over the repository ports.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"gstpro/internal/domain"
	"gstpro/internal/gst"
	"gstpro/internal/nic"
	"gstpro/internal/numbering"
	"gstpro/internal/pdf"
	"gstpro/internal/port"
	"gstpro/internal/tax"
)

// InvoiceService defines the invoice management contract.
type InvoiceService interface {
	Create(ctx context.Context, ownerID uuid.UUID, draft *domain.InvoiceDraft) (*domain.Invoice, error)
	Get(ctx context.Context, ownerID, invoiceID uuid.UUID) (*domain.Invoice, []domain.InvoiceItem, error)
	List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)
	Update(ctx context.Context, ownerID, invoiceID uuid.UUID, draft *domain.InvoiceDraft) (*domain.Invoice, error)
	Delete(ctx context.Context, ownerID, invoiceID uuid.UUID) error

	GeneratePDF(ctx context.Context, ownerID, invoiceID uuid.UUID) ([]byte, error)
	ExportNICJSON(ctx context.Context, ownerID, invoiceID uuid.UUID) ([]byte, error)
	ImportNICJSON(ctx context.Context, ownerID uuid.UUID, payload []byte) (*domain.Invoice, error)
}

type invoiceService struct {
	profiles  port.BusinessProfileRepository
	customers port.CustomerRepository
	products  port.ProductRepository
	invoices  port.InvoiceRepository
	renderer  *pdf.Renderer
	exporter  *nic.Exporter
	log       zerolog.Logger
	now       func() time.Time
}

// NewInvoiceService wires the invoice service over its repositories, the PDF
// renderer, and the NIC exporter.
func NewInvoiceService(
	profiles port.BusinessProfileRepository,
	customers port.CustomerRepository,
	products port.ProductRepository,
	invoices port.InvoiceRepository,
	renderer *pdf.Renderer,
	exporter *nic.Exporter,
	log zerolog.Logger,
) InvoiceService {
	return &invoiceService{
		profiles:  profiles,
		customers: customers,
		products:  products,
		invoices:  invoices,
		renderer:  renderer,
		exporter:  exporter,
		log:       log,
		now:       time.Now,
	}
}

func (s *invoiceService) Create(ctx context.Context, ownerID uuid.UUID, draft *domain.InvoiceDraft) (*domain.Invoice, error) {
	if len(draft.Items) == 0 {
		return nil, domain.ErrInvoiceHasNoItems
	}

	profile, err := s.profiles.GetByID(ctx, ownerID, draft.BusinessProfileID)
	if err != nil {
		return nil, err
	}
	customer, err := s.customers.GetByID(ctx, ownerID, draft.CustomerID)
	if err != nil {
		return nil, err
	}

	if draft.IsImported && draft.InvoiceNumber != "" {
		exists, err := s.invoices.ExistsByNumber(ctx, profile.ID, draft.InvoiceNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateInvoiceNumber
		}
		inv, items, err := s.buildInvoiceAndItems(ctx, ownerID, profile, customer, draft, draft.InvoiceNumber)
		if err != nil {
			return nil, err
		}
		if err := s.invoices.CreateImported(ctx, inv, items); err != nil {
			return nil, err
		}
		s.log.Info().
			Str("invoice_number", inv.InvoiceNumber).
			Str("invoice_id", inv.ID.String()).
			Msg("imported invoice created")
		return inv, nil
	}

	inv, err := s.invoices.CreateNumbered(ctx, ownerID, profile.ID,
		func(counter int, locked *domain.BusinessProfile) (*domain.Invoice, []domain.InvoiceItem, error) {
			locked.CurrentInvoiceNumber = counter
			number := numbering.Number(locked, "", s.now())
			return s.buildInvoiceAndItems(ctx, ownerID, locked, customer, draft, number)
		})
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("invoice_number", inv.InvoiceNumber).
		Str("invoice_id", inv.ID.String()).
		Str("tax_type", string(inv.TaxType)).
		Msg("invoice created")
	return inv, nil
}

// buildInvoiceAndItems derives the computed invoice from a draft: jurisdiction
// from the two states, line tax splits from product rates, and the grand
// total from the accumulated aggregates.
func (s *invoiceService) buildInvoiceAndItems(
	ctx context.Context,
	ownerID uuid.UUID,
	profile *domain.BusinessProfile,
	customer *domain.Customer,
	draft *domain.InvoiceDraft,
	number string,
) (*domain.Invoice, []domain.InvoiceItem, error) {
	taxType := tax.Jurisdiction(profile.State, customer.State)

	items := make([]domain.InvoiceItem, 0, len(draft.Items))
	var totals tax.Totals
	for _, itemDraft := range draft.Items {
		product, err := s.products.GetByID(ctx, ownerID, itemDraft.ProductID)
		if err != nil {
			return nil, nil, err
		}

		rate := itemDraft.Rate
		if rate.IsZero() {
			rate = product.Price
		}
		subtotal := itemDraft.Quantity.Mul(rate)
		line := tax.ComputeLine(subtotal, product.TaxRate, taxType)
		totals.Add(subtotal, line)

		hsn := itemDraft.HSNSAC
		if hsn == "" {
			hsn = product.HSNSAC
		}
		desc := itemDraft.Description
		if desc == "" {
			desc = product.Name
		}
		items = append(items, domain.InvoiceItem{
			ID:              uuid.New(),
			ProductID:       product.ID,
			Quantity:        itemDraft.Quantity,
			Rate:            rate,
			TaxRate:         product.TaxRate,
			TaxAmount:       line.TaxAmount,
			Subtotal:        subtotal,
			Total:           subtotal.Add(line.TaxAmount),
			CGST:            line.CGST,
			SGST:            line.SGST,
			IGST:            line.IGST,
			TaxType:         taxType,
			HSNSAC:          hsn,
			Description:     desc,
			DiscountPercent: itemDraft.DiscountPercent,
			DiscountAmount:  itemDraft.DiscountAmount,
		})
	}

	invoiceDate := draft.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = s.now()
	}
	currency := draft.Currency
	if currency == "" {
		currency = "INR"
	}
	docType := draft.DocumentType
	if docType == "" {
		docType = domain.DocumentTypeInvoice
	}
	supplyType := draft.SupplyType
	if supplyType == "" {
		supplyType = domain.SupplyTypeB2B
	}
	paymentStatus := draft.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = domain.PaymentStatusUnpaid
	}

	inv := &domain.Invoice{
		ID:                uuid.New(),
		InvoiceNumber:     number,
		InvoiceDate:       invoiceDate,
		DueDate:           draft.DueDate,
		BusinessProfileID: profile.ID,
		CustomerID:        customer.ID,
		Subtotal:          totals.Subtotal,
		TaxAmount:         totals.TaxAmount,
		Total:             totals.GrandTotal(draft.DiscountAmount, draft.RoundOff),
		Notes:             draft.Notes,
		TaxType:           taxType,
		CGSTTotal:         totals.CGSTTotal,
		SGSTTotal:         totals.SGSTTotal,
		IGSTTotal:         totals.IGSTTotal,
		Status:            numbering.Status(draft.Status, draft.IRN),
		PaymentStatus:     paymentStatus,
		DocumentType:      docType,
		SupplyType:        supplyType,
		ReferenceNumber:   draft.ReferenceNumber,
		PlaceOfSupply:     draft.PlaceOfSupply,
		DispatchFrom:      draft.DispatchFrom,
		ShipTo:            draft.ShipTo,
		Currency:          currency,
		PortOfExport:      draft.PortOfExport,
		DiscountAmount:    draft.DiscountAmount,
		RoundOff:          draft.RoundOff,
		IRN:               draft.IRN,
		AckNo:             draft.AckNo,
		AckDate:           draft.AckDate,
		SignedInvoice:     draft.SignedInvoice,
		QRCode:            draft.QRCode,
		EwbNo:             draft.EwbNo,
		EwbDate:           draft.EwbDate,
		EwbValidTill:      draft.EwbValidTill,
		IsImported:        draft.IsImported,
	}
	for i := range items {
		items[i].InvoiceID = inv.ID
	}
	return inv, items, nil
}

func (s *invoiceService) Get(ctx context.Context, ownerID, invoiceID uuid.UUID) (*domain.Invoice, []domain.InvoiceItem, error) {
	inv, err := s.invoices.GetByID(ctx, ownerID, invoiceID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.invoices.ItemsByInvoice(ctx, inv.ID)
	if err != nil {
		return nil, nil, err
	}
	return inv, items, nil
}

func (s *invoiceService) List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invoices.List(ctx, ownerID, offset, limit)
}

func (s *invoiceService) Update(ctx context.Context, ownerID, invoiceID uuid.UUID, draft *domain.InvoiceDraft) (*domain.Invoice, error) {
	if len(draft.Items) == 0 {
		return nil, domain.ErrInvoiceHasNoItems
	}

	existing, err := s.invoices.GetByID(ctx, ownerID, invoiceID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.GetByID(ctx, ownerID, existing.BusinessProfileID)
	if err != nil {
		return nil, err
	}
	customerID := draft.CustomerID
	if customerID == uuid.Nil {
		customerID = existing.CustomerID
	}
	customer, err := s.customers.GetByID(ctx, ownerID, customerID)
	if err != nil {
		return nil, err
	}

	// The number never changes on update; recompute everything else.
	number := existing.InvoiceNumber
	inv, items, err := s.buildInvoiceAndItems(ctx, ownerID, profile, customer, draft, number)
	if err != nil {
		return nil, err
	}
	inv.ID = existing.ID
	inv.CreatedAt = existing.CreatedAt
	inv.IsImported = existing.IsImported
	for i := range items {
		items[i].InvoiceID = inv.ID
	}

	if err := s.invoices.Update(ctx, inv, items); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("invoice_number", inv.InvoiceNumber).
		Str("invoice_id", inv.ID.String()).
		Msg("invoice updated")
	return inv, nil
}

func (s *invoiceService) Delete(ctx context.Context, ownerID, invoiceID uuid.UUID) error {
	// Deletion never rolls the profile counter back: numbers are never reused.
	if err := s.invoices.Delete(ctx, ownerID, invoiceID); err != nil {
		return err
	}
	s.log.Info().Str("invoice_id", invoiceID.String()).Msg("invoice deleted")
	return nil
}

func (s *invoiceService) GeneratePDF(ctx context.Context, ownerID, invoiceID uuid.UUID) ([]byte, error) {
	inv, err := s.invoices.GetByID(ctx, ownerID, invoiceID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.GetByID(ctx, ownerID, inv.BusinessProfileID)
	if err != nil {
		return nil, err
	}
	// A missing customer degrades to placeholder fields instead of failing
	// the render.
	customer, err := s.customers.GetByID(ctx, ownerID, inv.CustomerID)
	if err != nil {
		if !errors.Is(err, domain.ErrCustomerNotFound) {
			return nil, err
		}
		customer = nil
	}
	lines, err := s.invoices.LinesByInvoice(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(ctx, inv, profile, customer, lines), nil
}

// ExportNICJSON always returns a JSON body: the e-invoice document on
// success, a structured error payload on failure. The error is also
// returned so callers can branch without re-parsing the body.
func (s *invoiceService) ExportNICJSON(ctx context.Context, ownerID, invoiceID uuid.UUID) ([]byte, error) {
	doc, err := s.exportDocument(ctx, ownerID, invoiceID)
	if err != nil {
		s.log.Error().Err(err).Str("invoice_id", invoiceID.String()).Msg("e-invoice export failed")
		return nic.ErrorPayload(err), err
	}
	payload, err := marshalDocument(doc)
	if err != nil {
		return nic.ErrorPayload(err), err
	}
	return payload, nil
}

func (s *invoiceService) exportDocument(ctx context.Context, ownerID, invoiceID uuid.UUID) (*nic.Document, error) {
	inv, err := s.invoices.GetByID(ctx, ownerID, invoiceID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.GetByID(ctx, ownerID, inv.BusinessProfileID)
	if err != nil {
		return nil, err
	}
	customer, err := s.customers.GetByID(ctx, ownerID, inv.CustomerID)
	if err != nil {
		return nil, err
	}
	lines, err := s.invoices.LinesByInvoice(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	return s.exporter.Export(inv, profile, customer, lines)
}

func (s *invoiceService) ImportNICJSON(ctx context.Context, ownerID uuid.UUID, payload []byte) (*domain.Invoice, error) {
	doc, err := nic.ParseDocument(payload)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetByGSTIN(ctx, ownerID, doc.SellerDtls.Gstin)
	if errors.Is(err, domain.ErrBusinessProfileNotFound) {
		profile = doc.SellerProfile(ownerID)
		if err := s.profiles.Create(ctx, profile); err != nil {
			return nil, err
		}
		s.log.Info().Str("gstin", profile.GSTIN).Msg("business profile created from e-invoice import")
	} else if err != nil {
		return nil, err
	}

	customer, err := s.findOrCreateBuyer(ctx, ownerID, doc)
	if err != nil {
		return nil, err
	}

	exists, err := s.invoices.ExistsByNumber(ctx, profile.ID, doc.DocDtls.No)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateInvoiceNumber, doc.DocDtls.No)
	}

	inv := doc.Invoice(profile.ID, customer.ID)
	items := make([]domain.InvoiceItem, 0, len(doc.ItemList))
	for i := range doc.ItemList {
		nicItem := &doc.ItemList[i]
		product, err := s.findOrCreateProduct(ctx, ownerID, doc, nicItem)
		if err != nil {
			return nil, err
		}
		items = append(items, doc.InvoiceItem(nicItem, inv.ID, product.ID))
	}

	if err := s.invoices.CreateImported(ctx, inv, items); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("invoice_number", inv.InvoiceNumber).
		Str("invoice_id", inv.ID.String()).
		Int("items", len(items)).
		Msg("e-invoice imported")
	return inv, nil
}

func (s *invoiceService) findOrCreateBuyer(ctx context.Context, ownerID uuid.UUID, doc *nic.Document) (*domain.Customer, error) {
	buyerGSTIN := doc.BuyerDtls.Gstin
	if buyerGSTIN != "" && buyerGSTIN != gst.URPSentinel {
		customer, err := s.customers.GetByGSTIN(ctx, ownerID, buyerGSTIN)
		if err == nil {
			return customer, nil
		}
		if !errors.Is(err, domain.ErrCustomerNotFound) {
			return nil, err
		}
	}
	customer := doc.BuyerCustomer(ownerID)
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *invoiceService) findOrCreateProduct(ctx context.Context, ownerID uuid.UUID, doc *nic.Document, item *nic.Item) (*domain.Product, error) {
	product, err := s.products.GetByHSNAndName(ctx, ownerID, item.HsnCd, item.PrdDesc)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, domain.ErrProductNotFound) {
		return nil, err
	}
	product = doc.ItemProduct(item, ownerID)
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func marshalDocument(doc *nic.Document) ([]byte, error) {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEInvoiceGenerationFailed, err)
	}
	return payload, nil
}
