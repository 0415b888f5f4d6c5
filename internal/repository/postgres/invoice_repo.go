package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstpro/internal/domain"
	"gstpro/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

const insertInvoiceQuery = `INSERT INTO invoices (id, invoice_number, invoice_date, due_date,
	business_profile_id, customer_id, subtotal, tax_amount, total, notes, tax_type,
	cgst_total, sgst_total, igst_total, status, payment_status, document_type, supply_type,
	reference_number, place_of_supply, dispatch_from, ship_to, currency, port_of_export,
	discount_amount, round_off, irn, ack_no, ack_date, signed_invoice, qr_code,
	ewb_no, ewb_date, ewb_valid_till, is_imported, created_at, updated_at)
	VALUES (:id, :invoice_number, :invoice_date, :due_date,
	:business_profile_id, :customer_id, :subtotal, :tax_amount, :total, :notes, :tax_type,
	:cgst_total, :sgst_total, :igst_total, :status, :payment_status, :document_type, :supply_type,
	:reference_number, :place_of_supply, :dispatch_from, :ship_to, :currency, :port_of_export,
	:discount_amount, :round_off, :irn, :ack_no, :ack_date, :signed_invoice, :qr_code,
	:ewb_no, :ewb_date, :ewb_valid_till, :is_imported, :created_at, :updated_at)`

const insertItemQuery = `INSERT INTO invoice_items (id, invoice_id, product_id, quantity, rate,
	tax_rate, tax_amount, subtotal, total, cgst, sgst, igst, tax_type, hsn_sac, description,
	discount_percent, discount_amount, created_at, updated_at)
	VALUES (:id, :invoice_id, :product_id, :quantity, :rate,
	:tax_rate, :tax_amount, :subtotal, :total, :cgst, :sgst, :igst, :tax_type, :hsn_sac,
	:description, :discount_percent, :discount_amount, :created_at, :updated_at)`

func (r *invoiceRepo) CreateNumbered(ctx context.Context, ownerID, profileID uuid.UUID, build port.InvoiceBuilder) (*domain.Invoice, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.CreateNumbered begin: %w", err)
	}
	defer tx.Rollback()

	// Lock the profile row so concurrent creations serialize on the counter.
	var profile domain.BusinessProfile
	err = tx.GetContext(ctx, &profile,
		"SELECT * FROM business_profiles WHERE id = $1 AND owner_id = $2 FOR UPDATE",
		profileID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBusinessProfileNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.CreateNumbered lock profile: %w", err)
	}

	inv, items, err := build(profile.CurrentInvoiceNumber, &profile)
	if err != nil {
		return nil, err
	}

	if err := insertInvoiceTx(ctx, tx, inv, items); err != nil {
		return nil, numberedInsertErr(err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE business_profiles SET current_invoice_number = current_invoice_number + 1, updated_at = $1 WHERE id = $2",
		time.Now().UTC(), profileID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.CreateNumbered increment counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("invoiceRepo.CreateNumbered commit: %w", err)
	}
	return inv, nil
}

// numberedInsertErr translates a duplicate on a counter-generated number into
// a numbering conflict: the counter drifted behind an explicitly numbered
// invoice, and the caller should retry with a fresh counter read.
func numberedInsertErr(err error) error {
	if errors.Is(err, domain.ErrDuplicateInvoiceNumber) {
		return domain.ErrNumberingConflict
	}
	return err
}

func (r *invoiceRepo) CreateImported(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.CreateImported begin: %w", err)
	}
	defer tx.Rollback()

	if err := insertInvoiceTx(ctx, tx, inv, items); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.CreateImported commit: %w", err)
	}
	return nil
}

func insertInvoiceTx(ctx context.Context, tx *sqlx.Tx, inv *domain.Invoice, items []domain.InvoiceItem) error {
	now := time.Now().UTC()
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	inv.CreatedAt = now
	inv.UpdatedAt = now

	if _, err := tx.NamedExecContext(ctx, insertInvoiceQuery, inv); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateInvoiceNumber
		}
		return fmt.Errorf("insert invoice: %w", err)
	}

	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].InvoiceID = inv.ID
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
		if _, err := tx.NamedExecContext(ctx, insertItemQuery, &items[i]); err != nil {
			return fmt.Errorf("insert invoice item: %w", err)
		}
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, ownerID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv,
		`SELECT i.* FROM invoices i
		JOIN business_profiles bp ON bp.id = i.business_profile_id
		WHERE i.id = $1 AND bp.owner_id = $2`,
		invoiceID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) ItemsByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceItem, error) {
	var items []domain.InvoiceItem
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM invoice_items WHERE invoice_id = $1 ORDER BY created_at, id", invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ItemsByInvoice: %w", err)
	}
	return items, nil
}

func (r *invoiceRepo) LinesByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceLine, error) {
	items, err := r.ItemsByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	query, args, err := sqlx.In("SELECT * FROM products WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.LinesByInvoice build query: %w", err)
	}
	var products []domain.Product
	err = r.db.SelectContext(ctx, &products, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.LinesByInvoice products: %w", err)
	}

	byID := make(map[uuid.UUID]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	lines := make([]domain.InvoiceLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, domain.InvoiceLine{Item: item, Product: byID[item.ProductID]})
	}
	return lines, nil
}

func (r *invoiceRepo) ExistsByNumber(ctx context.Context, profileID uuid.UUID, invoiceNumber string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM invoices WHERE business_profile_id = $1 AND invoice_number = $2)",
		profileID, invoiceNumber)
	if err != nil {
		return false, fmt.Errorf("invoiceRepo.ExistsByNumber: %w", err)
	}
	return exists, nil
}

func (r *invoiceRepo) List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM invoices i
		JOIN business_profiles bp ON bp.id = i.business_profile_id
		WHERE bp.owner_id = $1`, ownerID)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	var invoices []domain.Invoice
	err = r.db.SelectContext(ctx, &invoices,
		`SELECT i.* FROM invoices i
		JOIN business_profiles bp ON bp.id = i.business_profile_id
		WHERE bp.owner_id = $1
		ORDER BY i.invoice_date DESC, i.created_at DESC OFFSET $2 LIMIT $3`,
		ownerID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) ListByProfile(ctx context.Context, ownerID, profileID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM invoices i
		JOIN business_profiles bp ON bp.id = i.business_profile_id
		WHERE bp.owner_id = $1 AND i.business_profile_id = $2`, ownerID, profileID)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.ListByProfile count: %w", err)
	}

	var invoices []domain.Invoice
	err = r.db.SelectContext(ctx, &invoices,
		`SELECT i.* FROM invoices i
		JOIN business_profiles bp ON bp.id = i.business_profile_id
		WHERE bp.owner_id = $1 AND i.business_profile_id = $2
		ORDER BY i.invoice_date DESC, i.created_at DESC OFFSET $3 LIMIT $4`,
		ownerID, profileID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.ListByProfile: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) Update(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	inv.UpdatedAt = now

	query := `UPDATE invoices SET invoice_number = :invoice_number, invoice_date = :invoice_date,
		due_date = :due_date, customer_id = :customer_id, subtotal = :subtotal,
		tax_amount = :tax_amount, total = :total, notes = :notes, tax_type = :tax_type,
		cgst_total = :cgst_total, sgst_total = :sgst_total, igst_total = :igst_total,
		status = :status, payment_status = :payment_status, document_type = :document_type,
		supply_type = :supply_type, reference_number = :reference_number,
		place_of_supply = :place_of_supply, dispatch_from = :dispatch_from, ship_to = :ship_to,
		currency = :currency, port_of_export = :port_of_export,
		discount_amount = :discount_amount, round_off = :round_off,
		irn = :irn, ack_no = :ack_no, ack_date = :ack_date,
		signed_invoice = :signed_invoice, qr_code = :qr_code,
		ewb_no = :ewb_no, ewb_date = :ewb_date, ewb_valid_till = :ewb_valid_till,
		updated_at = :updated_at
		WHERE id = :id`

	res, err := tx.NamedExecContext(ctx, query, inv)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateInvoiceNumber
		}
		return fmt.Errorf("invoiceRepo.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrInvoiceNotFound
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM invoice_items WHERE invoice_id = $1", inv.ID); err != nil {
		return fmt.Errorf("invoiceRepo.Update clear items: %w", err)
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].InvoiceID = inv.ID
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
		if _, err := tx.NamedExecContext(ctx, insertItemQuery, &items[i]); err != nil {
			return fmt.Errorf("invoiceRepo.Update insert item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Update commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) UpdateStatus(ctx context.Context, ownerID, invoiceID uuid.UUID, status domain.InvoiceStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET status = $1, updated_at = $2
		WHERE id = $3 AND business_profile_id IN (SELECT id FROM business_profiles WHERE owner_id = $4)`,
		status, time.Now().UTC(), invoiceID, ownerID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdateStatus: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *invoiceRepo) UpdatePaymentStatus(ctx context.Context, ownerID, invoiceID uuid.UUID, status domain.PaymentStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET payment_status = $1, updated_at = $2
		WHERE id = $3 AND business_profile_id IN (SELECT id FROM business_profiles WHERE owner_id = $4)`,
		status, time.Now().UTC(), invoiceID, ownerID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdatePaymentStatus: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *invoiceRepo) Delete(ctx context.Context, ownerID, invoiceID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM invoice_items WHERE invoice_id = $1", invoiceID); err != nil {
		return fmt.Errorf("invoiceRepo.Delete items: %w", err)
	}
	res, err := tx.ExecContext(ctx,
		`DELETE FROM invoices
		WHERE id = $1 AND business_profile_id IN (SELECT id FROM business_profiles WHERE owner_id = $2)`,
		invoiceID, ownerID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrInvoiceNotFound
	}
	return tx.Commit()
}
