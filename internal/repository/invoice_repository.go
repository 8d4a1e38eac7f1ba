package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"tutordesk/internal/model"
)

type InvoiceRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewInvoiceRepository(pool *pgxpool.Pool, logger *zap.Logger) *InvoiceRepository {
	return &InvoiceRepository{
		pool:   pool,
		logger: logger,
	}
}

const invoiceColumns = `id, student_id, month, serial_number, status, items,
	subtotal_cents, tax_cents, total_cents, issued_at, created_at, updated_at`

func scanInvoice(row pgx.Row) (*model.Invoice, error) {
	var inv model.Invoice
	var items []byte
	err := row.Scan(
		&inv.ID,
		&inv.StudentID,
		&inv.Month,
		&inv.SerialNumber,
		&inv.Status,
		&items,
		&inv.SubtotalCents,
		&inv.TaxCents,
		&inv.TotalCents,
		&inv.IssuedAt,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &inv.Items); err != nil {
			return nil, fmt.Errorf("decode invoice items: %w", err)
		}
	}
	return &inv, nil
}

// Create inserts a draft invoice with its line items frozen as JSON.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	items, err := json.Marshal(invoice.Items)
	if err != nil {
		return fmt.Errorf("encode invoice items: %w", err)
	}

	query := `
		INSERT INTO invoices (student_id, month, serial_number, status, items,
			subtotal_cents, tax_cents, total_cents, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err = r.pool.QueryRow(
		ctx, query,
		invoice.StudentID,
		invoice.Month,
		invoice.SerialNumber,
		invoice.Status,
		items,
		invoice.SubtotalCents,
		invoice.TaxCents,
		invoice.TotalCents,
		invoice.IssuedAt,
	).Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}

	return nil
}

// GetByID returns the invoice or nil when it does not exist.
func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*model.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

	invoice, err := scanInvoice(r.pool.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice by id: %w", err)
	}

	return invoice, nil
}

// List returns invoices, optionally narrowed by student and/or month.
func (r *InvoiceRepository) List(ctx context.Context, studentID *int64, month string) ([]*model.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE 1=1`
	var args []interface{}

	if studentID != nil {
		args = append(args, *studentID)
		query += fmt.Sprintf(` AND student_id = $%d`, len(args))
	}
	if month != "" {
		args = append(args, month)
		query += fmt.Sprintf(` AND month = $%d`, len(args))
	}
	query += ` ORDER BY month DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*model.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoices: %w", err)
	}

	return invoices, nil
}

// CountIssuedThisYear feeds serial-number generation. The count keys
// on the issue year, not the creation year: a December draft issued in
// January belongs to the January fiscal year.
func (r *InvoiceRepository) CountIssuedThisYear(ctx context.Context, year int) (int, error) {
	query := `SELECT COUNT(*) FROM invoices WHERE issued_at IS NOT NULL AND date_part('year', issued_at) = $1`

	var n int
	if err := r.pool.QueryRow(ctx, query, year).Scan(&n); err != nil {
		return 0, fmt.Errorf("count issued invoices: %w", err)
	}
	return n, nil
}

// UpdateStatus moves the invoice through draft -> issued -> paid.
// Issue also stamps serial number and issued_at.
func (r *InvoiceRepository) UpdateStatus(ctx context.Context, invoice *model.Invoice) error {
	query := `
		UPDATE invoices
		SET status = $2, serial_number = $3, issued_at = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query, invoice.ID, invoice.Status, invoice.SerialNumber, invoice.IssuedAt).
		Scan(&invoice.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}

	r.logger.Info("Invoice status updated",
		zap.Int64("invoice_id", invoice.ID),
		zap.String("status", string(invoice.Status)))

	return nil
}

// Delete removes a draft. Issued invoices are fiscal records and the
// service layer refuses to delete them.
func (r *InvoiceRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM invoices WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}

	return nil
}
