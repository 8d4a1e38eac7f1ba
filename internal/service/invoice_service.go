package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"tutordesk/internal/model"
	"tutordesk/internal/repository"
	"tutordesk/internal/repository/base"
)

type InvoiceService struct {
	invoiceRepo  *repository.InvoiceRepository
	studentRepo  *repository.StudentRepository
	classRepo    *repository.ClassRepository
	settingsRepo *repository.SettingsRepository
	logger       *zap.Logger
}

func NewInvoiceService(
	invoiceRepo *repository.InvoiceRepository,
	studentRepo *repository.StudentRepository,
	classRepo *repository.ClassRepository,
	settingsRepo *repository.SettingsRepository,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		studentRepo:  studentRepo,
		classRepo:    classRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// MonthRange resolves "YYYY-MM" to the first and last day of the month.
func MonthRange(month string) (time.Time, time.Time, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: month must be YYYY-MM", ErrValidation)
	}
	last := first.AddDate(0, 1, -1)
	return first, last, nil
}

// ComputeTotals sums line items and applies the tax rate, rounding the
// tax to the nearest cent.
func ComputeTotals(items []model.InvoiceItem, taxRatePercent float64) (subtotal, tax, total int) {
	for _, item := range items {
		subtotal += item.PriceCents
	}
	tax = int(math.Round(float64(subtotal) * taxRatePercent / 100))
	total = subtotal + tax
	return subtotal, tax, total
}

// BuildForMonth drafts an invoice from a student's non-cancelled
// classes of one month. Line items freeze each class's description and
// price at build time.
func (s *InvoiceService) BuildForMonth(ctx context.Context, studentID int64, month string) (*model.Invoice, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	if student == nil {
		return nil, fmt.Errorf("student %d: %w", studentID, ErrNotFound)
	}

	from, to, err := MonthRange(month)
	if err != nil {
		return nil, err
	}

	classes, err := s.classRepo.GetByStudentAndRange(ctx, studentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("get classes: %w", err)
	}

	items := []model.InvoiceItem{}
	for _, c := range classes {
		if c.Status == model.ClassStatusCancelled {
			continue
		}
		items = append(items, model.InvoiceItem{
			ClassID:         c.ID,
			Date:            c.Date,
			Description:     fmt.Sprintf("Class on %s, %s-%s", c.Date.Format("2006-01-02"), c.StartTime, c.EndTime),
			DurationMinutes: c.DurationMinutes,
			PriceCents:      c.PriceCents,
		})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no billable classes in %s", ErrValidation, month)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	var taxRate float64
	if settings != nil {
		taxRate = settings.TaxRatePercent
	}

	invoice := &model.Invoice{
		StudentID: studentID,
		Month:     month,
		Status:    model.InvoiceStatusDraft,
		Items:     items,
	}
	invoice.SubtotalCents, invoice.TaxCents, invoice.TotalCents = ComputeTotals(items, taxRate)

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	s.logger.Info("Invoice drafted",
		zap.Int64("invoice_id", invoice.ID),
		zap.Int64("student_id", studentID),
		zap.String("month", month),
		zap.Int("total_cents", invoice.TotalCents))

	return invoice, nil
}

func (s *InvoiceService) GetByID(ctx context.Context, id int64) (*model.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, fmt.Errorf("invoice %d: %w", id, ErrNotFound)
	}
	return invoice, nil
}

func (s *InvoiceService) List(ctx context.Context, studentID *int64, month string) ([]*model.Invoice, error) {
	return s.invoiceRepo.List(ctx, studentID, month)
}

// Issue stamps a draft with a serial number and the issue timestamp.
// Serial numbers are prefix + year + per-year counter.
func (s *InvoiceService) Issue(ctx context.Context, id int64) (*model.Invoice, error) {
	invoice, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != model.InvoiceStatusDraft {
		return nil, fmt.Errorf("%w: invoice %d is already %s", ErrConflict, id, invoice.Status)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	prefix := "INV-"
	if settings != nil && settings.InvoicePrefix != "" {
		prefix = settings.InvoicePrefix
	}

	now := time.Now()
	count, err := s.invoiceRepo.CountIssuedThisYear(ctx, now.Year())
	if err != nil {
		return nil, err
	}

	invoice.Status = model.InvoiceStatusIssued
	invoice.SerialNumber = SerialNumber(prefix, now.Year(), count+1)
	invoice.IssuedAt = &now

	if err := s.invoiceRepo.UpdateStatus(ctx, invoice); err != nil {
		if base.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: serial %s already taken, retry", ErrConflict, invoice.SerialNumber)
		}
		return nil, err
	}

	return invoice, nil
}

// SerialNumber formats a fiscal serial: prefix, issue year, per-year
// counter. The year must be the issue year, never the draft year, or
// counting by issue year would hand out duplicates.
func SerialNumber(prefix string, year, seq int) string {
	return fmt.Sprintf("%s%d-%04d", prefix, year, seq)
}

// MarkPaid transitions an issued invoice to paid.
func (s *InvoiceService) MarkPaid(ctx context.Context, id int64) (*model.Invoice, error) {
	invoice, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != model.InvoiceStatusIssued {
		return nil, fmt.Errorf("%w: invoice %d is %s, not issued", ErrConflict, id, invoice.Status)
	}

	invoice.Status = model.InvoiceStatusPaid
	if err := s.invoiceRepo.UpdateStatus(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

// Delete removes a draft. Issued invoices are fiscal records; deleting
// one is refused.
func (s *InvoiceService) Delete(ctx context.Context, id int64) error {
	invoice, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice.Status != model.InvoiceStatusDraft {
		return fmt.Errorf("%w: only draft invoices can be deleted", ErrConflict)
	}

	return s.invoiceRepo.Delete(ctx, id)
}
