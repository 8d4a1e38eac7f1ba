package rest

import (
	"github.com/gofiber/fiber/v2"
)

type buildInvoiceRequest struct {
	StudentID int64  `json:"student_id" validate:"required"`
	Month     string `json:"month" validate:"required,datetime=2006-01"`
}

func (h *Handlers) registerInvoices(api fiber.Router) {
	invoices := api.Group("/invoices")

	invoices.Get("/", h.listInvoices)
	invoices.Post("/", h.buildInvoice)
	invoices.Get("/:id", h.getInvoice)
	invoices.Post("/:id/issue", h.issueInvoice)
	invoices.Patch("/:id/status", h.patchInvoiceStatus)
	invoices.Delete("/:id", h.deleteInvoice)
}

func (h *Handlers) listInvoices(c *fiber.Ctx) error {
	studentID, err := queryInt64(c, "studentId")
	if err != nil {
		return err
	}
	invoices, err := h.Invoices.List(c.Context(), studentID, c.Query("month"))
	if err != nil {
		return err
	}
	return c.JSON(invoices)
}

// buildInvoice drafts an invoice from the student's unpaid completed
// classes for the month.
func (h *Handlers) buildInvoice(c *fiber.Ctx) error {
	var req buildInvoiceRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	invoice, err := h.Invoices.BuildForMonth(c.Context(), req.StudentID, req.Month)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

func (h *Handlers) getInvoice(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	invoice, err := h.Invoices.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(invoice)
}

func (h *Handlers) issueInvoice(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	invoice, err := h.Invoices.Issue(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(invoice)
}

type invoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=paid"`
}

// patchInvoiceStatus only moves issued invoices to paid; drafts become
// issued through the issue endpoint, which assigns the serial.
func (h *Handlers) patchInvoiceStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req invoiceStatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	invoice, err := h.Invoices.MarkPaid(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(invoice)
}

func (h *Handlers) deleteInvoice(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.Invoices.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
