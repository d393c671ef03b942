package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/gofiber/fiber/v2"

	"sansa-learn/metrics"
	"sansa-learn/models"
	"sansa-learn/store"
)

const (
	receiptLocation = "Chandmari Road, Kankarbagh Patna (opposite of Gali no. 06)"
	receiptContact  = "Contact: 9296820840, 9153021229"
	batchDuration   = "15 Days (2nd Feb - 15th Feb 2026)"
	batchStartDate  = "2nd February 2026"
)

// Receipt handles GET /api/registrations/:id/receipt. Renders the
// registration receipt as a PDF so the confirmation page can link a
// stable download URL.
func (h *RegistrationHandler) Receipt(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	reg, err := h.Store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Registration not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch registration"})
	}

	buf, err := renderReceipt(reg)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to generate receipt"})
	}

	metrics.ReceiptsGenerated.Inc()
	filename := fmt.Sprintf("Sansa-Learn-Receipt-%s.pdf", reg.StudentName)
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

func renderReceipt(reg models.Registration) (*bytes.Buffer, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pageWidth, pageHeight := pdf.GetPageSize()
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Branding header
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(218, 165, 32)
	pdf.Text(15, 14, "SANSA LEARN")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(15, 20, "CONCEPT FOUNDATION")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(218, 165, 32)
	pdf.SetXY(0, 30)
	pdf.CellFormat(pageWidth, 8, "FREE CONCEPT FOUNDATION PROGRAM", "", 1, "C", false, 0, "")
	pdf.SetDrawColor(218, 165, 32)
	pdf.SetLineWidth(0.5)
	pdf.Line(20, 40, pageWidth-20, 40)

	// Title
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(34, 139, 34)
	pdf.SetXY(0, 48)
	pdf.CellFormat(pageWidth, 10, "REGISTRATION SUCCESSFUL!", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(20, 64)
	pdf.CellFormat(0, 8, fmt.Sprintf("Welcome, %s!", reg.StudentName), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetXY(20, 74)
	intro := "Congratulations on securing your seat in the Sansa Learn Concept Foundation Program. " +
		"This 15-day intensive program is designed to strengthen your academic foundations in " +
		"Mathematics, Science, and English Grammar."
	pdf.MultiCell(pageWidth-40, 6, intro, "", "L", false)

	// Program information table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(20, pdf.GetY()+8)
	pdf.CellFormat(0, 7, "Program Information:", "", 1, "L", false, 0, "")

	rows := [][2]string{
		{"Registration ID", fmt.Sprintf("#%d", reg.ID)},
		{"Student Name", reg.StudentName},
		{"Class (2025-26)", reg.Grade},
		{"Batch Duration", batchDuration},
		{"Class Start Date", batchStartDate},
		{"Location", receiptLocation},
	}
	labelWidth := 50.0
	valueWidth := pageWidth - 40 - labelWidth
	for _, row := range rows {
		y := pdf.GetY()
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(255, 250, 240)
		pdf.SetXY(20, y)
		pdf.CellFormat(labelWidth, 10, row[0], "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(valueWidth, 10, row[1], "1", 1, "L", false, 0, "")
	}

	// General information
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(20, pdf.GetY()+10)
	pdf.CellFormat(0, 7, "General Information:", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	generalInfo := []string{
		"- Please arrive 15 minutes before your scheduled batch time on the first day.",
		"- Bring this receipt and one passport size photograph.",
		"- Classes will be held Monday to Saturday.",
		"- " + receiptContact + " for any queries.",
	}
	for _, line := range generalInfo {
		pdf.SetX(20)
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}

	// Footer
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(0, pageHeight-14)
	pdf.CellFormat(pageWidth, 5, receiptLocation+" | "+receiptContact, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}
	return &buf, nil
}
