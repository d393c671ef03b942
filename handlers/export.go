package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

const exportTimeout = 10 * time.Second

var exportHeaders = []string{
	"ID", "Student Name", "Gender", "Class", "Father's Name", "Mother's Name",
	"WhatsApp Number", "Parent Mobile", "Alternate Number", "Address", "Registered At",
}

// Export handles GET /api/registrations/export (admin only). Streams the
// full registration list as an .xlsx workbook, one sheet, newest first.
func (h *RegistrationHandler) Export(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
	defer cancel()

	registrations, err := h.Store.List(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch registrations"})
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Registrations"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to build export"})
		}
	}

	for i, reg := range registrations {
		alternate := ""
		if reg.AlternateNumber != nil {
			alternate = *reg.AlternateNumber
		}
		values := []any{
			reg.ID, reg.StudentName, reg.Gender, reg.Grade, reg.FatherName,
			reg.MotherName, reg.WhatsappNumber, reg.ParentMobileNumber,
			alternate, reg.Address, reg.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to build export"})
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to build export"})
	}

	filename := fmt.Sprintf("Sansa_Registrations_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}
