package handler

import (
	"errors"
	"fmt"
	"time"

	"leave_manager/constants"
	"leave_manager/helper"
	"leave_manager/model"
	"leave_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GenerateInvoices rolls every employee's unsettled salary deductions for the
// requested month into one invoice each.
func GenerateInvoices(c *fiber.Ctx) error {
	_, isAdmin, isHR, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not allowed"))
	}

	input := c.Locals("invoiceInput").(model.GenerateInvoiceInput)

	monthStart := time.Date(input.Year, time.Month(input.Month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var invoices []model.Invoice
	err := db.Transaction(func(tx *gorm.DB) error {
		var records []model.SalaryDeductionRecord
		if err := tx.Where("invoice_id IS NULL AND created_at >= ? AND created_at < ?", monthStart, monthEnd).
			Find(&records).Error; err != nil {
			return err
		}

		byEmployee := make(map[uint][]model.SalaryDeductionRecord)
		for _, r := range records {
			byEmployee[r.EmployeeId] = append(byEmployee[r.EmployeeId], r)
		}

		for employeeID, rows := range byEmployee {
			days := decimal.Zero
			amount := decimal.Zero
			for _, r := range rows {
				days = days.Add(decimal.NewFromFloat(r.Days))
				amount = amount.Add(decimal.NewFromFloat(r.Amount))
			}

			invoice := model.Invoice{
				Number:     fmt.Sprintf("DED-%d%02d-%s", input.Year, input.Month, uuid.NewString()[:8]),
				EmployeeId: employeeID,
				Month:      input.Month,
				Year:       input.Year,
				TotalDays:  days.Round(2).InexactFloat64(),
				Amount:     amount.Round(2).InexactFloat64(),
			}
			if err := tx.Create(&invoice).Error; err != nil {
				return err
			}

			ids := make([]uint, 0, len(rows))
			for _, r := range rows {
				ids = append(ids, r.ID)
			}
			if err := tx.Model(&model.SalaryDeductionRecord{}).
				Where("id IN ?", ids).
				Update("invoice_id", invoice.ID).Error; err != nil {
				return err
			}
			invoices = append(invoices, invoice)
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not generate invoices", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, invoices)
}

func GetInvoices(c *fiber.Ctx) error {
	_, isAdmin, isHR, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not allowed"))
	}

	filter := new(model.InvoiceFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := db.Model(&model.Invoice{})
	if filter.EmployeeId != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeId)
	}
	if filter.Month != nil {
		query = query.Where("month = ?", *filter.Month)
	}
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}
	if filter.Paid != nil {
		query = query.Where("paid = ?", *filter.Paid)
	}

	var total int64
	query.Count(&total)

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	var invoices []model.Invoice
	query.Preload("Employee").Preload("Deductions").Order("created_at DESC").Find(&invoices)

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       invoices,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

// InvoiceQR renders the payment reference as a PNG QR code.
func InvoiceQR(c *fiber.Ctx) error {
	invoiceId := c.Locals("inputId").(int)

	var invoice model.Invoice
	if err := db.First(&invoice, invoiceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Invoice not found", err)
	}

	content := fmt.Sprintf("%s|%.2f", invoice.Number, invoice.Amount)
	png, err := utils.GenerateQRCode(content, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not render QR", err)
	}
	c.Set("Content-Type", "image/png")
	return c.Send(png)
}

func PayInvoice(c *fiber.Ctx) error {
	_, isAdmin, isHR, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not allowed"))
	}

	invoiceId := c.Locals("inputId").(int)

	var invoice model.Invoice
	if err := db.First(&invoice, invoiceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Invoice not found", err)
	}
	if invoice.Paid {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Invoice already settled", errors.New("already paid"))
	}

	now := time.Now()
	invoice.Paid = true
	invoice.PaidAt = &now
	if err := db.Save(&invoice).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not settle invoice", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, invoice)
}
