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
	"gorm.io/gorm"
)

// GetMyBalance returns the caller's per-leave-type balance.
func GetMyBalance(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.EmployeeId == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EMPLOYEE_NOT_FOUND, errors.New("no employee linked to account"))
	}
	return respondBalance(c, claim.EmployeeId)
}

// GetBalanceByEmployee lets HR/admin/managers inspect someone else's balance.
func GetBalanceByEmployee(c *fiber.Ctx) error {
	_, isAdmin, isHR, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_MANAGER, errors.New("not allowed"))
	}
	employeeId := c.Locals("inputId").(int)
	return respondBalance(c, uint(employeeId))
}

func respondBalance(c *fiber.Ctx, employeeID uint) error {
	balances, err := rules.Balance.Compute(c.Context(), employeeID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FAILED_TO_CALC_BALANCE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, balances)
}

// ValidateLeave is the advisory run: overlap and everything else soft except
// the hard date/policy failures.
func ValidateLeave(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.EmployeeId == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EMPLOYEE_NOT_FOUND, errors.New("no employee linked to account"))
	}

	input := c.Locals("leaveInput").(model.CreateLeaveInput)
	result, err := rules.Validate(c.Context(), claim.EmployeeId, validationInput(c, input, false))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FAILED_TO_VALIDATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

// CreateLeave is the strict path: same rule engine with hard overlap
// rejection, then persist inside one transaction. The exclusion constraint
// installed at migration backstops racing submissions.
func CreateLeave(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.EmployeeId == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EMPLOYEE_NOT_FOUND, errors.New("no employee linked to account"))
	}

	input := c.Locals("leaveInput").(model.CreateLeaveInput)
	start := c.Locals("leaveStart").(utils.DateOnly)
	end := c.Locals("leaveEnd").(utils.DateOnly)

	var created model.LeaveRequest
	var result *helper.ValidationResult

	err := db.Transaction(func(tx *gorm.DB) error {
		txRules := helper.NewRules(helper.NewStore(tx))

		var err error
		result, err = txRules.Validate(c.Context(), claim.EmployeeId, validationInput(c, input, true))
		if err != nil {
			return err
		}
		if !result.CanSubmit {
			return nil
		}

		created = model.LeaveRequest{
			EmployeeId:    claim.EmployeeId,
			LeaveType:     input.LeaveType,
			StartDate:     start,
			EndDate:       end,
			TotalDays:     result.TotalDays,
			IsHalfDay:     input.IsHalfDay != nil && *input.IsHalfDay,
			HalfDayPeriod: input.HalfDayPeriod,
			Reason:        input.Reason,
			Status:        constants.STATUS_PENDING,
			Priority:      result.Priority,
			IsPaid:        result.IsPaid,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		// Deduction rows only exist for otherwise-paid leave over balance;
		// probation leave is already unpaid and carries none.
		if result.SalaryDeduction != nil {
			record := model.SalaryDeductionRecord{
				EmployeeId:     claim.EmployeeId,
				LeaveRequestId: created.ID,
				Days:           result.SalaryDeduction.Days,
				Amount:         result.SalaryDeduction.Amount,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FAILED_TO_VALIDATE, err)
	}
	if !result.CanSubmit {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": result.Message,
			"result":  result,
		})
	}

	notifyManager(c, claim.EmployeeId, &created)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"request": created,
		"result":  result,
	})
}

func validationInput(c *fiber.Ctx, input model.CreateLeaveInput, rejectOverlap bool) helper.ValidationInput {
	start := c.Locals("leaveStart").(utils.DateOnly)
	end := c.Locals("leaveEnd").(utils.DateOnly)
	v := helper.ValidationInput{
		LeaveType:     input.LeaveType,
		StartDate:     start.Time,
		EndDate:       end.Time,
		IsHalfDay:     input.IsHalfDay != nil && *input.IsHalfDay,
		HalfDayPeriod: input.HalfDayPeriod,
		Reason:        input.Reason,
		StrictLimit:   input.StrictLimit,
		RejectOverlap: rejectOverlap,
	}
	if input.Hours != nil {
		v.Hours = *input.Hours
	}
	return v
}

func notifyManager(c *fiber.Ctx, employeeID uint, request *model.LeaveRequest) {
	var employee model.Employee
	if err := db.First(&employee, employeeID).Error; err != nil || employee.ManagerId == nil {
		return
	}
	title := "New leave request"
	body := fmt.Sprintf("%s requested %s leave %s to %s (%.2f days)",
		employee.FullName(), request.LeaveType, request.StartDate.String(), request.EndDate.String(), request.TotalDays)
	helper.Notify(c.Context(), db, rdb, *employee.ManagerId, constants.NOTIFY_LEAVE_SUBMITTED, title, body)
}

func GetMyLeaves(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.EmployeeId == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EMPLOYEE_NOT_FOUND, errors.New("no employee linked to account"))
	}

	filter := new(model.LeaveFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := db.Model(&model.LeaveRequest{}).Where("employee_id = ?", claim.EmployeeId)
	if filter.Year != nil {
		start := time.Date(*filter.Year, 1, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, -1)
		query = query.Where("start_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.LeaveType != nil {
		query = query.Where("leave_type = ?", *filter.LeaveType)
	}

	var total int64
	query.Count(&total)

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	var requests []model.LeaveRequest
	query.Order("start_date DESC").Find(&requests)

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       requests,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

// GetPendingLeaves is the approver queue: managers see their reports, HR and
// admin see everything.
func GetPendingLeaves(c *fiber.Ctx) error {
	claim, isAdmin, isHR, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_MANAGER, errors.New("not allowed"))
	}

	query := db.Model(&model.LeaveRequest{}).Where("status = ?", constants.STATUS_PENDING)
	if isManager && !isAdmin && !isHR {
		query = query.Where("employee_id IN (?)",
			db.Model(&model.Employee{}).Select("id").Where("manager_id = ?", claim.EmployeeId))
	}

	var requests []model.LeaveRequest
	query.Preload("Employee").Order("created_at").Find(&requests)
	return utils.SuccessResponse(c, fiber.StatusOK, requests)
}

func ApproveLeave(c *fiber.Ctx) error {
	return decideLeave(c, constants.STATUS_APPROVED)
}

func RejectLeave(c *fiber.Ctx) error {
	return decideLeave(c, constants.STATUS_REJECTED)
}

func decideLeave(c *fiber.Ctx, status string) error {
	claim, isAdmin, isHR, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_MANAGER, errors.New("not allowed"))
	}

	leaveId := c.Locals("inputId").(int)

	var request model.LeaveRequest
	if err := db.Preload("Employee").First(&request, leaveId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.LEAVE_NOT_FOUND, err)
	}
	if request.Status != constants.STATUS_PENDING {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ONLY_PENDING_DECIDABLE, errors.New("already decided"))
	}
	if isManager && !isAdmin && !isHR {
		if request.Employee == nil || request.Employee.ManagerId == nil || *request.Employee.ManagerId != claim.EmployeeId {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_MANAGER, errors.New("not this employee's manager"))
		}
	}

	input := new(model.DecideLeaveInput)
	c.BodyParser(input) // note is optional

	now := time.Now()
	request.Status = status
	request.DecidedAt = &now
	request.DecisionNote = input.Note
	if claim.EmployeeId != 0 {
		approverId := claim.EmployeeId
		request.ApproverId = &approverId
	}

	if err := db.Save(&request).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not update request", err)
	}

	title := fmt.Sprintf("Leave request %s", status)
	body := fmt.Sprintf("Your %s leave %s to %s was %s",
		request.LeaveType, request.StartDate.String(), request.EndDate.String(), status)
	helper.Notify(c.Context(), db, rdb, request.EmployeeId, constants.NOTIFY_LEAVE_DECIDED, title, body)

	if request.Employee != nil && request.Employee.Email != "" {
		utils.SendLeaveDecisionEmail(request.Employee.Email, utils.LeaveDecisionData{
			EmployeeName: request.Employee.FullName(),
			LeaveType:    request.LeaveType,
			StartDate:    request.StartDate.String(),
			EndDate:      request.EndDate.String(),
			TotalDays:    request.TotalDays,
			Status:       status,
			Comment:      input.Note,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, request)
}

// CancelLeave deletes a still-pending request; decided requests are
// immutable here.
func CancelLeave(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoAccountFromToken(c)
	leaveId := c.Locals("inputId").(int)

	var request model.LeaveRequest
	if err := db.First(&request, leaveId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.LEAVE_NOT_FOUND, err)
	}
	if request.EmployeeId != claim.EmployeeId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Not your request", errors.New("owner mismatch"))
	}
	if request.Status != constants.STATUS_PENDING {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ONLY_PENDING_CANCELLABLE, errors.New("already decided"))
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("leave_request_id = ?", request.ID).Delete(&model.SalaryDeductionRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&request).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not cancel request", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "request cancelled"})
}

// UploadAttachment stores a supporting document (medical certificate) for a
// request.
func UploadAttachment(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoAccountFromToken(c)
	leaveId := c.Locals("inputId").(int)

	var request model.LeaveRequest
	if err := db.First(&request, leaveId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.LEAVE_NOT_FOUND, err)
	}
	if request.EmployeeId != claim.EmployeeId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Not your request", errors.New("owner mismatch"))
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "file is required", err)
	}

	url, err := helper.UploadAttachment(c.Context(), cld, file)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload failed", err)
	}

	request.AttachmentURL = url
	if err := db.Save(&request).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not save attachment", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, request)
}
