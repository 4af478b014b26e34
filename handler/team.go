package handler

import (
	"errors"
	"time"

	"leave_manager/constants"
	"leave_manager/helper"
	"leave_manager/model"
	"leave_manager/utils"

	"github.com/gofiber/fiber/v2"
)

type teamMember struct {
	model.Employee
	OnLeaveToday bool `json:"onLeaveToday"`
}

// GetTeam returns the manager's roster with each member's probation status
// and whether approved leave covers today.
func GetTeam(c *fiber.Ctx) error {
	claim, isAdmin, isHR, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_MANAGER, errors.New("not allowed"))
	}

	query := db.Model(&model.Employee{}).Where("is_active = ?", true)
	if isManager && !isAdmin && !isHR {
		query = query.Where("manager_id = ?", claim.EmployeeId)
	}

	var employees []model.Employee
	if err := query.Preload("Workspace").Order("first_name").Find(&employees).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	today := time.Now().Format("2006-01-02")
	members := make([]teamMember, 0, len(employees))
	for _, e := range employees {
		var onLeave int64
		db.Model(&model.LeaveRequest{}).
			Where("employee_id = ? AND status = ? AND start_date <= ? AND end_date >= ?",
				e.ID, constants.STATUS_APPROVED, today, today).
			Count(&onLeave)
		members = append(members, teamMember{Employee: e, OnLeaveToday: onLeave > 0})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, members)
}

// GetTeamOnLeave lists members whose approved leave covers today.
func GetTeamOnLeave(c *fiber.Ctx) error {
	claim, isAdmin, isHR, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_MANAGER, errors.New("not allowed"))
	}

	today := time.Now().Format("2006-01-02")
	query := db.Model(&model.LeaveRequest{}).
		Where("status = ? AND start_date <= ? AND end_date >= ?", constants.STATUS_APPROVED, today, today)
	if isManager && !isAdmin && !isHR {
		query = query.Where("employee_id IN (?)",
			db.Model(&model.Employee{}).Select("id").Where("manager_id = ?", claim.EmployeeId))
	}

	var requests []model.LeaveRequest
	if err := query.Preload("Employee").Find(&requests).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, requests)
}
