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

func GetAdminStats(c *fiber.Ctx) error {
	_, isAdmin, isHR, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	type Stats struct {
		Employees        int64              `json:"employees"`
		OnProbation      int64              `json:"onProbation"`
		Workspaces       int64              `json:"workspaces"`
		PendingLeaves    int64              `json:"pendingLeaves"`
		ApprovedLeaves   int64              `json:"approvedLeaves"`
		RejectedLeaves   int64              `json:"rejectedLeaves"`
		OnLeaveToday     int64              `json:"onLeaveToday"`
		DaysByType       map[string]float64 `json:"daysByType"`
		UpcomingHolidays int64              `json:"upcomingHolidays"`
		DeductionMonth   float64            `json:"deductionThisMonth"`
	}

	now := time.Now()
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	yearEnd := time.Date(now.Year(), 12, 31, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	today := now.Format("2006-01-02")
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var stats Stats
	stats.DaysByType = make(map[string]float64)

	db.Model(&model.Employee{}).Where("is_active = ?", true).Count(&stats.Employees)
	db.Model(&model.Employee{}).
		Where("probation_status IN ?", []string{constants.PROBATION_ACTIVE, constants.PROBATION_EXTENDED}).
		Count(&stats.OnProbation)
	db.Model(&model.Workspace{}).Where("active = ?", true).Count(&stats.Workspaces)

	db.Model(&model.LeaveRequest{}).
		Where("start_date BETWEEN ? AND ? AND status = ?", yearStart, yearEnd, constants.STATUS_PENDING).
		Count(&stats.PendingLeaves)
	db.Model(&model.LeaveRequest{}).
		Where("start_date BETWEEN ? AND ? AND status = ?", yearStart, yearEnd, constants.STATUS_APPROVED).
		Count(&stats.ApprovedLeaves)
	db.Model(&model.LeaveRequest{}).
		Where("start_date BETWEEN ? AND ? AND status = ?", yearStart, yearEnd, constants.STATUS_REJECTED).
		Count(&stats.RejectedLeaves)

	db.Model(&model.LeaveRequest{}).
		Where("status = ? AND start_date <= ? AND end_date >= ?", constants.STATUS_APPROVED, today, today).
		Count(&stats.OnLeaveToday)

	type typeSum struct {
		LeaveType string
		Total     float64
	}
	var sums []typeSum
	db.Model(&model.LeaveRequest{}).
		Select("leave_type, COALESCE(SUM(total_days), 0) AS total").
		Where("status = ? AND start_date BETWEEN ? AND ?", constants.STATUS_APPROVED, yearStart, yearEnd).
		Group("leave_type").
		Scan(&sums)
	for _, s := range sums {
		stats.DaysByType[s.LeaveType] = s.Total
	}

	db.Model(&model.Holiday{}).
		Where("active = ? AND date >= ?", true, today).
		Count(&stats.UpcomingHolidays)

	db.Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM salary_deduction_records
		WHERE created_at >= ?
	`, monthStart).Scan(&stats.DeductionMonth)

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
