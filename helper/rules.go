package helper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"leave_manager/constants"
	"leave_manager/model"

	"github.com/shopspring/decimal"
)

// PayrollRate is the extension point for real payroll data; the flat default
// is a placeholder.
type PayrollRate interface {
	DailyRate(ctx context.Context, employee *model.Employee) float64
}

// FlatPayrollRate uses the employee's override when set, otherwise the flat
// default rate.
type FlatPayrollRate struct{}

func (FlatPayrollRate) DailyRate(_ context.Context, employee *model.Employee) float64 {
	if employee != nil && employee.DailyRate != nil && *employee.DailyRate > 0 {
		return *employee.DailyRate
	}
	return constants.DefaultDailyRate
}

type ValidationInput struct {
	LeaveType     string
	StartDate     time.Time
	EndDate       time.Time
	IsHalfDay     bool
	HalfDayPeriod string
	Hours         float64
	Reason        string
	// StrictLimit rejects balance overruns outright instead of converting
	// them to a salary deduction.
	StrictLimit bool
	// RejectOverlap turns the overlap check into a hard rejection; the
	// create path sets it, the advisory endpoint leaves it off.
	RejectOverlap bool
}

type SalaryDeduction struct {
	Days   float64 `json:"days"`
	Amount float64 `json:"amount"`
}

type ValidationResult struct {
	IsValid          bool             `json:"isValid"`
	CanSubmit        bool             `json:"canSubmit"`
	RequiresApproval bool             `json:"requiresApproval"`
	Warnings         []string         `json:"warnings"`
	SalaryDeduction  *SalaryDeduction `json:"salaryDeduction,omitempty"`
	Message          string           `json:"message,omitempty"`
	TotalDays        float64          `json:"totalDays"`
	Priority         string           `json:"priority"`
	IsPaid           bool             `json:"isPaid"`
}

// Rules runs the business-rule checks over a proposed leave request. Only
// hard failures short-circuit; everything else degrades to warnings that
// still allow submission.
type Rules struct {
	Balance  *BalanceCalculator
	Requests LeaveRequestStore
	Workdays *WorkdayCalculator
	Rate     PayrollRate
	Now      func() time.Time
}

func (r *Rules) Validate(ctx context.Context, employeeID uint, in ValidationInput) (*ValidationResult, error) {
	result := &ValidationResult{
		IsValid:          true,
		CanSubmit:        true,
		RequiresApproval: true,
		Warnings:         []string{},
		IsPaid:           true,
	}

	start := Midnight(in.StartDate)
	end := Midnight(in.EndDate)

	// 1. date sanity (hard)
	if end.Before(start) {
		return reject(result, constants.END_BEFORE_START), nil
	}

	employee, err := r.Balance.Employees.EmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", constants.FAILED_TO_VALIDATE, err)
	}
	if employee == nil {
		return nil, errors.New(constants.EMPLOYEE_NOT_FOUND)
	}

	// 2. day count
	totalDays, err := r.countDays(ctx, in, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", constants.FAILED_TO_VALIDATE, err)
	}
	if totalDays <= 0 {
		return reject(result, "Requested range contains no working days"), nil
	}
	result.TotalDays = totalDays
	result.Priority = priorityFor(in.LeaveType, totalDays)

	// 3. balance check
	balances, err := r.Balance.Compute(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	balance, ok := balances[in.LeaveType]
	if !ok {
		return reject(result, constants.NO_ACTIVE_POLICY), nil
	}
	if totalDays > balance.Remaining {
		excess := round2(totalDays - balance.Remaining)
		if in.StrictLimit {
			return reject(result, fmt.Sprintf("Insufficient balance: requested %.2f days, %.2f remaining", totalDays, balance.Remaining)), nil
		}
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Request exceeds remaining balance by %.2f days; the excess will be deducted from salary", excess))
		rate := r.Rate.DailyRate(ctx, employee)
		amount := decimal.NewFromFloat(excess).Mul(decimal.NewFromFloat(rate)).Round(2)
		result.SalaryDeduction = &SalaryDeduction{Days: excess, Amount: amount.InexactFloat64()}
		result.IsPaid = false
	}

	// 4. probation override: leave intersecting an open probation window is
	// unpaid, and unpaid leave never carries a deduction.
	if r.intersectsProbation(employee, start, end) {
		result.IsPaid = false
		result.SalaryDeduction = nil
		result.Warnings = append(result.Warnings, "Leave taken during probation is unpaid")
	}

	// 5. notice period (soft)
	if notice, ok := constants.NoticeDays[in.LeaveType]; ok && notice > 0 {
		daysAhead := int(start.Sub(Midnight(r.Now())).Hours() / 24)
		if daysAhead < notice {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s leave should be requested at least %d days in advance", in.LeaveType, notice))
		}
	}

	// 6. holiday conflicts (soft)
	holidays, err := r.Workdays.Holidays.ActiveHolidays(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", constants.FAILED_TO_VALIDATE, err)
	}
	for _, h := range holidays {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Range includes holiday %s (%s)", h.Name, h.Date.String()))
	}

	// 7. overlap: soft in the advisory run, hard on the create path
	overlapping, err := r.Requests.OpenRequestsOverlapping(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", constants.FAILED_TO_VALIDATE, err)
	}
	if len(overlapping) > 0 {
		conflict := overlapping[0]
		message := fmt.Sprintf("Overlaps an existing %s request from %s to %s",
			conflict.Status, conflict.StartDate.String(), conflict.EndDate.String())
		if in.RejectOverlap {
			return reject(result, message), nil
		}
		result.Warnings = append(result.Warnings, message)
	}

	// 8. max consecutive days (soft)
	if max, ok := constants.MaxConsecutiveDays[in.LeaveType]; ok && totalDays > max {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Exceeds the recommended maximum of %.0f consecutive %s days", max, in.LeaveType))
	}

	// 9. emergency reason keywords (soft)
	if in.LeaveType == constants.LEAVE_EMERGENCY && !containsEmergencyKeyword(in.Reason) {
		result.Warnings = append(result.Warnings,
			"Emergency leave reason should mention the nature of the emergency")
	}

	// 10. parental once per year (soft)
	if in.LeaveType == constants.LEAVE_MATERNITY || in.LeaveType == constants.LEAVE_PATERNITY {
		requests, err := r.Requests.RequestsForYear(ctx, employeeID, r.Now().Year())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", constants.FAILED_TO_VALIDATE, err)
		}
		for _, req := range requests {
			if req.LeaveType == in.LeaveType && req.Status != constants.STATUS_REJECTED {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("A %s request already exists this year", in.LeaveType))
				break
			}
		}
	}

	return result, nil
}

func (r *Rules) countDays(ctx context.Context, in ValidationInput, start, end time.Time) (float64, error) {
	if in.IsHalfDay {
		return 0.5, nil
	}
	if in.Hours > 0 {
		return round2(in.Hours / constants.HoursPerDay), nil
	}
	return r.Workdays.CountWorkingDays(ctx, start, end)
}

func (r *Rules) intersectsProbation(employee *model.Employee, start, end time.Time) bool {
	if !employee.InProbation() || employee.ProbationStart == nil || employee.ProbationEnd == nil {
		return false
	}
	pStart := Midnight(employee.ProbationStart.Time)
	pEnd := Midnight(employee.ProbationEnd.Time)
	return !start.After(pEnd) && !end.Before(pStart)
}

func priorityFor(leaveType string, days float64) string {
	if leaveType == constants.LEAVE_EMERGENCY || (leaveType == constants.LEAVE_SICK && days > 3) {
		return constants.PRIORITY_HIGH
	}
	if days > 7 || leaveType == constants.LEAVE_SICK {
		return constants.PRIORITY_MEDIUM
	}
	return constants.PRIORITY_LOW
}

func containsEmergencyKeyword(reason string) bool {
	lower := strings.ToLower(reason)
	for _, kw := range constants.EmergencyKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func reject(result *ValidationResult, message string) *ValidationResult {
	result.IsValid = false
	result.CanSubmit = false
	result.Message = message
	return result
}
