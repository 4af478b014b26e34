package helper

import (
	"context"
	"strings"
	"testing"

	"leave_manager/constants"
	"leave_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ruleFixture gives the employee one accrued day per day of tenure so the
// numbers stay easy to follow: joined 10 days before the fixed clock, 7 days
// already approved, so 3.00 remain.
func ruleFixture() (*Rules, *fakeRequests) {
	employee := &model.Employee{
		DTO:             model.DTO{ID: 1},
		JoinDate:        date("2025-06-06"),
		Classification:  constants.CLASS_ONSHORE,
		ProbationStatus: constants.PROBATION_NONE,
		IsActive:        true,
	}
	requests := &fakeRequests{requests: []model.LeaveRequest{
		{EmployeeId: 1, LeaveType: constants.LEAVE_ANNUAL, StartDate: date("2025-05-05"), EndDate: date("2025-05-13"), TotalDays: 7, Status: constants.STATUS_APPROVED},
	}}
	rules := newRules(
		&fakeDirectory{employees: map[uint]*model.Employee{1: employee}},
		&fakePolicies{policies: []model.LeavePolicy{annualPolicy(365, constants.CLASS_ONSHORE)}},
		requests,
		&fakeHolidays{},
	)
	return rules, requests
}

func TestValidate_EndBeforeStart(t *testing.T) {
	rules, _ := ruleFixture()

	result, err := rules.Validate(context.Background(), 1, ValidationInput{
		LeaveType: constants.LEAVE_ANNUAL,
		StartDate: date("2025-07-04").Time,
		EndDate:   date("2025-06-30").Time,
	})
	require.NoError(t, err)

	assert.False(t, result.IsValid)
	assert.False(t, result.CanSubmit)
	assert.Equal(t, constants.END_BEFORE_START, result.Message)
}

func TestValidate_NoPolicyForType(t *testing.T) {
	rules, _ := ruleFixture()

	result, err := rules.Validate(context.Background(), 1, ValidationInput{
		LeaveType: constants.LEAVE_SICK,
		StartDate: date("2025-06-30").Time,
		EndDate:   date("2025-06-30").Time,
	})
	require.NoError(t, err)

	assert.False(t, result.CanSubmit)
	assert.Equal(t, constants.NO_ACTIVE_POLICY, result.Message)
}

func TestValidate_WeekendOnlyRange(t *testing.T) {
	rules, _ := ruleFixture()

	result, err := rules.Validate(context.Background(), 1, ValidationInput{
		LeaveType: constants.LEAVE_ANNUAL,
		StartDate: date("2025-06-28").Time, // Saturday
		EndDate:   date("2025-06-29").Time, // Sunday
	})
	require.NoError(t, err)

	assert.False(t, result.CanSubmit)
	assert.Contains(t, result.Message, "no working days")
}

func TestValidate_OverrunBecomesDeduction(t *testing.T) {
	rules, _ := ruleFixture()

	// 5 working days against 3.00 remaining
	result, err := rules.Validate(context.Background(), 1, ValidationInput{
		LeaveType: constants.LEAVE_ANNUAL,
		StartDate: date("2025-06-30").Time,
		EndDate:   date("2025-07-04").Time,
	})
	require.NoError(t, err)

	assert.True(t, result.IsValid)
	assert.True(t, result.CanSubmit)
	assert.InDelta(t, 5, result.TotalDays, 0.001)
	require.NotNil(t, result.SalaryDeduction)
	assert.InDelta(t, 2, result.SalaryDeduction.Days, 0.001)
	assert.InDelta(t, 200, result.SalaryDeduction.Amount, 0.001)
	assert.False(t, result.IsPaid)
	assert.NotEmpty(t, result.Warnings)
}

func TestValidate_OverrunUsesEmployeeRate(t *testing.T) {
	rules, _ := ruleFixture()
	employee, _ := rules.Balance.Employees.EmployeeByID(context.Background(), 1)
	rate := 150.0
	employee.DailyRate = &rate

	result, err := rules.Validate(context.Background(), 1, ValidationInput{
		LeaveType: constants.LEAVE_ANNUAL,
		StartDate: date("2025-06-30").Time,
		EndDate:   date("2025-07-04").Time,
	})
	require.NoError(t, err)

	require.NotNil(t, result.SalaryDeduction)
	assert.InDelta(t, 300, result.SalaryDeduction.Amount, 0.001)
}

func TestValidate_StrictModeRejectsOverrun(t *testing.T) {
	rules, _ := ruleFixture()

	result, err := rules.Validate(context.Background(), 1, ValidationInput{
		LeaveType:   constants.LEAVE_ANNUAL,
		StartDate:   date("2025-06-30").Time,
		EndDate:     date("2025-07-04").Time,
		StrictLimit: true,
	})
	require.NoError(t, err)

	assert.False(t, result.CanSubmit)
	assert.Contains(t, result.Message, "Insufficient balance")
	assert.Nil(t, result.SalaryDeduction)
}

func TestValidate_WithinBalanceStaysPaid(t *testing.T) {
	rules, _ := ruleFixture()

	result, err := rules.Validate(context.Background(), 1, ValidationInput{
		LeaveType: constants.LEAVE_ANNUAL,
		StartDate: date("2025-06-30").Time,
		EndDate:   date("2025-07-01").Time, // 2 working days, 3.00 remain
	})
	require.NoError(t, err)

	assert.True(t, result.CanSubmit)
	assert.True(t, result.IsPaid)
	assert.Nil(t, result.SalaryDeduction)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, constants.PRIORITY_LOW, result.Priority)
}

func TestValidate_ProbationLeaveUnpaidNoDeduction(t *testing.T) {
	employee := &model.Employee{
		DTO:             model.DTO{ID: 1},
		JoinDate:        date("2025-05-01"),
		Classification:  constants.CLASS_ONSHORE,
		ProbationStatus: constants.PROBATION_ACTIVE,
		ProbationStart:  datePtr("2025-05-01"),
		ProbationEnd:    datePtr("2025-08-01"),
	}
	rules := newRules(
		&fakeDirectory{employees: map[uint]*model.Employee{1: employee}},
		&fakePolicies{policies: []model.LeavePolicy{annualPolicy(365, constants.CLASS_ONSHORE)}},
		&fakeRequests{},
		&fakeHolidays{},
	)

	// remaining is 0 during probation, so this is also an overrun; the
	// probation rule wins and clears the deduction.
	result, err := rules.Validate(context.Background(), 1, ValidationInput{
		LeaveType: constants.LEAVE_ANNUAL,
		StartDate: date("2025-06-30").Time,
		EndDate:   date("2025-07-01").Time,
	})
	require.NoError(t, err)

	assert.True(t, result.CanSubmit)
	assert.False(t, result.IsPaid)
	assert.Nil(t, result.SalaryDeduction)
	assert.Contains(t, result.Warnings, "Leave taken during probation is unpaid")
}

func TestValidate_OverlapSoftThenHard(t *testing.T) {
	rules, requests := ruleFixture()
	requests.requests = append(requests.requests, model.LeaveRequest{
		EmployeeId: 1, LeaveType: constants.LEAVE_ANNUAL,
		StartDate: date("2025-07-01"), EndDate: date("2025-07-02"),
		TotalDays: 2, Status: constants.STATUS_PENDING,
	})

	in := ValidationInput{
		LeaveType: constants.LEAVE_ANNUAL,
		StartDate: date("2025-07-02").Time,
		EndDate:   date("2025-07-03").Time,
	}

	advisory, err := rules.Validate(context.Background(), 1, in)
	require.NoError(t, err)
	assert.True(t, advisory.CanSubmit)
	assert.True(t, hasWarning(advisory.Warnings, "Overlaps"), "expected an overlap warning, got %v", advisory.Warnings)
	assert.True(t, hasWarning(advisory.Warnings, "2025-07-01"))

	in.RejectOverlap = true
	hard, err := rules.Validate(context.Background(), 1, in)
	require.NoError(t, err)
	assert.False(t, hard.CanSubmit)
	assert.Contains(t, hard.Message, "pending")
	assert.Contains(t, hard.Message, "2025-07-01")
}

func hasWarning(warnings []string, fragment string) bool {
	for _, w := range warnings {
		if strings.Contains(w, fragment) {
			return true
		}
	}
	return false
}

func TestValidate_HalfDayAndHours(t *testing.T) {
	rules, _ := ruleFixture()

	half, err := rules.Validate(context.Background(), 1, ValidationInput{
		LeaveType:     constants.LEAVE_ANNUAL,
		StartDate:     date("2025-06-30").Time,
		EndDate:       date("2025-06-30").Time,
		IsHalfDay:     true,
		HalfDayPeriod: "morning",
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, half.TotalDays, 0.001)

	hours, err := rules.Validate(context.Background(), 1, ValidationInput{
		LeaveType: constants.LEAVE_ANNUAL,
		StartDate: date("2025-06-30").Time,
		EndDate:   date("2025-06-30").Time,
		Hours:     2,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, hours.TotalDays, 0.001)
}

func TestValidate_ShortNoticeWarns(t *testing.T) {
	rules, _ := ruleFixture()

	// annual needs 7 days notice; tomorrow is 1 day ahead
	result, err := rules.Validate(context.Background(), 1, ValidationInput{
		LeaveType: constants.LEAVE_ANNUAL,
		StartDate: date("2025-06-17").Time,
		EndDate:   date("2025-06-17").Time,
	})
	require.NoError(t, err)

	assert.True(t, result.CanSubmit)
	assert.Contains(t, result.Warnings, "annual leave should be requested at least 7 days in advance")
}

func TestValidate_HolidayExcludedAndWarned(t *testing.T) {
	employee := &model.Employee{
		DTO:             model.DTO{ID: 1},
		JoinDate:        date("2024-06-16"),
		Classification:  constants.CLASS_ONSHORE,
		ProbationStatus: constants.PROBATION_NONE,
	}
	rules := newRules(
		&fakeDirectory{employees: map[uint]*model.Employee{1: employee}},
		&fakePolicies{policies: []model.LeavePolicy{annualPolicy(25, constants.CLASS_ONSHORE)}},
		&fakeRequests{},
		&fakeHolidays{holidays: []model.Holiday{
			{Name: "Founders Day", Date: date("2025-07-01"), Active: true},
		}},
	)

	result, err := rules.Validate(context.Background(), 1, ValidationInput{
		LeaveType: constants.LEAVE_ANNUAL,
		StartDate: date("2025-06-30").Time,
		EndDate:   date("2025-07-02").Time,
	})
	require.NoError(t, err)

	// Mon + Wed count, the Tuesday holiday does not
	assert.InDelta(t, 2, result.TotalDays, 0.001)
	assert.True(t, hasWarning(result.Warnings, "Founders Day"), "expected a holiday warning, got %v", result.Warnings)
}

func TestValidate_MaxConsecutiveWarns(t *testing.T) {
	rules, _ := ruleFixture()

	// 4 weeks = 20 working days, above the annual ceiling of 14
	result, err := rules.Validate(context.Background(), 1, ValidationInput{
		LeaveType: constants.LEAVE_ANNUAL,
		StartDate: date("2025-06-30").Time,
		EndDate:   date("2025-07-25").Time,
	})
	require.NoError(t, err)

	assert.True(t, result.CanSubmit)
	assert.True(t, hasWarning(result.Warnings, "maximum of 14 consecutive"), "expected a max-consecutive warning, got %v", result.Warnings)
}

func TestValidate_EmergencyReasonKeyword(t *testing.T) {
	employee := &model.Employee{
		DTO:             model.DTO{ID: 1},
		JoinDate:        date("2024-06-16"),
		Classification:  constants.CLASS_ONSHORE,
		ProbationStatus: constants.PROBATION_NONE,
	}
	policies := &fakePolicies{policies: []model.LeavePolicy{{
		LeaveType:              constants.LEAVE_EMERGENCY,
		TotalDaysPerYear:       5,
		EmployeeClassification: constants.CLASS_ONSHORE,
		Active:                 true,
	}}}
	rules := newRules(
		&fakeDirectory{employees: map[uint]*model.Employee{1: employee}},
		policies,
		&fakeRequests{},
		&fakeHolidays{},
	)

	vague, err := rules.Validate(context.Background(), 1, ValidationInput{
		LeaveType: constants.LEAVE_EMERGENCY,
		StartDate: date("2025-06-17").Time,
		EndDate:   date("2025-06-17").Time,
		Reason:    "personal matters",
	})
	require.NoError(t, err)
	assert.Contains(t, vague.Warnings, "Emergency leave reason should mention the nature of the emergency")
	assert.Equal(t, constants.PRIORITY_HIGH, vague.Priority)

	detailed, err := rules.Validate(context.Background(), 1, ValidationInput{
		LeaveType: constants.LEAVE_EMERGENCY,
		StartDate: date("2025-06-17").Time,
		EndDate:   date("2025-06-17").Time,
		Reason:    "urgent family situation",
	})
	require.NoError(t, err)
	assert.NotContains(t, detailed.Warnings, "Emergency leave reason should mention the nature of the emergency")
}

func TestValidate_ParentalOncePerYear(t *testing.T) {
	employee := &model.Employee{
		DTO:             model.DTO{ID: 1},
		JoinDate:        date("2022-01-01"),
		Classification:  constants.CLASS_ONSHORE,
		ProbationStatus: constants.PROBATION_NONE,
	}
	policies := &fakePolicies{policies: []model.LeavePolicy{{
		LeaveType:              constants.LEAVE_PATERNITY,
		TotalDaysPerYear:       14,
		EmployeeClassification: constants.CLASS_ONSHORE,
		Active:                 true,
	}}}
	requests := &fakeRequests{requests: []model.LeaveRequest{
		{EmployeeId: 1, LeaveType: constants.LEAVE_PATERNITY, StartDate: date("2025-02-03"), EndDate: date("2025-02-14"), TotalDays: 10, Status: constants.STATUS_APPROVED},
	}}
	rules := newRules(
		&fakeDirectory{employees: map[uint]*model.Employee{1: employee}},
		policies,
		requests,
		&fakeHolidays{},
	)

	result, err := rules.Validate(context.Background(), 1, ValidationInput{
		LeaveType: constants.LEAVE_PATERNITY,
		StartDate: date("2025-08-04").Time,
		EndDate:   date("2025-08-05").Time,
	})
	require.NoError(t, err)

	assert.True(t, result.CanSubmit)
	assert.Contains(t, result.Warnings, "A paternity request already exists this year")
}

func TestPriorityFor(t *testing.T) {
	assert.Equal(t, constants.PRIORITY_HIGH, priorityFor(constants.LEAVE_EMERGENCY, 1))
	assert.Equal(t, constants.PRIORITY_HIGH, priorityFor(constants.LEAVE_SICK, 4))
	assert.Equal(t, constants.PRIORITY_MEDIUM, priorityFor(constants.LEAVE_SICK, 2))
	assert.Equal(t, constants.PRIORITY_MEDIUM, priorityFor(constants.LEAVE_ANNUAL, 8))
	assert.Equal(t, constants.PRIORITY_LOW, priorityFor(constants.LEAVE_ANNUAL, 3))
}
