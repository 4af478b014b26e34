package helper

import (
	"context"
	"testing"
	"time"

	"leave_manager/constants"
	"leave_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func annualPolicy(days float64, classification string) model.LeavePolicy {
	return model.LeavePolicy{
		LeaveType:              constants.LEAVE_ANNUAL,
		TotalDaysPerYear:       days,
		EmployeeClassification: classification,
		Active:                 true,
	}
}

func TestBalance_FullYearServed(t *testing.T) {
	// joined exactly 365 days ago, 25 days/year, no probation
	employee := &model.Employee{
		DTO:             model.DTO{ID: 1},
		JoinDate:        date("2024-06-16"),
		Classification:  constants.CLASS_ONSHORE,
		ProbationStatus: constants.PROBATION_NONE,
		IsActive:        true,
	}
	calc := newCalculator(
		&fakeDirectory{employees: map[uint]*model.Employee{1: employee}},
		&fakePolicies{policies: []model.LeavePolicy{annualPolicy(25, constants.CLASS_ONSHORE)}},
		&fakeRequests{},
	)

	balances, err := calc.Compute(context.Background(), 1)
	require.NoError(t, err)

	bal := balances[constants.LEAVE_ANNUAL]
	assert.InDelta(t, 25.00, bal.Total, 0.001)
	assert.InDelta(t, 25.00, bal.Available, 0.001)
	assert.InDelta(t, 25.00, bal.Remaining, 0.001)
}

func TestBalance_FirstDayServesZero(t *testing.T) {
	employee := &model.Employee{
		DTO:             model.DTO{ID: 1},
		JoinDate:        date("2025-06-16"), // joined today
		Classification:  constants.CLASS_ONSHORE,
		ProbationStatus: constants.PROBATION_NONE,
	}
	calc := newCalculator(
		&fakeDirectory{employees: map[uint]*model.Employee{1: employee}},
		&fakePolicies{policies: []model.LeavePolicy{annualPolicy(25, constants.CLASS_ONSHORE)}},
		&fakeRequests{},
	)

	balances, err := calc.Compute(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, balances[constants.LEAVE_ANNUAL].Total)
}

func TestBalance_MultiYearUncapped(t *testing.T) {
	// two full years of tenure doubles the nominal annual figure
	employee := &model.Employee{
		DTO:             model.DTO{ID: 1},
		JoinDate:        date("2023-06-16"),
		Classification:  constants.CLASS_ONSHORE,
		ProbationStatus: constants.PROBATION_NONE,
	}
	calc := newCalculator(
		&fakeDirectory{employees: map[uint]*model.Employee{1: employee}},
		&fakePolicies{policies: []model.LeavePolicy{annualPolicy(20, constants.CLASS_ONSHORE)}},
		&fakeRequests{},
	)

	balances, err := calc.Compute(context.Background(), 1)
	require.NoError(t, err)
	// 731 days served (2024 is a leap year)
	assert.InDelta(t, 40.05, balances[constants.LEAVE_ANNUAL].Total, 0.01)
}

func TestBalance_AccrualMonotonicInTenure(t *testing.T) {
	previous := -1.0
	for _, join := range []string{"2025-06-10", "2025-03-01", "2024-06-16", "2022-01-01"} {
		employee := &model.Employee{
			DTO:             model.DTO{ID: 1},
			JoinDate:        date(join),
			Classification:  constants.CLASS_ONSHORE,
			ProbationStatus: constants.PROBATION_NONE,
		}
		calc := newCalculator(
			&fakeDirectory{employees: map[uint]*model.Employee{1: employee}},
			&fakePolicies{policies: []model.LeavePolicy{annualPolicy(25, constants.CLASS_ONSHORE)}},
			&fakeRequests{},
		)
		balances, err := calc.Compute(context.Background(), 1)
		require.NoError(t, err)
		total := balances[constants.LEAVE_ANNUAL].Total
		assert.GreaterOrEqual(t, total, previous, "join %s", join)
		previous = total
	}
}

func TestBalance_ProbationLocksEverything(t *testing.T) {
	for _, status := range []string{constants.PROBATION_ACTIVE, constants.PROBATION_EXTENDED} {
		employee := &model.Employee{
			DTO:             model.DTO{ID: 1},
			JoinDate:        date("2025-01-01"),
			Classification:  constants.CLASS_ONSHORE,
			ProbationStatus: status,
			ProbationStart:  datePtr("2025-01-01"),
			ProbationEnd:    datePtr("2025-07-01"),
		}
		requests := &fakeRequests{requests: []model.LeaveRequest{
			{EmployeeId: 1, LeaveType: constants.LEAVE_ANNUAL, StartDate: date("2025-02-03"), EndDate: date("2025-02-04"), TotalDays: 2, Status: constants.STATUS_APPROVED},
		}}
		calc := newCalculator(
			&fakeDirectory{employees: map[uint]*model.Employee{1: employee}},
			&fakePolicies{policies: []model.LeavePolicy{annualPolicy(25, constants.CLASS_ONSHORE)}},
			requests,
		)

		balances, err := calc.Compute(context.Background(), 1)
		require.NoError(t, err)

		bal := balances[constants.LEAVE_ANNUAL]
		assert.Positive(t, bal.Total, status)
		assert.Zero(t, bal.Available, status)
		assert.Zero(t, bal.Remaining, status)
		assert.InDelta(t, 2, bal.Used, 0.001, status)
	}
}

func TestBalance_CompletionUnlocksAtOnce(t *testing.T) {
	completed := time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC)
	employee := &model.Employee{
		DTO:                  model.DTO{ID: 1},
		JoinDate:             date("2025-01-01"),
		Classification:       constants.CLASS_ONSHORE,
		ProbationStatus:      constants.PROBATION_COMPLETED,
		ProbationStart:       datePtr("2025-01-01"),
		ProbationEnd:         datePtr("2025-04-01"),
		ProbationCompletedAt: &completed,
	}
	calc := newCalculator(
		&fakeDirectory{employees: map[uint]*model.Employee{1: employee}},
		&fakePolicies{policies: []model.LeavePolicy{annualPolicy(25, constants.CLASS_ONSHORE)}},
		&fakeRequests{},
	)

	balances, err := calc.Compute(context.Background(), 1)
	require.NoError(t, err)

	bal := balances[constants.LEAVE_ANNUAL]
	assert.Equal(t, bal.Total, bal.Available)
	// probation slice is the 90 days from Jan 1 to Apr 1
	assert.InDelta(t, round2(25.0/365.0*90), bal.ProbationEarned, 0.001)
}

func TestBalance_UnsetClassificationGetsNothing(t *testing.T) {
	employee := &model.Employee{
		DTO:             model.DTO{ID: 1},
		JoinDate:        date("2024-01-01"),
		Classification:  "",
		ProbationStatus: constants.PROBATION_NONE,
	}
	calc := newCalculator(
		&fakeDirectory{employees: map[uint]*model.Employee{1: employee}},
		&fakePolicies{policies: []model.LeavePolicy{annualPolicy(25, constants.CLASS_ONSHORE)}},
		&fakeRequests{},
	)

	balances, err := calc.Compute(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, balances)
}

func TestBalance_RemainingNeverNegative(t *testing.T) {
	employee := &model.Employee{
		DTO:             model.DTO{ID: 1},
		JoinDate:        date("2025-06-01"), // 15 days served, ~1.03 earned
		Classification:  constants.CLASS_ONSHORE,
		ProbationStatus: constants.PROBATION_NONE,
	}
	requests := &fakeRequests{requests: []model.LeaveRequest{
		{EmployeeId: 1, LeaveType: constants.LEAVE_ANNUAL, StartDate: date("2025-06-02"), EndDate: date("2025-06-06"), TotalDays: 5, Status: constants.STATUS_APPROVED},
	}}
	calc := newCalculator(
		&fakeDirectory{employees: map[uint]*model.Employee{1: employee}},
		&fakePolicies{policies: []model.LeavePolicy{annualPolicy(25, constants.CLASS_ONSHORE)}},
		requests,
	)

	balances, err := calc.Compute(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, balances[constants.LEAVE_ANNUAL].Remaining)
}

func TestBalance_Idempotent(t *testing.T) {
	employee := &model.Employee{
		DTO:             model.DTO{ID: 1},
		JoinDate:        date("2024-09-01"),
		Classification:  constants.CLASS_OFFSHORE,
		ProbationStatus: constants.PROBATION_NONE,
	}
	requests := &fakeRequests{requests: []model.LeaveRequest{
		{EmployeeId: 1, LeaveType: constants.LEAVE_ANNUAL, StartDate: date("2025-03-03"), EndDate: date("2025-03-05"), TotalDays: 3, Status: constants.STATUS_APPROVED},
		{EmployeeId: 1, LeaveType: constants.LEAVE_ANNUAL, StartDate: date("2025-07-07"), EndDate: date("2025-07-08"), TotalDays: 2, Status: constants.STATUS_PENDING},
	}}
	calc := newCalculator(
		&fakeDirectory{employees: map[uint]*model.Employee{1: employee}},
		&fakePolicies{policies: []model.LeavePolicy{annualPolicy(25, constants.CLASS_OFFSHORE)}},
		requests,
	)

	first, err := calc.Compute(context.Background(), 1)
	require.NoError(t, err)
	second, err := calc.Compute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	bal := first[constants.LEAVE_ANNUAL]
	assert.InDelta(t, 3, bal.Used, 0.001)
	assert.InDelta(t, 2, bal.Pending, 0.001)
	assert.InDelta(t, round2(bal.Available-5), bal.Remaining, 0.001)
}
