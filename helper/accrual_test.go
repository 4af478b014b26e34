package helper

import (
	"context"
	"errors"
	"testing"

	"leave_manager/constants"
	"leave_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccrualDigestRun(t *testing.T) {
	dir := &fakeDirectory{employees: map[uint]*model.Employee{
		1: {DTO: model.DTO{ID: 1}, JoinDate: date("2024-06-16"), Classification: constants.CLASS_ONSHORE, ProbationStatus: constants.PROBATION_NONE, IsActive: true},
		2: {DTO: model.DTO{ID: 2}, JoinDate: date("2025-01-01"), Classification: constants.CLASS_OFFSHORE, ProbationStatus: constants.PROBATION_NONE, IsActive: true},
		3: {DTO: model.DTO{ID: 3}, JoinDate: date("2023-01-01"), Classification: constants.CLASS_ONSHORE, ProbationStatus: constants.PROBATION_NONE, IsActive: false},
	}}
	pol := &fakePolicies{policies: []model.LeavePolicy{
		annualPolicy(25, constants.CLASS_ONSHORE),
		annualPolicy(20, constants.CLASS_OFFSHORE),
	}}

	notified := make(map[uint]map[string]LeaveBalance)
	digest := &AccrualDigest{
		Employees: dir,
		Balance:   newCalculator(dir, pol, &fakeRequests{}),
		Notify: func(employee *model.Employee, balances map[string]LeaveBalance) error {
			notified[employee.ID] = balances
			return nil
		},
	}

	digest.Run(context.Background())

	require.Len(t, notified, 2, "inactive employees are skipped")
	assert.InDelta(t, 25.00, notified[1][constants.LEAVE_ANNUAL].Total, 0.001)
	assert.Positive(t, notified[2][constants.LEAVE_ANNUAL].Total)
	assert.NotContains(t, notified, uint(3))
}

func TestAccrualDigestRun_NotifyFailureDoesNotAbort(t *testing.T) {
	dir := &fakeDirectory{employees: map[uint]*model.Employee{
		1: {DTO: model.DTO{ID: 1}, JoinDate: date("2024-06-16"), Classification: constants.CLASS_ONSHORE, ProbationStatus: constants.PROBATION_NONE, IsActive: true},
		2: {DTO: model.DTO{ID: 2}, JoinDate: date("2024-06-16"), Classification: constants.CLASS_ONSHORE, ProbationStatus: constants.PROBATION_NONE, IsActive: true},
	}}
	pol := &fakePolicies{policies: []model.LeavePolicy{annualPolicy(25, constants.CLASS_ONSHORE)}}

	calls := 0
	digest := &AccrualDigest{
		Employees: dir,
		Balance:   newCalculator(dir, pol, &fakeRequests{}),
		Notify: func(employee *model.Employee, balances map[string]LeaveBalance) error {
			calls++
			return errors.New("smtp down")
		},
	}

	digest.Run(context.Background())

	assert.Equal(t, 2, calls)
}

func TestDigestBodySorted(t *testing.T) {
	body := digestBody(map[string]LeaveBalance{
		"sick":   {Total: 10, Remaining: 8},
		"annual": {Total: 25, Remaining: 20.5},
	})
	assert.Equal(t, "annual: 25.00 earned, 20.50 remaining\nsick: 10.00 earned, 8.00 remaining\n", body)
}
