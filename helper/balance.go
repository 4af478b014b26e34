package helper

import (
	"context"
	"fmt"
	"math"
	"time"

	"leave_manager/constants"
	"leave_manager/model"
)

// Collaborators consumed by the balance/rules core. Implementations live in
// stores.go; tests use in-memory fakes.
type EmployeeDirectory interface {
	EmployeeByID(ctx context.Context, id uint) (*model.Employee, error)
	ActiveEmployees(ctx context.Context) ([]model.Employee, error)
}

type PolicyStore interface {
	// ActivePolicies returns the active policies whose classification tag
	// matches exactly. An unset employee classification matches only legacy
	// policies with an unset tag.
	ActivePolicies(ctx context.Context, classification string) ([]model.LeavePolicy, error)
}

type LeaveRequestStore interface {
	RequestsForYear(ctx context.Context, employeeID uint, year int) ([]model.LeaveRequest, error)
	OpenRequestsOverlapping(ctx context.Context, employeeID uint, start, end time.Time) ([]model.LeaveRequest, error)
}

// LeaveBalance is the per-leave-type output of the calculator.
type LeaveBalance struct {
	Total           float64 `json:"total"`
	ProbationEarned float64 `json:"probationEarned"`
	Available       float64 `json:"available"`
	Used            float64 `json:"used"`
	Pending         float64 `json:"pending"`
	Remaining       float64 `json:"remaining"`
}

// BalanceCalculator computes tenure-accrued entitlement per leave type.
// Accrual is daily straight-line from the join date: total/365 per calendar
// day, uncapped, so multi-year tenure exceeds one year's nominal grant.
type BalanceCalculator struct {
	Employees EmployeeDirectory
	Policies  PolicyStore
	Requests  LeaveRequestStore
	Now       func() time.Time
}

// Compute loads the inputs and runs ComputeFor for "now".
func (bc *BalanceCalculator) Compute(ctx context.Context, employeeID uint) (map[string]LeaveBalance, error) {
	employee, err := bc.Employees.EmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate leave balance: %w", err)
	}
	if employee == nil {
		return nil, fmt.Errorf("failed to calculate leave balance: employee %d not found", employeeID)
	}

	policies, err := bc.Policies.ActivePolicies(ctx, employee.Classification)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate leave balance: %w", err)
	}

	requests, err := bc.Requests.RequestsForYear(ctx, employeeID, bc.Now().Year())
	if err != nil {
		return nil, fmt.Errorf("failed to calculate leave balance: %w", err)
	}

	return bc.ComputeFor(employee, policies, requests), nil
}

// ComputeFor is the pure calculation over already-loaded rows.
func (bc *BalanceCalculator) ComputeFor(employee *model.Employee, policies []model.LeavePolicy, requests []model.LeaveRequest) map[string]LeaveBalance {
	now := bc.Now()
	today := Midnight(now)
	join := Midnight(employee.JoinDate.Time)

	// First calendar day of employment counts as zero days served.
	daysServed := math.Max(0, round2(today.Sub(join).Hours()/24))

	probationDays := probationDaysServed(employee, now)
	inProbation := employee.InProbation()

	used, pending := sumRequests(requests)

	balances := make(map[string]LeaveBalance, len(policies))
	for _, policy := range policies {
		dailyAccrual := policy.TotalDaysPerYear / constants.DaysPerYear
		totalEarned := round2(dailyAccrual * daysServed)
		probationEarned := round2(dailyAccrual * probationDays)

		available := totalEarned
		if inProbation {
			// Entitlement exists on paper but is fully locked until
			// probation completes; completion unlocks everything at once.
			available = 0
		}

		bal := LeaveBalance{
			Total:           totalEarned,
			ProbationEarned: probationEarned,
			Available:       available,
			Used:            used[policy.LeaveType],
			Pending:         pending[policy.LeaveType],
		}
		if inProbation {
			bal.Remaining = 0
		} else {
			bal.Remaining = math.Max(0, round2(bal.Available-bal.Used-bal.Pending))
		}
		balances[policy.LeaveType] = bal
	}
	return balances
}

// probationDaysServed restricts the days-served measure to the probation
// window [max(join, start), min(now|completedAt, end)].
func probationDaysServed(employee *model.Employee, now time.Time) float64 {
	if employee.ProbationStart == nil || employee.ProbationEnd == nil {
		return 0
	}
	from := Midnight(employee.ProbationStart.Time)
	if join := Midnight(employee.JoinDate.Time); join.After(from) {
		from = join
	}

	until := Midnight(now)
	if employee.ProbationCompletedAt != nil {
		until = Midnight(*employee.ProbationCompletedAt)
	}
	if end := Midnight(employee.ProbationEnd.Time); end.Before(until) {
		until = end
	}

	if until.Before(from) {
		return 0
	}
	return round2(until.Sub(from).Hours() / 24)
}

func sumRequests(requests []model.LeaveRequest) (used, pending map[string]float64) {
	used = make(map[string]float64)
	pending = make(map[string]float64)
	for _, r := range requests {
		switch r.Status {
		case constants.STATUS_APPROVED:
			used[r.LeaveType] = round2(used[r.LeaveType] + r.TotalDays)
		case constants.STATUS_PENDING:
			pending[r.LeaveType] = round2(pending[r.LeaveType] + r.TotalDays)
		}
	}
	return used, pending
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
