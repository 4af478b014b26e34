package helper

import (
	"context"
	"time"

	"leave_manager/model"
	"leave_manager/utils"
)

// In-memory collaborators so the calculator and rules engine run without a
// database.

type fakeDirectory struct {
	employees map[uint]*model.Employee
}

func (f *fakeDirectory) EmployeeByID(_ context.Context, id uint) (*model.Employee, error) {
	return f.employees[id], nil
}

func (f *fakeDirectory) ActiveEmployees(_ context.Context) ([]model.Employee, error) {
	var out []model.Employee
	for _, e := range f.employees {
		if e.IsActive {
			out = append(out, *e)
		}
	}
	return out, nil
}

type fakePolicies struct {
	policies []model.LeavePolicy
}

func (f *fakePolicies) ActivePolicies(_ context.Context, classification string) ([]model.LeavePolicy, error) {
	var out []model.LeavePolicy
	for _, p := range f.policies {
		if p.Active && p.EmployeeClassification == classification {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeRequests struct {
	requests []model.LeaveRequest
}

func (f *fakeRequests) RequestsForYear(_ context.Context, employeeID uint, year int) ([]model.LeaveRequest, error) {
	var out []model.LeaveRequest
	for _, r := range f.requests {
		if r.EmployeeId == employeeID && r.StartDate.Year() == year {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequests) OpenRequestsOverlapping(_ context.Context, employeeID uint, start, end time.Time) ([]model.LeaveRequest, error) {
	var out []model.LeaveRequest
	for _, r := range f.requests {
		if r.EmployeeId != employeeID {
			continue
		}
		if r.Status != "pending" && r.Status != "approved" {
			continue
		}
		if !r.StartDate.After(end) && !r.EndDate.Before(start) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeHolidays struct {
	holidays []model.Holiday
}

func (f *fakeHolidays) ActiveHolidays(_ context.Context, from, to time.Time) ([]model.Holiday, error) {
	var out []model.Holiday
	for _, h := range f.holidays {
		if h.Active && !h.Date.Before(from) && !h.Date.After(to) {
			out = append(out, h)
		}
	}
	return out, nil
}

// fixedNow is a Monday morning.
var fixedNow = time.Date(2025, time.June, 16, 10, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func date(s string) utils.DateOnly {
	d, err := utils.ParseDateOnly(s)
	if err != nil {
		panic(err)
	}
	return d
}

func datePtr(s string) *utils.DateOnly {
	d := date(s)
	return &d
}

func newCalculator(dir *fakeDirectory, pol *fakePolicies, req *fakeRequests) *BalanceCalculator {
	return &BalanceCalculator{
		Employees: dir,
		Policies:  pol,
		Requests:  req,
		Now:       clock,
	}
}

func newRules(dir *fakeDirectory, pol *fakePolicies, req *fakeRequests, hol *fakeHolidays) *Rules {
	return &Rules{
		Balance:  newCalculator(dir, pol, req),
		Requests: req,
		Workdays: &WorkdayCalculator{Holidays: hol},
		Rate:     FlatPayrollRate{},
		Now:      clock,
	}
}
