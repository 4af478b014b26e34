package helper

import (
	"context"
	"errors"
	"time"

	"leave_manager/constants"
	"leave_manager/model"

	"gorm.io/gorm"
)

// Store backs the collaborator interfaces with GORM. One instance per
// process, built around the injected pool.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) EmployeeByID(ctx context.Context, id uint) (*model.Employee, error) {
	var employee model.Employee
	if err := s.DB.WithContext(ctx).First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (s *Store) ActiveEmployees(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := s.DB.WithContext(ctx).Where("is_active = ?", true).Find(&employees).Error
	return employees, err
}

func (s *Store) ActivePolicies(ctx context.Context, classification string) ([]model.LeavePolicy, error) {
	var policies []model.LeavePolicy
	err := s.DB.WithContext(ctx).
		Where("active = ? AND employee_classification = ?", true, classification).
		Find(&policies).Error
	return policies, err
}

func (s *Store) RequestsForYear(ctx context.Context, employeeID uint, year int) ([]model.LeaveRequest, error) {
	yearStart := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)

	var requests []model.LeaveRequest
	err := s.DB.WithContext(ctx).
		Where("employee_id = ? AND start_date BETWEEN ? AND ?",
			employeeID, yearStart.Format("2006-01-02"), yearEnd.Format("2006-01-02")).
		Find(&requests).Error
	return requests, err
}

func (s *Store) OpenRequestsOverlapping(ctx context.Context, employeeID uint, start, end time.Time) ([]model.LeaveRequest, error) {
	var requests []model.LeaveRequest
	err := s.DB.WithContext(ctx).
		Where("employee_id = ? AND status IN ? AND start_date <= ? AND end_date >= ?",
			employeeID,
			[]string{constants.STATUS_PENDING, constants.STATUS_APPROVED},
			end.Format("2006-01-02"), start.Format("2006-01-02")).
		Order("start_date").
		Find(&requests).Error
	return requests, err
}

func (s *Store) ActiveHolidays(ctx context.Context, from, to time.Time) ([]model.Holiday, error) {
	var holidays []model.Holiday
	err := s.DB.WithContext(ctx).
		Where("active = ? AND date BETWEEN ? AND ?",
			true, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date").
		Find(&holidays).Error
	return holidays, err
}

// NewBalanceCalculator wires the calculator to the database-backed store.
func NewBalanceCalculator(store *Store) *BalanceCalculator {
	return &BalanceCalculator{
		Employees: store,
		Policies:  store,
		Requests:  store,
		Now:       time.Now,
	}
}

// NewRules wires the validator to the database-backed store and the flat
// payroll rate.
func NewRules(store *Store) *Rules {
	return &Rules{
		Balance:  NewBalanceCalculator(store),
		Requests: store,
		Workdays: &WorkdayCalculator{Holidays: store},
		Rate:     FlatPayrollRate{},
		Now:      time.Now,
	}
}
