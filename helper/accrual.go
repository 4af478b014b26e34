package helper

import (
	"context"
	"fmt"
	"sort"
	"time"

	"leave_manager/constants"
	"leave_manager/model"
	"leave_manager/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AccrualDigest is the daily job: recompute balances for every active
// employee and notify them of their current entitlement. Fire-and-forget per
// run; failures are logged, never retried.
type AccrualDigest struct {
	Employees EmployeeDirectory
	Balance   *BalanceCalculator
	Notify    func(employee *model.Employee, balances map[string]LeaveBalance) error
}

// Run executes one digest pass. Invokable directly so tests need no
// wall-clock scheduler.
func (a *AccrualDigest) Run(ctx context.Context) {
	employees, err := a.Employees.ActiveEmployees(ctx)
	if err != nil {
		log.Errorf("accrual digest: listing employees: %v", err)
		return
	}

	for i := range employees {
		employee := &employees[i]
		balances, err := a.Balance.Compute(ctx, employee.ID)
		if err != nil {
			log.Errorf("accrual digest: employee %d: %v", employee.ID, err)
			continue
		}
		if err := a.Notify(employee, balances); err != nil {
			log.Errorf("accrual digest: notify employee %d: %v", employee.ID, err)
		}
	}
	log.Infof("accrual digest finished for %d employees", len(employees))
}

// NewAccrualDigest builds the production digest: notification row + redis
// fanout + digest email per employee.
func NewAccrualDigest(db *gorm.DB, rdb *redis.Client) *AccrualDigest {
	store := NewStore(db)
	return &AccrualDigest{
		Employees: store,
		Balance:   NewBalanceCalculator(store),
		Notify: func(employee *model.Employee, balances map[string]LeaveBalance) error {
			body := digestBody(balances)
			if err := Notify(context.Background(), db, rdb, employee.ID,
				constants.NOTIFY_ACCRUAL, "Leave balance update", body); err != nil {
				return err
			}
			if employee.Email == "" {
				return nil
			}
			data := utils.AccrualDigestData{EmployeeName: employee.FullName()}
			for _, leaveType := range sortedTypes(balances) {
				bal := balances[leaveType]
				data.Lines = append(data.Lines, utils.AccrualDigestLine{
					LeaveType: leaveType,
					Earned:    bal.Total,
					Remaining: bal.Remaining,
				})
			}
			return utils.SendAccrualDigestEmail(employee.Email, data)
		},
	}
}

func digestBody(balances map[string]LeaveBalance) string {
	body := ""
	for _, leaveType := range sortedTypes(balances) {
		bal := balances[leaveType]
		body += fmt.Sprintf("%s: %.2f earned, %.2f remaining\n", leaveType, bal.Total, bal.Remaining)
	}
	return body
}

func sortedTypes(balances map[string]LeaveBalance) []string {
	types := make([]string, 0, len(balances))
	for t := range balances {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

var accrualScheduler gocron.Scheduler

// StartAccrualScheduler registers the digest at 06:00 daily.
func StartAccrualScheduler(digest *AccrualDigest) {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}
	accrualScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(6, 0, 0),
			),
		),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			digest.Run(ctx)
		}),
	)
	if err != nil {
		log.Fatal(err)
	}
	s.Start()
	log.Info("accrual digest scheduler started")
}

func StopAccrualScheduler() {
	if accrualScheduler != nil {
		if err := accrualScheduler.Shutdown(); err != nil {
			log.Errorf("scheduler shutdown: %v", err)
		}
	}
}
