package database

import (
	"leave_manager/constants"
	"leave_manager/model"
	"leave_manager/utils"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) utils.DateOnly {
	d, _ := utils.ParseDateOnly(dateStr)
	return d
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("changeme1"), 10)
	if err != nil {
		log.Errorf("failed to hash seed password: %v", err)
		return
	}

	accounts := []model.Account{
		{Username: "administrator", Password: string(bytes), Active: true, Role: constants.ROLE_ADMIN},
	}
	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Errorf("failed to seed account %s: %v", account.Username, err)
		}
	}

	policies := []model.LeavePolicy{
		{LeaveType: constants.LEAVE_ANNUAL, TotalDaysPerYear: 20, EmployeeClassification: constants.CLASS_ONSHORE, Active: true},
		{LeaveType: constants.LEAVE_ANNUAL, TotalDaysPerYear: 25, EmployeeClassification: constants.CLASS_OFFSHORE, Active: true},
		{LeaveType: constants.LEAVE_SICK, TotalDaysPerYear: 10, EmployeeClassification: constants.CLASS_ONSHORE, Active: true},
		{LeaveType: constants.LEAVE_SICK, TotalDaysPerYear: 10, EmployeeClassification: constants.CLASS_OFFSHORE, Active: true},
		{LeaveType: constants.LEAVE_CASUAL, TotalDaysPerYear: 6, EmployeeClassification: constants.CLASS_ONSHORE, Active: true},
		{LeaveType: constants.LEAVE_CASUAL, TotalDaysPerYear: 6, EmployeeClassification: constants.CLASS_OFFSHORE, Active: true},
		{LeaveType: constants.LEAVE_EMERGENCY, TotalDaysPerYear: 5, EmployeeClassification: constants.CLASS_ONSHORE, Active: true},
		{LeaveType: constants.LEAVE_EMERGENCY, TotalDaysPerYear: 5, EmployeeClassification: constants.CLASS_OFFSHORE, Active: true},
		{LeaveType: constants.LEAVE_MATERNITY, TotalDaysPerYear: 90, EmployeeClassification: constants.CLASS_ONSHORE, Active: true},
		{LeaveType: constants.LEAVE_MATERNITY, TotalDaysPerYear: 90, EmployeeClassification: constants.CLASS_OFFSHORE, Active: true},
		{LeaveType: constants.LEAVE_PATERNITY, TotalDaysPerYear: 14, EmployeeClassification: constants.CLASS_ONSHORE, Active: true},
		{LeaveType: constants.LEAVE_PATERNITY, TotalDaysPerYear: 14, EmployeeClassification: constants.CLASS_OFFSHORE, Active: true},
	}
	for _, policy := range policies {
		cond := model.LeavePolicy{LeaveType: policy.LeaveType, EmployeeClassification: policy.EmployeeClassification}
		if err := db.Where(cond).FirstOrCreate(&policy).Error; err != nil {
			log.Errorf("failed to seed policy %s/%s: %v", policy.LeaveType, policy.EmployeeClassification, err)
		}
	}

	holidays := []model.Holiday{
		{Name: "New Year's Day", Date: parseDate("2025-01-01"), Active: true},
		{Name: "Labour Day", Date: parseDate("2025-05-01"), Active: true},
		{Name: "National Day", Date: parseDate("2025-09-02"), Active: true},
		{Name: "Christmas Day", Date: parseDate("2025-12-25"), Active: true},
		{Name: "New Year's Day", Date: parseDate("2026-01-01"), Active: true},
	}
	for _, holiday := range holidays {
		cond := model.Holiday{Name: holiday.Name, Date: holiday.Date}
		if err := db.Where(cond).FirstOrCreate(&holiday).Error; err != nil {
			log.Errorf("failed to seed holiday %s: %v", holiday.Name, err)
		}
	}
}
