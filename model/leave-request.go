package model

import (
	"time"

	"leave_manager/utils"
)

type LeaveRequest struct {
	DTO
	EmployeeId    uint           `gorm:"index;not null" json:"employeeId"`
	Employee      *Employee      `gorm:"foreignKey:EmployeeId" json:"employee,omitempty"`
	LeaveType     string         `gorm:"size:20;not null" json:"leaveType"`
	StartDate     utils.DateOnly `gorm:"type:date;not null" json:"startDate"`
	EndDate       utils.DateOnly `gorm:"type:date;not null" json:"endDate"`
	TotalDays     float64        `gorm:"type:decimal(5,2);not null" json:"totalDays"` // 0.5 for half day, hours/8 for short leave
	IsHalfDay     bool           `gorm:"not null;default:false" json:"isHalfDay"`
	HalfDayPeriod string         `gorm:"size:10" json:"halfDayPeriod"` // morning / afternoon
	Reason        string         `gorm:"type:text;not null" json:"reason"`
	Status        string         `gorm:"size:20;not null;default:pending;index" json:"status"`
	Priority      string         `gorm:"size:10;not null;default:low" json:"priority"`
	IsPaid        bool           `gorm:"not null;default:true" json:"isPaid"`
	AttachmentURL string         `json:"attachmentUrl"`
	ApproverId    *uint          `json:"approverId"`
	Approver      *Employee      `gorm:"foreignKey:ApproverId" json:"approver,omitempty"`
	DecidedAt     *time.Time     `json:"decidedAt"`
	DecisionNote  string         `gorm:"type:text" json:"decisionNote"`
}

// SalaryDeductionRecord is written when paid leave exceeds the remaining
// balance; invoicing aggregates unsettled rows monthly.
type SalaryDeductionRecord struct {
	DTO
	EmployeeId     uint          `gorm:"index;not null" json:"employeeId"`
	LeaveRequestId uint          `gorm:"index;not null" json:"leaveRequestId"`
	LeaveRequest   *LeaveRequest `gorm:"foreignKey:LeaveRequestId" json:"leaveRequest,omitempty"`
	Days           float64       `gorm:"type:decimal(5,2);not null" json:"days"`
	Amount         float64       `gorm:"type:decimal(12,2);not null" json:"amount"`
	InvoiceId      *uint         `gorm:"index" json:"invoiceId"`
}

type CreateLeaveInput struct {
	LeaveType     string   `json:"leaveType" validate:"required,oneof=annual sick casual emergency maternity paternity"`
	StartDate     string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate       string   `json:"endDate" validate:"required,datetime=2006-01-02"`
	IsHalfDay     *bool    `json:"isHalfDay" validate:"omitempty"`
	HalfDayPeriod string   `json:"halfDayPeriod" validate:"omitempty,oneof=morning afternoon"`
	Hours         *float64 `json:"hours" validate:"omitempty,gt=0,lte=8"`
	Reason        string   `json:"reason" validate:"required,min=5,max=500"`
	StrictLimit   bool     `json:"strictLimit"`
}

type DecideLeaveInput struct {
	Note string `json:"note" validate:"omitempty,max=500"`
}

type LeaveFilter struct {
	Pagination
	Year      *int    `json:"year"`
	Status    *string `json:"status"`
	LeaveType *string `json:"leaveType"`
}
