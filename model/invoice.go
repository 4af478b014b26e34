package model

import "time"

// Invoice bills an employee's unsettled salary deductions for one month.
type Invoice struct {
	DTO
	Number     string     `gorm:"size:40;not null;uniqueIndex" json:"number"`
	EmployeeId uint       `gorm:"index;not null" json:"employeeId"`
	Employee   *Employee  `gorm:"foreignKey:EmployeeId" json:"employee,omitempty"`
	Month      int        `gorm:"not null" json:"month"`
	Year       int        `gorm:"not null" json:"year"`
	TotalDays  float64    `gorm:"type:decimal(6,2);not null" json:"totalDays"`
	Amount     float64    `gorm:"type:decimal(12,2);not null" json:"amount"`
	Paid       bool       `gorm:"not null;default:false" json:"paid"`
	PaidAt     *time.Time `json:"paidAt"`

	Deductions []SalaryDeductionRecord `gorm:"foreignKey:InvoiceId" json:"deductions,omitempty"`
}

type GenerateInvoiceInput struct {
	Month int `json:"month" validate:"required,min=1,max=12"`
	Year  int `json:"year" validate:"required,min=2000,max=2100"`
}

type InvoiceFilter struct {
	Pagination
	EmployeeId *uint `json:"employeeId"`
	Month      *int  `json:"month"`
	Year       *int  `json:"year"`
	Paid       *bool `json:"paid"`
}
