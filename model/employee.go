package model

import (
	"time"

	"leave_manager/utils"
)

type Employee struct {
	DTO
	FirstName            string          `gorm:"size:80;not null" json:"firstname"`
	LastName             string          `gorm:"size:80;not null" json:"lastname"`
	Email                string          `gorm:"size:120;not null;uniqueIndex" json:"email"`
	PhoneNumber          string          `json:"phoneNumber"`
	JoinDate             utils.DateOnly  `gorm:"type:date;not null" json:"joinDate"`
	Classification       string          `gorm:"size:20" json:"classification"` // onshore / offshore, empty while unset
	ProbationStatus      string          `gorm:"size:20;not null;default:none" json:"probationStatus"`
	ProbationStart       *utils.DateOnly `gorm:"type:date" json:"probationStart"`
	ProbationEnd         *utils.DateOnly `gorm:"type:date" json:"probationEnd"`
	ProbationCompletedAt *time.Time      `json:"probationCompletedAt"`
	DailyRate            *float64        `json:"dailyRate"` // payroll override, nil uses the flat default
	IsActive             bool            `gorm:"not null;default:true" json:"isActive"`
	ManagerId            *uint           `json:"managerId"`
	Manager              *Employee       `gorm:"foreignKey:ManagerId" json:"manager,omitempty"`
	WorkspaceId          *uint           `json:"workspaceId"`
	Workspace            *Workspace      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:WorkspaceId" json:"workspace,omitempty"`
	AccountId            *uint           `json:"accountId"`
	Account              *Account        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:AccountId" json:"account,omitempty"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// InProbation reports whether entitlement is locked. Active and extended
// probation both lock everything.
func (e *Employee) InProbation() bool {
	return e.ProbationStatus == "active" || e.ProbationStatus == "extended"
}

type CreateEmployeeInput struct {
	FirstName      string   `json:"firstname" validate:"required,min=1,max=80"`
	LastName       string   `json:"lastname" validate:"required,min=1,max=80"`
	Email          string   `json:"email" validate:"required,email"`
	PhoneNumber    string   `json:"phoneNumber" validate:"omitempty,min=9"`
	JoinDate       string   `json:"joinDate" validate:"required,datetime=2006-01-02"`
	Classification string   `json:"classification" validate:"omitempty,oneof=onshore offshore"`
	ProbationStart *string  `json:"probationStart" validate:"omitempty,datetime=2006-01-02"`
	ProbationEnd   *string  `json:"probationEnd" validate:"omitempty,datetime=2006-01-02"`
	DailyRate      *float64 `json:"dailyRate" validate:"omitempty,gt=0"`
	ManagerId      *uint    `json:"managerId"`
	WorkspaceId    *uint    `json:"workspaceId"`

	// optional linked login
	Username *string `json:"username" validate:"omitempty,min=4"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=ADMIN HR MANAGER EMPLOYEE"`
}

type UpdateEmployeeInput struct {
	FirstName      *string  `json:"firstname" validate:"omitempty,min=1,max=80"`
	LastName       *string  `json:"lastname" validate:"omitempty,min=1,max=80"`
	Email          *string  `json:"email" validate:"omitempty,email"`
	PhoneNumber    *string  `json:"phoneNumber" validate:"omitempty,min=9"`
	Classification *string  `json:"classification" validate:"omitempty,oneof=onshore offshore"`
	DailyRate      *float64 `json:"dailyRate" validate:"omitempty,gt=0"`
	ManagerId      *uint    `json:"managerId"`
	WorkspaceId    *uint    `json:"workspaceId"`
	IsActive       *bool    `json:"isActive"`
}

type ProbationInput struct {
	Status string  `json:"status" validate:"required,oneof=none active extended completed terminated"`
	Start  *string `json:"start" validate:"omitempty,datetime=2006-01-02"`
	End    *string `json:"end" validate:"omitempty,datetime=2006-01-02"`
}

type EmployeeFilter struct {
	Pagination
	SearchKey      string  `json:"searchKey"`
	Classification *string `json:"classification"`
	WorkspaceId    *uint   `json:"workspaceId"`
	Active         *bool   `json:"active"`
}
