package model

type LeavePolicy struct {
	DTO
	LeaveType        string  `gorm:"size:20;not null;uniqueIndex:idx_policy_type_class" json:"leaveType"`
	TotalDaysPerYear float64 `gorm:"not null" json:"totalDaysPerYear"`
	// Empty classification is the legacy fallback kept for data not yet
	// migrated; matching is exact, never a silent fallback.
	EmployeeClassification string `gorm:"size:20;uniqueIndex:idx_policy_type_class" json:"employeeClassification"`
	Active                 bool   `gorm:"not null;default:true" json:"active"`
}

type CreatePolicyInput struct {
	LeaveType              string  `json:"leaveType" validate:"required,oneof=annual sick casual emergency maternity paternity"`
	TotalDaysPerYear       float64 `json:"totalDaysPerYear" validate:"required,gt=0,lte=366"`
	EmployeeClassification string  `json:"employeeClassification" validate:"omitempty,oneof=onshore offshore"`
	Active                 *bool   `json:"active" validate:"omitempty"`
}

type UpdatePolicyInput struct {
	TotalDaysPerYear *float64 `json:"totalDaysPerYear" validate:"omitempty,gt=0,lte=366"`
	Active           *bool    `json:"active" validate:"omitempty"`
}

type PolicyFilter struct {
	Pagination
	LeaveType              *string `json:"leaveType"`
	EmployeeClassification *string `json:"employeeClassification"`
	Active                 *bool   `json:"active"`
}
