package model

type Notification struct {
	DTO
	EmployeeId uint   `gorm:"index;not null" json:"employeeId"`
	Type       string `gorm:"size:30;not null" json:"type"`
	Title      string `gorm:"size:150;not null" json:"title"`
	Body       string `gorm:"type:text" json:"body"`
	Read       bool   `gorm:"not null;default:false" json:"read"`
}
