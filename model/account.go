package model

type Account struct {
	DTO
	Username string `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"size:20;not null" json:"role"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
}

type CreateAccountInput struct {
	Username string `json:"username" validate:"required,min=4,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=ADMIN HR MANAGER EMPLOYEE"`
	Active   *bool  `json:"active" validate:"omitempty"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	RepeatPassword  string `json:"repeatPassword" validate:"required,eqfield=NewPassword"`
}
