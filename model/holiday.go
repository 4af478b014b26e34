package model

import "leave_manager/utils"

type Holiday struct {
	DTO
	Name   string         `gorm:"size:100;not null" json:"name"`
	Date   utils.DateOnly `gorm:"type:date;not null;index" json:"date"`
	Active bool           `gorm:"not null;default:true" json:"active"`
}

type CreateHolidayInput struct {
	Name   string `json:"name" validate:"required,min=2,max=100"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Active *bool  `json:"active" validate:"omitempty"`
}

type UpdateHolidayInput struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=100"`
	Date   *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Active *bool   `json:"active" validate:"omitempty"`
}

type HolidayFilter struct {
	Pagination
	Year   *int  `json:"year"`
	Active *bool `json:"active"`
}
