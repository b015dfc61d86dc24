package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	EmployeeOnAppointment      = "on_appointment"
	EmployeeWaitingAppointment = "waiting_appointment"
	EmployeeOnSickLeave        = "on_sick_leave"
	EmployeeOnVacation         = "on_vacation"
	EmployeeNonworkingTime     = "nonworking_time"
	EmployeeFired              = "fired"
)

type Employee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id" validate:"required"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user" validate:"-"`

	WorkPositionID *uint         `json:"work_position_id"`
	WorkPosition   *WorkPosition `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"work_position" validate:"-"`

	Photo     string    `gorm:"size:255" json:"photo"`
	Birthdate time.Time `gorm:"type:date;not null" json:"birthdate" validate:"required"`
	Phone     string    `gorm:"size:20;uniqueIndex;not null" json:"phone" validate:"required,e164"`
	Address   string    `gorm:"size:200;not null" json:"address" validate:"required,max=200"`
	Status    string    `gorm:"size:30;not null;default:'nonworking_time'" json:"status" validate:"required,oneof=on_appointment waiting_appointment on_sick_leave on_vacation nonworking_time fired"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Employee) BeforeSave(tx *gorm.DB) error {
	if e.Status == "" {
		e.Status = EmployeeNonworkingTime
	}
	return validateRow(tx, &Employee{}, e.ID, e,
		uniqueCheck{column: "phone", field: "phone", value: e.Phone},
		uniqueCheck{column: "user_id", field: "user_id", value: e.UserID},
	)
}
