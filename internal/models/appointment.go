package models

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/domain/customer"
	"github.com/BruksfildServices01/salon-backoffice/internal/validation"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID *uint   `gorm:"index" json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client" validate:"-"`

	WalkInName  *string `gorm:"size:100" json:"walk_in_name" validate:"omitempty,max=100"`
	WalkInPhone *string `gorm:"size:20;uniqueIndex" json:"walk_in_phone" validate:"omitempty,e164"`

	EmployeeID *uint     `gorm:"index" json:"employee_id"`
	Employee   *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"employee" validate:"-"`

	DiscountID *uint     `json:"discount_id"`
	Discount   *Discount `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"discount" validate:"-"`

	Services []Service `gorm:"many2many:appointment_services;" json:"services" validate:"-"`

	FullPrice     int64      `gorm:"not null;default:0" json:"full_price" validate:"gte=0"`
	Status        string     `gorm:"size:20;not null;default:'employee_waiting'" json:"status" validate:"required,oneof=employee_waiting client_canceled in_progress completed"`
	ScheduledTime *time.Time `json:"scheduled_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) Party() (customer.Party, error) {
	return customer.FromColumns(a.ClientID, a.WalkInName, a.WalkInPhone)
}

func (a *Appointment) SetParty(p customer.Party) {
	a.ClientID, a.WalkInName, a.WalkInPhone = p.Columns()
}

func (a *Appointment) BeforeSave(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = "employee_waiting"
	}

	errs := validation.Struct(a)
	if err := checkUnique(tx, &Appointment{}, a.ID, errs,
		uniqueCheck{column: "walk_in_phone", field: "walk_in_phone", value: a.WalkInPhone},
	); err != nil {
		return err
	}
	return errs.Err()
}

// The party is fixed at creation; deleting the client later nulls client_id and
// the row must still accept status changes.
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	return partyErr(a.Party())
}

func partyErr(_ customer.Party, err error) error {
	if err == nil {
		return nil
	}
	errs := validation.Errors{}
	addPartyError(errs, err)
	return errs.Err()
}

func addPartyError(errs validation.Errors, err error) {
	switch {
	case errors.Is(err, customer.ErrWalkInNoName):
		errs.Add("walk_in_name", validation.ReasonRequired)
	case errors.Is(err, customer.ErrInvalidClient):
		errs.Add("client_id", validation.ReasonInvalidReference)
	default:
		errs.Add("party", validation.ReasonExactlyOneParty)
	}
}
