package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/domain/customer"
	"github.com/BruksfildServices01/salon-backoffice/internal/validation"
)

type Purchase struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID *uint   `gorm:"index" json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client" validate:"-"`

	WalkInName *string `gorm:"size:100" json:"walk_in_name" validate:"omitempty,max=100"`

	DiscountID *uint     `json:"discount_id"`
	Discount   *Discount `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"discount" validate:"-"`

	Products []Product `gorm:"many2many:purchase_products;" json:"products" validate:"-"`

	FullPrice int64  `gorm:"not null;default:0" json:"full_price" validate:"gte=0"`
	Status    string `gorm:"size:20;not null;default:'in_progress'" json:"status" validate:"required,oneof=client_canceled in_progress completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Purchases identify walk-ins by name only.
func (p *Purchase) Party() (customer.Party, error) {
	return customer.FromColumns(p.ClientID, p.WalkInName, nil)
}

func (p *Purchase) SetParty(party customer.Party) {
	p.ClientID, p.WalkInName, _ = party.Columns()
}

func (p *Purchase) BeforeSave(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = "in_progress"
	}

	return validation.Struct(p).Err()
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	return partyErr(p.Party())
}
