package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ScheduleFiveTwo    = "five_two"
	ScheduleSixOne     = "six_one"
	ScheduleTwoTwo     = "two_two"
	ScheduleThreeThree = "three_three"
)

type ServiceGroup struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:100;uniqueIndex;not null" json:"title" validate:"required,max=100"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:255" json:"image" validate:"max=255"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *ServiceGroup) BeforeSave(tx *gorm.DB) error {
	return validateRow(tx, &ServiceGroup{}, g.ID, g,
		uniqueCheck{column: "title", field: "title", value: g.Title},
	)
}

type WorkPosition struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:100;uniqueIndex;not null" json:"title" validate:"required,max=100"`
	Description string `gorm:"type:text" json:"description"`
	Schedule    string `gorm:"size:20;not null;default:'five_two'" json:"schedule" validate:"required,oneof=five_two six_one two_two three_three"`

	ServiceGroupID *uint         `json:"service_group_id"`
	ServiceGroup   *ServiceGroup `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service_group" validate:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *WorkPosition) BeforeSave(tx *gorm.DB) error {
	if p.Schedule == "" {
		p.Schedule = ScheduleFiveTwo
	}
	return validateRow(tx, &WorkPosition{}, p.ID, p,
		uniqueCheck{column: "title", field: "title", value: p.Title},
	)
}

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title           string `gorm:"size:100;uniqueIndex;not null" json:"title" validate:"required,max=100"`
	Description     string `gorm:"type:text" json:"description"`
	Image           string `gorm:"size:255" json:"image" validate:"max=255"`
	Price           int64  `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	EmployeePercent int    `gorm:"not null;default:0" json:"employee_percent" validate:"gte=0"`

	ServiceGroupID *uint         `json:"service_group_id"`
	ServiceGroup   *ServiceGroup `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service_group" validate:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeSave(tx *gorm.DB) error {
	return validateRow(tx, &Service{}, s.ID, s,
		uniqueCheck{column: "title", field: "title", value: s.Title},
	)
}

type ProductType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:100;uniqueIndex;not null" json:"title" validate:"required,max=100"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:255" json:"image" validate:"max=255"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *ProductType) BeforeSave(tx *gorm.DB) error {
	return validateRow(tx, &ProductType{}, t.ID, t,
		uniqueCheck{column: "title", field: "title", value: t.Title},
	)
}

type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:100;uniqueIndex;not null" json:"title" validate:"required,max=100"`
	Description string `gorm:"type:text" json:"description"`
	Photo       string `gorm:"size:255" json:"photo" validate:"max=255"`
	CountLeft   int    `gorm:"not null;default:0" json:"count_left" validate:"gte=0"`

	ProductTypeID *uint        `json:"product_type_id"`
	ProductType   *ProductType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"product_type" validate:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Product) BeforeSave(tx *gorm.DB) error {
	return validateRow(tx, &Product{}, p.ID, p,
		uniqueCheck{column: "title", field: "title", value: p.Title},
	)
}

type Discount struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DiscountAmount int    `gorm:"not null;default:0" json:"discount_amount" validate:"gte=0,lte=100"`
	PromoCode      string `gorm:"size:6;uniqueIndex;not null" json:"promo_code" validate:"required,max=6,promocode"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Discount) BeforeSave(tx *gorm.DB) error {
	return validateRow(tx, &Discount{}, d.ID, d,
		uniqueCheck{column: "promo_code", field: "promo_code", value: d.PromoCode},
	)
}
