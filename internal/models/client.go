package models

import (
	"time"

	"gorm.io/gorm"
)

// Client is the customer profile attached to a client-role user.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user" validate:"-"`

	Birthdate *time.Time `gorm:"type:date" json:"birthdate"`
	Phone     string     `gorm:"size:20;uniqueIndex;not null" json:"phone" validate:"required,e164"`
	Address   string     `gorm:"size:200;not null" json:"address" validate:"required,max=200"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) BeforeSave(tx *gorm.DB) error {
	checks := []uniqueCheck{{column: "phone", field: "phone", value: c.Phone}}
	if c.UserID != 0 {
		checks = append(checks, uniqueCheck{column: "user_id", field: "user_id", value: c.UserID})
	}
	return validateRow(tx, &Client{}, c.ID, c, checks...)
}
