package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleClient   Role = "client"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleClient, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:60;uniqueIndex;not null" json:"email" validate:"required,email,max=60"`
	Name         string `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Surname      string `gorm:"size:100;not null" json:"surname" validate:"required,max=100"`
	PasswordHash string `gorm:"size:255;not null" json:"-" validate:"-"`
	Role         Role   `gorm:"size:20;default:'client';not null" json:"role" validate:"required,oneof=admin client employee"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = NormalizeEmail(u.Email)
	if u.Role == "" {
		u.Role = RoleClient
	}
	return validateRow(tx, &User{}, u.ID, u,
		uniqueCheck{column: "email", field: "email", value: u.Email},
	)
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.Name + " " + u.Surname)
}
