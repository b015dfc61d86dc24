package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	NewsDraft     = "draft"
	NewsPublished = "published"
)

type News struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:200;uniqueIndex;not null" json:"title" validate:"required,max=200"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:255" json:"image" validate:"max=255"`
	Status      string `gorm:"size:20;not null;default:'draft'" json:"status" validate:"required,oneof=draft published"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PublishedAt *time.Time `json:"published_at"`
}

func (n *News) TableName() string { return "news" }

func (n *News) BeforeSave(tx *gorm.DB) error {
	if n.Status == "" {
		n.Status = NewsDraft
	}
	if n.Status == NewsPublished && n.PublishedAt == nil {
		now := time.Now()
		n.PublishedAt = &now
	}
	return validateRow(tx, &News{}, n.ID, n,
		uniqueCheck{column: "title", field: "title", value: n.Title},
	)
}

// Published scopes a query to externally visible news.
func Published(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", NewsPublished)
}
