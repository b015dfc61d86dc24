package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/purchase"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type PurchaseGormRepository struct {
	db *gorm.DB
}

func NewPurchaseGormRepository(db *gorm.DB) *PurchaseGormRepository {
	return &PurchaseGormRepository{db: db}
}

var _ domain.Repository = (*PurchaseGormRepository)(nil)

func (r *PurchaseGormRepository) GetPurchase(
	ctx context.Context,
	id uint,
) (*models.Purchase, error) {

	var p models.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Client.User").
		Preload("Discount").
		Preload("Products").
		First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PurchaseGormRepository) UpdateStatus(
	ctx context.Context,
	p *models.Purchase,
) error {
	return r.db.WithContext(ctx).
		Model(p).
		Select("status", "updated_at").
		Updates(p).Error
}
