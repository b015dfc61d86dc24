package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/auth"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// Account returns the current role and active flag of a token subject.
func (r *UserGormRepository) Account(
	ctx context.Context,
	userID uint,
) (string, bool, error) {

	var u models.User
	err := r.db.WithContext(ctx).
		Select("id", "role", "is_active").
		First(&u, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, auth.ErrUnknownAccount
	}
	if err != nil {
		return "", false, err
	}
	return string(u.Role), u.IsActive, nil
}
