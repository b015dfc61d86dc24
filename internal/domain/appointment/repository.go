package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type Repository interface {
	// -------- References --------
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	GetClientByUser(ctx context.Context, userID uint) (*models.Client, error)
	GetEmployee(ctx context.Context, id uint) (*models.Employee, error)
	FindServices(ctx context.Context, ids []uint) ([]models.Service, error)
	FindDiscountByCode(ctx context.Context, code string) (*models.Discount, error)

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	ListAppointments(ctx context.Context, f ListFilter) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, ap *models.Appointment) error
}
