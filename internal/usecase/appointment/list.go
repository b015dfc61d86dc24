package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
)

type ListInput struct {
	Status     string
	EmployeeID uint
	ClientID   uint
	// Date restricts to appointments scheduled on that calendar day in the
	// business timezone.
	Date *time.Time
}

type ListAppointments struct {
	repo domain.Repository
	tz   string
}

func NewListAppointments(
	repo domain.Repository,
	tz string,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		tz:   tz,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListInput,
) ([]models.Appointment, error) {

	f := domain.ListFilter{
		Status:     domain.Status(in.Status),
		EmployeeID: in.EmployeeID,
		ClientID:   in.ClientID,
	}

	if in.Date != nil {
		start, end := timezone.DayBounds(*in.Date, timezone.Location(uc.tz))
		f.From = &start
		f.To = &end
	}

	return uc.repo.ListAppointments(ctx, f)
}
