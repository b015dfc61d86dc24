package purchase

import (
	"context"

	"github.com/BruksfildServices01/salon-backoffice/internal/domain/workflow"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type Status string

const (
	StatusInProgress     Status = "in_progress"
	StatusCompleted      Status = "completed"
	StatusClientCanceled Status = "client_canceled"
)

var transitions = workflow.Graph[Status]{
	StatusInProgress:     {StatusCompleted, StatusClientCanceled},
	StatusCompleted:      nil,
	StatusClientCanceled: nil,
}

func InitialStatus() Status {
	return StatusInProgress
}

func CanTransition(current, next Status) error {
	return transitions.Check(current, next)
}

// ChangeStatus applies next to p. It reports false when p already had that status.
func ChangeStatus(p *models.Purchase, next Status) (bool, error) {
	current := Status(p.Status)
	if err := CanTransition(current, next); err != nil {
		return false, err
	}
	if current == next {
		return false, nil
	}
	p.Status = string(next)
	return true, nil
}

type Repository interface {
	GetPurchase(ctx context.Context, id uint) (*models.Purchase, error)
	UpdateStatus(ctx context.Context, p *models.Purchase) error
}
