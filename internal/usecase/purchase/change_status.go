package purchase

import (
	"context"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/purchase"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/policy"
)

type ChangePurchaseStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangePurchaseStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ChangePurchaseStatus {
	return &ChangePurchaseStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ChangePurchaseStatus) Execute(
	ctx context.Context,
	actor policy.Subject,
	purchaseID uint,
	status string,
) (*models.Purchase, error) {

	p, err := uc.repo.GetPurchase(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	from := p.Status
	changed, err := domain.ChangeStatus(p, domain.Status(status))
	if err != nil {
		return nil, err
	}
	if !changed {
		return p, nil
	}

	if err := uc.repo.UpdateStatus(ctx, p); err != nil {
		return nil, err
	}

	actorID := actor.UserID
	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "purchase_status_changed",
		Entity:   "purchase",
		EntityID: &p.ID,
		Metadata: map[string]string{"from": from, "to": p.Status},
	})

	return p, nil
}
