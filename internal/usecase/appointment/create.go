package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backoffice/internal/domain/customer"
	"github.com/BruksfildServices01/salon-backoffice/internal/domain/pricing"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/policy"
	"github.com/BruksfildServices01/salon-backoffice/internal/validation"
)

type WalkIn struct {
	Name  string
	Phone string
}

type CreateInput struct {
	Actor policy.Subject

	// Exactly one of ClientID and WalkIn; ignored for client callers, who always
	// book for their own profile.
	ClientID *uint
	WalkIn   *WalkIn

	EmployeeID    *uint
	PromoCode     string
	ServiceIDs    []uint
	ScheduledTime *time.Time
}

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	errs := validation.Errors{}

	// --------------------------------------------------
	// Party
	// --------------------------------------------------
	party, err := uc.resolveParty(ctx, in, errs)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Employee
	// --------------------------------------------------
	if in.EmployeeID != nil {
		if _, err := uc.repo.GetEmployee(ctx, *in.EmployeeID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("load employee: %w", err)
			}
			errs.Add("employee_id", validation.ReasonInvalidReference)
		}
	}

	// --------------------------------------------------
	// Services
	// --------------------------------------------------
	ids := uniqueIDs(in.ServiceIDs)
	services, err := uc.repo.FindServices(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(services) != len(ids) {
		errs.Add("service_ids", validation.ReasonInvalidReference)
	}

	// --------------------------------------------------
	// Discount (natural key lookup)
	// --------------------------------------------------
	var discount *models.Discount
	if code := strings.TrimSpace(in.PromoCode); code != "" {
		discount, err = uc.repo.FindDiscountByCode(ctx, code)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("load discount: %w", err)
			}
			errs.Add("promo_code", validation.ReasonInvalidReference)
		}
	}

	if !errs.Empty() {
		return nil, errs
	}

	// --------------------------------------------------
	// Price is always computed here
	// --------------------------------------------------
	prices := make([]int64, 0, len(services))
	for _, s := range services {
		prices = append(prices, s.Price)
	}
	percent := 0
	if discount != nil {
		percent = discount.DiscountAmount
	}

	ap := &models.Appointment{
		EmployeeID:    in.EmployeeID,
		Services:      services,
		FullPrice:     pricing.FullPrice(prices, percent),
		Status:        string(domain.InitialStatus()),
		ScheduledTime: in.ScheduledTime,
	}
	ap.SetParty(party)
	if discount != nil {
		ap.DiscountID = &discount.ID
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	actorID := in.Actor.UserID
	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"party":      party.Kind().String(),
			"full_price": ap.FullPrice,
		},
	})

	return uc.repo.GetAppointment(ctx, ap.ID)
}

func (uc *CreateAppointment) resolveParty(
	ctx context.Context,
	in CreateInput,
	errs validation.Errors,
) (customer.Party, error) {

	if in.Actor.Is(policy.RoleClient) {
		c, err := uc.repo.GetClientByUser(ctx, in.Actor.UserID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return customer.Party{}, fmt.Errorf("load own client profile: %w", err)
			}
			errs.Add("client_id", validation.ReasonInvalidReference)
			return customer.Party{}, nil
		}
		return customer.Registered(c.ID), nil
	}

	switch {
	case in.ClientID != nil && in.WalkIn != nil:
		errs.Add("party", validation.ReasonExactlyOneParty)
	case in.ClientID != nil:
		if _, err := uc.repo.GetClient(ctx, *in.ClientID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return customer.Party{}, fmt.Errorf("load client: %w", err)
			}
			errs.Add("client_id", validation.ReasonInvalidReference)
			return customer.Party{}, nil
		}
		return customer.Registered(*in.ClientID), nil
	case in.WalkIn != nil:
		p := customer.WalkIn(in.WalkIn.Name, in.WalkIn.Phone)
		if err := p.Validate(); err != nil {
			errs.Add("walk_in.name", validation.ReasonRequired)
		}
		return p, nil
	default:
		errs.Add("party", validation.ReasonExactlyOneParty)
	}
	return customer.Party{}, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
