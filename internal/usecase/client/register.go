package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/validation"
	"github.com/BruksfildServices01/salon-backoffice/internal/validators"
)

type RegisterInput struct {
	Email     string
	Password  string
	Name      string
	Surname   string
	Phone     string
	Address   string
	Birthdate *time.Time
}

// Register creates a client-role user and its client profile atomically.
type Register struct {
	db          *gorm.DB
	audit       *audit.Dispatcher
	checkDomain validators.EmailDomainChecker
}

func NewRegister(
	db *gorm.DB,
	audit *audit.Dispatcher,
	checkDomain validators.EmailDomainChecker,
) *Register {
	if checkDomain == nil {
		checkDomain = validators.AcceptAnyDomain
	}
	return &Register{
		db:          db,
		audit:       audit,
		checkDomain: checkDomain,
	}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.Client, error) {

	email := models.NormalizeEmail(in.Email)
	if !uc.checkDomain(ctx, email) {
		return nil, validation.Errors{"email": validation.ReasonInvalidFormat}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		Surname:      strings.TrimSpace(in.Surname),
		PasswordHash: string(hashed),
		Role:         models.RoleClient,
		IsActive:     true,
	}
	client := models.Client{
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		Birthdate: in.Birthdate,
	}

	err = uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// validate the profile up front so field errors from both rows are
		// reported together
		errs := validation.Struct(&client)
		delete(errs, "user_id")

		if err := tx.Create(&user).Error; err != nil {
			if ve, ok := validation.As(err); ok {
				for f, r := range ve {
					errs.Add(f, r)
				}
				return errs
			}
			return err
		}
		if !errs.Empty() {
			return errs
		}

		client.UserID = user.ID
		return tx.Omit("User").Create(&client).Error
	})
	if err != nil {
		return nil, err
	}

	client.User = user
	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "client_registered",
		Entity:   "client",
		EntityID: &client.ID,
	})

	return &client, nil
}
