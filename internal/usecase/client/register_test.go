package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	"github.com/BruksfildServices01/salon-backoffice/internal/db"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/validation"
)

func validInput() RegisterInput {
	return RegisterInput{
		Email:    "A@X.com",
		Password: "password1",
		Name:     "Anna",
		Surname:  "Karenina",
		Phone:    "+79990001122",
		Address:  "Nevsky 1",
	}
}

func TestRegister_CreatesUserAndProfile(t *testing.T) {
	gdb := db.NewTestDB(t)
	d := audit.NewDispatcher(audit.New(gdb), zap.NewNop())
	t.Cleanup(d.Close)

	c, err := NewRegister(gdb, d, nil).Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotZero(t, c.ID)
	assert.Equal(t, "a@x.com", c.User.Email)
	assert.Equal(t, models.RoleClient, c.User.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(c.User.PasswordHash), []byte("password1")))
}

func TestRegister_DuplicatesRollBack(t *testing.T) {
	gdb := db.NewTestDB(t)
	d := audit.NewDispatcher(audit.New(gdb), zap.NewNop())
	t.Cleanup(d.Close)
	uc := NewRegister(gdb, d, nil)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.Email = "b@x.com"
	_, err = uc.Execute(context.Background(), in)
	ve, ok := validation.As(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, validation.ReasonUnique, ve["phone"])

	var users int64
	gdb.Model(&models.User{}).Count(&users)
	assert.EqualValues(t, 1, users, "user row must roll back with the profile")

	in = validInput()
	in.Phone = "+79990003344"
	_, err = uc.Execute(context.Background(), in)
	ve, ok = validation.As(err)
	require.True(t, ok)
	assert.Equal(t, validation.ReasonUnique, ve["email"])
}

func TestRegister_DomainCheck(t *testing.T) {
	gdb := db.NewTestDB(t)
	d := audit.NewDispatcher(audit.New(gdb), zap.NewNop())
	t.Cleanup(d.Close)

	reject := func(context.Context, string) bool { return false }
	_, err := NewRegister(gdb, d, reject).Execute(context.Background(), validInput())

	ve, ok := validation.As(err)
	require.True(t, ok)
	assert.Equal(t, validation.ReasonInvalidFormat, ve["email"])
}
