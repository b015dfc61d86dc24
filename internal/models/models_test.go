package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-backoffice/internal/db"
	"github.com/BruksfildServices01/salon-backoffice/internal/domain/customer"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/validation"
)

func requireFieldError(t *testing.T, err error, field, reason string) {
	t.Helper()
	ve, ok := validation.As(err)
	require.True(t, ok, "expected validation.Errors, got %v", err)
	assert.Equal(t, reason, ve[field])
}

func TestServiceGroup_TitleUnique(t *testing.T) {
	gdb := db.NewTestDB(t)

	require.NoError(t, gdb.Create(&models.ServiceGroup{Title: "Hair"}).Error)

	err := gdb.Create(&models.ServiceGroup{Title: "Hair"}).Error
	requireFieldError(t, err, "title", validation.ReasonUnique)

	var count int64
	gdb.Model(&models.ServiceGroup{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestServiceGroup_UpdateKeepsOwnTitle(t *testing.T) {
	gdb := db.NewTestDB(t)

	g := models.ServiceGroup{Title: "Nails"}
	require.NoError(t, gdb.Create(&g).Error)

	g.Description = "manicure and pedicure"
	assert.NoError(t, gdb.Save(&g).Error)
}

func TestUser_EmailNormalizedAndUnique(t *testing.T) {
	gdb := db.NewTestDB(t)

	u := models.User{Email: "  Anna@Example.COM", Name: "Anna", Surname: "K", PasswordHash: "x"}
	require.NoError(t, gdb.Create(&u).Error)
	assert.Equal(t, "anna@example.com", u.Email)
	assert.Equal(t, models.RoleClient, u.Role)

	dup := models.User{Email: "anna@example.com", Name: "A", Surname: "B", PasswordHash: "x"}
	requireFieldError(t, gdb.Create(&dup).Error, "email", validation.ReasonUnique)
}

func TestDiscount_Bounds(t *testing.T) {
	gdb := db.NewTestDB(t)

	cases := []struct {
		name   string
		d      models.Discount
		field  string
		reason string
	}{
		{"over 100", models.Discount{DiscountAmount: 101, PromoCode: "SALE"}, "discount_amount", validation.ReasonOutOfRange},
		{"negative", models.Discount{DiscountAmount: -1, PromoCode: "SALE"}, "discount_amount", validation.ReasonOutOfRange},
		{"lowercase code", models.Discount{DiscountAmount: 10, PromoCode: "sale"}, "promo_code", validation.ReasonInvalidFormat},
		{"long code", models.Discount{DiscountAmount: 10, PromoCode: "SALE2024"}, "promo_code", validation.ReasonMaxLength},
		{"missing code", models.Discount{DiscountAmount: 10}, "promo_code", validation.ReasonRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := tc.d
			requireFieldError(t, gdb.Create(&d).Error, tc.field, tc.reason)
		})
	}

	assert.NoError(t, gdb.Create(&models.Discount{DiscountAmount: 0, PromoCode: "ZERO"}).Error)
	assert.NoError(t, gdb.Create(&models.Discount{DiscountAmount: 100, PromoCode: "FREE"}).Error)
}

func TestProduct_NegativeStockRejected(t *testing.T) {
	gdb := db.NewTestDB(t)

	p := models.Product{Title: "Shampoo", CountLeft: -3}
	requireFieldError(t, gdb.Create(&p).Error, "count_left", validation.ReasonOutOfRange)
}

func TestEmployee_PhoneUnique(t *testing.T) {
	gdb := db.NewTestDB(t)

	users := []models.User{
		{Email: "e1@example.com", Name: "E", Surname: "One", PasswordHash: "x", Role: models.RoleEmployee},
		{Email: "e2@example.com", Name: "E", Surname: "Two", PasswordHash: "x", Role: models.RoleEmployee},
	}
	require.NoError(t, gdb.Create(&users).Error)

	birth := time.Date(1990, 3, 4, 0, 0, 0, 0, time.UTC)
	first := models.Employee{UserID: users[0].ID, Birthdate: birth, Phone: "+79997770001", Address: "Main st"}
	require.NoError(t, gdb.Create(&first).Error)

	second := models.Employee{UserID: users[1].ID, Birthdate: birth, Phone: "+79997770001", Address: "Side st"}
	requireFieldError(t, gdb.Create(&second).Error, "phone", validation.ReasonUnique)

	var count int64
	gdb.Model(&models.Employee{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestClient_PhoneUnique(t *testing.T) {
	gdb := db.NewTestDB(t)

	users := []models.User{
		{Email: "c1@example.com", Name: "C", Surname: "One", PasswordHash: "x"},
		{Email: "c2@example.com", Name: "C", Surname: "Two", PasswordHash: "x"},
	}
	require.NoError(t, gdb.Create(&users).Error)

	first := models.Client{UserID: users[0].ID, Phone: "+79996660001", Address: "Main st"}
	require.NoError(t, gdb.Create(&first).Error)

	second := models.Client{UserID: users[1].ID, Phone: "+79996660001", Address: "Side st"}
	requireFieldError(t, gdb.Create(&second).Error, "phone", validation.ReasonUnique)

	// Saving the first row again must not collide with itself.
	first.Address = "New st"
	require.NoError(t, gdb.Save(&first).Error)
}

func TestAppointment_PartyUnion(t *testing.T) {
	gdb := db.NewTestDB(t)

	user := models.User{Email: "c@example.com", Name: "C", Surname: "D", PasswordHash: "x"}
	require.NoError(t, gdb.Create(&user).Error)
	client := models.Client{UserID: user.ID, Phone: "+79990000001", Address: "Main st"}
	require.NoError(t, gdb.Create(&client).Error)

	t.Run("neither", func(t *testing.T) {
		ap := models.Appointment{}
		requireFieldError(t, gdb.Create(&ap).Error, "party", validation.ReasonExactlyOneParty)
	})

	t.Run("both", func(t *testing.T) {
		name := "Walk"
		ap := models.Appointment{ClientID: &client.ID, WalkInName: &name}
		requireFieldError(t, gdb.Create(&ap).Error, "party", validation.ReasonExactlyOneParty)
	})

	t.Run("registered", func(t *testing.T) {
		ap := models.Appointment{}
		ap.SetParty(customer.Registered(client.ID))
		require.NoError(t, gdb.Create(&ap).Error)
		assert.Equal(t, "employee_waiting", ap.Status)

		p, err := ap.Party()
		require.NoError(t, err)
		assert.Equal(t, customer.KindRegistered, p.Kind())
	})

	t.Run("walk-in phone unique", func(t *testing.T) {
		first := models.Appointment{}
		first.SetParty(customer.WalkIn("Olga", "+79991112233"))
		require.NoError(t, gdb.Create(&first).Error)

		second := models.Appointment{}
		second.SetParty(customer.WalkIn("Ivan", "+79991112233"))
		requireFieldError(t, gdb.Create(&second).Error, "walk_in_phone", validation.ReasonUnique)
	})
}

func TestPurchase_WalkInNameOnly(t *testing.T) {
	gdb := db.NewTestDB(t)

	p := models.Purchase{}
	p.SetParty(customer.WalkIn("Maria", "+79990000000"))
	require.NoError(t, gdb.Create(&p).Error)
	assert.Equal(t, "in_progress", p.Status)
	require.NotNil(t, p.WalkInName)
	assert.Equal(t, "Maria", *p.WalkInName)
}

func TestNews_PublishedAtStamped(t *testing.T) {
	gdb := db.NewTestDB(t)

	draft := models.News{Title: "Soon"}
	require.NoError(t, gdb.Create(&draft).Error)
	assert.Equal(t, models.NewsDraft, draft.Status)
	assert.Nil(t, draft.PublishedAt)

	pub := models.News{Title: "Opening", Status: models.NewsPublished}
	require.NoError(t, gdb.Create(&pub).Error)
	assert.NotNil(t, pub.PublishedAt)

	var visible []models.News
	require.NoError(t, gdb.Scopes(models.Published).Find(&visible).Error)
	require.Len(t, visible, 1)
	assert.Equal(t, "Opening", visible[0].Title)
}
