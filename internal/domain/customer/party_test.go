package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestParty_RoundTripColumns(t *testing.T) {
	reg := Registered(7)
	id, name, phone := reg.Columns()
	require.NotNil(t, id)
	assert.Equal(t, uint(7), *id)
	assert.Nil(t, name)
	assert.Nil(t, phone)

	back, err := FromColumns(id, name, phone)
	require.NoError(t, err)
	assert.Equal(t, KindRegistered, back.Kind())

	walk := WalkIn(" Anna ", "+79001234567")
	id, name, phone = walk.Columns()
	assert.Nil(t, id)
	assert.Equal(t, "Anna", *name)
	assert.Equal(t, "+79001234567", *phone)

	back, err = FromColumns(id, name, phone)
	require.NoError(t, err)
	assert.Equal(t, KindWalkIn, back.Kind())
	assert.Equal(t, "Anna", back.WalkInName())
}

func TestFromColumns_Ambiguous(t *testing.T) {
	_, err := FromColumns(ptr(uint(1)), ptr("Anna"), nil)
	assert.ErrorIs(t, err, ErrBothParties)

	_, err = FromColumns(nil, nil, nil)
	assert.ErrorIs(t, err, ErrNoParty)

	_, err = FromColumns(ptr(uint(0)), ptr(""), nil)
	assert.ErrorIs(t, err, ErrNoParty)

	_, err = FromColumns(nil, nil, ptr("+79001234567"))
	assert.ErrorIs(t, err, ErrWalkInNoName)
}

func TestParty_Validate(t *testing.T) {
	assert.ErrorIs(t, Party{}.Validate(), ErrNoParty)
	assert.ErrorIs(t, Registered(0).Validate(), ErrInvalidClient)
	assert.ErrorIs(t, WalkIn("  ", "").Validate(), ErrWalkInNoName)
	assert.NoError(t, WalkIn("Anna", "").Validate())

	_, ok := WalkIn("Anna", "").ClientID()
	assert.False(t, ok)
}
