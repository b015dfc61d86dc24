package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Code    string `json:"promo_code" validate:"required,max=6,promocode"`
	Percent int    `json:"percent" validate:"gte=0,lte=100"`
	Kind    string `json:"kind" validate:"omitempty,oneof=a b"`
	Phone   string `json:"phone" validate:"omitempty,e164"`
}

func TestStruct_Valid(t *testing.T) {
	errs := Struct(&sample{Code: "AB12C9", Percent: 100, Kind: "a", Phone: "+79001234567"})
	assert.True(t, errs.Empty())
	assert.NoError(t, errs.Err())
}

func TestStruct_Reasons(t *testing.T) {
	tests := []struct {
		name   string
		in     sample
		field  string
		reason string
	}{
		{"lowercase promo", sample{Code: "ab12c9"}, "promo_code", ReasonInvalidFormat},
		{"long promo", sample{Code: "ABCDEFG"}, "promo_code", ReasonMaxLength},
		{"missing promo", sample{}, "promo_code", ReasonRequired},
		{"percent above", sample{Code: "A", Percent: 101}, "percent", ReasonOutOfRange},
		{"percent below", sample{Code: "A", Percent: -1}, "percent", ReasonOutOfRange},
		{"bad choice", sample{Code: "A", Kind: "c"}, "kind", ReasonInvalidChoice},
		{"bad phone", sample{Code: "A", Phone: "12-34"}, "phone", ReasonInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Struct(&tt.in)
			require.False(t, errs.Empty())
			assert.Equal(t, tt.reason, errs[tt.field])
		})
	}
}

func TestErrors_AddKeepsFirst(t *testing.T) {
	errs := Errors{}
	errs.Add("email", ReasonUnique)
	errs.Add("email", ReasonRequired)
	assert.Equal(t, ReasonUnique, errs["email"])
	assert.Equal(t, "validation failed: email: unique", errs.Error())
}

func TestAs_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("saving: %w", Errors{"title": ReasonUnique})

	errs, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, ReasonUnique, errs["title"])

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestIsPromoCode(t *testing.T) {
	assert.True(t, IsPromoCode("AB12C9"))
	assert.False(t, IsPromoCode("ab12c9"))
	assert.False(t, IsPromoCode(""))
}
