package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullPrice(t *testing.T) {
	cases := []struct {
		name    string
		prices  []int64
		percent int
		want    int64
	}{
		{"no services", nil, 10, 0},
		{"no discount", []int64{1000, 500}, 0, 1500},
		{"ten percent", []int64{1000, 500}, 10, 1350},
		{"half rounds up", []int64{5}, 50, 3},
		{"rounds to nearest", []int64{333}, 10, 300},
		{"free", []int64{999}, 100, 0},
		{"clamped above", []int64{100}, 150, 0},
		{"clamped below", []int64{100}, -5, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FullPrice(tc.prices, tc.percent))
		})
	}
}
