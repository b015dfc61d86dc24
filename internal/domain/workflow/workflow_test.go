package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/validation"
)

type state string

var graph = Graph[state]{
	"a": {"b"},
	"b": {"c", "d"},
	"c": nil,
	"d": nil,
}

func TestGraph_Check(t *testing.T) {
	cases := []struct {
		from, to state
		ok       bool
	}{
		{"a", "b", true},
		{"a", "c", true},
		{"b", "d", true},
		{"a", "a", true},
		{"c", "c", true},
		{"b", "a", false},
		{"c", "d", false},
		{"d", "a", false},
	}
	for _, tc := range cases {
		err := graph.Check(tc.from, tc.to)
		if tc.ok {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
			continue
		}
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"), "%s -> %s", tc.from, tc.to)
	}
}

func TestGraph_UnknownTarget(t *testing.T) {
	err := graph.Check("a", "zzz")
	ve, ok := validation.As(err)
	assert.True(t, ok)
	assert.Equal(t, validation.ReasonInvalidChoice, ve["status"])
}

func TestGraph_Terminal(t *testing.T) {
	assert.True(t, graph.Terminal("c"))
	assert.False(t, graph.Terminal("a"))
}
