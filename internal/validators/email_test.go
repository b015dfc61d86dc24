package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmailDomain(t *testing.T) {
	d, ok := EmailDomain("anna@salon.example")
	assert.True(t, ok)
	assert.Equal(t, "salon.example", d)

	for _, bad := range []string{"", "anna", "anna@", "@salon.example"} {
		_, ok := EmailDomain(bad)
		assert.False(t, ok, bad)
	}
}

func TestDNSDomainChecker_RejectsMalformed(t *testing.T) {
	check := DNSDomainChecker(nil, time.Second)
	assert.False(t, check(context.Background(), "no-at-sign"))
}

func TestAcceptAnyDomain(t *testing.T) {
	assert.True(t, AcceptAnyDomain(context.Background(), "x@nowhere.invalid"))
}
