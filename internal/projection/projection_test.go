package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-backoffice/internal/policy"
)

func TestInterfaceRejections(t *testing.T) {
	rejected := map[policy.Resource][]policy.Action{
		policy.News:          {policy.ActionCreate, policy.ActionUpdate, policy.ActionDestroy},
		policy.Employees:     {policy.ActionCreate, policy.ActionDestroy},
		policy.Products:      {policy.ActionCreate, policy.ActionDestroy},
		policy.ProductTypes:  {policy.ActionCreate, policy.ActionDestroy},
		policy.ServiceGroups: {policy.ActionCreate, policy.ActionDestroy},
		policy.Services:      {policy.ActionCreate, policy.ActionDestroy},
		policy.Purchases:     {policy.ActionCreate, policy.ActionDestroy},
		policy.Clients:       {policy.ActionDestroy},
		policy.Appointments:  {policy.ActionDestroy},
	}

	for res, actions := range rejected {
		for _, a := range actions {
			assert.Equal(t, Empty, For(res, a), "%s %s", res, a)
			assert.False(t, Offered(res, a))
		}
	}
}

func TestStatusOnlyUpdates(t *testing.T) {
	for _, res := range []policy.Resource{policy.Appointments, policy.Purchases, policy.Employees} {
		assert.Equal(t, Status, For(res, policy.ActionUpdate), string(res))
	}
}

func TestReadProjections(t *testing.T) {
	assert.Equal(t, List, For(policy.News, policy.ActionList))
	assert.Equal(t, Detail, For(policy.News, policy.ActionRetrieve))
	assert.Equal(t, Write, For(policy.Clients, policy.ActionCreate))
	assert.Equal(t, Write, For(policy.Services, policy.ActionUpdate))
	assert.Equal(t, Empty, For("payroll", policy.ActionList))
	assert.Equal(t, "status", Status.String())
}
