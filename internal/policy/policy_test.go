package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	anon     = Anonymous()
	client   = Subject{UserID: 1, Role: RoleClient}
	employee = Subject{UserID: 2, Role: RoleEmployee}
	admin    = Subject{UserID: 3, Role: RoleAdmin}
)

// expected decisions in the order anon, client, employee, admin
type row [4]Decision

var (
	open      = row{Allow, Allow, Allow, Allow}
	loggedIn  = row{Unauthenticated, Allow, Allow, Allow}
	adminOnly = row{Unauthenticated, Forbidden, Forbidden, Allow}
)

func TestDefaultTable(t *testing.T) {
	catalogRows := map[Action]row{
		ActionList:     open,
		ActionRetrieve: open,
		ActionCreate:   adminOnly,
		ActionUpdate:   adminOnly,
		ActionDestroy:  adminOnly,
	}

	want := map[Resource]map[Action]row{
		News: catalogRows,
		Employees: {
			ActionList:     adminOnly,
			ActionRetrieve: loggedIn,
			ActionCreate:   adminOnly,
			ActionUpdate:   loggedIn,
			ActionDestroy:  adminOnly,
		},
		Clients: {
			ActionList:     loggedIn,
			ActionRetrieve: loggedIn,
			ActionCreate:   open,
			ActionUpdate:   adminOnly,
			ActionDestroy:  adminOnly,
		},
		Appointments: {
			ActionList:     adminOnly,
			ActionRetrieve: loggedIn,
			ActionCreate:   loggedIn,
			ActionUpdate:   adminOnly,
			ActionDestroy:  adminOnly,
		},
		Purchases: {
			ActionList:     adminOnly,
			ActionRetrieve: loggedIn,
			ActionCreate:   loggedIn,
			ActionUpdate:   adminOnly,
			ActionDestroy:  adminOnly,
		},
		Products:      catalogRows,
		ProductTypes:  catalogRows,
		ServiceGroups: catalogRows,
		Services:      catalogRows,
	}

	subjects := [4]Subject{anon, client, employee, admin}
	for res, actions := range want {
		for _, act := range Actions {
			expected, ok := actions[act]
			if !assert.True(t, ok, "missing expectation %s/%s", res, act) {
				continue
			}
			for i, s := range subjects {
				assert.Equal(t, expected[i], Decide(s, res, act),
					"%s %s as %s", res, act, s.Role)
			}
		}
	}
}

func TestAuditLogs(t *testing.T) {
	assert.Equal(t, Allow, Decide(admin, AuditLogs, ActionList))
	assert.Equal(t, Forbidden, Decide(employee, AuditLogs, ActionList))
	assert.Equal(t, Unauthenticated, Decide(anon, AuditLogs, ActionList))
	assert.Equal(t, Forbidden, Decide(admin, AuditLogs, ActionDestroy))
}

func TestUnknownResourceDenied(t *testing.T) {
	assert.Equal(t, Forbidden, Decide(admin, "payroll", ActionList))
	assert.Equal(t, Unauthenticated, Decide(anon, "payroll", ActionList))
}

func TestSubject(t *testing.T) {
	assert.False(t, Subject{}.Authenticated())
	assert.False(t, Subject{Role: RoleAdmin}.Authenticated())
	assert.True(t, admin.Is(RoleAdmin))
	assert.False(t, client.Is(RoleAdmin))
}
