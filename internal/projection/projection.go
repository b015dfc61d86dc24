// Package projection names which shape of a resource each action reads or writes.
// An Empty projection means the API does not offer that action at all.
package projection

import "github.com/BruksfildServices01/salon-backoffice/internal/policy"

type Kind int

const (
	Empty Kind = iota
	List
	Detail
	Write
	Status
)

func (k Kind) String() string {
	switch k {
	case List:
		return "list"
	case Detail:
		return "detail"
	case Write:
		return "write"
	case Status:
		return "status"
	default:
		return "empty"
	}
}

type table map[policy.Resource]map[policy.Action]Kind

func readOnly() map[policy.Action]Kind {
	return map[policy.Action]Kind{
		policy.ActionList:     List,
		policy.ActionRetrieve: Detail,
	}
}

func catalog() map[policy.Action]Kind {
	return map[policy.Action]Kind{
		policy.ActionList:     List,
		policy.ActionRetrieve: Detail,
		policy.ActionUpdate:   Write,
	}
}

var kinds = table{
	policy.News: readOnly(),
	policy.Employees: {
		policy.ActionList:     List,
		policy.ActionRetrieve: Detail,
		policy.ActionUpdate:   Status,
	},
	policy.Clients: {
		policy.ActionList:     List,
		policy.ActionRetrieve: Detail,
		policy.ActionCreate:   Write,
		policy.ActionUpdate:   Write,
	},
	policy.Appointments: {
		policy.ActionList:     List,
		policy.ActionRetrieve: Detail,
		policy.ActionCreate:   Write,
		policy.ActionUpdate:   Status,
	},
	policy.Purchases: {
		policy.ActionList:     List,
		policy.ActionRetrieve: Detail,
		policy.ActionUpdate:   Status,
	},
	policy.Products:      catalog(),
	policy.ProductTypes:  catalog(),
	policy.ServiceGroups: catalog(),
	policy.Services:      catalog(),
	policy.AuditLogs:     readOnly(),
}

// For returns the projection for (r, a); Empty when the action is not offered.
func For(r policy.Resource, a policy.Action) Kind {
	return kinds[r][a]
}

// Offered reports whether the API exposes action a on r at all.
func Offered(r policy.Resource, a policy.Action) bool {
	return For(r, a) != Empty
}
