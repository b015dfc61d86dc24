// Package policy decides, before any handler runs, whether a subject may perform an
// action on a resource. Rules live in an explicit table keyed by resource and
// action; each rule names the least privileged role allowed through.
package policy

type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleClient    Role = "client"
	RoleEmployee  Role = "employee"
	RoleAdmin     Role = "admin"
)

type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDestroy  Action = "destroy"
)

var Actions = []Action{ActionList, ActionRetrieve, ActionCreate, ActionUpdate, ActionDestroy}

type Resource string

const (
	News          Resource = "news"
	Employees     Resource = "employees"
	Clients       Resource = "clients"
	Appointments  Resource = "appointments"
	Purchases     Resource = "purchases"
	Products      Resource = "products"
	ProductTypes  Resource = "product-types"
	ServiceGroups Resource = "service-groups"
	Services      Resource = "services"
	AuditLogs     Resource = "audit-logs"
)

// Subject is the caller a decision is made for. The zero value is anonymous.
type Subject struct {
	UserID uint
	Role   Role
}

func Anonymous() Subject {
	return Subject{Role: RoleAnonymous}
}

func (s Subject) Authenticated() bool {
	return s.UserID != 0 && s.Role != "" && s.Role != RoleAnonymous
}

func (s Subject) Is(role Role) bool {
	return s.Authenticated() && s.Role == role
}

// Rule is the requirement attached to one (resource, action) cell.
type Rule int

const (
	// Deny is the zero value: a missing cell denies everyone.
	Deny Rule = iota
	Anyone
	LoggedIn
	AdminOnly
)

type Decision int

const (
	Allow Decision = iota
	Unauthenticated
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "forbidden"
	}
}

// Table maps resource -> action -> rule.
type Table map[Resource]map[Action]Rule

func (t Table) Rule(r Resource, a Action) Rule {
	return t[r][a]
}

// Decide evaluates the rule for (r, a) against s. Anonymous callers hitting a rule
// that needs a login get Unauthenticated so the client knows to authenticate.
func (t Table) Decide(s Subject, r Resource, a Action) Decision {
	rule := t.Rule(r, a)
	if rule == Anyone {
		return Allow
	}
	if !s.Authenticated() {
		return Unauthenticated
	}

	switch rule {
	case LoggedIn:
		return Allow
	case AdminOnly:
		if s.Role == RoleAdmin {
			return Allow
		}
	}
	return Forbidden
}

func catalog() map[Action]Rule {
	return map[Action]Rule{
		ActionList:     Anyone,
		ActionRetrieve: Anyone,
		ActionCreate:   AdminOnly,
		ActionUpdate:   AdminOnly,
		ActionDestroy:  AdminOnly,
	}
}

// Default is the access matrix of the salon API.
var Default = Table{
	News: catalog(),
	Employees: {
		ActionList:     AdminOnly,
		ActionRetrieve: LoggedIn,
		ActionCreate:   AdminOnly,
		ActionUpdate:   LoggedIn,
		ActionDestroy:  AdminOnly,
	},
	Clients: {
		ActionList:     LoggedIn,
		ActionRetrieve: LoggedIn,
		ActionCreate:   Anyone,
		ActionUpdate:   AdminOnly,
		ActionDestroy:  AdminOnly,
	},
	Appointments: {
		ActionList:     AdminOnly,
		ActionRetrieve: LoggedIn,
		ActionCreate:   LoggedIn,
		ActionUpdate:   AdminOnly,
		ActionDestroy:  AdminOnly,
	},
	Purchases: {
		ActionList:     AdminOnly,
		ActionRetrieve: LoggedIn,
		ActionCreate:   LoggedIn,
		ActionUpdate:   AdminOnly,
		ActionDestroy:  AdminOnly,
	},
	Products:      catalog(),
	ProductTypes:  catalog(),
	ServiceGroups: catalog(),
	Services:      catalog(),
	AuditLogs: {
		ActionList:     AdminOnly,
		ActionRetrieve: AdminOnly,
	},
}

func Decide(s Subject, r Resource, a Action) Decision {
	return Default.Decide(s, r, a)
}
