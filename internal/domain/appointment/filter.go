package appointment

import "time"

// ListFilter narrows the admin appointment listing. Zero values mean "any".
type ListFilter struct {
	Status     Status
	EmployeeID uint
	ClientID   uint
	From       *time.Time
	To         *time.Time
}
