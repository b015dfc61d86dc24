package appointment

import "github.com/BruksfildServices01/salon-backoffice/internal/domain/workflow"

type Status string

const (
	StatusEmployeeWaiting Status = "employee_waiting"
	StatusClientCanceled  Status = "client_canceled"
	StatusInProgress      Status = "in_progress"
	StatusCompleted       Status = "completed"
)

var transitions = workflow.Graph[Status]{
	StatusEmployeeWaiting: {StatusInProgress, StatusClientCanceled},
	StatusInProgress:      {StatusCompleted},
	StatusCompleted:       nil,
	StatusClientCanceled:  nil,
}

func InitialStatus() Status {
	return StatusEmployeeWaiting
}

// CanTransition returns nil when current may move to next.
func CanTransition(current, next Status) error {
	return transitions.Check(current, next)
}

func IsTerminal(s Status) bool {
	return transitions.Known(s) && transitions.Terminal(s)
}
