package appointment

import (
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

// ChangeStatus applies next to ap. It reports false when ap already had that status.
func ChangeStatus(ap *models.Appointment, next Status) (bool, error) {
	current := Status(ap.Status)
	if err := CanTransition(current, next); err != nil {
		return false, err
	}
	if current == next {
		return false, nil
	}

	ap.Status = string(next)
	return true, nil
}
