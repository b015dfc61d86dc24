package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

func TestCanTransition(t *testing.T) {
	allowed := [][2]Status{
		{StatusEmployeeWaiting, StatusInProgress},
		{StatusEmployeeWaiting, StatusClientCanceled},
		{StatusEmployeeWaiting, StatusCompleted},
		{StatusInProgress, StatusCompleted},
		{StatusCompleted, StatusCompleted},
	}
	for _, tr := range allowed {
		assert.NoError(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	rejected := [][2]Status{
		{StatusInProgress, StatusEmployeeWaiting},
		{StatusInProgress, StatusClientCanceled},
		{StatusCompleted, StatusInProgress},
		{StatusClientCanceled, StatusEmployeeWaiting},
		{StatusClientCanceled, StatusCompleted},
	}
	for _, tr := range rejected {
		err := CanTransition(tr[0], tr[1])
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"), "%s -> %s", tr[0], tr[1])
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusClientCanceled))
	assert.False(t, IsTerminal(StatusEmployeeWaiting))
	assert.False(t, IsTerminal("unknown"))
}

func TestChangeStatus(t *testing.T) {
	ap := &models.Appointment{Status: string(InitialStatus())}

	changed, err := ChangeStatus(ap, StatusInProgress)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "in_progress", ap.Status)

	changed, err = ChangeStatus(ap, StatusInProgress)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = ChangeStatus(ap, StatusEmployeeWaiting)
	assert.Error(t, err)
	assert.Equal(t, "in_progress", ap.Status)
}
