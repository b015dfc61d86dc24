package purchase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

func TestCanTransition(t *testing.T) {
	assert.NoError(t, CanTransition(StatusInProgress, StatusCompleted))
	assert.NoError(t, CanTransition(StatusInProgress, StatusClientCanceled))
	assert.NoError(t, CanTransition(StatusCompleted, StatusCompleted))

	for _, tr := range [][2]Status{
		{StatusCompleted, StatusInProgress},
		{StatusCompleted, StatusClientCanceled},
		{StatusClientCanceled, StatusCompleted},
	} {
		assert.True(t, httperr.IsBusiness(CanTransition(tr[0], tr[1]), "invalid_transition"))
	}
}

func TestChangeStatus(t *testing.T) {
	p := &models.Purchase{Status: string(InitialStatus())}

	changed, err := ChangeStatus(p, StatusClientCanceled)
	require.NoError(t, err)
	assert.True(t, changed)

	_, err = ChangeStatus(p, StatusCompleted)
	assert.Error(t, err)
	assert.Equal(t, "client_canceled", p.Status)
}
