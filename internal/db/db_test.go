package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("mysql", "", gormlogger.Discard)
	assert.Error(t, err)
}

func TestSeedAdmin(t *testing.T) {
	db := NewTestDB(t)

	require.NoError(t, SeedAdmin(db, zap.NewNop(), " Boss@Salon.io ", "secret123"))
	require.NoError(t, SeedAdmin(db, zap.NewNop(), "boss@salon.io", "other"))

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "boss@salon.io", users[0].Email)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
}

func TestSeedAdmin_SkipsWithoutCredentials(t *testing.T) {
	db := NewTestDB(t)

	require.NoError(t, SeedAdmin(db, zap.NewNop(), "", ""))

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}
