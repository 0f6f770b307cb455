package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/lifecalc/internal/repositories/metadata"
	"github.com/stretchr/testify/require"
)

func TestDeviceSecret_CreatedOnceAndReused(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	first, err := DeviceSecret(ctx, db)
	require.NoError(t, err)
	require.Len(t, first, 2*deviceSecretSize)

	second, err := DeviceSecret(ctx, db)
	require.NoError(t, err)
	require.Equal(t, first, second)

	stored, err := metadata.NewSQLiteRepository(db).Get(ctx, deviceSecretKey)
	require.NoError(t, err)
	require.Equal(t, first, stored)
}

func TestDeviceSecret_SurvivesLogout(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	secret, err := DeviceSecret(ctx, db)
	require.NoError(t, err)

	a := newAuthService(db, secret, 0, nopLogger())
	require.NoError(t, a.Logout(ctx))

	again, err := DeviceSecret(ctx, db)
	require.NoError(t, err)
	require.Equal(t, secret, again)
}

func TestDeviceSecret_ClosedDB(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Close())

	_, err := DeviceSecret(context.Background(), db)
	require.Error(t, err)
}
