package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/lifecalc/internal/logging"
	"github.com/dmitrijs2005/lifecalc/internal/storage"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// clock is a settable time source for expiry tests.
type clock struct{ t time.Time }

func newClock(t time.Time) *clock { return &clock{t: t} }

func (c *clock) Now() time.Time { return c.t }

func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func nopLogger() logging.Logger { return logging.NewNopLogger() }

func mustRegister(t *testing.T, a *authService, req RegisterRequest) {
	t.Helper()
	_, err := a.Register(context.Background(), req)
	require.NoError(t, err)
}
