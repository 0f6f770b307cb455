package calculations

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/lifecalc/internal/models"
	"github.com/dmitrijs2005/lifecalc/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sample(id, userID string) *models.SavedCalculation {
	return &models.SavedCalculation{
		ID:         id,
		UserID:     userID,
		Name:       "Asha",
		Age:        35,
		Gender:     "female",
		SumAssured: 250000,
		Term:       10,
		Riders:     models.Riders{ADDB: true, Maturity: true},
		Result: models.CalculationResult{
			BasePremium: 195450,
			Rebate:      5000,
			Premium:     190450,
			GSTAmount:   8570,
			Total:       199020,
			Frequency:   models.FrequencyAnnual,
			TotalAnnual: 199020,
		},
		PolicyID:   "717",
		CategoryID: models.CategoryEndowment,
		PolicyName: "Single Premium Endowment Plan",
		CreatedAt:  time.Date(2025, 3, 15, 10, 0, 0, 123, time.UTC),
	}
}

func TestInsertAndList_RoundTrip(t *testing.T) {
	ctx := context.Background()
	r := NewSQLiteRepository(setupDB(t))

	want := sample("c-1", "u-1")
	require.NoError(t, r.Insert(ctx, want))

	got, err := r.ListByUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, *want, got[0])
}

func TestListByUser_InsertionOrderAndIsolation(t *testing.T) {
	ctx := context.Background()
	r := NewSQLiteRepository(setupDB(t))

	// ids sort opposite to insertion order
	for _, id := range []string{"c", "b", "a"} {
		require.NoError(t, r.Insert(ctx, sample(id, "u-1")))
	}
	require.NoError(t, r.Insert(ctx, sample("z", "u-2")))

	got, err := r.ListByUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "a", got[2].ID)

	n, err := r.CountByUser(ctx, "u-2")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	empty, err := r.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestInsert_DuplicateID(t *testing.T) {
	ctx := context.Background()
	r := NewSQLiteRepository(setupDB(t))

	require.NoError(t, r.Insert(ctx, sample("c-1", "u-1")))
	err := r.Insert(ctx, sample("c-1", "u-1"))
	require.ErrorContains(t, err, "failed to insert calculation")
}

func TestDeleteOwned(t *testing.T) {
	ctx := context.Background()
	r := NewSQLiteRepository(setupDB(t))

	require.NoError(t, r.Insert(ctx, sample("c-1", "u-1")))

	ok, err := r.DeleteOwned(ctx, "u-2", "c-1")
	require.NoError(t, err)
	assert.False(t, ok, "must not delete another user's calculation")

	ok, err = r.DeleteOwned(ctx, "u-1", "c-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.DeleteOwned(ctx, "u-1", "c-1")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := r.CountByUser(ctx, "u-1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func newRepoWithMock(t *testing.T) (*SQLiteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db), mock
}

func TestDBErrorsWrapped(t *testing.T) {
	ctx := context.Background()
	r, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM saved_calculations`).WillReturnError(errors.New("boom"))
	_, err := r.CountByUser(ctx, "u-1")
	require.ErrorContains(t, err, "failed to count calculations: boom")

	mock.ExpectQuery(`FROM saved_calculations`).WillReturnError(errors.New("boom"))
	_, err = r.ListByUser(ctx, "u-1")
	require.ErrorContains(t, err, "failed to list calculations: boom")

	mock.ExpectExec(`DELETE FROM saved_calculations`).WillReturnError(errors.New("boom"))
	_, err = r.DeleteOwned(ctx, "u-1", "c-1")
	require.ErrorContains(t, err, "failed to delete calculation: boom")

	mock.ExpectExec(`DELETE FROM saved_calculations`).
		WillReturnResult(sqlmock.NewErrorResult(errors.New("no rows info")))
	_, err = r.DeleteOwned(ctx, "u-1", "c-1")
	require.ErrorContains(t, err, "no rows info")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser_BadRows(t *testing.T) {
	ctx := context.Background()
	r, mock := newRepoWithMock(t)

	cols := []string{"id", "user_id", "name", "age", "gender", "sum_assured", "term", "riders",
		"base_premium", "rebate", "premium", "gst_amount", "total_premium", "frequency", "total_annual",
		"policy_id", "category_id", "policy_name", "created_at"}

	mock.ExpectQuery(`FROM saved_calculations`).WillReturnRows(sqlmock.NewRows(cols).
		AddRow("c-1", "u-1", "n", 30, "", 1, 10, "not json", 1, 0, 1, 0, 1, "annual", 1, "", "", "", "2025-03-15T10:00:00Z"))
	_, err := r.ListByUser(ctx, "u-1")
	require.ErrorContains(t, err, "failed to decode riders of c-1")

	mock.ExpectQuery(`FROM saved_calculations`).WillReturnRows(sqlmock.NewRows(cols).
		AddRow("c-1", "u-1", "n", 30, "", 1, 10, "{}", 1, 0, 1, 0, 1, "annual", 1, "", "", "", "yesterday"))
	_, err = r.ListByUser(ctx, "u-1")
	require.ErrorContains(t, err, "failed to parse created_at of c-1")
}
