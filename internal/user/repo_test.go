package user

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bozhidarvelkov/pixelmorph/internal/models"
	"github.com/bozhidarvelkov/pixelmorph/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

func newMockDB(t *testing.T) (*bun.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqldb.Close() })
	return bun.NewDB(sqldb, pgdialect.New()), mock
}

func userColumns() []string {
	return []string{
		"id", "clerk_id", "email", "username", "photo",
		"first_name", "last_name", "plan_id", "create_balance",
		"created_at", "updated_at",
	}
}

func userRow(rows *sqlmock.Rows, id string, balance int) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, "clerk-1", "a@b.c", "ab", "https://img/x.png",
		nil, nil, 1, balance, now, now)
}

func TestAdjustCredits_Debit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	// The generated SQL must increment in place, with no clamping to zero.
	mock.ExpectQuery(`UPDATE "users" .* SET create_balance = create_balance \+ -10`).
		WillReturnRows(userRow(sqlmock.NewRows(userColumns()), "user-1", 0))

	updated, err := repo.AdjustCredits(context.Background(), "user-1", -10)

	require.NoError(t, err)
	assert.Equal(t, 0, updated.CreditBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustCredits_DebitBelowZero(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	// Balance 0, debit 10: the ledger happily reports -10.
	mock.ExpectQuery(`UPDATE "users" .* SET create_balance = create_balance \+ -10`).
		WillReturnRows(userRow(sqlmock.NewRows(userColumns()), "user-1", -10))

	updated, err := repo.AdjustCredits(context.Background(), "user-1", -10)

	require.NoError(t, err)
	assert.Equal(t, -10, updated.CreditBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustCredits_Credit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`UPDATE "users" .* SET create_balance = create_balance \+ 120`).
		WillReturnRows(userRow(sqlmock.NewRows(userColumns()), "user-1", 130))

	updated, err := repo.AdjustCredits(context.Background(), "user-1", 120)

	require.NoError(t, err)
	assert.Equal(t, 130, updated.CreditBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustCredits_UnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`UPDATE "users"`).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.AdjustCredits(context.Background(), "missing", -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrorNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByClerkID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "users"`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByClerkID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrorNotFound)
}

func TestCreate_RequiresIdentityFields(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewUserRepository(db)

	err := repo.Create(context.Background(), &models.User{Email: "a@b.c"})

	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrorValidation)
}
