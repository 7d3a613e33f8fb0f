package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fitstudio_backend/internals/features/users/auth/model"
)

func newMockRepo(t *testing.T) (*StaffRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewStaffRepository(db), mock
}

func TestCreateExclusiveCountsUnderLock(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`LOCK TABLE staff_users IN SHARE ROW EXCLUSIVE MODE`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "staff_users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "staff_users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
	mock.ExpectCommit()

	u := &model.StaffUserModel{Name: "Owner", Email: "owner@fitness.com", PasswordHash: "x"}
	var seen int64 = -1
	err := repo.CreateExclusive(context.Background(), u, func(existing int64) error {
		seen = existing
		u.Role = model.RoleAdmin
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), seen)
	assert.Equal(t, id, u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateExclusiveRefusalRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)
	refused := errors.New("refused")

	mock.ExpectBegin()
	mock.ExpectExec(`LOCK TABLE staff_users`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "staff_users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectRollback()

	err := repo.CreateExclusive(context.Background(), &model.StaffUserModel{Email: "x@fitness.com"},
		func(int64) error { return refused })
	assert.ErrorIs(t, err, refused)
	assert.NoError(t, mock.ExpectationsWereMet())
}
