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
)

func newMockRepo(t *testing.T) (*OrderRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewOrderRepository(db), mock
}

func TestNextOrderNumberFormatsSequence(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT nextval('order_number_seq')`)).
		WillReturnRows(sqlmock.NewRows([]string{"nextval"}).AddRow(42))

	num, err := repo.NextOrderNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ORD-000042", num)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNextOrderNumberError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT nextval('order_number_seq')`)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.NextOrderNumber(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "next order number")
}

func TestUpdateMissingOrder(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, err := repo.Update(context.Background(), id, map[string]any{"status": "confirmed"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByClientFiltersAndOrders(t *testing.T) {
	repo, mock := newMockRepo(t)
	clientID := uuid.New()

	mock.ExpectQuery(`FROM "orders" WHERE client_id = \$1 ORDER BY created_at DESC`).
		WithArgs(clientID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_number", "client_id", "amount", "final_amount"}).
			AddRow(uuid.NewString(), "ORD-000002", clientID.String(), 200.0, 200.0).
			AddRow(uuid.NewString(), "ORD-000001", clientID.String(), 100.0, 90.0))

	rows, err := repo.ListByClient(context.Background(), clientID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ORD-000002", rows[0].OrderNumber)
	assert.Equal(t, 90.0, rows[1].FinalAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
