package blob

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStoreLoad(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	store := &PostgresStore{db: db}

	rows := sqlmock.NewRows([]string{"data"}).AddRow([]byte(`[{"id":2}]`))
	mock.ExpectQuery("SELECT data FROM blobs WHERE key = \\$1").
		WithArgs(KeyDrinks).WillReturnRows(rows)

	data, err := store.Load(context.Background(), KeyDrinks)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":2}]`, string(data))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreLoadMissingKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	store := &PostgresStore{db: db}

	mock.ExpectQuery("SELECT data FROM blobs WHERE key = \\$1").
		WithArgs(KeyOrders).WillReturnError(sql.ErrNoRows)

	_, err = store.Load(context.Background(), KeyOrders)
	assert.ErrorIs(t, err, ErrNotExist)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreLoadQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	store := &PostgresStore{db: db}

	mock.ExpectQuery("SELECT data FROM blobs WHERE key = \\$1").
		WithArgs(KeyOrders).WillReturnError(errors.New("some error"))

	_, err = store.Load(context.Background(), KeyOrders)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotExist)
}

func TestPostgresStoreSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	store := &PostgresStore{db: db}

	mock.ExpectExec("INSERT INTO blobs").
		WithArgs(KeyStatistics, []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Save(context.Background(), KeyStatistics, []byte(`[]`)))

	assert.NoError(t, mock.ExpectationsWereMet())
}
