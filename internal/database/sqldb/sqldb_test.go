package sqldb

import (
	"context"
	"errors"
	"testing"

	"placement-engine/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return Wrap(db), mock
}

func TestDB_QueryAndExec(t *testing.T) {
	d, mock := newMock(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT name FROM students").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("ana").AddRow("budi"))
	mock.ExpectExec("UPDATE students").WithArgs("x").WillReturnResult(sqlmock.NewResult(0, 2))

	rs, err := d.Query(ctx, "SELECT name FROM students")
	require.NoError(t, err)
	var names []string
	for rs.Next() {
		var n string
		require.NoError(t, rs.Scan(&n))
		names = append(names, n)
	}
	require.NoError(t, rs.Err())
	rs.Close()
	assert.Equal(t, []string{"ana", "budi"}, names)

	n, err := d.Exec(ctx, "UPDATE students SET name = $1", "x")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_TxRollsBack(t *testing.T) {
	d, mock := newMock(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO skill_relationships").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	tx, err := d.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.Exec(ctx, "INSERT INTO skill_relationships VALUES (1)")
	require.Error(t, err)
	require.NoError(t, tx.Rollback(ctx))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_Nil(t *testing.T) {
	var d *DB
	ctx := context.Background()
	assert.ErrorIs(t, d.Ping(ctx), errNilDB)
	assert.ErrorIs(t, d.QueryRow(ctx, "SELECT 1").Scan(), errNilDB)
	assert.NoError(t, d.Close())
}

func TestWithTx(t *testing.T) {
	d, mock := newMock(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO skill_relationships").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := database.WithTx(ctx, d, func(q database.Querier) error {
		_, err := q.Exec(ctx, "INSERT INTO skill_relationships VALUES ($1)", "go")
		return err
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectRollback()
	boom := errors.New("boom")
	err = database.WithTx(ctx, d, func(database.Querier) error { return boom })
	assert.ErrorIs(t, err, boom)

	require.NoError(t, mock.ExpectationsWereMet())
}
