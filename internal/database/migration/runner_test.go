package migration

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"placement-engine/migrations"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"V2__indexes.sql": {Data: []byte("CREATE INDEX a ON t (x);")},
		"V1__init.sql":    {Data: []byte("CREATE TABLE t (x INT);\n")},
		"README.md":       {Data: []byte("ignored")},
	}
}

func TestLoad_OrdersAndChecksums(t *testing.T) {
	migs, err := Load(testFS())
	require.NoError(t, err)
	require.Len(t, migs, 2)
	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "init", migs[0].Name)
	assert.Equal(t, "CREATE TABLE t (x INT);", migs[0].SQL)
	assert.Len(t, migs[0].Checksum, 64)
	assert.Equal(t, int64(2), migs[1].Version)
}

func TestLoad_Rejects(t *testing.T) {
	_, err := Load(fstest.MapFS{"V1__a.sql": {Data: []byte("  ")}})
	assert.Error(t, err)

	_, err = Load(fstest.MapFS{
		"V1__a.sql":  {Data: []byte("SELECT 1")},
		"V01__b.sql": {Data: []byte("SELECT 2")},
	})
	assert.Error(t, err)
}

func TestLoad_EmbeddedSchema(t *testing.T) {
	migs, err := Load(migrations.FS)
	require.NoError(t, err)
	require.NotEmpty(t, migs)
	assert.Equal(t, int64(1), migs[0].Version)
	assert.Contains(t, migs[0].SQL, "CREATE TABLE IF NOT EXISTS students")
}

func TestRunner_AppliesPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migs, err := Load(testFS())
	require.NoError(t, err)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("SELECT pg_advisory_lock").WithArgs(lockKey).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version, checksum FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version", "checksum"}).AddRow(int64(1), migs[0].Checksum))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE INDEX a ON t").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs(int64(2), "indexes", migs[1].Checksum, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectExec("SELECT pg_advisory_unlock").WithArgs(lockKey).WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := Runner{FS: testFS()}.Run(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunner_ChecksumMismatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("SELECT pg_advisory_lock").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version, checksum FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version", "checksum"}).AddRow(int64(1), "stale"))
	mock.ExpectExec("SELECT pg_advisory_unlock").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = Runner{FS: testFS()}.Run(context.Background(), db)
	assert.True(t, errors.Is(err, ErrChecksumMismatch))
	require.NoError(t, mock.ExpectationsWereMet())
}
