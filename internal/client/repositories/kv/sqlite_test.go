package kv

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db), mock
}

func TestSQLiteStore_GetErrorWrapped(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv WHERE key = ?`)).
		WithArgs("k").
		WillReturnError(errors.New("disk I/O"))

	_, ok, err := s.Get(context.Background(), "k")
	require.Error(t, err)
	require.False(t, ok)
	require.Contains(t, err.Error(), "failed to get kv[k]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_SetErrorWrapped(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(`INSERT INTO kv`).WithArgs("k", "v").WillReturnError(errors.New("readonly"))

	err := s.Set(context.Background(), "k", "v")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to set kv[k]")
}

func TestSQLiteStore_RemoveErrorWrapped(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(`DELETE FROM kv`).WithArgs("k").WillReturnError(errors.New("locked"))

	err := s.Remove(context.Background(), "k")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to remove kv[k]")
}

func TestSQLiteStore_SetManyRollsBackOnError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO kv`).WithArgs("only", "1").WillReturnError(errors.New("constraint"))
	mock.ExpectRollback()

	err := s.SetMany(context.Background(), map[string]string{"only": "1"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to set kv[only]")
	require.NoError(t, mock.ExpectationsWereMet())
}
