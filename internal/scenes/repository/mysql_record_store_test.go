package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/scenes/internal/errors"
)

func TestNewMySQLRecordStore(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewMySQLRecordStore(db)
	assert.NotNil(t, store)
	assert.IsType(t, &MySQLRecordStore{}, store)
}

func TestMySQLRecordStore_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewMySQLRecordStore(db)
	ctx := context.Background()

	t.Run("returns the stored record", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"record"}).AddRow("sealed-blob")
		mock.ExpectQuery(`SELECT record FROM scene_records WHERE storage_key = \?`).
			WithArgs("scenes:abc123").
			WillReturnRows(rows)

		record, err := store.Get(ctx, "scenes:abc123")
		require.NoError(t, err)
		assert.Equal(t, "sealed-blob", record)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing rows to not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT record FROM scene_records WHERE storage_key = \?`).
			WithArgs("scenes:missing").
			WillReturnRows(sqlmock.NewRows([]string{"record"}))

		record, err := store.Get(ctx, "scenes:missing")
		assert.Empty(t, record)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMySQLRecordStore_Put(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewMySQLRecordStore(db)
	ctx := context.Background()

	t.Run("upserts the record", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO scene_records`).
			WithArgs("scenes:abc123", "sealed-blob", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Put(ctx, "scenes:abc123", "sealed-blob")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps exec errors", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO scene_records`).
			WithArgs("scenes:abc123", "sealed-blob", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(errors.New("connection reset"))

		err := store.Put(ctx, "scenes:abc123", "sealed-blob")
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
