package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventmanager/internal/domain"
)

func TestSpeakerRepository_AddAndGet(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM events WHERE id = \$1 FOR KEY SHARE`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))
	mock.ExpectQuery(`INSERT INTO speakers \(event_id, name, description\)`).
		WithArgs(int64(2), "Bob", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, event_id, name, description FROM speakers WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "name", "description"}).AddRow(int64(5), int64(2), "Bob", ""))
	mock.ExpectCommit()

	repo := NewSpeakerRepository(db)
	s, err := domain.NewSpeaker(2, "Bob", "")
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, s))
	assert.Equal(t, int64(5), s.ID)

	got, err := repo.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.Name())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVendorRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE vendors SET event_id = \$1, name = \$2, services = \$3 WHERE id = \$4`).
		WithArgs(int64(1), "Catering", "lunch", int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	v, err := domain.NewVendor(1, "Catering", "lunch")
	require.NoError(t, err)
	v.ID = 8

	err = NewVendorRepository(db).Add(context.Background(), v)
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, "vendor not found", err.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackRepository_AddMissingEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM events WHERE id = \$1 FOR KEY SHARE`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	f, err := domain.NewFeedback(99, "Great")
	require.NoError(t, err)

	err = NewFeedbackRepository(db).Add(context.Background(), f)
	assert.True(t, domain.IsNotFound(err))
	assert.Zero(t, f.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackRepository_ListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, event_id, content FROM feedbacks ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "content"}))
	mock.ExpectCommit()

	got, err := NewFeedbackRepository(db).ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_BeginFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	err = NewVendorRepository(db).Remove(context.Background(), &domain.Vendor{ID: 1})
	require.ErrorIs(t, err, sql.ErrConnDone)
	require.NoError(t, mock.ExpectationsWereMet())
}
