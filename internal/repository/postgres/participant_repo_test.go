package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventmanager/internal/domain"
)

func TestParticipantRepository_Add(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		id           int64
		mock         func(mock sqlmock.Sqlmock)
		wantID       int64
		wantNotFound bool
		wantErr      bool
	}{
		{
			name: "insert locks parent then inserts",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM events WHERE id = \$1 FOR KEY SHARE`).
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
				mock.ExpectQuery(`INSERT INTO participants \(event_id, name\)`).
					WithArgs(int64(1), "Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
				mock.ExpectCommit()
			},
			wantID: 42,
		},
		{
			name: "missing parent event",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM events WHERE id = \$1 FOR KEY SHARE`).
					WithArgs(int64(1)).
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			wantNotFound: true,
		},
		{
			name: "update with vanished parent maps foreign key violation",
			id:   7,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE participants SET event_id = \$1, name = \$2 WHERE id = \$3`).
					WithArgs(int64(1), "Alice", int64(7)).
					WillReturnError(&pq.Error{Code: "23503"})
				mock.ExpectRollback()
			},
			wantNotFound: true,
		},
		{
			name: "insert db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`FOR KEY SHARE`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
				mock.ExpectQuery(`INSERT INTO participants`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			p, err := domain.NewParticipant(1, "Alice")
			require.NoError(t, err)
			p.ID = tt.id

			err = NewParticipantRepository(db).Add(ctx, p)
			switch {
			case tt.wantNotFound:
				require.Error(t, err)
				assert.True(t, domain.IsNotFound(err))
				assert.Equal(t, "event not found", err.Error())
			case tt.wantErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, p.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestParticipantRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, event_id, name FROM participants WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "name"}).AddRow(int64(42), int64(1), "Alice"))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, event_id, name FROM participants WHERE id = \$1`).
		WithArgs(int64(43)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	repo := NewParticipantRepository(db)
	got, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.EventID)
	assert.Equal(t, "Alice", got.Name())

	_, err = repo.GetByID(context.Background(), 43)
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, "participant not found", err.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantRepository_ListAllAndRemove(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, event_id, name FROM participants ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "name"}).
			AddRow(int64(1), int64(1), "Alice").
			AddRow(int64(2), int64(2), "Bob"))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM participants WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewParticipantRepository(db)
	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)

	require.NoError(t, repo.Remove(context.Background(), all[0]))
	require.NoError(t, mock.ExpectationsWereMet())
}
