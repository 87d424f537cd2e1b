package sqlite

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*SQLiteDB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewWithDB(db), mock
}

func TestCheckIfFileProcessed_Found(t *testing.T) {
	sdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT id FROM transcriptions`).
		WithArgs("talk.mp4").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	id, err := sdb.CheckIfFileProcessed("talk.mp4")
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckIfFileProcessed_NotFound(t *testing.T) {
	sdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT id FROM transcriptions`).
		WithArgs("new.mp4").
		WillReturnError(sql.ErrNoRows)

	_, err := sdb.CheckIfFileProcessed("new.mp4")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordSuccess(t *testing.T) {
	sdb, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectExec(`INSERT INTO transcriptions`).
		WithArgs("talk.mp4", "/videos/talk.mp4", 125, 3, "[00:00–01:00] Hello", now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := sdb.RecordSuccess("/videos/talk.mp4", "talk.mp4", 125, 3, "[00:00–01:00] Hello", now)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordFailure(t *testing.T) {
	sdb, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectExec(`INSERT INTO transcriptions`).
		WithArgs("bad.mp4", "/videos/bad.mp4", 0, now, "ffmpeg error: exit status 1").
		WillReturnResult(sqlmock.NewResult(2, 1))

	err := sdb.RecordFailure("/videos/bad.mp4", "bad.mp4", 0, "ffmpeg error: exit status 1", now)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordSuccess_Error(t *testing.T) {
	sdb, mock := newMockDB(t)

	mock.ExpectExec(`INSERT INTO transcriptions`).
		WillReturnError(sql.ErrConnDone)

	err := sdb.RecordSuccess("/videos/talk.mp4", "talk.mp4", 10, 1, "text", time.Now())
	assert.Error(t, err)
}

func TestGetAll(t *testing.T) {
	sdb, mock := newMockDB(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "file_name", "file_path", "audio_duration", "block_count",
		"transcription", "conversion_time", "has_error", "error_message",
	}).
		AddRow(2, "b.mp4", "/v/b.mp4", 60, 1, "[00:00–01:00] later", now, 0, "").
		AddRow(1, "a.mp4", "/v/a.mp4", 120, 2, "[00:00–01:00] earlier", now.Add(-time.Hour), 1, "boom")

	mock.ExpectQuery(`SELECT id, file_name, file_path`).WillReturnRows(rows)

	all, err := sdb.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, "b.mp4", all[0].FileName)
	assert.Equal(t, 1, all[0].BlockCount)
	assert.Equal(t, 0, all[0].HasError)
	assert.Equal(t, "boom", all[1].ErrorMessage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAll_QueryError(t *testing.T) {
	sdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT id, file_name, file_path`).WillReturnError(sql.ErrConnDone)

	_, err := sdb.GetAll()
	assert.Error(t, err)
}
