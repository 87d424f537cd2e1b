package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"vid2doc/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcriptions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	file_name TEXT NOT NULL,
	file_path TEXT NOT NULL,
	audio_duration INTEGER NOT NULL DEFAULT 0,
	block_count INTEGER NOT NULL DEFAULT 0,
	transcription TEXT NOT NULL DEFAULT '',
	conversion_time TIMESTAMP NOT NULL,
	has_error INTEGER NOT NULL DEFAULT 0,
	error_message TEXT NOT NULL DEFAULT ''
);`

type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (and if necessary creates) the history database at
// dbFilePath.
func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", dbFilePath, err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create transcriptions table: %w", err)
	}
	return &SQLiteDB{db: db}, nil
}

// NewWithDB wraps an existing connection, used by tests.
func NewWithDB(db *sql.DB) *SQLiteDB {
	return &SQLiteDB{db: db}
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) CheckIfFileProcessed(fileName string) (int, error) {
	query := `SELECT id FROM transcriptions WHERE file_name = ? AND has_error = 0`
	row := sdb.db.QueryRow(query, fileName)
	var id int
	err := row.Scan(&id)
	return id, err
}

func (sdb *SQLiteDB) RecordSuccess(filePath, fileName string, audioDuration, blockCount int,
	text string, conversionTime time.Time) error {
	insertSQL := `INSERT INTO transcriptions
		(file_name, file_path, audio_duration, block_count, transcription, conversion_time, has_error, error_message)
		VALUES (?, ?, ?, ?, ?, ?, 0, '');`
	_, err := sdb.db.Exec(insertSQL, fileName, filePath, audioDuration, blockCount, text, conversionTime)
	if err != nil {
		return fmt.Errorf("failed to record transcription for %s: %w", fileName, err)
	}
	return nil
}

func (sdb *SQLiteDB) RecordFailure(filePath, fileName string, audioDuration int,
	errorMessage string, conversionTime time.Time) error {
	insertSQL := `INSERT INTO transcriptions
		(file_name, file_path, audio_duration, block_count, transcription, conversion_time, has_error, error_message)
		VALUES (?, ?, ?, 0, '', ?, 1, ?);`
	_, err := sdb.db.Exec(insertSQL, fileName, filePath, audioDuration, conversionTime, errorMessage)
	if err != nil {
		return fmt.Errorf("failed to record failure for %s: %w", fileName, err)
	}
	return nil
}

func (sdb *SQLiteDB) GetAll() ([]model.Transcription, error) {
	sqlStr := `
		SELECT id, file_name, file_path, audio_duration, block_count, transcription, conversion_time, has_error, error_message
		FROM transcriptions
		ORDER BY conversion_time DESC;`
	rows, err := sdb.db.Query(sqlStr)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	transcriptions := make([]model.Transcription, 0)
	for rows.Next() {
		var t model.Transcription
		err = rows.Scan(&t.ID, &t.FileName, &t.FilePath, &t.AudioDuration, &t.BlockCount,
			&t.Text, &t.ConversionTime, &t.HasError, &t.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		transcriptions = append(transcriptions, t)
	}
	return transcriptions, rows.Err()
}
