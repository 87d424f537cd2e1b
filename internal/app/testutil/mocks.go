// Package testutil provides mock implementations of the pipeline's
// interfaces for unit tests.
package testutil

import (
	"database/sql"
	"sync"
	"time"

	"vid2doc/internal/app/model"
)

// MockTranscriber returns canned segments and records every call.
type MockTranscriber struct {
	Segments []model.Segment
	Err      error

	mu    sync.Mutex
	Calls []string
}

func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

func (m *MockTranscriber) Transcribe(audioFilePath string) ([]model.Segment, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, audioFilePath)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	return m.Segments, nil
}

// RecordedSuccess captures one RecordSuccess call.
type RecordedSuccess struct {
	FilePath      string
	FileName      string
	AudioDuration int
	BlockCount    int
	Text          string
	Time          time.Time
}

// RecordedFailure captures one RecordFailure call.
type RecordedFailure struct {
	FilePath      string
	FileName      string
	AudioDuration int
	ErrorMessage  string
	Time          time.Time
}

// MockTranscriptionDAO is an in-memory TranscriptionDAO.
type MockTranscriptionDAO struct {
	mu        sync.Mutex
	Processed map[string]int
	Successes []RecordedSuccess
	Failures  []RecordedFailure
	Closed    bool
	CloseErr  error
	RecordErr error
}

func NewMockTranscriptionDAO() *MockTranscriptionDAO {
	return &MockTranscriptionDAO{Processed: map[string]int{}}
}

func (m *MockTranscriptionDAO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return m.CloseErr
}

func (m *MockTranscriptionDAO) CheckIfFileProcessed(fileName string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.Processed[fileName]; ok {
		return id, nil
	}
	return 0, sql.ErrNoRows
}

func (m *MockTranscriptionDAO) RecordSuccess(filePath, fileName string, audioDuration, blockCount int,
	text string, conversionTime time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RecordErr != nil {
		return m.RecordErr
	}
	m.Successes = append(m.Successes, RecordedSuccess{
		FilePath:      filePath,
		FileName:      fileName,
		AudioDuration: audioDuration,
		BlockCount:    blockCount,
		Text:          text,
		Time:          conversionTime,
	})
	return nil
}

func (m *MockTranscriptionDAO) RecordFailure(filePath, fileName string, audioDuration int,
	errorMessage string, conversionTime time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RecordErr != nil {
		return m.RecordErr
	}
	m.Failures = append(m.Failures, RecordedFailure{
		FilePath:      filePath,
		FileName:      fileName,
		AudioDuration: audioDuration,
		ErrorMessage:  errorMessage,
		Time:          conversionTime,
	})
	return nil
}

func (m *MockTranscriptionDAO) GetAll() ([]model.Transcription, error) {
	return nil, nil
}
