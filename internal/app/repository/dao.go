package repository

import (
	"time"

	"vid2doc/internal/app/model"
)

// TranscriptionDAO records conversion outcomes so repeated runs can skip
// files that already succeeded, and so history can be exported.
type TranscriptionDAO interface {
	Close() error

	// CheckIfFileProcessed returns the history row id for a file that was
	// already converted successfully; err is non-nil when no such row exists.
	CheckIfFileProcessed(fileName string) (int, error)

	RecordSuccess(filePath, fileName string, audioDuration, blockCount int,
		text string, conversionTime time.Time) error

	RecordFailure(filePath, fileName string, audioDuration int,
		errorMessage string, conversionTime time.Time) error

	GetAll() ([]model.Transcription, error)
}
