package app

import (
	"log"
	"path/filepath"

	"go.uber.org/zap"

	"vid2doc/internal/app/api"
	openaiclient "vid2doc/internal/app/api/openai"
	"vid2doc/internal/app/api/openai/whisper"
	"vid2doc/internal/app/api/whisper_cpp"
	appconfig "vid2doc/internal/app/config"
	"vid2doc/internal/app/repository"
	"vid2doc/internal/app/repository/sqlite"
	"vid2doc/internal/app/util/files"
	"vid2doc/internal/config"
)

// provideTranscriber picks the transcription engine from the configuration.
func provideTranscriber(cfg appconfig.Config, logger *zap.SugaredLogger) api.Transcriber {
	switch cfg.Engine {
	case appconfig.EngineOpenAI:
		if _, err := config.OpenAIKey(); err != nil {
			log.Fatalf("openai engine unavailable: %v", err)
		}
		return whisper.NewRemoteTranscriber(openaiclient.GetClient())
	default:
		binaryPath, err := config.WhisperBinary()
		if err != nil {
			log.Fatalf("local engine unavailable: %v", err)
		}

		dataDir, err := files.DataDir()
		if err != nil {
			log.Fatalf("failed to resolve data directory: %v", err)
		}
		modelDir := config.WhisperModelDir(filepath.Join(dataDir, "models"))
		modelPath := whisper_cpp.ResolveModelPath(cfg.Model, modelDir)

		device := appconfig.ResolveDevice(cfg.Device)
		logger.Infow("using local whisper.cpp engine",
			"binary", binaryPath, "model", modelPath, "device", device)

		return whisper_cpp.NewLocalTranscriber(binaryPath, modelPath, cfg.Language, device)
	}
}

// provideTranscriptionDAO opens the per-user history database.
func provideTranscriptionDAO() repository.TranscriptionDAO {
	dataDir, err := files.DataDir()
	if err != nil {
		log.Fatalf("failed to resolve data directory: %v", err)
	}

	dbPath := filepath.Join(dataDir, "transcriptions.db")
	db, err := sqlite.NewSQLiteDB(dbPath)
	if err != nil {
		log.Fatalf("failed to open history database: %v", err)
	}
	return db
}

// OpenHistoryDAO is the export command's entry to the history database.
func OpenHistoryDAO() repository.TranscriptionDAO {
	return provideTranscriptionDAO()
}
