package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by the application.
const (
	EnvOpenAIKey       = "OPENAI_API_KEY"
	EnvWhisperBinary   = "WHISPER_CPP_BINARY"
	EnvWhisperModelDir = "WHISPER_CPP_MODEL_DIR"
)

// LoadEnv loads environment variables from a .env file if one exists. A
// missing file is not an error; variables may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}
	return nil
}

// OpenAIKey returns the OpenAI API key after a basic format check.
func OpenAIKey() (string, error) {
	key := strings.TrimSpace(os.Getenv(EnvOpenAIKey))
	if key == "" {
		return "", fmt.Errorf("%s is not set - required for the openai engine", EnvOpenAIKey)
	}
	if !strings.HasPrefix(key, "sk-") || len(key) < 20 {
		return "", fmt.Errorf("invalid %s format: must start with 'sk-'", EnvOpenAIKey)
	}
	return key, nil
}

// WhisperBinary returns the whisper.cpp binary path for the local engine.
func WhisperBinary() (string, error) {
	path := strings.TrimSpace(os.Getenv(EnvWhisperBinary))
	if path == "" {
		return "", fmt.Errorf("%s is not set - required for the local engine", EnvWhisperBinary)
	}
	return path, nil
}

// WhisperModelDir returns the directory holding ggml model files, falling
// back to fallbackDir when unset.
func WhisperModelDir(fallbackDir string) string {
	if dir := strings.TrimSpace(os.Getenv(EnvWhisperModelDir)); dir != "" {
		return dir
	}
	return fallbackDir
}
