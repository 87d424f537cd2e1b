package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Format selectors for document output.
const (
	FormatDocx = "docx"
	FormatTxt  = "txt"
	FormatPdf  = "pdf"
)

// Engine selectors for the transcription backend.
const (
	EngineLocal  = "local"
	EngineOpenAI = "openai"
)

// Config carries every knob of one conversion run. It is built from defaults,
// an optional YAML file, and CLI flags, then validated once before the
// pipeline starts.
type Config struct {
	Model       string   `yaml:"model" validate:"required"`
	BlockLength int      `yaml:"block" validate:"gte=1"`
	Device      string   `yaml:"device" validate:"oneof=cpu cuda auto"`
	Formats     []string `yaml:"formats" validate:"min=1,dive,oneof=docx txt pdf"`
	Language    string   `yaml:"language"`
	Engine      string   `yaml:"engine" validate:"oneof=local openai"`
	Force       bool     `yaml:"force"`
	Parallel    int      `yaml:"parallel" validate:"gte=1"`
}

// Default returns the configuration matching the CLI flag defaults.
func Default() Config {
	return Config{
		Model:       "base",
		BlockLength: 60,
		Device:      "auto",
		Formats:     []string{FormatDocx},
		Language:    "auto",
		Engine:      EngineLocal,
		Parallel:    1,
	}
}

// AllFormats lists every supported output format.
func AllFormats() []string {
	return []string{FormatDocx, FormatTxt, FormatPdf}
}

// LoadFile overlays values from a YAML config file onto cfg. Zero-valued
// fields in the file keep cfg's values.
func LoadFile(path string, cfg Config) (Config, error) {
	data, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	fileCfg := cfg
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return fileCfg, nil
}

var validate = validator.New()

// Validate rejects a configuration the pipeline must never see, such as a
// non-positive block length or an unknown device or format selector.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("invalid configuration: field %s failed %q check", e.Field(), e.Tag())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
