package convert

import (
	"fmt"

	"github.com/spf13/cobra"

	"vid2doc/internal/app"
	appconfig "vid2doc/internal/app/config"
	"vid2doc/internal/app/converter"
	"vid2doc/internal/app/logging"
)

var (
	model      string
	block      int
	device     string
	formats    []string
	allFormats bool
	engine     string
	language   string
	force      bool
	parallel   int
	progress   bool
	configFile string
)

func init() {
	Cmd.Flags().StringVarP(&model, "model", "m", "base", "whisper model to use")
	Cmd.Flags().IntVarP(&block, "block", "b", 60, "block length in seconds for text grouping")
	Cmd.Flags().StringVarP(&device, "device", "d", "auto", "device to use: cpu, cuda or auto")
	Cmd.Flags().StringSliceVarP(&formats, "format", "f", []string{appconfig.FormatDocx},
		"output format(s): docx, txt, pdf")
	Cmd.Flags().BoolVar(&allFormats, "all-formats", false, "write all output formats")
	Cmd.Flags().StringVarP(&engine, "engine", "e", appconfig.EngineLocal,
		"transcription engine: local (whisper.cpp) or openai")
	Cmd.Flags().StringVarP(&language, "language", "l", "auto", "spoken language hint")
	Cmd.Flags().BoolVar(&force, "force", false, "reprocess files already in the history")
	Cmd.Flags().IntVarP(&parallel, "parallel", "p", 1, "number of files converted concurrently")
	Cmd.Flags().BoolVar(&progress, "progress", false, "force the progress bar even without a TTY")
	Cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML config file overriding the defaults")
}

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert <video file or directory>",
	Short: "Convert video file(s) to transcript documents",
	Long: `Convert video file(s) to transcript documents

- A directory argument is scanned recursively for video files
- Each video's audio is extracted, transcribed and grouped into
  fixed-length time blocks
- Documents are written next to the input, same base name`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}

		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
		logger := logging.New(verbose)
		defer logger.Sync()

		progressConfig := converter.ProgressConfig{
			Enabled: converter.ShouldShowProgress(progress),
		}
		conv := app.InitializeProgressAwareConverter(cfg, logger, progressConfig)
		defer conv.Close()

		return conv.Do(args[0])
	},
	SilenceUsage: true,
}

// buildConfig merges defaults, the optional config file and explicit flags,
// then validates the result before anything runs.
func buildConfig(cmd *cobra.Command) (appconfig.Config, error) {
	cfg := appconfig.Default()

	if configFile != "" {
		var err error
		cfg, err = appconfig.LoadFile(configFile, cfg)
		if err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("model") {
		cfg.Model = model
	}
	if flags.Changed("block") {
		cfg.BlockLength = block
	}
	if flags.Changed("device") {
		cfg.Device = device
	}
	if flags.Changed("format") {
		cfg.Formats = formats
	}
	if flags.Changed("engine") {
		cfg.Engine = engine
	}
	if flags.Changed("language") {
		cfg.Language = language
	}
	if flags.Changed("parallel") {
		cfg.Parallel = parallel
	}
	cfg.Force = force
	if allFormats {
		cfg.Formats = appconfig.AllFormats()
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w\nrun 'v2d convert --help' for usage", err)
	}
	return cfg, nil
}
