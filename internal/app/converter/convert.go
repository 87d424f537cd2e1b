package converter

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"vid2doc/internal/app/api"
	"vid2doc/internal/app/audio"
	"vid2doc/internal/app/blocks"
	"vid2doc/internal/app/config"
	"vid2doc/internal/app/model"
	"vid2doc/internal/app/repository"
	"vid2doc/internal/app/util/files"
	"vid2doc/internal/app/writer"
)

// Converter drives the per-file pipeline: extract audio, transcribe,
// aggregate into blocks, write documents, record history.
type Converter struct {
	transcriber api.Transcriber
	db          repository.TranscriptionDAO
	cfg         config.Config
	log         *zap.SugaredLogger

	ffmpegOnce sync.Once
	ffmpegPath string
	ffmpegErr  error
}

func NewConverter(transcriber api.Transcriber, transcriptionDAO repository.TranscriptionDAO,
	cfg config.Config, logger *zap.SugaredLogger) *Converter {
	return &Converter{
		transcriber: transcriber,
		db:          transcriptionDAO,
		cfg:         cfg,
		log:         logger,
	}
}

func (c *Converter) Close() error {
	return c.db.Close()
}

// Do resolves inputPath into video files and converts each in turn. One
// file's failure is recorded and logged without stopping its siblings; the
// returned error summarizes how many files failed.
func (c *Converter) Do(inputPath string) error {
	filesToProcess, err := c.Plan(inputPath)
	if err != nil {
		return err
	}
	if len(filesToProcess) == 0 {
		return nil
	}

	failed := 0
	for _, file := range filesToProcess {
		if err := c.ProcessFile(file); err != nil {
			c.log.Errorw("conversion failed", "file", file.Name, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(filesToProcess))
	}
	return nil
}

// Plan resolves the input path and drops files already converted
// successfully, unless force is set.
func (c *Converter) Plan(inputPath string) ([]model.FileInfo, error) {
	fileInfos, err := files.ResolveInput(inputPath)
	if err != nil {
		return nil, err
	}
	if len(fileInfos) == 0 {
		c.log.Infow("no video files found", "input", inputPath)
		return nil, nil
	}
	c.log.Infow("found video file(s)", "count", len(fileInfos), "input", inputPath)

	return c.filterUnprocessedFiles(fileInfos), nil
}

func (c *Converter) filterUnprocessedFiles(fileInfos []model.FileInfo) []model.FileInfo {
	if c.cfg.Force {
		return fileInfos
	}
	return lo.Filter(fileInfos, func(file model.FileInfo, _ int) bool {
		id, err := c.db.CheckIfFileProcessed(file.Name)
		if err == nil {
			c.log.Infow("file already processed, skipping", "file", file.Name, "id", id)
			return false
		}
		return true
	})
}

// ProcessFile converts a single video to documents. The temporary audio
// workspace is removed on every exit path.
func (c *Converter) ProcessFile(file model.FileInfo) error {
	jobID := fmt.Sprintf("convert-%s-%d", uuid.New().String()[:8], time.Now().Unix())
	log := c.log.With("job", jobID, "file", file.Name)
	log.Infow("processing video", "path", file.FullPath)

	c.ffmpegOnce.Do(func() {
		c.ffmpegPath, c.ffmpegErr = audio.FindFFmpeg()
	})
	if c.ffmpegErr != nil {
		return c.ffmpegErr
	}

	workspace, cleanup, err := audio.NewWorkspace()
	if err != nil {
		return err
	}
	defer cleanup()

	wavPath := filepath.Join(workspace, "audio.wav")
	if err := audio.ExtractAudio(c.ffmpegPath, file.FullPath, wavPath); err != nil {
		c.recordFailure(file, 0, err)
		return fmt.Errorf("audio extraction failed: %w", err)
	}

	duration, err := audio.GetAudioDuration(wavPath)
	if err != nil {
		c.recordFailure(file, 0, err)
		return fmt.Errorf("duration probe failed: %w", err)
	}
	log.Infow("audio extracted", "duration_seconds", duration)

	segments, err := c.transcriber.Transcribe(wavPath)
	if err != nil {
		c.recordFailure(file, duration, err)
		return fmt.Errorf("transcription failed: %w", err)
	}
	log.Infow("transcription complete", "segments", len(segments))

	bs := blocks.Aggregate(segments, c.cfg.BlockLength)

	written, err := writer.Write(bs, file.FullPath, c.cfg.Formats)
	if err != nil {
		c.recordFailure(file, duration, err)
		return err
	}

	text := strings.Join(lo.Map(bs, func(b blocks.Block, _ int) string {
		return writer.BlockLine(b)
	}), "\n")
	if err := c.db.RecordSuccess(file.FullPath, file.Name, duration, len(bs), text, time.Now()); err != nil {
		log.Warnw("failed to record conversion history", "error", err)
	}

	log.Infow("conversion finished", "blocks", len(bs), "outputs", written)
	return nil
}

func (c *Converter) recordFailure(file model.FileInfo, duration int, cause error) {
	if err := c.db.RecordFailure(file.FullPath, file.Name, duration, cause.Error(), time.Now()); err != nil {
		c.log.Warnw("failed to record failure", "file", file.Name, "error", err)
	}
}
