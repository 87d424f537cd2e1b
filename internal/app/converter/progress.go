package converter

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"vid2doc/internal/app/model"
)

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

type ProgressManager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

type ProgressBar struct {
	bar     *mpb.Bar
	enabled bool
}

func NewProgressManager(config ProgressConfig) *ProgressManager {
	if !config.Enabled {
		return &ProgressManager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	return &ProgressManager{
		container: container,
		enabled:   true,
	}
}

func (pm *ProgressManager) CreateBar(total int, description string) *ProgressBar {
	if !pm.enabled || pm.container == nil {
		return &ProgressBar{enabled: false}
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()

	bar := pm.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(
				decor.EwmaETA(decor.ET_STYLE_GO, 30, decor.WCSyncWidth), " done ",
			),
		),
	)

	return &ProgressBar{
		bar:     bar,
		enabled: true,
	}
}

func (pb *ProgressBar) Increment() {
	if pb.enabled && pb.bar != nil {
		pb.bar.Increment()
	}
}

func (pm *ProgressManager) Wait() {
	if pm.enabled && pm.container != nil {
		pm.container.Wait()
	}
}

func (pm *ProgressManager) Shutdown() {
	if pm.enabled && pm.container != nil {
		pm.container.Shutdown()
	}
}

// IsTTY reports whether writer is an interactive terminal.
func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}
	return IsTTY(os.Stderr)
}

// ProgressAwareConverter runs the pipeline over many files with a progress
// bar and a bounded worker pool.
type ProgressAwareConverter struct {
	*Converter
	progressManager *ProgressManager
}

func NewProgressAwareConverter(converter *Converter, config ProgressConfig) *ProgressAwareConverter {
	return &ProgressAwareConverter{
		Converter:       converter,
		progressManager: NewProgressManager(config),
	}
}

func (pac *ProgressAwareConverter) Close() error {
	if pac.progressManager != nil {
		pac.progressManager.Shutdown()
	}
	return pac.Converter.Close()
}

// Do converts all videos under inputPath, parallel up to the configured
// worker count. The block aggregator is a pure function and the writers
// touch disjoint output files, so files can safely run concurrently.
func (pac *ProgressAwareConverter) Do(inputPath string) error {
	filesToProcess, err := pac.Plan(inputPath)
	if err != nil {
		return err
	}
	if len(filesToProcess) == 0 {
		return nil
	}

	progressBar := pac.progressManager.CreateBar(len(filesToProcess), "Converting videos")
	defer pac.progressManager.Wait()

	parallel := pac.cfg.Parallel
	if parallel < 1 {
		parallel = 1
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, parallel)
	var mu sync.Mutex
	failed := 0

	for _, file := range filesToProcess {
		wg.Add(1)
		go func(file model.FileInfo) {
			defer wg.Done()
			defer progressBar.Increment()

			sem <- struct{}{}
			err := pac.ProcessFile(file)
			<-sem

			if err != nil {
				pac.log.Errorw("conversion failed", "file", file.Name, "error", err)
				mu.Lock()
				failed++
				mu.Unlock()
			}
		}(file)
	}
	wg.Wait()

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(filesToProcess))
	}
	return nil
}
