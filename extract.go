package xcursor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/xcursor/internal/image"
	"github.com/gogpu/xcursor/internal/parallel"
)

// Extractor turns a cursor file into frame images and a manifest.
type Extractor struct {
	opts extractOptions
}

// NewExtractor creates an Extractor with the given options.
func NewExtractor(opts ...ExtractOption) *Extractor {
	o := defaultExtractOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Extractor{opts: o}
}

// FrameOutput describes one written frame.
type FrameOutput struct {
	Index int // 1-based
	Path  string
	Frame *Frame
}

// Report summarizes an extraction.
type Report struct {
	Source       string
	Result       *ParseResult
	ManifestPath string        // empty when the manifest is disabled
	Frames       []FrameOutput // written frames in index order
}

// Extract parses input and writes its frames and manifest into outDir,
// creating the directory if needed.
//
// The manifest is written first, then the frames. The first frame that fails
// to encode aborts the run: frames not yet started are skipped and an
// *EncodeError is returned. The returned Report is non-nil whenever parsing
// succeeded and lists what was written, also on failure.
func (e *Extractor) Extract(ctx context.Context, input, outDir string) (*Report, error) {
	if !e.opts.format.IsValid() {
		return nil, fmt.Errorf("%w: %v", image.ErrUnsupportedFormat, e.opts.format)
	}

	res, err := ParseFile(input)
	if err != nil {
		return nil, err
	}
	report := &Report{Source: input, Result: res}
	if len(res.Frames) == 0 {
		return report, ErrNoFrames
	}

	if err := ensureDir(outDir); err != nil {
		return report, err
	}

	if name := e.opts.manifestName; name != "" {
		path := filepath.Join(outDir, name)
		if err := writeManifestFile(path, input, res); err != nil {
			return report, err
		}
		report.ManifestPath = path
		Logger().Info("xcursor: wrote manifest", slog.String("path", path))
	}

	fw := NewFrameWriter(outDir, e.opts.format)
	pool := parallel.NewWorkerPool(e.opts.workers)
	defer pool.Close()
	Logger().Debug("xcursor: writing frames", slog.Int("frames", len(res.Frames)),
		slog.Any("sizes", res.Sizes()), slog.Int("workers", pool.Workers()),
		slog.String("format", e.opts.format.String()))

	outputs := make([]FrameOutput, len(res.Frames))
	err = pool.RunIndexed(ctx, len(res.Frames), func(i int) error {
		f := res.Frames[i]
		path, err := fw.WriteFrame(i+1, f)
		if err != nil {
			return err
		}
		outputs[i] = FrameOutput{Index: i + 1, Path: path, Frame: f}
		Logger().Info("xcursor: wrote frame", slog.Int("frame", i+1),
			slog.String("path", path), slog.Uint64("size", uint64(f.Size)))
		return nil
	})

	for _, out := range outputs {
		if out.Path != "" {
			report.Frames = append(report.Frames, out)
		}
	}
	if err != nil {
		Logger().Warn("xcursor: extraction stopped", slog.String("error", err.Error()),
			slog.Int("written", len(report.Frames)), slog.Int("frames", len(res.Frames)))
	}
	return report, err
}

// ensureDir creates dir (0755) unless it already exists as a directory.
func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
		}
		return nil
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("xcursor: create output directory: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("xcursor: stat output directory: %w", err)
	}
}

func writeManifestFile(path, source string, res *ParseResult) (err error) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("xcursor: create manifest: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("xcursor: close manifest: %w", cerr)
		}
	}()

	if err := WriteManifest(f, source, res); err != nil {
		return fmt.Errorf("xcursor: write manifest: %w", err)
	}
	return nil
}
