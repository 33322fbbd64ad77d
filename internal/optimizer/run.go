package optimizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Run walks root and feeds every candidate file through the per-file step,
// strictly one at a time. Per-file failures are logged and counted but never
// stop the walk; only option validation, a bad root, a walk error, or
// context cancellation is fatal. A root that is itself a matching file is
// processed as a one-candidate run.
func Run(ctx context.Context, root string, opts Options, updates chan<- ProgressUpdate) (Summary, []Result, error) {
	summary := Summary{}
	var results []Result

	if err := opts.validate(); err != nil {
		return summary, nil, err
	}
	if opts.Log == nil {
		opts.Log = log.New(io.Discard)
	}

	info, err := os.Stat(root)
	if err != nil {
		return summary, nil, err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return summary, nil, err
	}

	process := func(job Job) {
		summary.Candidates++
		if updates != nil {
			updates <- ProgressUpdate{CandidateDelta: 1}
		}

		var res Result
		if opts.Mode == ModeScan {
			res = probeFile(job, opts)
		} else {
			res = optimizeFile(job, opts)
		}
		results = append(results, res)

		if res.Err != nil {
			summary.Failed++
			opts.Log.Error("skipping file", "path", res.Display, "stage", res.Stage.String(), "err", res.Err)
			if updates != nil {
				updates <- ProgressUpdate{FailedDelta: 1}
			}
			return
		}

		summary.Optimized++
		summary.BytesSaved += res.BytesSaved
		summary.MetaDropped += res.MetaDropped
		if updates != nil {
			updates <- ProgressUpdate{
				OptimizedDelta:   1,
				BytesSavedDelta:  res.BytesSaved,
				MetaDroppedDelta: res.MetaDropped,
			}
		}

		if opts.Mode == ModeOptimize && opts.Verbose {
			if res.Resized {
				opts.Log.Info("optimized", "path", res.Display, "format", res.TargetFormat.String(),
					"size", fmt.Sprintf("%dx%d", res.NewWidth, res.NewHeight))
			} else {
				opts.Log.Info("optimized", "path", res.Display, "format", res.TargetFormat.String())
			}
		}
	}

	if !info.IsDir() {
		if IsCandidate(absRoot) {
			process(Job{Path: absRoot, RelPath: filepath.Base(absRoot), Display: filepath.Base(absRoot)})
		}
		return summary, results, nil
	}

	fsys := os.DirFS(absRoot)
	err = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !IsCandidate(path) {
			return nil
		}

		process(Job{Path: filepath.Join(absRoot, path), RelPath: path, Display: path})
		return nil
	})
	if err != nil {
		return summary, results, err
	}

	return summary, results, nil
}

func (o Options) validate() error {
	if o.MaxWidth < 0 || o.MaxHeight < 0 {
		return errors.New("width and height must be positive")
	}
	if o.MaxWidth > 0 && o.MaxHeight > 0 {
		return errors.New("max width and max height are mutually exclusive")
	}
	switch o.OutputFormat {
	case FormatKeep, FormatJPEG, FormatPNG, FormatWebP:
		return nil
	default:
		return fmt.Errorf("unknown output format %d", int(o.OutputFormat))
	}
}
