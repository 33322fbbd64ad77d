package optimizer

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"squish/pkg/imgutil"
)

// probeFile is the read-only counterpart of optimizeFile: it reports what an
// optimize run would do to the file without touching any bytes on disk.
func probeFile(job Job, opts Options) Result {
	res := Result{Path: job.Path, Display: job.Display}

	data, err := os.ReadFile(job.Path)
	if err != nil {
		res.Stage = StageRead
		res.Err = err
		return res
	}

	kind, err := imgutil.DetectHeader(data)
	if err != nil || kind == imgutil.KindUnknown {
		res.Stage = StageDecode
		res.Err = fmt.Errorf("unrecognized image signature")
		return res
	}
	res.Kind = kind

	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		res.Stage = StageDecode
		res.Err = fmt.Errorf("decode: %w", err)
		return res
	}

	res.SourceFormat = formatFromName(name)
	res.TargetFormat = opts.OutputFormat
	if res.TargetFormat == FormatKeep {
		res.TargetFormat = res.SourceFormat
	}

	res.OldWidth, res.OldHeight = cfg.Width, cfg.Height
	res.NewWidth, res.NewHeight = FitDimensions(res.OldWidth, res.OldHeight, opts.MaxWidth, opts.MaxHeight)
	res.Resized = res.NewWidth != res.OldWidth || res.NewHeight != res.OldHeight
	res.MetaDropped = countExifTags(data)

	return res
}
