package optimizer

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/gen2brain/webp"
	"github.com/nfnt/resize"

	"squish/pkg/imgutil"
)

const (
	jpegQuality = 85
	webpQuality = 85
	// libwebp's slowest, highest-effort compression method.
	webpMethod = 6
)

// optimizeFile decodes one candidate, applies the planned resize, re-encodes
// at the target format's settings, and overwrites the original path. The
// on-disk name never changes, even when the container format does.
func optimizeFile(job Job, opts Options) Result {
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

	img, name, err := image.Decode(bytes.NewReader(data))
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

	res.MetaDropped = countExifTags(data)

	bounds := img.Bounds()
	res.OldWidth, res.OldHeight = bounds.Dx(), bounds.Dy()
	res.NewWidth, res.NewHeight = FitDimensions(res.OldWidth, res.OldHeight, opts.MaxWidth, opts.MaxHeight)
	if res.NewWidth != res.OldWidth || res.NewHeight != res.OldHeight {
		img = resize.Resize(uint(res.NewWidth), uint(res.NewHeight), img, resize.Lanczos3)
		res.Resized = true
	}

	var buf bytes.Buffer
	if err := encodeAs(&buf, img, res.TargetFormat); err != nil {
		res.Stage = StageEncode
		res.Err = fmt.Errorf("encode %s: %w", res.TargetFormat, err)
		return res
	}

	saved, err := overwrite(job.Path, buf.Bytes())
	if err != nil {
		res.Stage = StageWrite
		res.Err = err
		return res
	}
	res.BytesSaved = saved

	return res
}

func encodeAs(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case FormatWebP:
		return webp.Encode(w, img, webp.Options{Quality: webpQuality, Method: webpMethod})
	default:
		return fmt.Errorf("no encoder for format %q", format)
	}
}

// overwrite replaces the file at path with data via a temp file in the same
// directory, keeping the original mode. Returns bytes saved (negative when
// the rewrite grew the file).
func overwrite(path string, data []byte) (int64, error) {
	srcInfo, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), "squish-*.tmp")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmpFile.Name())

	if err := tmpFile.Chmod(srcInfo.Mode()); err != nil {
		_ = tmpFile.Close()
		return 0, err
	}
	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return 0, err
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return 0, err
	}
	if err := tmpFile.Close(); err != nil {
		return 0, err
	}

	if err := replaceFile(tmpFile.Name(), path); err != nil {
		return 0, err
	}

	return srcInfo.Size() - int64(len(data)), nil
}

func replaceFile(tmpPath, destPath string) error {
	if err := os.Rename(tmpPath, destPath); err == nil {
		return nil
	}
	if err := os.Remove(destPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tmpPath, destPath)
}
