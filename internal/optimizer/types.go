package optimizer

import (
	"github.com/charmbracelet/log"

	"squish/pkg/imgutil"
)

type Mode int

const (
	ModeOptimize Mode = iota
	ModeScan
)

type Options struct {
	Mode         Mode
	OutputFormat Format
	MaxWidth     int
	MaxHeight    int
	Verbose      bool
	Log          *log.Logger
}

type Job struct {
	Path    string
	RelPath string
	Display string
}

// Stage names the step a per-file failure happened in.
type Stage int

const (
	StageNone Stage = iota
	StageRead
	StageDecode
	StageEncode
	StageWrite
)

func (s Stage) String() string {
	switch s {
	case StageRead:
		return "read"
	case StageDecode:
		return "decode"
	case StageEncode:
		return "encode"
	case StageWrite:
		return "write"
	default:
		return "none"
	}
}

// Result is the typed outcome of one candidate file. Err nil means the file
// was rewritten (or, in scan mode, probed) successfully.
type Result struct {
	Path    string
	Display string
	Stage   Stage
	Err     error

	Kind         imgutil.Kind
	SourceFormat Format
	TargetFormat Format
	OldWidth     int
	OldHeight    int
	NewWidth     int
	NewHeight    int
	Resized      bool
	BytesSaved   int64
	MetaDropped  int
}

type Summary struct {
	Candidates  int
	Optimized   int
	Failed      int
	BytesSaved  int64
	MetaDropped int
}

type ProgressUpdate struct {
	CandidateDelta   int
	OptimizedDelta   int
	FailedDelta      int
	MetaDroppedDelta int
	BytesSavedDelta  int64
}
