package models

import (
	"fmt"
	"strings"
)

type Stage string

const (
	StageIdle        Stage = ""
	StageDownloading Stage = "downloading"
	StageTrimming    Stage = "trimming"
	StageDone        Stage = "done"
	StageFailed      Stage = "failed"
)

// Progress is one status update surfaced to a frontend.
type Progress struct {
	Stage   Stage
	Percent float64
	Speed   string
	ETA     string
	Detail  string
}

func (p Progress) String() string {
	switch p.Stage {
	case StageIdle:
		return ""
	case StageDownloading:
		var b strings.Builder
		fmt.Fprintf(&b, "downloading %.1f%%", p.Percent)
		if p.Speed != "" {
			b.WriteString(" at " + p.Speed)
		}
		if p.ETA != "" {
			b.WriteString(", ETA " + p.ETA)
		}
		return b.String()
	default:
		if p.Detail != "" {
			return string(p.Stage) + ": " + p.Detail
		}
		return string(p.Stage)
	}
}

// ProgressFunc receives status updates. It is called from the goroutine
// reading the external tool's output.
type ProgressFunc func(Progress)
