// Package batch applies the reindent transform to files on disk.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/open-cli-collective/cheetah-fmt/pkg/reindent"
)

// Log messages and field names.
const (
	logMsgProcessing = "reformatting file"
	logMsgUnchanged  = "file already formatted"
	logMsgWritten    = "wrote file"
	logMsgFailed     = "file failed"
	logMsgBatchStart = "batch started"
	logMsgBatchDone  = "batch finished"

	logFieldSource = "source"
	logFieldTarget = "target"
	logFieldBytes  = "bytes"
	logFieldFiles  = "files"
	logFieldJobs   = "jobs"
)

// Mode selects what happens with the reformatted text.
type Mode int

const (
	ModeWrite Mode = iota // write the result to the target
	ModeCheck             // report whether the file would change
	ModeDiff              // report a unified diff of the change
)

// Status is the outcome for a single file.
type Status string

const (
	StatusFormatted Status = "formatted"
	StatusUnchanged Status = "unchanged"
	StatusChanged   Status = "changed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// Job is a single file to process.
type Job struct {
	Source string
	Target string // defaults to Source
}

// Result reports what happened to one Job.
type Result struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
	Diff   string `json:"diff,omitempty"`

	Err error `json:"-"`
}

// Message returns the human-readable outcome line.
func (r Result) Message() string {
	switch r.Status {
	case StatusFormatted:
		return fmt.Sprintf("Successfully reformatted %s and saved to %s", r.Source, r.Target)
	case StatusUnchanged:
		return fmt.Sprintf("%s is already formatted", r.Source)
	case StatusChanged:
		return fmt.Sprintf("%s is not formatted", r.Source)
	case StatusSkipped:
		return fmt.Sprintf("Skipped %s", r.Source)
	}

	switch {
	case errors.Is(r.Err, ErrSourceNotFound):
		return fmt.Sprintf("Source file not found at %s", r.Source)
	case errors.Is(r.Err, ErrWriteFailure):
		return "Error writing to output file: " + strings.TrimPrefix(r.Err.Error(), ErrWriteFailure.Error()+": ")
	case r.Err != nil:
		return r.Err.Error()
	}
	return fmt.Sprintf("Failed to process %s", r.Source)
}

// Options configures a Processor.
type Options struct {
	Mode   Mode
	Jobs   int // concurrent files; 0 means runtime.NumCPU()
	Logger *zap.Logger
}

// Processor reads, reformats and writes files.
type Processor struct {
	mode   Mode
	jobs   int
	logger *zap.Logger
}

// New creates a Processor.
func New(opts Options) *Processor {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	return &Processor{
		mode:   opts.Mode,
		jobs:   jobs,
		logger: logger,
	}
}

// ProcessFile handles one file. The source is read and reformatted in full
// before the target is touched, so a failed write never leaves partial output.
func (p *Processor) ProcessFile(ctx context.Context, job Job) Result {
	if job.Target == "" {
		job.Target = job.Source
	}
	res := Result{Source: job.Source, Target: job.Target}

	if err := ctx.Err(); err != nil {
		return res.skipped(err)
	}

	p.logger.Debug(logMsgProcessing, zap.String(logFieldSource, job.Source), zap.String(logFieldTarget, job.Target))

	info, err := os.Stat(job.Source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p.failed(res, fmt.Errorf("%w at %s", ErrSourceNotFound, job.Source))
		}
		return p.failed(res, fmt.Errorf("failed to read %s: %w", job.Source, err))
	}
	if info.IsDir() {
		return p.failed(res, fmt.Errorf("failed to read %s: is a directory", job.Source))
	}

	data, err := os.ReadFile(job.Source)
	if err != nil {
		return p.failed(res, fmt.Errorf("failed to read %s: %w", job.Source, err))
	}

	original := string(data)
	formatted := reindent.Reformat(original)
	changed := formatted != original

	switch p.mode {
	case ModeCheck, ModeDiff:
		res.Status = StatusUnchanged
		if changed {
			res.Status = StatusChanged
			if p.mode == ModeDiff {
				res.Diff = UnifiedDiff(job.Source, original, formatted)
			}
		}
		return res
	}

	if !changed && job.Target == job.Source {
		p.logger.Debug(logMsgUnchanged, zap.String(logFieldSource, job.Source))
		res.Status = StatusUnchanged
		return res
	}

	if err := os.WriteFile(job.Target, []byte(formatted), info.Mode().Perm()); err != nil {
		return p.failed(res, fmt.Errorf("%w: %w", ErrWriteFailure, err))
	}

	p.logger.Debug(logMsgWritten, zap.String(logFieldTarget, job.Target), zap.Int(logFieldBytes, len(formatted)))
	res.Status = StatusFormatted
	return res
}

// Run processes jobs concurrently, at most Options.Jobs at a time, and returns
// one Result per Job in the same order. Per-file failures are reported in the
// results, never returned; a cancelled context marks the remaining files
// skipped.
func (p *Processor) Run(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))

	p.logger.Debug(logMsgBatchStart, zap.Int(logFieldFiles, len(jobs)), zap.Int(logFieldJobs, p.jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.jobs)
	for i, job := range jobs {
		g.Go(func() error {
			results[i] = p.ProcessFile(gctx, job)
			return nil
		})
	}
	_ = g.Wait()

	p.logger.Debug(logMsgBatchDone, zap.Int(logFieldFiles, len(jobs)))
	return results
}

func (p *Processor) failed(res Result, err error) Result {
	p.logger.Debug(logMsgFailed, zap.String(logFieldSource, res.Source), zap.Error(err))
	res.Status = StatusFailed
	res.Err = err
	res.Error = err.Error()
	return res
}

func (r Result) skipped(err error) Result {
	r.Status = StatusSkipped
	r.Err = err
	r.Error = err.Error()
	return r
}

// Summary counts results by status.
type Summary struct {
	Formatted int `json:"formatted"`
	Unchanged int `json:"unchanged"`
	Changed   int `json:"changed"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// Summarize counts results by status.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case StatusFormatted:
			s.Formatted++
		case StatusUnchanged:
			s.Unchanged++
		case StatusChanged:
			s.Changed++
		case StatusFailed:
			s.Failed++
		case StatusSkipped:
			s.Skipped++
		}
	}
	return s
}
