package batch

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Request describes what the user asked to process.
type Request struct {
	Source    string
	Outfile   string // single-file mode only
	Recursive bool
	Matcher   Matcher
}

// Validate checks flag combinations. It touches no files.
func (r Request) Validate() error {
	if r.Source == "" {
		return fmt.Errorf("%w: a source path is required", ErrConfig)
	}
	if r.Recursive && r.Outfile != "" {
		return fmt.Errorf("%w: -o/--outfile cannot be used with --recursive", ErrConfig)
	}
	return nil
}

// Plan turns a Request into jobs. All validation happens here, before any
// file is read or written.
func Plan(ctx context.Context, req Request, logger *zap.Logger) ([]Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if !req.Recursive {
		return []Job{{Source: req.Source, Target: req.Outfile}}, nil
	}

	files, err := Discover(ctx, req.Source, req.Matcher, logger)
	if err != nil {
		return nil, err
	}

	jobs := make([]Job, len(files))
	for i, f := range files {
		jobs[i] = Job{Source: f}
	}
	return jobs, nil
}
