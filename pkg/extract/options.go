package extract

import (
	"time"

	"github.com/testscout/core/pkg/summarize"
)

// ExtractOptions configures extractor behavior.
type ExtractOptions struct {
	// ExcludePatterns specifies directory names to skip during file discovery.
	// These are combined with DefaultSkipDirs.
	ExcludePatterns []string

	// FilterPattern is the line-level keyword pattern. Must satisfy the
	// filter allow-list. Default: DefaultFilterPattern.
	FilterPattern string

	// MethodCap is the maximum number of candidates analyzed per file.
	// Candidates beyond the cap are counted in Stats.CandidatesFound but are
	// not summarized and do not appear in the result.
	MethodCap int

	// Pattern is the extension pattern handed to file enumeration.
	// Must be one of AllowedPatterns. Default: "*.java".
	Pattern string

	// Summarizer is the collaborator used to describe each method.
	// If nil, a deterministic offline summarizer is used.
	Summarizer summarize.Summarizer

	// Timeout is the maximum duration for the entire extraction run.
	// Zero or negative values use DefaultTimeout.
	Timeout time.Duration

	// WindowSize is the number of context lines read per candidate.
	// Zero or negative values use DefaultWindowSize.
	WindowSize int

	// Workers specifies the number of files analyzed concurrently.
	// Zero or negative values use runtime.GOMAXPROCS(0).
	Workers int
}

// ExtractOption is a functional option for configuring an Extractor.
type ExtractOption func(*ExtractOptions)

// WithWorkers sets the number of concurrent file analyzers.
// Negative values are ignored.
func WithWorkers(n int) ExtractOption {
	return func(o *ExtractOptions) {
		if n >= 0 {
			o.Workers = n
		}
	}
}

// WithTimeout sets the extraction timeout duration.
// Negative values are ignored.
func WithTimeout(d time.Duration) ExtractOption {
	return func(o *ExtractOptions) {
		if d >= 0 {
			o.Timeout = d
		}
	}
}

// WithPattern sets the extension pattern used for file enumeration.
func WithPattern(pattern string) ExtractOption {
	return func(o *ExtractOptions) {
		o.Pattern = pattern
	}
}

// WithFilterPattern sets the line-level keyword pattern.
func WithFilterPattern(pattern string) ExtractOption {
	return func(o *ExtractOptions) {
		o.FilterPattern = pattern
	}
}

// WithExcludePatterns adds directory names to skip during file discovery.
func WithExcludePatterns(patterns []string) ExtractOption {
	return func(o *ExtractOptions) {
		o.ExcludePatterns = patterns
	}
}

// WithWindowSize sets the number of context lines read per candidate.
// Non-positive values are ignored.
func WithWindowSize(n int) ExtractOption {
	return func(o *ExtractOptions) {
		if n > 0 {
			o.WindowSize = n
		}
	}
}

// WithMethodCap sets the per-file candidate analysis cap.
// Non-positive values are ignored.
func WithMethodCap(n int) ExtractOption {
	return func(o *ExtractOptions) {
		if n > 0 {
			o.MethodCap = n
		}
	}
}

// WithSummarizer sets the purpose-description collaborator.
func WithSummarizer(s summarize.Summarizer) ExtractOption {
	return func(o *ExtractOptions) {
		if s != nil {
			o.Summarizer = s
		}
	}
}

func applyDefaults(opts *ExtractOptions) {
	if opts.FilterPattern == "" {
		opts.FilterPattern = DefaultFilterPattern
	}
	if opts.MethodCap <= 0 {
		opts.MethodCap = DefaultMethodCap
	}
	if opts.Pattern == "" {
		opts.Pattern = "*.java"
	}
	if opts.Summarizer == nil {
		opts.Summarizer = summarize.NewStatic()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.WindowSize <= 0 {
		opts.WindowSize = DefaultWindowSize
	}
}
