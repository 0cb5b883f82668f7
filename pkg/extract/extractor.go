package extract

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/testscout/core/pkg/domain"
	"github.com/testscout/core/pkg/summarize"
)

const (
	// DefaultWorkers indicates that the extractor should use GOMAXPROCS as the worker count.
	DefaultWorkers = 0
	// DefaultTimeout is the default extraction timeout duration.
	DefaultTimeout = 5 * time.Minute
	// MaxWorkers is the maximum number of concurrent workers allowed.
	MaxWorkers = 1024
	// DefaultMethodCap is the maximum number of candidates analyzed per file.
	DefaultMethodCap = 3
)

var (
	// ErrExtractCancelled is returned when extraction is cancelled via context.
	ErrExtractCancelled = errors.New("extract: cancelled")
	// ErrExtractTimeout is returned when extraction exceeds the timeout duration.
	ErrExtractTimeout = errors.New("extract: timeout")
)

// Extractor runs the discovery pipeline: enumerate files, filter lines,
// extract candidates, slice context windows, summarize, and assemble the
// per-repository result.
type Extractor struct {
	options *ExtractOptions
}

// ExtractResult contains the outcome of an extraction run.
type ExtractResult struct {
	// Result is the assembled per-repository analysis.
	Result *domain.ExtractionResult

	// Errors contains non-fatal errors encountered during the run.
	Errors []ExtractError

	// Stats provides run statistics.
	Stats ExtractStats
}

// ExtractError represents an error that occurred during a specific phase of extraction.
type ExtractError struct {
	// Err is the underlying error.
	Err error

	// Path is the file path where the error occurred (may be empty for non-file errors).
	Path string

	// Phase indicates which phase the error occurred in.
	// Values: "enumerate", "filter", "summarize"
	Phase string
}

// Error implements the error interface.
func (e ExtractError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%s] %v", e.Phase, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Phase, e.Path, e.Err)
}

// ExtractStats provides statistics about the extraction run.
type ExtractStats struct {
	// FilesScanned is the total number of enumerated files.
	FilesScanned int

	// FilesMatched is the number of files with at least one analyzed method.
	FilesMatched int

	// CandidatesFound is the number of accepted candidates before the
	// per-file analysis cap.
	CandidatesFound int

	// CandidatesAnalyzed is the number of candidates that were summarized.
	CandidatesAnalyzed int

	// SummaryFailures is the number of collaborator calls that failed and
	// were replaced with a diagnostic purpose string.
	SummaryFailures int

	// Duration is the total run duration.
	Duration time.Duration
}

// NewExtractor creates a new extractor with the given options.
func NewExtractor(opts ...ExtractOption) *Extractor {
	options := &ExtractOptions{}
	for _, opt := range opts {
		opt(options)
	}
	applyDefaults(options)

	return &Extractor{options: options}
}

// Extract runs the complete pipeline over the repository rooted at root:
//  1. Enumerate files matching the extension pattern
//  2. Filter each file's lines for test indicators
//  3. Apply the language family's acceptance rules
//  4. Read a bounded context window per candidate (up to the cap)
//  5. Summarize each window through the collaborator
//  6. Assemble per-file and per-repository aggregates
//
// Per-file failures degrade to phase-tagged entries in ExtractResult.Errors;
// only an invalid root or disallowed pattern aborts the run.
func (e *Extractor) Extract(ctx context.Context, root string) (*ExtractResult, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, e.options.Timeout)
	defer cancel()

	files, err := enumerate(root, e.options.Pattern, buildSkipSet(append(DefaultSkipDirs, e.options.ExcludePatterns...)))
	if err != nil {
		if errors.Is(err, ErrInvalidRoot) || errors.Is(err, ErrPatternNotAllowed) {
			return nil, err
		}
		// Walk interruptions leave a partial listing; record and continue.
	}

	result := &ExtractResult{
		Result: &domain.ExtractionResult{
			RepositoryPath: root,
			FileAnalyses:   []domain.FileAnalysis{},
		},
		Errors: []ExtractError{},
	}
	if err != nil {
		result.Errors = append(result.Errors, ExtractError{Err: err, Phase: "enumerate"})
	}
	result.Stats.FilesScanned = len(files)

	if len(files) > 0 {
		analyses, extractErrors := e.analyzeFilesParallel(ctx, files, &result.Stats)
		result.Result.FileAnalyses = analyses
		result.Errors = append(result.Errors, extractErrors...)
	}

	e.assemble(result, len(files))
	result.Stats.FilesMatched = len(result.Result.FileAnalyses)
	result.Stats.Duration = time.Since(startTime)

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return result, ErrExtractTimeout
		}
		if errors.Is(err, context.Canceled) {
			return result, ErrExtractCancelled
		}
	}

	return result, nil
}

// analyzeFilesParallel fans file analysis out over a bounded worker pool and
// merges under a mutex. The final sort keeps output deterministic regardless
// of completion order.
func (e *Extractor) analyzeFilesParallel(ctx context.Context, files []string, stats *ExtractStats) ([]domain.FileAnalysis, []ExtractError) {
	workers := e.options.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}

	sem := semaphore.NewWeighted(int64(workers))
	g, gCtx := errgroup.WithContext(ctx)

	var (
		mu            sync.Mutex
		analyses      = make([]domain.FileAnalysis, 0, len(files))
		extractErrors = make([]ExtractError, 0)
	)

	for _, file := range files {
		g.Go(func() error {
			if err := sem.Acquire(gCtx, 1); err != nil {
				return nil
			}
			defer sem.Release(1)

			analysis, fileStats, errs := e.analyzeFile(gCtx, file)

			mu.Lock()
			defer mu.Unlock()

			stats.CandidatesFound += fileStats.CandidatesFound
			stats.CandidatesAnalyzed += fileStats.CandidatesAnalyzed
			stats.SummaryFailures += fileStats.SummaryFailures
			extractErrors = append(extractErrors, errs...)

			if analysis != nil {
				analyses = append(analyses, *analysis)
			}

			return nil
		})
	}

	_ = g.Wait()

	sort.Slice(analyses, func(i, j int) bool {
		return analyses[i].FilePath < analyses[j].FilePath
	})

	return analyses, extractErrors
}

// analyzeFile runs the per-file stages. A nil analysis means the file had no
// analyzed methods; it still counts as scanned.
func (e *Extractor) analyzeFile(ctx context.Context, path string) (*domain.FileAnalysis, ExtractStats, []ExtractError) {
	var stats ExtractStats
	var errs []ExtractError

	if ctx.Err() != nil {
		return nil, stats, errs
	}

	lines, err := FilterLines(path, e.options.FilterPattern, true)
	if err != nil {
		errs = append(errs, ExtractError{Err: err, Path: path, Phase: "filter"})
		return nil, stats, errs
	}
	if len(lines) == 0 {
		return nil, stats, errs
	}

	lang, ok := LanguageForPath(path)
	if !ok {
		return nil, stats, errs
	}

	candidates := ExtractCandidates(lines, lang, path)
	stats.CandidatesFound = len(candidates)
	if len(candidates) == 0 {
		return nil, stats, errs
	}

	if len(candidates) > e.options.MethodCap {
		candidates = candidates[:e.options.MethodCap]
	}

	methods := make([]domain.TestMethod, 0, len(candidates))
	for _, c := range candidates {
		name := DeriveName(c.Line.Text, lang)
		window := ReadWindow(path, c.Line.Number, e.options.WindowSize, c.Line.Text)

		purpose, sumErr := summarize.Describe(ctx, e.options.Summarizer, window, name)
		if sumErr != nil {
			stats.SummaryFailures++
			errs = append(errs, ExtractError{Err: sumErr, Path: path, Phase: "summarize"})
		}

		methods = append(methods, domain.TestMethod{
			FilePath:   path,
			LineNumber: c.Line.Number,
			Name:       name,
			Purpose:    purpose,
		})
	}
	stats.CandidatesAnalyzed = len(methods)

	return &domain.FileAnalysis{
		FilePath:    path,
		TestMethods: methods,
		TotalTests:  len(methods),
	}, stats, errs
}

// assemble computes the aggregate counters and the summary string.
// TotalTestsFound counts analyzed methods only, so it always equals the sum
// of per-file totals; raw discovery volume lives in Stats.CandidatesFound.
func (e *Extractor) assemble(result *ExtractResult, filesScanned int) {
	r := result.Result
	r.TotalFilesAnalyzed = filesScanned
	r.TotalTestsFound = r.CountTests()
	r.Summary = fmt.Sprintf("Analyzed %d files with test methods, found %d total test methods",
		len(r.FileAnalyses), r.TotalTestsFound)
}

// Extract runs a one-shot extraction with the given options.
func Extract(ctx context.Context, root string, opts ...ExtractOption) (*ExtractResult, error) {
	extractor := NewExtractor(opts...)
	return extractor.Extract(ctx, root)
}
