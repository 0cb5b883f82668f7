// Package summarize defines the collaborator boundary that turns a bounded
// code window into a one-sentence description of a test method's purpose.
//
// The pipeline depends on this package only through the Summarizer interface,
// so a deterministic stub can replace a live model in tests.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResponse is returned when a collaborator produces no usable text.
var ErrEmptyResponse = errors.New("summarize: empty response")

// Summarizer describes a test method's purpose from its code window.
// nameHint is the derived method name and may be the Unknown sentinel.
type Summarizer interface {
	Summarize(ctx context.Context, code, nameHint string) (string, error)
}

// Func adapts a plain function to the Summarizer interface.
type Func func(ctx context.Context, code, nameHint string) (string, error)

// Summarize implements Summarizer.
func (f Func) Summarize(ctx context.Context, code, nameHint string) (string, error) {
	return f(ctx, code, nameHint)
}

// Describe invokes s and always yields a non-empty purpose string. Any
// collaborator failure is converted into an "Analysis failed: ..." diagnostic
// so the candidate is never discarded; the original error is returned
// alongside so callers can count failures.
func Describe(ctx context.Context, s Summarizer, code, nameHint string) (string, error) {
	purpose, err := s.Summarize(ctx, code, nameHint)
	if err != nil {
		return fmt.Sprintf("Analysis failed: %v", err), err
	}

	purpose = strings.TrimSpace(purpose)
	if purpose == "" {
		return fmt.Sprintf("Analysis failed: %v", ErrEmptyResponse), ErrEmptyResponse
	}

	return purpose, nil
}
