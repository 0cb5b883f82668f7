package summarize

import (
	"context"
	"strings"
	"unicode"

	"github.com/testscout/core/pkg/domain"
)

// Static is a deterministic, offline summarizer. It phrases the method name
// as a "Tests ..." sentence and falls back to a keyword scan of the code
// window when no name was derived. Useful as the default collaborator and as
// a test double.
type Static struct{}

// NewStatic returns a Static summarizer.
func NewStatic() *Static {
	return &Static{}
}

// Summarize implements Summarizer. It never fails.
func (s *Static) Summarize(ctx context.Context, code, nameHint string) (string, error) {
	if subject := subjectFromName(nameHint); subject != "" {
		return "Tests " + subject, nil
	}
	if subject := subjectFromCode(code); subject != "" {
		return "Tests " + subject, nil
	}
	return "Tests unidentified functionality", nil
}

// subjectFromName turns testAdd or test_login_flow into "add" / "login flow".
func subjectFromName(name string) string {
	if name == "" || name == domain.UnknownName {
		return ""
	}

	trimmed := strings.TrimPrefix(strings.TrimPrefix(name, "test"), "Test")
	trimmed = strings.TrimLeft(trimmed, "_")
	if trimmed == "" {
		return ""
	}

	words := splitIdentifier(trimmed)
	if len(words) == 0 {
		return strings.ToLower(name)
	}
	return strings.Join(words, " ")
}

// subjectFromCode picks the first line of the window that still mentions a
// test indicator, as a last-resort subject.
func subjectFromCode(code string) string {
	for _, line := range strings.Split(code, "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "test") || strings.Contains(lower, "assert") || strings.Contains(lower, "expect") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				return "behavior around: " + trimmed
			}
		}
	}
	return ""
}

func splitIdentifier(ident string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	for _, r := range ident {
		switch {
		case r == '_' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return words
}
