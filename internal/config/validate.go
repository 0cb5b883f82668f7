package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidProvider indicates an unsupported summarizer provider.
	ErrInvalidProvider = errors.New("invalid summarizer provider")

	// ErrEmptyEndpoint indicates a missing summarizer endpoint.
	ErrEmptyEndpoint = errors.New("empty summarizer endpoint")

	// ErrEmptyModel indicates a missing summarizer model.
	ErrEmptyModel = errors.New("empty summarizer model")

	// ErrInvalidWindowSize indicates an invalid context window size.
	ErrInvalidWindowSize = errors.New("invalid window size")

	// ErrInvalidMethodCap indicates an invalid per-file method cap.
	ErrInvalidMethodCap = errors.New("invalid method cap")

	// ErrInvalidWorkers indicates an invalid worker count.
	ErrInvalidWorkers = errors.New("invalid worker count")
)

// Validate checks that the configuration is valid and complete.
// All problems are reported at once.
func Validate(cfg *Config) error {
	var errs []error

	provider := strings.ToLower(cfg.Summarizer.Provider)
	switch provider {
	case "static":
	case "openai":
		if strings.TrimSpace(cfg.Summarizer.Endpoint) == "" {
			errs = append(errs, fmt.Errorf("%w: required for the openai provider", ErrEmptyEndpoint))
		}
		if strings.TrimSpace(cfg.Summarizer.Model) == "" {
			errs = append(errs, fmt.Errorf("%w: required for the openai provider", ErrEmptyModel))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: must be 'static' or 'openai', got %q", ErrInvalidProvider, cfg.Summarizer.Provider))
	}

	if cfg.Extract.WindowSize < 0 {
		errs = append(errs, fmt.Errorf("%w: must not be negative, got %d", ErrInvalidWindowSize, cfg.Extract.WindowSize))
	}
	if cfg.Extract.MethodCap < 0 {
		errs = append(errs, fmt.Errorf("%w: must not be negative, got %d", ErrInvalidMethodCap, cfg.Extract.MethodCap))
	}
	if cfg.Extract.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: must not be negative, got %d", ErrInvalidWorkers, cfg.Extract.Workers))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return fmt.Errorf("validation failed:\n%w", errors.Join(errs...))
}
