package summarize_test

import (
	"context"
	"errors"
	"testing"

	"github.com/testscout/core/pkg/summarize"
)

func TestDescribe(t *testing.T) {
	t.Run("should pass through a successful purpose", func(t *testing.T) {
		s := summarize.Func(func(ctx context.Context, code, nameHint string) (string, error) {
			return "Tests the retry policy", nil
		})

		purpose, err := summarize.Describe(context.Background(), s, "code", "testRetry")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if purpose != "Tests the retry policy" {
			t.Errorf("unexpected purpose: %q", purpose)
		}
	})

	t.Run("should convert failures into a diagnostic purpose", func(t *testing.T) {
		s := summarize.Func(func(ctx context.Context, code, nameHint string) (string, error) {
			return "", errors.New("model unavailable")
		})

		purpose, err := summarize.Describe(context.Background(), s, "code", "testRetry")
		if err == nil {
			t.Fatal("expected the original error to be reported")
		}
		if purpose != "Analysis failed: model unavailable" {
			t.Errorf("unexpected purpose: %q", purpose)
		}
	})

	t.Run("should treat a blank response as a failure", func(t *testing.T) {
		s := summarize.Func(func(ctx context.Context, code, nameHint string) (string, error) {
			return "   ", nil
		})

		purpose, err := summarize.Describe(context.Background(), s, "code", "testRetry")
		if !errors.Is(err, summarize.ErrEmptyResponse) {
			t.Fatalf("expected ErrEmptyResponse, got %v", err)
		}
		if purpose == "" {
			t.Error("purpose must never be empty")
		}
	})
}

func TestStatic(t *testing.T) {
	static := summarize.NewStatic()

	tests := []struct {
		name     string
		code     string
		nameHint string
		want     string
	}{
		{"camel case name", "", "testAddTwoNumbers", "Tests add two numbers"},
		{"snake case name", "", "test_login_flow", "Tests login flow"},
		{"call-form title", "", "should create user", "Tests should create user"},
		{"unknown name with code", "  assertEquals(4, add(2, 2));", "Unknown", "Tests behavior around: assertEquals(4, add(2, 2));"},
		{"nothing to work with", "", "Unknown", "Tests unidentified functionality"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := static.Summarize(context.Background(), tt.code, tt.nameHint)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}

	t.Run("should be deterministic", func(t *testing.T) {
		first, _ := static.Summarize(context.Background(), "code", "testRetryPolicy")
		for i := 0; i < 5; i++ {
			again, _ := static.Summarize(context.Background(), "code", "testRetryPolicy")
			if again != first {
				t.Fatalf("non-deterministic output: %q vs %q", first, again)
			}
		}
	})
}
