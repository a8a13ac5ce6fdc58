package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "config.json").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid configuration" {
			t.Errorf("expected message 'invalid configuration', got %s", err.Message())
		}

		file, exists := err.Context().GetString("file")
		if !exists || file != "config.json" {
			t.Errorf("expected context file=config.json, got %v", file)
		}
	})

	t.Run("Error detection through wrapping", func(t *testing.T) {
		err := fmt.Errorf("stage failed: %w", ExternalError(stderrors.New("exit status 1"), "npx exited 1").Build())

		if !HasCategory(err, CategoryExternal) {
			t.Error("expected wrapped error to keep external category")
		}
		if GetCategory(stderrors.New("plain")) != CategoryInternal {
			t.Error("expected unclassified error to default to internal")
		}
	})

	t.Run("WithContext does not mutate original", func(t *testing.T) {
		base := ConfigError(stderrors.New("missing"), "load configuration").Build()
		derived := base.WithContext("section", "heroSection")

		if _, ok := base.Context().Get("section"); ok {
			t.Error("expected base context to be untouched")
		}
		if v, _ := derived.Context().GetString("section"); v != "heroSection" {
			t.Errorf("expected derived context section, got %q", v)
		}
	})
}

func TestErrorBuilder_Wrap(t *testing.T) {
	originalErr := stderrors.New("disk full")
	err := WrapError(originalErr, CategoryFileSystem, "write failed").Warning().Build()

	if !stderrors.Is(err, originalErr) {
		t.Error("expected errors.Is to reach the cause")
	}
	if err.IsFatal() {
		t.Error("expected warning severity")
	}
	if err.Error() != "[filesystem] write failed: disk full" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestIOError(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := NewIOError("/tmp/x", cause)

	var ioErr *IOError
	if !stderrors.As(err, &ioErr) {
		t.Fatal("expected IOError")
	}
	if ioErr.Path != "/tmp/x" || !stderrors.Is(err, cause) {
		t.Errorf("unexpected IOError %+v", ioErr)
	}
	if NewIOError("/tmp/x", nil) != nil {
		t.Error("expected nil for nil cause")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	cause := stderrors.New("boom")
	cases := []struct {
		name     string
		builder  *ErrorBuilder
		category ErrorCategory
	}{
		{"config", ConfigError(cause, "incomplete configuration"), CategoryConfig},
		{"external", ExternalError(cause, "external command failed"), CategoryExternal},
		{"filesystem", FileSystemError(cause, "write sources"), CategoryFileSystem},
		{"generation", GenerationError(cause, "generate sources"), CategoryGeneration},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.builder.Build()
			if err.Category() != tc.category {
				t.Errorf("expected category %s, got %s", tc.category, err.Category())
			}
			if !err.IsFatal() {
				t.Error("expected fatal severity")
			}
			if !stderrors.Is(err, cause) {
				t.Error("expected errors.Is to reach the cause")
			}
		})
	}
}
