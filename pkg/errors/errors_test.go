// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/depot/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_name_error",
			code:    errors.ErrInvalidName,
			message: "name contains shell metacharacters",
			wantStr: "[INVALID_NAME] name contains shell metacharacters",
		},
		{
			name:    "invalid_options_error",
			code:    errors.ErrInvalidOptions,
			message: "bad option token",
			wantStr: "[INVALID_OPTIONS] bad option token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidOptions, "invalid token %q at position %d", "--Save", 2)

	wantMsg := `invalid token "--Save" at position 2`
	if err.Message != wantMsg {
		t.Errorf("Newf() message = %q, want %q", err.Message, wantMsg)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrManifestLoad, "cannot read manifest")

		if err.Code != errors.ErrManifestLoad {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrManifestLoad)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[MANIFEST_LOAD] cannot read manifest: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrManifestLoad, "cannot read manifest")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrInvalidName, "rejected").
		WithDetail("name", "left;pad").
		WithDetail("char", ";")

	if err.Details["name"] != "left;pad" {
		t.Errorf("WithDetail() name = %v, want %v", err.Details["name"], "left;pad")
	}

	if err.Details["char"] != ";" {
		t.Errorf("WithDetail() char = %v, want %v", err.Details["char"], ";")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrInvalidOptions, "error 1")
	err2 := errors.New(errors.ErrInvalidOptions, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with DepotError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrUnknownManager, "no such manager"),
			code:     errors.ErrUnknownManager,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrUnknownManager, "no such manager"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrCommandSpawn, "spawn failed"),
			code:     errors.ErrCommandSpawn,
			expected: true,
		},
		{
			name:     "non_depot_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrUnknownManager,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrUnknownManager,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "depot_error",
			err:      errors.New(errors.ErrManifestParse, "bad toml"),
			expected: errors.ErrManifestParse,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	readErr := errors.Wrap(rootCause, errors.ErrManifestLoad, "cannot read file")
	configErr := errors.Wrap(readErr, errors.ErrConfigLoad, "failed to load config")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
			t.Error("Top level should have ErrConfigLoad code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var depotErr *errors.DepotError
		if stderrors.As(configErr.Unwrap(), &depotErr) {
			if !errors.IsErrorCode(depotErr, errors.ErrManifestLoad) {
				t.Error("Middle error should have ErrManifestLoad code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(configErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
