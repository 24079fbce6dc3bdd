package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOfWalksWrappedChain(t *testing.T) {
	base := New(CodeInvalidGeometry, "window size 0x0 is empty", nil)
	wrapped := fmt.Errorf("new window: %w", base)

	if got := CodeOf(wrapped); got != CodeInvalidGeometry {
		t.Fatalf("CodeOf() = %q, want %q", got, CodeInvalidGeometry)
	}
	if !IsCode(wrapped, CodeInvalidGeometry) {
		t.Error("IsCode should match through fmt.Errorf wrapping")
	}
	if IsCode(wrapped, CodeUnknownTheme) {
		t.Error("IsCode matched the wrong code")
	}
}

func TestCodeOfPlainError(t *testing.T) {
	if got := CodeOf(errors.New("plain")); got != CodeUnknown {
		t.Fatalf("CodeOf(plain) = %q, want %q", got, CodeUnknown)
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	inner := errors.New("parse glass.saturation")
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{"message wins", New(CodeConfigurationError, "bad config", inner), "bad config"},
		{"wrapped error", New(CodeConfigurationError, "", inner), "parse glass.saturation"},
		{"code only", New(CodeNotPlaced, "", nil), "not_placed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
	if !errors.Is(New(CodeConfigurationError, "x", inner), inner) {
		t.Error("Unwrap should expose the wrapped error")
	}
}
