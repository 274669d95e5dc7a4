package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeInvalidInput, "land size must be positive"),
			want: "INVALID_INPUT: land size must be positive",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeStorage, stderrors.New("disk full"), "failed to save design"),
			want: "STORAGE_ERROR: failed to save design: disk full",
		},
		{
			name: "formatted message",
			err:  New(ErrCodeInvalidBedrooms, "invalid bedroom configuration: %q", "9BHK"),
			want: `INVALID_BEDROOM_CONFIG: invalid bedroom configuration: "9BHK"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeNotFound, "design abc not found")

	if !Is(err, ErrCodeNotFound) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeStorage) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeNotFound) {
		t.Error("Is() should not match a plain error")
	}

	// Wrapped chain
	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeNotFound) {
		t.Error("Is() should unwrap to find the coded error")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInternal, "boom")); got != ErrCodeInternal {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInternal)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidFacing, "unknown facing direction")
	if got := UserMessage(err); got != "unknown facing direction" {
		t.Errorf("UserMessage() = %q, want message without code prefix", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() on plain error = %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(ErrCodeSerialize, cause, "decode design")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestFeasibilityError(t *testing.T) {
	msgs := []string{
		"Plot size 500 sq.ft is too small for Villa. Minimum required: 1500 sq.ft",
		"Staircase type must be specified for multi-floor buildings",
	}
	err := Infeasible(msgs)

	if err.Code() != ErrCodeInfeasible {
		t.Errorf("Code() = %q, want %q", err.Code(), ErrCodeInfeasible)
	}
	for _, m := range msgs {
		if !strings.Contains(err.Error(), m) {
			t.Errorf("Error() missing validator message %q", m)
		}
	}

	// Must survive wrapping and keep the verbatim list.
	wrapped := fmt.Errorf("generate design: %w", err)
	fe := AsFeasibility(wrapped)
	if fe == nil {
		t.Fatal("AsFeasibility() returned nil for wrapped feasibility error")
	}
	if len(fe.Errors) != 2 || fe.Errors[0] != msgs[0] {
		t.Errorf("AsFeasibility() errors = %v, want %v", fe.Errors, msgs)
	}

	if AsFeasibility(stderrors.New("plain")) != nil {
		t.Error("AsFeasibility() should return nil for non-feasibility errors")
	}
}
