package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeWrite, cause, "write deck")

	if err.Code != ErrCodeWrite {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeWrite)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	want := "WRITE_FAILED: write deck: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeWrite,
			expected: false,
		},
		{
			name:     "outer code wins",
			err:      Wrap(ErrCodeWrite, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeWrite,
			expected: true,
		},
		{
			name:     "plain wrapper around coded error",
			err:      fmt.Errorf("stage: %w", New(ErrCodeInputNotFound, "gone")),
			code:     ErrCodeInputNotFound,
			expected: true,
		},
		{
			name:     "typed missing field error",
			err:      fmt.Errorf("layout: %w", &MissingFieldError{Field: "name", Row: 0}),
			code:     ErrCodeMissingField,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeRender, "x")); got != ErrCodeRender {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeRender)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := Wrap(ErrCodeInputNotFound, errors.New("stat failed"), "input file %s not found", "jobs.csv")
	if got := UserMessage(err); got != "input file jobs.csv not found" {
		t.Errorf("UserMessage() = %q", got)
	}

	plain := errors.New("something broke")
	if got := UserMessage(plain); got != "something broke" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestMissingFieldError(t *testing.T) {
	tests := []struct {
		err  *MissingFieldError
		want string
	}{
		{&MissingFieldError{Field: "name", Row: 0}, `row 0: missing field "name"`},
		{&MissingFieldError{Field: "time", Row: 4}, `row 4: missing field "time"`},
		{&MissingFieldError{Field: "mission", Row: -1}, `missing column "mission" in header`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
		if tt.err.Code() != ErrCodeMissingField {
			t.Errorf("Code() = %q, want %q", tt.err.Code(), ErrCodeMissingField)
		}
	}

	var mf *MissingFieldError
	wrapped := fmt.Errorf("read: %w", &MissingFieldError{Field: "name", Row: 2})
	if !errors.As(wrapped, &mf) {
		t.Fatal("errors.As should find MissingFieldError")
	}
	if mf.Field != "name" || mf.Row != 2 {
		t.Errorf("got field %q row %d", mf.Field, mf.Row)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"input not found", New(ErrCodeInputNotFound, "x"), ExitInput},
		{"missing field", &MissingFieldError{Field: "name"}, ExitInput},
		{"invalid config", New(ErrCodeInvalidConfig, "x"), ExitInput},
		{"write", Wrap(ErrCodeWrite, errors.New("eperm"), "x"), ExitWrite},
		{"render", New(ErrCodeRender, "x"), ExitFailure},
		{"plain", errors.New("x"), ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
