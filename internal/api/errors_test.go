package api

import (
	"errors"
	"testing"
)

func TestError_Message(t *testing.T) {
	err := &Error{Kind: KindRateLimit, StatusCode: 429, Message: "slow down"}
	want := "API error 429: slow down"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	err = &Error{Kind: KindValidation, Message: "texts must not be empty"}
	if err.Error() != "texts must not be empty" {
		t.Errorf("Error() = %q, want message without status", err.Error())
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Kind: KindGeneric, Message: "request failed", Cause: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should match the wrapped cause")
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &NetworkError{Err: cause, URL: "http://example.com"}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should match the wrapped cause")
	}
	if err.Error() != "network error: connection refused" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestFormValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"plain", "plain"},
		{42, "42"},
		{true, "true"},
		{[]string{"fr", "de"}, `["fr","de"]`},
	}

	for _, tt := range tests {
		if got := formValue(tt.in); got != tt.want {
			t.Errorf("formValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
