package platform

import (
	"errors"
	"testing"
)

func TestResultString(t *testing.T) {
	tests := []struct {
		code Result
		want string
	}{
		{ResultOK, "ok"},
		{ResultFail, "generic failure"},
		{ResultLoggedInElsewhere, "logged in elsewhere"},
		{ResultExpired, "access expired"},
		{Result(999), "result(999)"},
	}
	for _, tc := range tests {
		if got := tc.code.String(); got != tc.want {
			t.Fatalf("Result(%d).String() = %q, want %q", uint32(tc.code), got, tc.want)
		}
	}
}

func TestResultError(t *testing.T) {
	if err := ResultError(ResultOK); err != nil {
		t.Fatalf("expected nil for ok, got %v", err)
	}

	err := ResultError(ResultBanned)
	if err == nil {
		t.Fatalf("expected error for banned")
	}
	var pe Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected platform.Error, got %T", err)
	}
	if pe.Code != ResultBanned {
		t.Fatalf("unexpected code: %v", pe.Code)
	}
	if pe.Error() != "platform: account banned" {
		t.Fatalf("unexpected message: %q", pe.Error())
	}
}

func TestVoiceCodeMetricLabel(t *testing.T) {
	tests := []struct {
		code VoiceCode
		want string
	}{
		{VoiceOK, "ok"},
		{VoiceNotRecording, "not_recording"},
		{VoiceBufferTooSmall, "buffer_too_small"},
		{VoiceCode(42), "code_42"},
	}
	for _, tc := range tests {
		if got := tc.code.MetricLabel(); got != tc.want {
			t.Fatalf("VoiceCode(%d).MetricLabel() = %q, want %q", uint32(tc.code), got, tc.want)
		}
	}
}

func TestUnknownCodeError(t *testing.T) {
	err := UnknownCodeError{Op: "BeginAuthSession", Code: 77}
	want := "platform: BeginAuthSession returned unknown result code 77"
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestIDString(t *testing.T) {
	id := ID(76560000000000001)
	if !id.IsValid() {
		t.Fatalf("expected valid id")
	}
	if ID(0).IsValid() {
		t.Fatalf("expected zero id invalid")
	}
	if id.String() == "" {
		t.Fatalf("expected non-empty string form")
	}
}
