package auth

import (
	"errors"
	"testing"

	"github.com/lanternworks/gridlink/platform"
)

func TestBeginSessionError(t *testing.T) {
	tests := []struct {
		name string
		res  platform.BeginResult
		want error
	}{
		{name: "ok", res: platform.BeginOK, want: nil},
		{name: "invalid ticket", res: platform.BeginInvalidTicket, want: ErrInvalidTicket},
		{name: "duplicate request", res: platform.BeginDuplicateRequest, want: ErrDuplicateRequest},
		{name: "invalid version", res: platform.BeginInvalidVersion, want: ErrInvalidVersion},
		{name: "game mismatch", res: platform.BeginGameMismatch, want: ErrGameMismatch},
		{name: "expired ticket", res: platform.BeginExpiredTicket, want: ErrExpiredTicket},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := beginSessionError(tc.res)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected err %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBeginSessionErrorUnknownCode(t *testing.T) {
	err := beginSessionError(platform.BeginResult(42))
	var uce platform.UnknownCodeError
	if !errors.As(err, &uce) {
		t.Fatalf("expected UnknownCodeError, got %v", err)
	}
	if uce.Op != "BeginAuthSession" || uce.Code != 42 {
		t.Fatalf("unexpected detail: %+v", uce)
	}
}

func TestSessionResponseError(t *testing.T) {
	tests := []struct {
		name string
		res  platform.SessionResponse
		want error
	}{
		{name: "ok", res: platform.SessionOK, want: nil},
		{name: "user not connected", res: platform.SessionUserNotConnected, want: ErrUserNotConnected},
		{name: "no license", res: platform.SessionNoLicenseOrExpired, want: ErrNoLicenseOrExpired},
		{name: "ban active", res: platform.SessionBanActive, want: ErrBanActive},
		{name: "logged in elsewhere", res: platform.SessionLoggedInElsewhere, want: ErrLoggedInElsewhere},
		{name: "ban check timed out", res: platform.SessionBanCheckTimedOut, want: ErrBanCheckTimedOut},
		{name: "ticket cancelled", res: platform.SessionTicketCancelled, want: ErrTicketCancelled},
		{name: "ticket already used", res: platform.SessionTicketAlreadyUsed, want: ErrTicketAlreadyUsed},
		{name: "ticket invalid", res: platform.SessionTicketInvalid, want: ErrTicketInvalid},
		{name: "publisher ban", res: platform.SessionPublisherBan, want: ErrPublisherBan},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := sessionResponseError(tc.res)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected err %v, got %v", tc.want, err)
			}
		})
	}
}

func TestSessionResponseErrorUnknownCode(t *testing.T) {
	err := sessionResponseError(platform.SessionResponse(99))
	var uce platform.UnknownCodeError
	if !errors.As(err, &uce) {
		t.Fatalf("expected UnknownCodeError, got %v", err)
	}
	if uce.Op != "SessionValidated" || uce.Code != 99 {
		t.Fatalf("unexpected detail: %+v", uce)
	}
}
