package platform

import "fmt"

// Result is the runtime's generic result code, carried by ticket
// creation outcomes and connectivity events. The same numeric space
// is reused by the runtime for unrelated operations, so Result is
// never translated globally; call sites with their own closed code
// spaces (BeginResult, SessionResponse, VoiceCode) translate those
// instead.
type Result uint32

const (
	ResultOK                 Result = 1
	ResultFail               Result = 2
	ResultNoConnection       Result = 3
	ResultInvalidPassword    Result = 5
	ResultLoggedInElsewhere  Result = 6
	ResultInvalidParam       Result = 8
	ResultBusy               Result = 10
	ResultInvalidState       Result = 11
	ResultAccessDenied       Result = 15
	ResultTimeout            Result = 16
	ResultBanned             Result = 17
	ResultServiceUnavailable Result = 20
	ResultLimitExceeded      Result = 25
	ResultRevoked            Result = 26
	ResultExpired            Result = 27
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultFail:
		return "generic failure"
	case ResultNoConnection:
		return "no connection to the platform"
	case ResultInvalidPassword:
		return "invalid password"
	case ResultLoggedInElsewhere:
		return "logged in elsewhere"
	case ResultInvalidParam:
		return "invalid parameter"
	case ResultBusy:
		return "service busy"
	case ResultInvalidState:
		return "invalid state"
	case ResultAccessDenied:
		return "access denied"
	case ResultTimeout:
		return "operation timed out"
	case ResultBanned:
		return "account banned"
	case ResultServiceUnavailable:
		return "service unavailable"
	case ResultLimitExceeded:
		return "limit exceeded"
	case ResultRevoked:
		return "access revoked"
	case ResultExpired:
		return "access expired"
	default:
		return fmt.Sprintf("result(%d)", uint32(r))
	}
}

// BeginResult is the synchronous status of a begin-authentication
// request. Its numeric space is unrelated to Result even where values
// coincide.
type BeginResult uint32

const (
	BeginOK               BeginResult = 0
	BeginInvalidTicket    BeginResult = 1
	BeginDuplicateRequest BeginResult = 2
	BeginInvalidVersion   BeginResult = 3
	BeginGameMismatch     BeginResult = 4
	BeginExpiredTicket    BeginResult = 5
)

// SessionResponse is the trust authority's verdict on an
// authentication session, delivered asynchronously for as long as the
// session lives.
type SessionResponse uint32

const (
	SessionOK                 SessionResponse = 0
	SessionUserNotConnected   SessionResponse = 1
	SessionNoLicenseOrExpired SessionResponse = 2
	SessionBanActive          SessionResponse = 3
	SessionLoggedInElsewhere  SessionResponse = 4
	SessionBanCheckTimedOut   SessionResponse = 5
	SessionTicketCancelled    SessionResponse = 6
	SessionTicketAlreadyUsed  SessionResponse = 7
	SessionTicketInvalid      SessionResponse = 8
	SessionPublisherBan       SessionResponse = 9
)

// VoiceCode is the status space shared by the voice capture calls.
// Value 2 here means "not recording" while the same value means
// "duplicate request" for BeginResult; the two spaces must never be
// translated through a common table.
type VoiceCode uint32

const (
	VoiceOK             VoiceCode = 0
	VoiceNotInitialized VoiceCode = 1
	VoiceNotRecording   VoiceCode = 2
	VoiceNoData         VoiceCode = 3
	VoiceBufferTooSmall VoiceCode = 4
	VoiceDataCorrupted  VoiceCode = 5
	VoiceRestricted     VoiceCode = 6
)

// MetricLabel returns a stable snake_case label for metrics and logs.
func (c VoiceCode) MetricLabel() string {
	switch c {
	case VoiceOK:
		return "ok"
	case VoiceNotInitialized:
		return "not_initialized"
	case VoiceNotRecording:
		return "not_recording"
	case VoiceNoData:
		return "no_data"
	case VoiceBufferTooSmall:
		return "buffer_too_small"
	case VoiceDataCorrupted:
		return "data_corrupted"
	case VoiceRestricted:
		return "restricted"
	default:
		return fmt.Sprintf("code_%d", uint32(c))
	}
}
