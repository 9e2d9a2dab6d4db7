package auth

import (
	"errors"

	"github.com/lanternworks/gridlink/platform"
)

// Begin-session failures, translated from platform.BeginResult. This
// is the complete set the authority returns synchronously.
var (
	ErrInvalidTicket    = errors.New("auth: invalid ticket")
	ErrDuplicateRequest = errors.New("auth: a ticket was already submitted for this identity")
	ErrInvalidVersion   = errors.New("auth: ticket is from an incompatible interface version")
	ErrGameMismatch     = errors.New("auth: ticket was issued for a different game")
	ErrExpiredTicket    = errors.New("auth: ticket has expired")
)

// Validation failures, translated from platform.SessionResponse and
// carried by SessionValidated events.
var (
	ErrUserNotConnected   = errors.New("auth: user is not connected to the platform")
	ErrNoLicenseOrExpired = errors.New("auth: license is missing or expired")
	ErrBanActive          = errors.New("auth: user is banned from this game")
	ErrLoggedInElsewhere  = errors.New("auth: user logged in elsewhere, session disconnected")
	ErrBanCheckTimedOut   = errors.New("auth: ban check timed out")
	ErrTicketCancelled    = errors.New("auth: ticket was cancelled by the issuer")
	ErrTicketAlreadyUsed  = errors.New("auth: ticket has already been used")
	ErrTicketInvalid      = errors.New("auth: ticket is not from a connected user instance")
	ErrPublisherBan       = errors.New("auth: user has a publisher-issued ban")
)

// beginSessionError translates the synchronous begin-authentication
// status. The mapping is scoped to this call site: the same numeric
// values mean different things in other code spaces.
func beginSessionError(res platform.BeginResult) error {
	switch res {
	case platform.BeginOK:
		return nil
	case platform.BeginInvalidTicket:
		return ErrInvalidTicket
	case platform.BeginDuplicateRequest:
		return ErrDuplicateRequest
	case platform.BeginInvalidVersion:
		return ErrInvalidVersion
	case platform.BeginGameMismatch:
		return ErrGameMismatch
	case platform.BeginExpiredTicket:
		return ErrExpiredTicket
	default:
		return platform.UnknownCodeError{Op: "BeginAuthSession", Code: uint32(res)}
	}
}

// sessionResponseError translates the trust authority's asynchronous
// session verdict.
func sessionResponseError(res platform.SessionResponse) error {
	switch res {
	case platform.SessionOK:
		return nil
	case platform.SessionUserNotConnected:
		return ErrUserNotConnected
	case platform.SessionNoLicenseOrExpired:
		return ErrNoLicenseOrExpired
	case platform.SessionBanActive:
		return ErrBanActive
	case platform.SessionLoggedInElsewhere:
		return ErrLoggedInElsewhere
	case platform.SessionBanCheckTimedOut:
		return ErrBanCheckTimedOut
	case platform.SessionTicketCancelled:
		return ErrTicketCancelled
	case platform.SessionTicketAlreadyUsed:
		return ErrTicketAlreadyUsed
	case platform.SessionTicketInvalid:
		return ErrTicketInvalid
	case platform.SessionPublisherBan:
		return ErrPublisherBan
	default:
		return platform.UnknownCodeError{Op: "SessionValidated", Code: uint32(res)}
	}
}
