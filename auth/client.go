package auth

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/lanternworks/gridlink/internal/observability"
	"github.com/lanternworks/gridlink/platform"
)

// MaxTicketLen bounds the serialized ticket payload. The runtime
// never produces a longer ticket.
const MaxTicketLen = 1024

// TicketHandle refers to a locally issued ticket and is used solely
// to cancel it later. Holding a handle does not imply the ticket is
// still valid: cancellation can race with platform-side expiry, and
// cancelling an already-expired ticket is harmless. A handle must not
// be reused once cancelled.
type TicketHandle uint32

// InvalidTicketHandle is never returned by IssueTicket.
const InvalidTicketHandle TicketHandle = 0

var ErrNilCaller = errors.New("auth: platform caller required")

// Config configures a Client. Logger may be left zero for a silent
// client.
type Config struct {
	Caller platform.Caller
	Logger zerolog.Logger
}

// Client drives the ticket protocol over the platform call boundary.
// Every method is synchronous and non-blocking; asynchronous outcomes
// arrive as TicketCreated and SessionValidated events through the
// callback pump.
type Client struct {
	caller platform.Caller
	log    zerolog.Logger
}

func New(cfg Config) (*Client, error) {
	if cfg.Caller == nil {
		return nil, ErrNilCaller
	}
	return &Client{caller: cfg.Caller, log: cfg.Logger}, nil
}

// IssueTicket creates an authentication session ticket for the local
// user and returns its handle and serialized bytes (at most
// MaxTicketLen). The call cannot fail; callers that need confirmation
// before transmitting the bytes should wait for the matching
// TicketCreated event, correlated by handle. Issuing several tickets
// concurrently is allowed; the caller tracks the handles, there is no
// sequence number.
func (c *Client) IssueTicket() (TicketHandle, []byte) {
	buf := make([]byte, MaxTicketLen)
	handle, written := c.caller.GetAuthSessionTicket(buf)
	observability.RecordTicketIssued()
	c.log.Debug().Uint32("handle", handle).Uint32("len", written).Msg("ticket issued")
	return TicketHandle(handle), buf[:written]
}

// CancelTicket invalidates a ticket issued by IssueTicket. Fire and
// forget: the runtime tolerates handles it already expired, so
// cancelling late never fails.
func (c *Client) CancelTicket(h TicketHandle) {
	c.caller.CancelAuthTicket(uint32(h))
	observability.RecordTicketCancelled()
	c.log.Debug().Uint32("handle", uint32(h)).Msg("ticket cancelled")
}

// BeginSession submits a remote peer's ticket bytes to the trust
// authority. A nil return only confirms the request was accepted for
// asynchronous validation, not that the peer stays trustworthy:
// revocations arrive later as SessionValidated events. Possible
// errors are ErrInvalidTicket, ErrDuplicateRequest, ErrInvalidVersion,
// ErrGameMismatch, ErrExpiredTicket, or a platform.UnknownCodeError
// for codes newer than this library.
func (c *Client) BeginSession(identity platform.ID, ticket []byte) error {
	res := c.caller.BeginAuthSession(ticket, uint64(identity))
	err := beginSessionError(res)
	if err != nil {
		observability.RecordSessionBegin("error")
		c.log.Debug().Stringer("identity", identity).Err(err).Msg("begin session rejected")
		return err
	}
	observability.RecordSessionBegin("ok")
	c.log.Debug().Stringer("identity", identity).Msg("begin session accepted")
	return nil
}

// EndSession releases the authority-side session for the identity.
// It must be called when the peer disconnects or the session ends,
// even if a validation failure already arrived; forgetting it leaks
// session state in the runtime, not in this process. Fire and forget,
// safe for identities with no active session.
func (c *Client) EndSession(identity platform.ID) {
	c.caller.EndAuthSession(uint64(identity))
	c.log.Debug().Stringer("identity", identity).Msg("session ended")
}
