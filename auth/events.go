package auth

import (
	"encoding/binary"

	"github.com/lanternworks/gridlink/callback"
	"github.com/lanternworks/gridlink/platform"
)

// Callback kinds owned by the ticket protocol. IDs and payload sizes
// are wire constants fixed by the runtime.
var (
	KindTicketCreated    = callback.Kind{ID: 163, Size: 8, Name: "ticket_created"}
	KindSessionValidated = callback.Kind{ID: 143, Size: 20, Name: "session_validated"}
)

// TicketCreated reports the outcome of an IssueTicket call. Callers
// correlate it by handle equality.
type TicketCreated struct {
	Handle TicketHandle

	// Err is nil when the ticket was created successfully, a
	// platform.Error otherwise.
	Err error
}

// DecodeTicketCreated decodes the 8-byte ticket-created payload:
// handle u32 LE, generic result u32 LE.
func DecodeTicketCreated(payload []byte) (TicketCreated, error) {
	if err := callback.CheckSize(KindTicketCreated, payload); err != nil {
		return TicketCreated{}, err
	}
	return TicketCreated{
		Handle: TicketHandle(binary.LittleEndian.Uint32(payload[0:4])),
		Err:    platform.ResultError(platform.Result(binary.LittleEndian.Uint32(payload[4:8]))),
	}, nil
}

// SessionValidated reports the trust authority's verdict on a session
// begun with BeginSession. The first event for an identity answers
// the begin request; later ones signal revocation (peer offline,
// ticket cancelled). Owner differs from Identity when the game
// license is borrowed; both round-trip from the payload untouched.
type SessionValidated struct {
	Identity platform.ID
	Owner    platform.ID

	// Err is nil for a positive verdict; otherwise one of the
	// validation errors in this package, or platform.UnknownCodeError.
	Err error
}

// DecodeSessionValidated decodes the 20-byte session-validated
// payload: identity u64 LE, session response u32 LE, owner u64 LE.
func DecodeSessionValidated(payload []byte) (SessionValidated, error) {
	if err := callback.CheckSize(KindSessionValidated, payload); err != nil {
		return SessionValidated{}, err
	}
	return SessionValidated{
		Identity: platform.ID(binary.LittleEndian.Uint64(payload[0:8])),
		Err:      sessionResponseError(platform.SessionResponse(binary.LittleEndian.Uint32(payload[8:12]))),
		Owner:    platform.ID(binary.LittleEndian.Uint64(payload[12:20])),
	}, nil
}

// OnTicketCreated subscribes fn to ticket-created events on d.
func OnTicketCreated(d *callback.Dispatcher, fn func(TicketCreated)) error {
	return d.Handle(KindTicketCreated, func(payload []byte) {
		ev, err := DecodeTicketCreated(payload)
		if err != nil {
			// Size is validated before delivery; decode cannot fail here.
			return
		}
		fn(ev)
	})
}

// OnSessionValidated subscribes fn to session-validated events on d.
func OnSessionValidated(d *callback.Dispatcher, fn func(SessionValidated)) error {
	return d.Handle(KindSessionValidated, func(payload []byte) {
		ev, err := DecodeSessionValidated(payload)
		if err != nil {
			return
		}
		fn(ev)
	})
}
