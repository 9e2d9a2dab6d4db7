// Package auth implements the mutual authentication ticket protocol.
//
// One peer issues an opaque session ticket (IssueTicket) and sends
// the bytes to a relying peer over the application's own channel. The
// relying peer submits them to the trust authority (BeginSession) and
// from then on receives SessionValidated events for the lifetime of
// the session: the first one answers the begin request, later ones
// report revocations such as the remote peer going offline or the
// ticket being cancelled.
//
// The authoritative ticket and session state lives in the platform
// runtime, not in this process. The Client keeps no session table and
// performs no deduplication; handles and identities are plain values
// forwarded across the call boundary. That puts three obligations on
// the caller:
//
//   - ticket bytes are single-use: submit them to at most one
//     BeginSession, and issue a fresh ticket per peer;
//   - cancel a ticket (CancelTicket) when the session it backed is
//     over, tolerating that the runtime may have expired it already;
//   - call EndSession for every identity passed to BeginSession once
//     the peer disconnects, whether or not a validation failure
//     already closed the authority-side session.
//
// None of these are enforced locally; violating them surfaces as
// authority errors such as ErrDuplicateRequest or a
// SessionValidated carrying ErrTicketAlreadyUsed.
package auth
