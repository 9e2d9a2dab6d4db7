// Package platform defines the boundary between gridlink and the
// Grid platform runtime: the identity and result-code value types
// shared by every higher-level package, and the Caller interface
// through which all synchronous platform operations are reached.
//
// The platform runtime owns all authoritative state (outstanding
// tickets, authentication sessions, the voice recorder). gridlink
// holds only value-level handles; nothing in this package retains
// references across calls.
package platform
