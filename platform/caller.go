package platform

// Caller is the synchronous call boundary into the platform runtime.
// Every method maps to exactly one underlying call: none of them
// block, retry, or suspend the calling goroutine, and buffer
// arguments are borrowed only for the duration of the call.
//
// Asynchronous outcomes (ticket creation, session validation,
// connectivity changes) are never returned here; they arrive through
// the host-driven callback pump as fixed-size binary payloads (see
// package callback).
type Caller interface {
	// Identity returns the raw 64-bit account id of the local user.
	Identity() uint64

	// PlayerLevel returns the local user's profile level.
	PlayerLevel() uint32

	// GetAuthSessionTicket writes a serialized ticket into buf and
	// returns the ticket handle and the number of bytes written. The
	// call cannot fail; creation problems surface later through the
	// ticket-created callback.
	GetAuthSessionTicket(buf []byte) (handle uint32, written uint32)

	// CancelAuthTicket invalidates a previously issued ticket.
	// Cancelling a handle the runtime no longer knows is a no-op.
	CancelAuthTicket(handle uint32)

	// BeginAuthSession submits a remote peer's ticket to the trust
	// authority and returns the raw acceptance status.
	BeginAuthSession(ticket []byte, identity uint64) BeginResult

	// EndAuthSession releases the authority-side session for the
	// identity. Safe to call whether or not a session exists.
	EndAuthSession(identity uint64)

	// StartVoiceRecording begins capturing microphone audio.
	StartVoiceRecording()

	// StopVoiceRecording requests capture stop. The driver keeps
	// buffering trailing audio; capture has ceased only once a voice
	// call reports VoiceNotRecording.
	StopVoiceRecording()

	// GetAvailableVoice returns the size in bytes of the next
	// compressed frame, when the code is VoiceOK.
	GetAvailableVoice() (compressed uint32, code VoiceCode)

	// GetVoice copies the next compressed frame into dst. When dst is
	// too small the call writes nothing and reports
	// VoiceBufferTooSmall.
	GetVoice(dst []byte) (written uint32, code VoiceCode)

	// DecompressVoice decodes a compressed frame into mono 16-bit
	// little-endian PCM at the desired sample rate. Same
	// all-or-nothing buffer contract as GetVoice.
	DecompressVoice(compressed, dst []byte, sampleRate uint32) (written uint32, code VoiceCode)

	// VoiceOptimalSampleRate returns the decoder's native rate.
	VoiceOptimalSampleRate() uint32
}
