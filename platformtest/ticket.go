package platformtest

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/binary"

	"github.com/zeebo/blake3"

	"github.com/lanternworks/gridlink/platform"
)

// Ticket wire layout: version u8, app id u32 LE, issuer u64 LE,
// handle u32 LE, issued-at unix seconds u64 LE, nonce 8 bytes, keyed
// BLAKE3 MAC 32 bytes over everything before it.
const (
	ticketVersion   = 1
	ticketMacOffset = 1 + 4 + 8 + 4 + 8 + 8
	ticketLen       = ticketMacOffset + 32
)

func (p *Platform) ticketMAC(data []byte) [32]byte {
	hasher, err := blake3.NewKeyed(p.macKey[:])
	if err != nil {
		// NewKeyed only fails for wrong key length; macKey is fixed
		// at 32 bytes.
		panic("platformtest: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var mac [32]byte
	copy(mac[:], hasher.Sum(nil))
	return mac
}

func (p *Platform) mintTicket(appID uint32, handle uint32) []byte {
	buf := make([]byte, ticketLen)
	buf[0] = ticketVersion
	binary.LittleEndian.PutUint32(buf[1:5], appID)
	binary.LittleEndian.PutUint64(buf[5:13], p.cfg.Identity)
	binary.LittleEndian.PutUint32(buf[13:17], handle)
	binary.LittleEndian.PutUint64(buf[17:25], uint64(p.cfg.Clock().Unix()))
	if _, err := rand.Read(buf[25:33]); err != nil {
		panic("platformtest: ticket nonce generation failed: " + err.Error())
	}
	mac := p.ticketMAC(buf[:ticketMacOffset])
	copy(buf[ticketMacOffset:], mac[:])
	return buf
}

// GetAuthSessionTicket implements platform.Caller. It always succeeds
// and queues a ticket-created event carrying the configured creation
// result.
func (p *Platform) GetAuthSessionTicket(buf []byte) (handle uint32, written uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextHandle++
	handle = p.nextHandle
	ticket := p.mintTicket(p.cfg.AppID, handle)
	n := copy(buf, ticket)

	p.tickets[handle] = &ticketState{
		handle:   handle,
		issuer:   p.cfg.Identity,
		issuedAt: p.cfg.Clock(),
	}

	payload := make([]byte, 8)
	binary.LittleEndian.PutUint32(payload[0:4], handle)
	binary.LittleEndian.PutUint32(payload[4:8], uint32(p.cfg.TicketCreationResult))
	p.enqueue(eventTicketCreated, payload)

	p.log.Debug().Uint32("handle", handle).Msg("emulator issued ticket")
	return handle, uint32(n)
}

// CancelAuthTicket implements platform.Caller. Cancelling an unknown
// or already-cancelled handle is a no-op; sessions validated against
// the ticket receive a ticket-cancelled verdict.
func (p *Platform) CancelAuthTicket(handle uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tk, ok := p.tickets[handle]
	if !ok || tk.cancelled {
		return
	}
	tk.cancelled = true
	for identity, sessionHandle := range p.sessions {
		if sessionHandle == handle {
			p.enqueueValidated(identity, platform.SessionTicketCancelled, tk.issuer)
		}
	}
	p.log.Debug().Uint32("handle", handle).Msg("emulator cancelled ticket")
}

// BeginAuthSession implements platform.Caller. The synchronous result
// covers ticket integrity and duplicate submissions; the verdict on
// the ticket's lifecycle state arrives asynchronously, the way the
// real authority reports it.
func (p *Platform) BeginAuthSession(ticket []byte, identity uint64) platform.BeginResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	tk, res := p.verifyTicket(ticket)
	if res != platform.BeginOK {
		return res
	}
	if _, active := p.sessions[identity]; active {
		return platform.BeginDuplicateRequest
	}
	p.sessions[identity] = tk.handle

	response := platform.SessionOK
	switch {
	case tk.cancelled:
		response = platform.SessionTicketCancelled
	case tk.used:
		response = platform.SessionTicketAlreadyUsed
	}
	tk.used = true
	p.enqueueValidated(identity, response, tk.issuer)
	return platform.BeginOK
}

// EndAuthSession implements platform.Caller. Safe for identities with
// no active session.
func (p *Platform) EndAuthSession(identity uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.sessions, identity)
}

func (p *Platform) verifyTicket(ticket []byte) (*ticketState, platform.BeginResult) {
	if len(ticket) != ticketLen {
		return nil, platform.BeginInvalidTicket
	}
	if ticket[0] != ticketVersion {
		return nil, platform.BeginInvalidVersion
	}
	if binary.LittleEndian.Uint32(ticket[1:5]) != p.cfg.AppID {
		return nil, platform.BeginGameMismatch
	}
	mac := p.ticketMAC(ticket[:ticketMacOffset])
	if subtle.ConstantTimeCompare(mac[:], ticket[ticketMacOffset:]) != 1 {
		return nil, platform.BeginInvalidTicket
	}
	issuedAt := int64(binary.LittleEndian.Uint64(ticket[17:25]))
	if p.cfg.Clock().Unix()-issuedAt > int64(p.cfg.TicketTTL.Seconds()) {
		return nil, platform.BeginExpiredTicket
	}
	handle := binary.LittleEndian.Uint32(ticket[13:17])
	tk, ok := p.tickets[handle]
	if !ok {
		return nil, platform.BeginInvalidTicket
	}
	return tk, platform.BeginOK
}

func (p *Platform) enqueueValidated(identity uint64, response platform.SessionResponse, issuer uint64) {
	owner := issuer
	if p.cfg.LicenseOwner != 0 {
		owner = p.cfg.LicenseOwner
	}
	payload := make([]byte, 20)
	binary.LittleEndian.PutUint64(payload[0:8], identity)
	binary.LittleEndian.PutUint32(payload[8:12], uint32(response))
	binary.LittleEndian.PutUint64(payload[12:20], owner)
	p.enqueue(eventSessionValidated, payload)
}

// MintForeignTicket builds a correctly MAC'd ticket for a different
// app id, for exercising the game-mismatch path.
func (p *Platform) MintForeignTicket(appID uint32) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextHandle++
	return p.mintTicket(appID, p.nextHandle)
}
