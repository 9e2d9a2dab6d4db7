package platformtest

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lanternworks/gridlink/callback"
	"github.com/lanternworks/gridlink/platform"
)

// Wire constants of the callback boundary. These mirror the kind IDs
// and payload sizes published by the auth and conn packages; the
// emulator defines them independently because it plays the runtime
// side of the boundary.
const (
	eventConnected        uint32 = 101
	eventConnectFailure   uint32 = 102
	eventDisconnected     uint32 = 103
	eventSessionValidated uint32 = 143
	eventTicketCreated    uint32 = 163
)

// Config configures an emulated platform. Zero fields take the
// defaults noted below.
type Config struct {
	// Identity of the local user (default 76560000000000001).
	Identity uint64

	// Level of the local user's profile (default 7).
	Level uint32

	// AppID the runtime issues tickets for (default 480).
	AppID uint32

	// LicenseOwner, when non-zero, is reported as the owner identity
	// in validation verdicts, simulating a borrowed license.
	LicenseOwner uint64

	// TicketTTL before issued tickets expire (default 5m).
	TicketTTL time.Duration

	// TicketCreationResult is the generic result delivered by the
	// ticket-created event (default platform.ResultOK).
	TicketCreationResult platform.Result

	// VoiceDisabled makes every voice call report NotInitialized.
	VoiceDisabled bool

	// Restricted makes voice capture report the user chat-restricted.
	Restricted bool

	// NativeSampleRate of the emulated voice decoder (default 22050).
	NativeSampleRate uint32

	// FrameDuration of one synthesized capture frame (default 20ms).
	FrameDuration time.Duration

	// TrailingFrames buffered after a stop request, emulating the
	// driver's push-to-talk grace period (default 2).
	TrailingFrames int

	// Compression for synthesized voice frames (default zstd).
	Compression FrameCompression

	// Clock drives ticket expiry (default time.Now).
	Clock func() time.Time

	Logger zerolog.Logger
}

func (cfg *Config) applyDefaults() {
	if cfg.Identity == 0 {
		cfg.Identity = 76560000000000001
	}
	if cfg.Level == 0 {
		cfg.Level = 7
	}
	if cfg.AppID == 0 {
		cfg.AppID = 480
	}
	if cfg.TicketTTL == 0 {
		cfg.TicketTTL = 5 * time.Minute
	}
	if cfg.TicketCreationResult == 0 {
		cfg.TicketCreationResult = platform.ResultOK
	}
	if cfg.NativeSampleRate == 0 {
		cfg.NativeSampleRate = 22050
	}
	if cfg.FrameDuration == 0 {
		cfg.FrameDuration = 20 * time.Millisecond
	}
	if cfg.TrailingFrames == 0 {
		cfg.TrailingFrames = 2
	}
	if cfg.Compression == CompressionNone {
		cfg.Compression = CompressionZstd
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
}

type pendingEvent struct {
	kind    uint32
	payload []byte
}

type ticketState struct {
	handle    uint32
	issuer    uint64
	issuedAt  time.Time
	cancelled bool
	used      bool
}

// Platform implements platform.Caller in memory. All methods are safe
// for use from a single goroutine, matching the call boundary's
// scheduling model; a mutex still guards state so tests may pump
// callbacks from a second goroutine.
type Platform struct {
	mu         sync.Mutex
	cfg        Config
	macKey     [32]byte
	nextHandle uint32
	tickets    map[uint32]*ticketState
	sessions   map[uint64]uint32
	pending    []pendingEvent
	log        zerolog.Logger

	vphase  voicePhase
	vqueue  [][]byte
	vsilent bool
	sine    float64
}

var _ platform.Caller = (*Platform)(nil)

func New(cfg Config) *Platform {
	cfg.applyDefaults()
	p := &Platform{
		cfg:      cfg,
		tickets:  make(map[uint32]*ticketState),
		sessions: make(map[uint64]uint32),
		log:      cfg.Logger,
	}
	if _, err := rand.Read(p.macKey[:]); err != nil {
		panic("platformtest: mac key generation failed: " + err.Error())
	}
	return p
}

// RunCallbacks drains the pending event queue into d, in FIFO order.
// It is the emulator's pump: the host calls it repeatedly, the way a
// real application drives the runtime's callback loop. Events whose
// kind has no registered handler are dropped, as the runtime drops
// callbacks nobody listens for; integrity errors stop the pump and
// surface.
func (p *Platform) RunCallbacks(d *callback.Dispatcher) error {
	p.mu.Lock()
	queued := p.pending
	p.pending = nil
	p.mu.Unlock()

	for i, ev := range queued {
		err := d.Deliver(ev.kind, ev.payload)
		if err == nil || errors.Is(err, callback.ErrUnknownKind) {
			continue
		}
		// Put the undelivered tail back so a fixed host can retry.
		p.mu.Lock()
		p.pending = append(queued[i+1:], p.pending...)
		p.mu.Unlock()
		return err
	}
	return nil
}

func (p *Platform) enqueue(kind uint32, payload []byte) {
	p.pending = append(p.pending, pendingEvent{kind: kind, payload: payload})
}

// Identity implements platform.Caller.
func (p *Platform) Identity() uint64 {
	return p.cfg.Identity
}

// PlayerLevel implements platform.Caller.
func (p *Platform) PlayerLevel() uint32 {
	return p.cfg.Level
}

// ReportConnected queues a connected notification.
func (p *Platform) ReportConnected() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enqueue(eventConnected, []byte{})
}

// ReportDisconnected queues a disconnected notification with the
// given reason.
func (p *Platform) ReportDisconnected(reason platform.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	payload := make([]byte, 4)
	binary.LittleEndian.PutUint32(payload, uint32(reason))
	p.enqueue(eventDisconnected, payload)
}

// ReportConnectFailure queues a connect-failure notification carrying
// the reason and the still-retrying flag.
func (p *Platform) ReportConnectFailure(reason platform.Result, stillRetrying bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	payload := make([]byte, 8)
	binary.LittleEndian.PutUint32(payload[0:4], uint32(reason))
	if stillRetrying {
		payload[4] = 1
	}
	p.enqueue(eventConnectFailure, payload)
}
