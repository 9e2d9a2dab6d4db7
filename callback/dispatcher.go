package callback

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lanternworks/gridlink/internal/observability"
)

var (
	ErrUnknownKind   = errors.New("callback: no handler registered for event kind")
	ErrKindConflict  = errors.New("callback: kind already registered with a different size")
	ErrEmptyKindName = errors.New("callback: kind name required")
)

// Kind identifies one event type on the callback boundary: a stable
// small-integer identifier and the exact payload size in bytes the
// runtime delivers for it.
type Kind struct {
	ID   uint32
	Size int
	Name string
}

// SizeMismatchError reports a payload whose length does not match the
// registered kind's declared size. The payload never reaches a
// handler.
type SizeMismatchError struct {
	Kind Kind
	Got  int
}

func (e SizeMismatchError) Error() string {
	return fmt.Sprintf("callback: %s payload is %d bytes, kind %d declares %d",
		e.Kind.Name, e.Got, e.Kind.ID, e.Kind.Size)
}

// CheckSize validates a payload length against the kind's declared
// size. Decoders use it so that payloads reaching them through paths
// other than a Dispatcher fail the same way.
func CheckSize(k Kind, payload []byte) error {
	if len(payload) != k.Size {
		return SizeMismatchError{Kind: k, Got: len(payload)}
	}
	return nil
}

// Config configures a Dispatcher. The zero value is usable: logging
// is disabled and no journal is kept.
type Config struct {
	Logger  zerolog.Logger
	Journal *Journal
}

type registration struct {
	kind Kind
	fns  []func(payload []byte)
}

// Dispatcher routes size-validated event payloads to handlers
// registered per kind. Handlers run inline on the pump goroutine in
// registration order.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[uint32]*registration
	journal  *Journal
	log      zerolog.Logger
	seq      atomic.Uint64
}

func New(cfg Config) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[uint32]*registration),
		journal:  cfg.Journal,
		log:      cfg.Logger,
	}
}

// Handle registers fn for the kind. Multiple handlers per kind are
// allowed; registering the same kind ID with a conflicting size or
// name, or with an empty name, is an error.
func (d *Dispatcher) Handle(k Kind, fn func(payload []byte)) error {
	if k.Name == "" {
		return ErrEmptyKindName
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	reg, ok := d.handlers[k.ID]
	if !ok {
		d.handlers[k.ID] = &registration{kind: k, fns: []func([]byte){fn}}
		return nil
	}
	if reg.kind.Size != k.Size {
		return fmt.Errorf("%w: id=%d registered=%d new=%d",
			ErrKindConflict, k.ID, reg.kind.Size, k.Size)
	}
	if reg.kind.Name != k.Name {
		return fmt.Errorf("%w: id=%d registered=%q new=%q",
			ErrKindConflict, k.ID, reg.kind.Name, k.Name)
	}
	reg.fns = append(reg.fns, fn)
	return nil
}

// Deliver hands one raw event to the registered handlers. It returns
// ErrUnknownKind when no handler is registered for id, and a
// SizeMismatchError when the payload violates the kind's declared
// size; in both cases no handler runs. Deliver operates on the
// handler set as of its lock acquisition; a Handle racing with it
// takes effect for subsequent deliveries.
func (d *Dispatcher) Deliver(id uint32, payload []byte) error {
	d.mu.RLock()
	reg, ok := d.handlers[id]
	var kind Kind
	var fns []func(payload []byte)
	if ok {
		// Snapshot under the lock: Handle may append to reg.fns from
		// another goroutine while handlers run.
		kind = reg.kind
		fns = append([]func(payload []byte){}, reg.fns...)
	}
	d.mu.RUnlock()
	if !ok {
		observability.RecordCallbackEvent(fmt.Sprintf("kind_%d", id), "unknown")
		d.log.Warn().Uint32("kind", id).Int("size", len(payload)).
			Msg("dropping event with no registered kind")
		return fmt.Errorf("%w: id=%d", ErrUnknownKind, id)
	}
	if err := CheckSize(kind, payload); err != nil {
		observability.RecordCallbackEvent(kind.Name, "size_rejected")
		d.log.Error().Uint32("kind", id).Str("name", kind.Name).
			Int("got", len(payload)).Int("want", kind.Size).
			Msg("rejecting event with mismatched payload size")
		return err
	}

	seq := d.seq.Add(1)
	if d.journal != nil {
		if err := d.journal.append(Record{Seq: seq, Kind: id, Payload: payload}); err != nil {
			d.log.Error().Err(err).Uint32("kind", id).Msg("event journal write failed")
		}
	}

	for _, fn := range fns {
		fn(payload)
	}
	observability.RecordCallbackEvent(kind.Name, "delivered")
	d.log.Debug().Uint32("kind", id).Str("name", kind.Name).Uint64("seq", seq).
		Msg("event delivered")
	return nil
}
