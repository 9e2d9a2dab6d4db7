package callback

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// encMode encodes journal records with Core Deterministic Encoding
// (RFC 8949 §4.2) so the same event stream always produces identical
// bytes, which keeps replay fixtures diffable.
var encMode cbor.EncMode

// decMode accepts standard CBOR; unknown fields are ignored for
// forward compatibility with newer record shapes.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("callback: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("callback: CBOR decoder initialization failed: " + err.Error())
	}
}

// Record is one delivered event as written to a journal: the delivery
// sequence number, the kind identifier, and the raw payload exactly
// as the runtime handed it over.
type Record struct {
	Seq     uint64 `cbor:"1,keyasint"`
	Kind    uint32 `cbor:"2,keyasint"`
	Payload []byte `cbor:"3,keyasint"`
}

// Journal records every event a Dispatcher delivers, as a CBOR
// sequence. Attach one through Config.Journal to capture a session
// for later replay.
type Journal struct {
	mu  sync.Mutex
	enc *cbor.Encoder
}

func NewJournal(w io.Writer) *Journal {
	return &Journal{enc: encMode.NewEncoder(w)}
}

func (j *Journal) append(rec Record) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.enc.Encode(rec); err != nil {
		return fmt.Errorf("callback: journal encode: %w", err)
	}
	return nil
}

// ReadJournal decodes a full journal stream back into records.
func ReadJournal(r io.Reader) ([]Record, error) {
	dec := decMode.NewDecoder(r)
	var records []Record
	for {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return nil, fmt.Errorf("callback: journal decode: %w", err)
		}
		records = append(records, rec)
	}
}

// Replay re-delivers journaled records through d in their original
// order. Records whose kind has no handler in this process are
// skipped; integrity errors abort the replay.
func Replay(records []Record, d *Dispatcher) error {
	for _, rec := range records {
		err := d.Deliver(rec.Kind, rec.Payload)
		if err == nil || errors.Is(err, ErrUnknownKind) {
			continue
		}
		return fmt.Errorf("callback: replay seq %d: %w", rec.Seq, err)
	}
	return nil
}
