package auth

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/lanternworks/gridlink/callback"
	"github.com/lanternworks/gridlink/internal/testutil/testlog"
	"github.com/lanternworks/gridlink/platform"
)

func ticketCreatedPayload(handle uint32, result platform.Result) []byte {
	payload := make([]byte, 8)
	binary.LittleEndian.PutUint32(payload[0:4], handle)
	binary.LittleEndian.PutUint32(payload[4:8], uint32(result))
	return payload
}

func sessionValidatedPayload(identity platform.ID, res platform.SessionResponse, owner platform.ID) []byte {
	payload := make([]byte, 20)
	binary.LittleEndian.PutUint64(payload[0:8], uint64(identity))
	binary.LittleEndian.PutUint32(payload[8:12], uint32(res))
	binary.LittleEndian.PutUint64(payload[12:20], uint64(owner))
	return payload
}

func TestDecodeTicketCreated(t *testing.T) {
	ev, err := DecodeTicketCreated(ticketCreatedPayload(7, platform.ResultOK))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.Handle != 7 {
		t.Fatalf("unexpected handle: %d", ev.Handle)
	}
	if ev.Err != nil {
		t.Fatalf("unexpected err: %v", ev.Err)
	}

	ev, err = DecodeTicketCreated(ticketCreatedPayload(9, platform.ResultNoConnection))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	var pe platform.Error
	if !errors.As(ev.Err, &pe) || pe.Code != platform.ResultNoConnection {
		t.Fatalf("expected no-connection error, got %v", ev.Err)
	}
}

func TestDecodeTicketCreatedSizeRejected(t *testing.T) {
	_, err := DecodeTicketCreated([]byte{1, 2, 3})
	var sme callback.SizeMismatchError
	if !errors.As(err, &sme) {
		t.Fatalf("expected SizeMismatchError, got %v", err)
	}
}

func TestDecodeSessionValidated(t *testing.T) {
	const identity platform.ID = 76560000000000042
	const owner platform.ID = 76560000000000099

	ev, err := DecodeSessionValidated(sessionValidatedPayload(identity, platform.SessionOK, owner))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.Identity != identity {
		t.Fatalf("unexpected identity: %v", ev.Identity)
	}
	// A borrowed license reports a distinct owner; both ids must
	// survive the decode untouched.
	if ev.Owner != owner {
		t.Fatalf("unexpected owner: %v", ev.Owner)
	}
	if ev.Err != nil {
		t.Fatalf("unexpected err: %v", ev.Err)
	}

	ev, err = DecodeSessionValidated(sessionValidatedPayload(identity, platform.SessionLoggedInElsewhere, identity))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !errors.Is(ev.Err, ErrLoggedInElsewhere) {
		t.Fatalf("expected ErrLoggedInElsewhere, got %v", ev.Err)
	}
}

func TestDecodeSessionValidatedSizeRejected(t *testing.T) {
	_, err := DecodeSessionValidated(make([]byte, 19))
	var sme callback.SizeMismatchError
	if !errors.As(err, &sme) {
		t.Fatalf("expected SizeMismatchError, got %v", err)
	}
}

func TestSubscriptionsDeliver(t *testing.T) {
	d := callback.New(callback.Config{Logger: testlog.Start(t)})

	var created []TicketCreated
	if err := OnTicketCreated(d, func(ev TicketCreated) { created = append(created, ev) }); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	var validated []SessionValidated
	if err := OnSessionValidated(d, func(ev SessionValidated) { validated = append(validated, ev) }); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if err := d.Deliver(KindTicketCreated.ID, ticketCreatedPayload(3, platform.ResultOK)); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if err := d.Deliver(KindSessionValidated.ID, sessionValidatedPayload(1, platform.SessionOK, 1)); err != nil {
		t.Fatalf("deliver: %v", err)
	}

	if len(created) != 1 || created[0].Handle != 3 {
		t.Fatalf("unexpected ticket-created events: %+v", created)
	}
	if len(validated) != 1 || validated[0].Identity != 1 {
		t.Fatalf("unexpected session-validated events: %+v", validated)
	}
}
