// Package conn adapts the runtime's connectivity notifications:
// connected, disconnected, and connect-failure. The payloads are pure
// data; no call in this library triggers them.
package conn

import (
	"encoding/binary"

	"github.com/lanternworks/gridlink/callback"
	"github.com/lanternworks/gridlink/platform"
)

// Connectivity callback kinds. IDs and payload sizes are wire
// constants fixed by the runtime.
var (
	KindConnected      = callback.Kind{ID: 101, Size: 0, Name: "connected"}
	KindConnectFailure = callback.Kind{ID: 102, Size: 8, Name: "connect_failure"}
	KindDisconnected   = callback.Kind{ID: 103, Size: 4, Name: "disconnected"}
)

// Connected signals that a connection to the platform servers was
// established. The payload carries no data.
type Connected struct{}

func DecodeConnected(payload []byte) (Connected, error) {
	if err := callback.CheckSize(KindConnected, payload); err != nil {
		return Connected{}, err
	}
	return Connected{}, nil
}

// ConnectFailure signals a failed connection attempt. StillRetrying
// reports whether the runtime keeps trying; it passes through from
// the payload unchanged.
type ConnectFailure struct {
	Reason        platform.Result
	StillRetrying bool
}

// DecodeConnectFailure decodes the 8-byte connect-failure payload:
// reason u32 LE, still-retrying flag u8, three reserved bytes.
func DecodeConnectFailure(payload []byte) (ConnectFailure, error) {
	if err := callback.CheckSize(KindConnectFailure, payload); err != nil {
		return ConnectFailure{}, err
	}
	return ConnectFailure{
		Reason:        platform.Result(binary.LittleEndian.Uint32(payload[0:4])),
		StillRetrying: payload[4] != 0,
	}, nil
}

// Disconnected signals that the connection to the platform servers
// was lost, with the translated reason.
type Disconnected struct {
	Reason platform.Result
}

// DecodeDisconnected decodes the 4-byte disconnected payload:
// reason u32 LE.
func DecodeDisconnected(payload []byte) (Disconnected, error) {
	if err := callback.CheckSize(KindDisconnected, payload); err != nil {
		return Disconnected{}, err
	}
	return Disconnected{
		Reason: platform.Result(binary.LittleEndian.Uint32(payload[0:4])),
	}, nil
}

// OnConnected subscribes fn to connected events on d.
func OnConnected(d *callback.Dispatcher, fn func(Connected)) error {
	return d.Handle(KindConnected, func(payload []byte) {
		ev, err := DecodeConnected(payload)
		if err != nil {
			return
		}
		fn(ev)
	})
}

// OnConnectFailure subscribes fn to connect-failure events on d.
func OnConnectFailure(d *callback.Dispatcher, fn func(ConnectFailure)) error {
	return d.Handle(KindConnectFailure, func(payload []byte) {
		ev, err := DecodeConnectFailure(payload)
		if err != nil {
			return
		}
		fn(ev)
	})
}

// OnDisconnected subscribes fn to disconnected events on d.
func OnDisconnected(d *callback.Dispatcher, fn func(Disconnected)) error {
	return d.Handle(KindDisconnected, func(payload []byte) {
		ev, err := DecodeDisconnected(payload)
		if err != nil {
			return
		}
		fn(ev)
	})
}
