package voice

import (
	"errors"

	"github.com/lanternworks/gridlink/platform"
)

// Voice pipeline failures, translated from platform.VoiceCode. All
// three voice call sites share this closed set, but each call
// translates through its own operation name so an unknown code
// reports where it came from.
var (
	ErrNotInitialized = errors.New("voice: voice interface is not initialized")
	ErrNotRecording   = errors.New("voice: not currently recording")
	ErrNoData         = errors.New("voice: no voice data available")
	ErrBufferTooSmall = errors.New("voice: destination buffer is too small")
	ErrDataCorrupted  = errors.New("voice: voice data is corrupted")
	ErrRestricted     = errors.New("voice: user is chat restricted")
)

// ErrSampleRateRange rejects Decompress rates outside
// [MinSampleRate, MaxSampleRate] before they reach the decoder.
var ErrSampleRateRange = errors.New("voice: desired sample rate outside supported range")

func voiceError(op string, code platform.VoiceCode) error {
	switch code {
	case platform.VoiceOK:
		return nil
	case platform.VoiceNotInitialized:
		return ErrNotInitialized
	case platform.VoiceNotRecording:
		return ErrNotRecording
	case platform.VoiceNoData:
		return ErrNoData
	case platform.VoiceBufferTooSmall:
		return ErrBufferTooSmall
	case platform.VoiceDataCorrupted:
		return ErrDataCorrupted
	case platform.VoiceRestricted:
		return ErrRestricted
	default:
		return platform.UnknownCodeError{Op: op, Code: uint32(code)}
	}
}
