package voice

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lanternworks/gridlink/internal/observability"
	"github.com/lanternworks/gridlink/platform"
)

const (
	// MinSampleRate and MaxSampleRate bound the decoder's supported
	// output rates, inclusive.
	MinSampleRate = 11025
	MaxSampleRate = 48000

	// RecommendedReadBuffer comfortably fits any compressed frame, so
	// a static buffer of this size avoids the Available round trip in
	// low-latency capture loops.
	RecommendedReadBuffer = 8 * 1024
)

var ErrNilCaller = errors.New("voice: platform caller required")

// Config configures a Recorder. Logger may be left zero for a silent
// recorder.
type Config struct {
	Caller platform.Caller
	Logger zerolog.Logger
}

// Recorder drives one voice capture pipeline. There is exactly one
// recorder per application session; the phase lives in the runtime
// driver, so independent Recorder values over the same Caller observe
// the same pipeline.
type Recorder struct {
	caller platform.Caller
	log    zerolog.Logger
}

func New(cfg Config) (*Recorder, error) {
	if cfg.Caller == nil {
		return nil, ErrNilCaller
	}
	return &Recorder{caller: cfg.Caller, log: cfg.Logger}, nil
}

// Start begins capturing. It has no return value; a capture problem
// (no microphone, voice disabled) is only observable through later
// poll results.
func (r *Recorder) Start() {
	r.caller.StartVoiceRecording()
	r.log.Debug().Msg("voice recording started")
}

// Stop requests capture stop. The driver keeps buffering trailing
// audio; keep polling Read or Available until ErrNotRecording before
// treating the pipeline as idle.
func (r *Recorder) Stop() {
	r.caller.StopVoiceRecording()
	r.log.Debug().Msg("voice recording stop requested")
}

// Available reports the size in bytes of the next compressed frame.
// Non-blocking; ErrNoData means no frame is ready yet and the caller
// should poll again.
func (r *Recorder) Available() (int, error) {
	compressed, code := r.caller.GetAvailableVoice()
	if err := voiceError("GetAvailableVoice", code); err != nil {
		return 0, err
	}
	return int(compressed), nil
}

// Read copies the next compressed frame into dst and returns the
// number of bytes written. When dst is smaller than the frame the
// call writes nothing, returns 0 and ErrBufferTooSmall; retry with a
// buffer sized by Available.
func (r *Recorder) Read(dst []byte) (int, error) {
	written, code := r.caller.GetVoice(dst)
	if err := voiceError("GetVoice", code); err != nil {
		observability.RecordVoiceRead(code.MetricLabel(), 0)
		return 0, err
	}
	observability.RecordVoiceRead("ok", int(written))
	return int(written), nil
}

// Decompress decodes a compressed frame into dst as mono 16-bit
// little-endian PCM at the desired sample rate and returns the number
// of bytes written. It is stateless with respect to the recorder
// phase and works on frames captured by any peer. Same all-or-nothing
// buffer contract as Read. Decoding at OptimalSampleRate costs the
// least CPU.
func (r *Recorder) Decompress(compressed, dst []byte, sampleRate uint32) (int, error) {
	if sampleRate < MinSampleRate || sampleRate > MaxSampleRate {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]",
			ErrSampleRateRange, sampleRate, MinSampleRate, MaxSampleRate)
	}
	written, code := r.caller.DecompressVoice(compressed, dst, sampleRate)
	if err := voiceError("DecompressVoice", code); err != nil {
		return 0, err
	}
	return int(written), nil
}

// OptimalSampleRate returns the native rate of the runtime's voice
// decoder. Pure query, no side effects.
func (r *Recorder) OptimalSampleRate() uint32 {
	return r.caller.VoiceOptimalSampleRate()
}
