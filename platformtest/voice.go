package platformtest

import (
	"encoding/binary"
	"math"

	"github.com/lanternworks/gridlink/platform"
)

type voicePhase int

const (
	voiceIdle voicePhase = iota
	voiceRecording
	voiceStopping
)

// SetVoiceSilence controls whether the emulated microphone produces
// audio. While silent and recording, polls report NoData.
func (p *Platform) SetVoiceSilence(silent bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.vsilent = silent
}

// StartVoiceRecording implements platform.Caller.
func (p *Platform) StartVoiceRecording() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cfg.VoiceDisabled {
		return
	}
	p.vphase = voiceRecording
}

// StopVoiceRecording implements platform.Caller. The emulated driver
// keeps a few trailing frames buffered, so capture reports
// NotRecording only after the queue drains.
func (p *Platform) StopVoiceRecording() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.vphase != voiceRecording {
		return
	}
	for i := 0; i < p.cfg.TrailingFrames; i++ {
		p.pushFrame()
	}
	p.vphase = voiceStopping
}

// GetAvailableVoice implements platform.Caller.
func (p *Platform) GetAvailableVoice() (uint32, platform.VoiceCode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if code := p.voiceGate(); code != platform.VoiceOK {
		return 0, code
	}
	if len(p.vqueue) == 0 {
		return 0, platform.VoiceNoData
	}
	return uint32(len(p.vqueue[0])), platform.VoiceOK
}

// GetVoice implements platform.Caller. All-or-nothing: a destination
// smaller than the frame receives no bytes.
func (p *Platform) GetVoice(dst []byte) (uint32, platform.VoiceCode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if code := p.voiceGate(); code != platform.VoiceOK {
		return 0, code
	}
	if len(p.vqueue) == 0 {
		return 0, platform.VoiceNoData
	}
	frame := p.vqueue[0]
	if len(dst) < len(frame) {
		return 0, platform.VoiceBufferTooSmall
	}
	copy(dst, frame)
	p.vqueue = p.vqueue[1:]
	return uint32(len(frame)), platform.VoiceOK
}

// voiceGate applies the checks shared by the capture calls and, while
// recording, keeps one synthesized frame queued.
func (p *Platform) voiceGate() platform.VoiceCode {
	if p.cfg.VoiceDisabled {
		return platform.VoiceNotInitialized
	}
	if p.cfg.Restricted {
		return platform.VoiceRestricted
	}
	switch p.vphase {
	case voiceIdle:
		return platform.VoiceNotRecording
	case voiceRecording:
		if len(p.vqueue) == 0 && !p.vsilent {
			p.pushFrame()
		}
	case voiceStopping:
		if len(p.vqueue) == 0 {
			p.vphase = voiceIdle
			return platform.VoiceNotRecording
		}
	}
	return platform.VoiceOK
}

// pushFrame synthesizes one frame of 440 Hz tone at the native rate
// and queues its compressed form. Phase carries across frames so the
// stream is continuous.
func (p *Platform) pushFrame() {
	samples := int(uint64(p.cfg.NativeSampleRate) * uint64(p.cfg.FrameDuration.Milliseconds()) / 1000)
	pcm := make([]byte, samples*2)
	step := 2 * math.Pi * 440 / float64(p.cfg.NativeSampleRate)
	for i := 0; i < samples; i++ {
		v := int16(8000 * math.Sin(p.sine))
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(v))
		p.sine += step
	}
	frame, err := encodeFrame(pcm, p.cfg.NativeSampleRate, p.cfg.Compression)
	if err != nil {
		p.log.Error().Err(err).Msg("emulator frame encode failed")
		return
	}
	p.vqueue = append(p.vqueue, frame)
}

// DecompressVoice implements platform.Caller. Empty input is a
// degenerate-but-valid frame and yields zero bytes, not a corruption
// error.
func (p *Platform) DecompressVoice(compressed, dst []byte, sampleRate uint32) (uint32, platform.VoiceCode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cfg.VoiceDisabled {
		return 0, platform.VoiceNotInitialized
	}
	if len(compressed) == 0 {
		return 0, platform.VoiceOK
	}
	pcm, nativeRate, err := decodeFrame(compressed)
	if err != nil {
		return 0, platform.VoiceDataCorrupted
	}
	if sampleRate < 11025 {
		sampleRate = 11025
	}
	if sampleRate > 48000 {
		sampleRate = 48000
	}
	out := resamplePCM(pcm, nativeRate, sampleRate)
	if len(dst) < len(out) {
		return 0, platform.VoiceBufferTooSmall
	}
	copy(dst, out)
	return uint32(len(out)), platform.VoiceOK
}

// VoiceOptimalSampleRate implements platform.Caller.
func (p *Platform) VoiceOptimalSampleRate() uint32 {
	return p.cfg.NativeSampleRate
}
