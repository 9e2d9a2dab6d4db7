package platformtest

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// FrameCompression identifies the algorithm used for a compressed
// voice frame. The tag is the first byte of every frame; changing the
// values breaks frames captured by older emulators.
type FrameCompression uint8

const (
	// CompressionNone stores raw PCM. Used as a fallback when the
	// block compressor reports the frame incompressible.
	CompressionNone FrameCompression = 0

	// CompressionZstd is the default: good ratios on tonal audio at
	// modest CPU cost.
	CompressionZstd FrameCompression = 1

	// CompressionLZ4 trades ratio for speed.
	CompressionLZ4 FrameCompression = 2
)

func (c FrameCompression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// ParseFrameCompression parses a compression name from configuration.
func ParseFrameCompression(name string) (FrameCompression, error) {
	switch name {
	case "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("platformtest: unknown compression %q", name)
	}
}

// Voice frame layout: tag u8, native sample rate u32 LE, sample count
// u32 LE, compressed body.
const frameHeaderLen = 9

var (
	errFrameTruncated = errors.New("platformtest: voice frame truncated")
	errFrameBody      = errors.New("platformtest: voice frame body does not match header")
)

// zstdEncoder and zstdDecoder are shared across frames; both are safe
// for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("platformtest: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("platformtest: zstd decoder initialization failed: " + err.Error())
	}
}

// encodeFrame packs mono 16-bit LE PCM into a compressed voice frame.
// Incompressible input falls back to CompressionNone rather than
// growing the frame.
func encodeFrame(pcm []byte, rate uint32, tag FrameCompression) ([]byte, error) {
	var body []byte
	switch tag {
	case CompressionNone:
		body = pcm
	case CompressionZstd:
		body = zstdEncoder.EncodeAll(pcm, nil)
		if len(body) >= len(pcm) {
			tag, body = CompressionNone, pcm
		}
	case CompressionLZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(pcm)))
		written, err := lz4.CompressBlock(pcm, dst, nil)
		if err != nil {
			return nil, fmt.Errorf("platformtest: lz4 compress: %w", err)
		}
		if written == 0 || written >= len(pcm) {
			tag, body = CompressionNone, pcm
		} else {
			body = dst[:written]
		}
	default:
		return nil, fmt.Errorf("platformtest: unsupported compression tag %d", tag)
	}

	frame := make([]byte, frameHeaderLen+len(body))
	frame[0] = byte(tag)
	binary.LittleEndian.PutUint32(frame[1:5], rate)
	binary.LittleEndian.PutUint32(frame[5:9], uint32(len(pcm)/2))
	copy(frame[frameHeaderLen:], body)
	return frame, nil
}

// decodeFrame unpacks a voice frame back into PCM and its native
// sample rate.
func decodeFrame(frame []byte) (pcm []byte, rate uint32, err error) {
	if len(frame) < frameHeaderLen {
		return nil, 0, errFrameTruncated
	}
	tag := FrameCompression(frame[0])
	rate = binary.LittleEndian.Uint32(frame[1:5])
	samples := int(binary.LittleEndian.Uint32(frame[5:9]))
	body := frame[frameHeaderLen:]

	switch tag {
	case CompressionNone:
		pcm = body
	case CompressionZstd:
		pcm, err = zstdDecoder.DecodeAll(body, make([]byte, 0, samples*2))
		if err != nil {
			return nil, 0, fmt.Errorf("platformtest: zstd decompress: %w", err)
		}
	case CompressionLZ4:
		pcm = make([]byte, samples*2)
		read, lerr := lz4.UncompressBlock(body, pcm)
		if lerr != nil {
			return nil, 0, fmt.Errorf("platformtest: lz4 decompress: %w", lerr)
		}
		pcm = pcm[:read]
	default:
		return nil, 0, fmt.Errorf("platformtest: unknown compression tag %d", tag)
	}

	if len(pcm) != samples*2 {
		return nil, 0, errFrameBody
	}
	return pcm, rate, nil
}

// resamplePCM converts mono 16-bit LE PCM between sample rates with
// linear interpolation. Quality is irrelevant here; determinism and
// exact output sizing are what the tests depend on.
func resamplePCM(pcm []byte, from, to uint32) []byte {
	if from == to || len(pcm) < 2 {
		out := make([]byte, len(pcm))
		copy(out, pcm)
		return out
	}
	in := make([]int16, len(pcm)/2)
	for i := range in {
		in[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}
	outSamples := int(uint64(len(in)) * uint64(to) / uint64(from))
	if outSamples == 0 {
		outSamples = 1
	}
	out := make([]byte, outSamples*2)
	for i := 0; i < outSamples; i++ {
		pos := float64(i) * float64(from) / float64(to)
		j := int(pos)
		if j >= len(in)-1 {
			binary.LittleEndian.PutUint16(out[i*2:], uint16(in[len(in)-1]))
			continue
		}
		frac := pos - float64(j)
		v := float64(in[j])*(1-frac) + float64(in[j+1])*frac
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(v)))
	}
	return out
}
