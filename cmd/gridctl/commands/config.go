package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lanternworks/gridlink/platformtest"
)

// Config drives the demo scenarios that gridctl runs against the
// emulated platform.
type Config struct {
	Identity      uint64 `toml:"identity"`
	AppID         uint32 `toml:"app_id"`
	TicketTTLSecs int    `toml:"ticket_ttl_secs"`

	Voice VoiceConfig `toml:"voice"`
}

type VoiceConfig struct {
	NativeSampleRate uint32 `toml:"native_sample_rate"`
	DecodeSampleRate uint32 `toml:"decode_sample_rate"`
	FrameMillis      int    `toml:"frame_millis"`
	Compression      string `toml:"compression"`
	Frames           int    `toml:"frames"`
	PollMillis       int    `toml:"poll_millis"`
}

func DefaultConfig() Config {
	return Config{
		AppID:         480,
		TicketTTLSecs: 300,
		Voice: VoiceConfig{
			NativeSampleRate: 22050,
			DecodeSampleRate: 48000,
			FrameMillis:      20,
			Compression:      "zstd",
			Frames:           25,
			PollMillis:       20,
		},
	}
}

// LoadConfig reads path when it is non-empty, applying defaults for
// fields left unset.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TicketTTLSecs <= 0 {
		return fmt.Errorf("ticket_ttl_secs must be positive, got %d", c.TicketTTLSecs)
	}
	if c.Voice.DecodeSampleRate < 11025 || c.Voice.DecodeSampleRate > 48000 {
		return fmt.Errorf("voice.decode_sample_rate must be in [11025, 48000], got %d", c.Voice.DecodeSampleRate)
	}
	if c.Voice.FrameMillis <= 0 {
		return fmt.Errorf("voice.frame_millis must be positive, got %d", c.Voice.FrameMillis)
	}
	if c.Voice.Frames <= 0 {
		return fmt.Errorf("voice.frames must be positive, got %d", c.Voice.Frames)
	}
	if _, err := platformtest.ParseFrameCompression(c.Voice.Compression); err != nil {
		return fmt.Errorf("voice.compression: %w", err)
	}
	return nil
}

func (c Config) TicketTTL() time.Duration {
	return time.Duration(c.TicketTTLSecs) * time.Second
}
