package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppID != 480 {
		t.Fatalf("unexpected app id: %d", cfg.AppID)
	}
	if cfg.TicketTTL() != 300*time.Second {
		t.Fatalf("unexpected ticket ttl: %v", cfg.TicketTTL())
	}
	if cfg.Voice.NativeSampleRate != 22050 {
		t.Fatalf("unexpected native sample rate: %d", cfg.Voice.NativeSampleRate)
	}
	if cfg.Voice.DecodeSampleRate != 48000 {
		t.Fatalf("unexpected decode sample rate: %d", cfg.Voice.DecodeSampleRate)
	}
	if cfg.Voice.Compression != "zstd" {
		t.Fatalf("unexpected compression: %q", cfg.Voice.Compression)
	}
	if cfg.Voice.Frames != 25 {
		t.Fatalf("unexpected frame count: %d", cfg.Voice.Frames)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
identity = 76560000000000042
app_id = 1234
ticket_ttl_secs = 60

[voice]
native_sample_rate = 11025
decode_sample_rate = 22050
compression = "lz4"
frames = 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Identity != 76560000000000042 {
		t.Fatalf("unexpected identity: %d", cfg.Identity)
	}
	if cfg.AppID != 1234 {
		t.Fatalf("unexpected app id: %d", cfg.AppID)
	}
	if cfg.TicketTTL() != time.Minute {
		t.Fatalf("unexpected ticket ttl: %v", cfg.TicketTTL())
	}
	if cfg.Voice.NativeSampleRate != 11025 {
		t.Fatalf("unexpected native sample rate: %d", cfg.Voice.NativeSampleRate)
	}
	if cfg.Voice.DecodeSampleRate != 22050 {
		t.Fatalf("unexpected decode sample rate: %d", cfg.Voice.DecodeSampleRate)
	}
	if cfg.Voice.Compression != "lz4" {
		t.Fatalf("unexpected compression: %q", cfg.Voice.Compression)
	}
	if cfg.Voice.Frames != 5 {
		t.Fatalf("unexpected frame count: %d", cfg.Voice.Frames)
	}
	// Fields left unset keep their defaults.
	if cfg.Voice.FrameMillis != 20 {
		t.Fatalf("unexpected frame millis: %d", cfg.Voice.FrameMillis)
	}
	if cfg.Voice.PollMillis != 20 {
		t.Fatalf("unexpected poll millis: %d", cfg.Voice.PollMillis)
	}
}

func TestLoadConfigBadDecodeRate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[voice]
decode_sample_rate = 8000
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadConfigBadCompression(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[voice]
compression = "brotli"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected load error")
	}
}
