package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lanternworks/gridlink/voice"
)

func voiceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "voice",
		Short: "Run a voice capture and decode loop against the emulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			emu := newPlatform()
			rec, err := voice.New(voice.Config{Caller: emu, Logger: logger})
			if err != nil {
				return err
			}

			decodeRate := cfg.Voice.DecodeSampleRate
			if decodeRate == 0 {
				decodeRate = rec.OptimalSampleRate()
			}
			poll := time.Duration(cfg.Voice.PollMillis) * time.Millisecond

			rec.Start()
			fmt.Printf("recording: native=%dHz decode=%dHz frames=%d\n",
				cfg.Voice.NativeSampleRate, decodeRate, cfg.Voice.Frames)

			buf := make([]byte, voice.RecommendedReadBuffer)
			pcm := make([]byte, voice.RecommendedReadBuffer*8)
			var frames, compressedBytes, pcmBytes int

			readFrame := func() error {
				avail, err := rec.Available()
				if errors.Is(err, voice.ErrNoData) {
					return nil
				}
				if err != nil {
					return err
				}
				n, err := rec.Read(buf[:avail])
				if err != nil {
					return err
				}
				written, err := rec.Decompress(buf[:n], pcm, decodeRate)
				if err != nil {
					return err
				}
				frames++
				compressedBytes += n
				pcmBytes += written
				return nil
			}

			for i := 0; i < cfg.Voice.Frames; i++ {
				if err := readFrame(); err != nil {
					return fmt.Errorf("capture: %w", err)
				}
				time.Sleep(poll)
			}

			rec.Stop()
			for {
				err := readFrame()
				if errors.Is(err, voice.ErrNotRecording) {
					break
				}
				if err != nil {
					return fmt.Errorf("drain: %w", err)
				}
			}

			fmt.Printf("captured %d frames: %d compressed bytes, %d pcm bytes\n",
				frames, compressedBytes, pcmBytes)
			return nil
		},
	}
}
