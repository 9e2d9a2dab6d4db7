// Package commands implements the gridctl demo CLI: protocol
// round-trips against the in-process platform emulator.
package commands

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lanternworks/gridlink/internal/observability"
	"github.com/lanternworks/gridlink/platformtest"
)

var (
	configPath string
	journal    string

	cfg    Config
	logger zerolog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "gridctl",
		Short:         "Exercise the gridlink protocols against an emulated platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = observability.InitLogger("gridctl")
			var err error
			cfg, err = LoadConfig(configPath)
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file (defaults apply when omitted)")
	root.PersistentFlags().StringVar(&journal, "journal", "", "write delivered callback events to this CBOR journal file")

	root.AddCommand(authCmd(), voiceCmd())
	return root.Execute()
}

func newPlatform() *platformtest.Platform {
	compression, _ := platformtest.ParseFrameCompression(cfg.Voice.Compression)
	return platformtest.New(platformtest.Config{
		Identity:         cfg.Identity,
		AppID:            cfg.AppID,
		TicketTTL:        cfg.TicketTTL(),
		NativeSampleRate: cfg.Voice.NativeSampleRate,
		FrameDuration:    time.Duration(cfg.Voice.FrameMillis) * time.Millisecond,
		Compression:      compression,
		Logger:           logger,
	})
}
