// Platformer runs the menu flow of the platform game: title screen, game
// options, player setup and the overworld summary.
//
// Usage:
//
//	platformer [flags]
//	platformer replay <file>
//
// Z confirms, X cancels, the arrow keys move and Escape quits.
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/younwookim/platformer/internal/application/form"
	"github.com/younwookim/platformer/internal/application/menu"
	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/infrastructure/config"
	"github.com/younwookim/platformer/internal/infrastructure/ebitenhost"
	"github.com/younwookim/platformer/internal/infrastructure/logging"
	"github.com/younwookim/platformer/internal/infrastructure/raylibhost"
)

// Set with -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
)

// Backend names accepted by --backend.
const (
	backendEbiten = "ebiten"
	backendRaylib = "raylib"
)

type options struct {
	configDir string
	logLevel  string
	record    string
	backend   string
	start     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Sync()
		os.Exit(1)
	}
	logging.Sync()
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:     "platformer",
		Short:   "Platform game menu",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Initialize(opts.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(opts)
		},
		SilenceUsage: true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.PersistentFlags().StringVar(&opts.configDir, "config", "", "Directory containing game.yaml (defaults to the built-in config)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); falls back to $"+logging.LogLevelEnvVar+", off when both are unset")
	cmd.PersistentFlags().StringVar(&opts.start, "start", "", "Scene to start on, overriding the config")
	cmd.Flags().StringVar(&opts.record, "record", "", "Record input to a replay file")
	cmd.Flags().StringVar(&opts.backend, "backend", backendEbiten, "Window backend (ebiten, raylib)")

	cmd.AddCommand(newReplayCmd(opts), newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "platformer %s (commit: %s)\n", version, commit)
		},
	}
}

// loadConfig reads game.yaml from dir, or from the embedded configs when dir
// is empty.
func loadConfig(dir string) (*config.Config, error) {
	if dir != "" {
		return config.NewLoader(dir).Load()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").Load()
}

func runGame(opts *options) error {
	cfg, err := loadConfig(opts.configDir)
	if err != nil {
		return err
	}

	var run func(replay.Stepper, *config.Config, *replay.Recorder) error
	switch opts.backend {
	case backendEbiten:
		run = ebitenhost.Run
	case backendRaylib:
		if !raylibhost.Available {
			return raylibhost.ErrUnavailable
		}
		run = raylibhost.Run
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", opts.backend, backendEbiten, backendRaylib)
	}

	g, err := menu.New(cfg, opts.start, form.TypedEditor{})
	if err != nil {
		return err
	}

	var recorder *replay.Recorder
	if opts.record != "" {
		recorder = replay.NewRecorder(g.Context().Scene.Current.String())
		logging.Info("Recording enabled", zap.String("file", opts.record))
	}

	runErr := run(g, cfg, recorder)

	if recorder != nil {
		recorder.Stop()
		if recorder.FrameCount() == 0 {
			logging.Warn("Recording empty, nothing saved", zap.String("file", opts.record))
		} else if err := recorder.Save(opts.record); err != nil {
			logging.Error("Failed to save recording", zap.Error(err))
		} else {
			logging.Info("Recording saved",
				zap.String("file", opts.record),
				zap.Int("frames", recorder.FrameCount()),
			)
		}
	}
	return runErr
}
