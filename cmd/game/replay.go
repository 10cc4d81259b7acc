package main

import (
	"fmt"
	"image/color"
	"io"

	"github.com/spf13/cobra"

	"github.com/younwookim/platformer/internal/application/form"
	"github.com/younwookim/platformer/internal/application/gfx"
	"github.com/younwookim/platformer/internal/application/menu"
	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/domain/settings"
)

func newReplayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <file>",
		Short: "Run a recorded session without a window and print the final state",
		Example: `  platformer --record session.json
  platformer replay session.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.OutOrStdout(), opts, args[0])
		},
	}
}

func runReplay(w io.Writer, opts *options, filename string) error {
	cfg, err := loadConfig(opts.configDir)
	if err != nil {
		return err
	}
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}

	start := opts.start
	if start == "" {
		start = data.Scene
	}
	g, err := menu.New(cfg, start, form.TypedEditor{})
	if err != nil {
		return err
	}

	r := replay.NewReplayer(*data)
	n, err := r.Run(g, discard{})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "frames: %d of %d\n", n, r.TotalFrames())
	printState(w, g.Context())
	return nil
}

func printState(w io.Writer, ctx *state.Context) {
	fmt.Fprintf(w, "scene: %s\n", ctx.Scene.Current)
	if ctx.Game == nil {
		fmt.Fprintln(w, "mode: none")
		return
	}
	fmt.Fprintf(w, "mode: %s\n", ctx.Game.Mode())
	for _, key := range []string{settings.KeyRounds, settings.KeyStartingLevel, settings.KeyPlayers} {
		if v, ok := ctx.Game.Get(key); ok {
			fmt.Fprintf(w, "%s: %d\n", key, v)
		}
	}
	for i, p := range ctx.Game.Roster() {
		fmt.Fprintf(w, "player %d: %s %s\n", i+1, p.Name, p.Kind)
	}
}

// discard is a surface that draws nothing.
type discard struct{}

func (discard) Clear(color.RGBA) {}
func (discard) Rect(int, int, int, int, color.RGBA) {}
func (discard) Glyph(gfx.Font, rune, int, int, color.RGBA) {}
