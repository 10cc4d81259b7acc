//go:build !raylib

package raylibhost

import (
	"errors"

	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Available reports whether this binary was built with raylib support.
const Available = false

// ErrUnavailable is returned by Run in builds without the raylib tag.
var ErrUnavailable = errors.New("raylib backend not built in (rebuild with -tags raylib)")

// Run always fails with ErrUnavailable.
func Run(replay.Stepper, *config.Config, *replay.Recorder) error {
	return ErrUnavailable
}
