package sensor

import (
	"context"
	"errors"

	"github.com/zeusync/marblecatch/internal/core/sync/vars"
	"github.com/zeusync/marblecatch/internal/core/systems/physics"
)

// StandardGravity is the magnitude of a reading from a device lying flat.
const StandardGravity = 9.81

// ErrSourceRunning is returned when a source is started twice.
var ErrSourceRunning = errors.New("sensor: source already running")

// Reading is one gravity sample in device axes, in m/s².
type Reading struct {
	X float64
	Y float64
	Z float64
}

// Planar returns the x/y components used to drive the marble. Z is ignored.
func (r Reading) Planar() physics.Vec2 { return physics.V(r.X, r.Y) }

// Source pushes gravity samples.
//
// Run delivers samples to emit until ctx is cancelled or the source is exhausted.
// Returning unregisters the source; no emit call happens after Run returns.
type Source interface {
	Run(ctx context.Context, emit func(Reading)) error
}

// Pump runs src and stores every sample in cell. It returns nil when ctx is
// cancelled and the source's own error otherwise.
func Pump(ctx context.Context, src Source, cell *vars.Latest[Reading]) error {
	err := src.Run(ctx, cell.Set)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
