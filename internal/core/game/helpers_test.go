package game

import (
	"math/rand/v2"

	"github.com/zeusync/marblecatch/internal/config"
	"github.com/zeusync/marblecatch/internal/core/events/bus"
	"github.com/zeusync/marblecatch/internal/core/observability/log"
	"github.com/zeusync/marblecatch/internal/core/systems/physics"
)

const eps = 1e-9

// fixedRandom always yields the same values; 0.5 means zero heading jitter.
type fixedRandom struct {
	f float64
	n int
}

func (r fixedRandom) Float64() float64 { return r.f }
func (r fixedRandom) IntN(n int) int   { return r.n % n }

// sequenceRandom replays floats and ints in order, then repeats the last value.
type sequenceRandom struct {
	floats []float64
	ints   []int
}

func (r *sequenceRandom) Float64() float64 {
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

func (r *sequenceRandom) IntN(n int) int {
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return v % n
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

var playfield = physics.Bounds{Width: 1080, Height: 1920}

func emptyField() *Field { return NewField(nil, nil) }

func defaultField() *Field {
	c := config.Default()
	return NewField(c.Field.Obstacles, c.Field.Water)
}

func defaultMarbleTuning() MarbleTuning { return marbleTuning(config.Default()) }

func defaultTargetTuning() TargetTuning { return targetTuning(config.Default()) }

// recorder collects every event published on a bus.
type recorder struct {
	events []bus.Event
}

func (r *recorder) subscribe(b bus.EventBus, types ...string) {
	for _, typ := range types {
		_, _ = b.Subscribe(typ, func(e bus.Event) error {
			r.events = append(r.events, e)
			return nil
		})
	}
}

func (r *recorder) types() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type())
	}
	return out
}

func newTestEngine(cfg *config.Config, rng Random) (*Engine, *recorder) {
	b := bus.New()
	rec := &recorder{}
	rec.subscribe(b, EventPlayfieldReady, EventHit, EventCaught, EventReset)
	return NewEngine(cfg, rng, log.NewNop(), b), rec
}
