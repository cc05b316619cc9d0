package driver

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeusync/marblecatch/internal/config"
	"github.com/zeusync/marblecatch/internal/core/events/bus"
	"github.com/zeusync/marblecatch/internal/core/observability/log"
	"github.com/zeusync/marblecatch/internal/core/sensor"
	"github.com/zeusync/marblecatch/internal/core/sync/vars"
	"github.com/zeusync/marblecatch/internal/core/systems"
	"github.com/zeusync/marblecatch/pkg/concurrent"
)

// Loop names reported in metrics and logs.
const (
	LoopTick   = "tick"
	LoopMotion = "motion"
	LoopTarget = "target"
	LoopSensor = "sensor"
)

// Driver paces the simulation systems and pumps gravity readings into the
// shared latest-value cell.
//
// In single mode every system runs in one loop, in registration order, with the same
// dt. In split mode motion and target systems run in two loops that each measure
// their own dt, so the two halves of the world are not sampled at a common instant.
type Driver struct {
	cfg     config.DriverConfig
	source  sensor.Source
	gravity *vars.Latest[sensor.Reading]
	systems []systems.Phased
	logger  log.Log
	clock   Clock
	events  bus.EventBus

	mu      sync.Mutex
	metrics map[string]*systems.Metrics
	tally   *eventTally
	samples atomic.Uint64
}

// Option customizes a Driver.
type Option func(*Driver)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(d *Driver) { d.clock = c }
}

// WithEventBus makes the driver tally event deliveries while it runs and
// report them with the bus metrics when it stops.
func WithEventBus(events bus.EventBus) Option {
	return func(d *Driver) { d.events = events }
}

// New creates a driver. source may be nil when gravity is written to the cell by
// other means.
func New(cfg config.DriverConfig, source sensor.Source, gravity *vars.Latest[sensor.Reading], logger log.Log, phased []systems.Phased, opts ...Option) *Driver {
	d := &Driver{
		cfg:     cfg,
		source:  source,
		gravity: gravity,
		systems: phased,
		logger:  logger.With(log.String("component", "driver")),
		clock:   SystemClock{},
		metrics: make(map[string]*systems.Metrics),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run blocks until ctx is cancelled or the gravity source fails. Cancellation is a
// clean stop and returns nil.
func (d *Driver) Run(ctx context.Context) error {
	loops := d.loops()

	if d.events != nil {
		tally := newEventTally()
		d.mu.Lock()
		d.tally = tally
		d.mu.Unlock()
		d.events.AddObserver(tally)
		defer d.events.RemoveObserver(tally)
	}
	defer d.report()

	d.logger.Info("driver started",
		log.String("mode", string(d.cfg.Mode)),
		log.Duration("tick_interval", d.cfg.TickInterval),
		log.Int("loops", len(loops)))

	err := concurrent.RunLoops(ctx, loops...)
	if err != nil {
		d.logger.Error("driver stopped", log.Error(err))
		return fmt.Errorf("driver: %w", err)
	}

	d.logger.Info("driver stopped")
	return nil
}

// Metrics returns a copy of the per-loop tick metrics keyed by loop name.
func (d *Driver) Metrics() map[string]systems.Metrics {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make(map[string]systems.Metrics, len(d.metrics))
	for name, m := range d.metrics {
		out[name] = *m
	}
	return out
}

// GravitySamples returns how many ticks picked up a reading newer than the one
// the previous tick saw.
func (d *Driver) GravitySamples() uint64 {
	return d.samples.Load()
}

// EventCounts returns the number of events published per type during the
// current or last run. It is nil without WithEventBus.
func (d *Driver) EventCounts() map[string]uint64 {
	d.mu.Lock()
	tally := d.tally
	d.mu.Unlock()
	if tally == nil {
		return nil
	}
	counts, _, _ := tally.snapshot()
	return counts
}

// report logs per-loop tick metrics, gravity freshness and bus activity.
func (d *Driver) report() {
	for name, m := range d.Metrics() {
		d.logger.Info("loop summary",
			log.String("loop", name),
			log.Uint64("ticks", m.ExecutionCount),
			log.Uint64("overruns", m.Overruns),
			log.Uint64("errors", m.ErrorCount),
			log.Duration("avg", m.AverageExecutionTime),
			log.Duration("max", m.MaxExecutionTime))
	}

	if d.gravity != nil {
		d.logger.Info("gravity summary",
			log.Uint64("version", d.gravity.Version()),
			log.Uint64("fresh_samples", d.samples.Load()))
	}

	d.mu.Lock()
	tally := d.tally
	d.mu.Unlock()
	if tally == nil {
		return
	}
	counts, failures, slowest := tally.snapshot()
	bm := d.events.GetMetrics()
	d.logger.Info("event bus summary",
		log.Uint64("published", bm.Published),
		log.Uint64("delivered", bm.DeliveredHandlers),
		log.Uint64("errors", bm.Errors),
		log.Uint64("subscribers", bm.SubscribersActive),
		log.Uint64("failed_deliveries", failures),
		log.Duration("slowest_delivery", slowest),
		log.Any("by_type", counts))
}

func (d *Driver) loops() []concurrent.Loop {
	var loops []concurrent.Loop
	if d.source != nil {
		loops = append(loops, concurrent.Loop{
			Name: LoopSensor,
			Run: func(ctx context.Context) error {
				return sensor.Pump(ctx, d.source, d.gravity)
			},
		})
	}

	if d.cfg.Mode == config.DriverSplit {
		var motion, target []systems.Phased
		for _, s := range d.systems {
			if s.Phase() == systems.PhaseMotion {
				motion = append(motion, s)
			} else {
				target = append(target, s)
			}
		}
		return append(loops, d.tickLoop(LoopMotion, motion, true), d.tickLoop(LoopTarget, target, false))
	}

	return append(loops, d.tickLoop(LoopTick, d.systems, true))
}

func (d *Driver) tickLoop(name string, group []systems.Phased, sampleGravity bool) concurrent.Loop {
	return concurrent.Loop{
		Name: name,
		Run: func(ctx context.Context) error {
			ticker := d.clock.NewTicker(d.cfg.TickInterval)
			defer ticker.Stop()

			last := d.clock.Now()
			for {
				select {
				case <-ctx.Done():
					return nil
				case now := <-ticker.C():
					dt := d.step(now.Sub(last))
					last = now
					if sampleGravity {
						d.sampleGravity()
					}
					d.tick(name, group, dt)
				}
			}
		},
	}
}

func (d *Driver) sampleGravity() {
	if d.gravity == nil {
		return
	}
	if _, fresh := d.gravity.TakeIfDirty(); fresh {
		d.samples.Add(1)
	}
}

// step converts a wall-clock delta into seconds, capped at MaxStep.
func (d *Driver) step(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	if d.cfg.MaxStep > 0 && elapsed > d.cfg.MaxStep {
		elapsed = d.cfg.MaxStep
	}
	return elapsed.Seconds()
}

func (d *Driver) tick(name string, group []systems.Phased, dt float64) {
	start := d.clock.Now()
	var tickErr error
	for _, s := range group {
		if err := s.Update(dt); err != nil {
			d.logger.Warn("system update failed",
				log.String("loop", name),
				log.String("system", s.Name()),
				log.Error(err))
			tickErr = err
		}
	}
	elapsed := d.clock.Now().Sub(start)

	d.mu.Lock()
	m, ok := d.metrics[name]
	if !ok {
		m = &systems.Metrics{}
		d.metrics[name] = m
	}
	overruns := m.Overruns
	m.Observe(start, elapsed, d.cfg.TickInterval, tickErr)
	overrun := m.Overruns > overruns
	d.mu.Unlock()

	if overrun {
		d.logger.Warn("tick overran its budget",
			log.String("loop", name),
			log.Duration("elapsed", elapsed),
			log.Duration("budget", d.cfg.TickInterval))
	}
}
