package injector

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/wire"

	"github.com/zeusync/marblecatch/internal/config"
	"github.com/zeusync/marblecatch/internal/core/events/bus"
	"github.com/zeusync/marblecatch/internal/core/game"
	"github.com/zeusync/marblecatch/internal/core/haptic"
	"github.com/zeusync/marblecatch/internal/core/observability/log"
	"github.com/zeusync/marblecatch/internal/core/sensor"
	"github.com/zeusync/marblecatch/internal/core/sync/vars"
	"github.com/zeusync/marblecatch/internal/core/systems"
	"github.com/zeusync/marblecatch/internal/core/systems/physics"
	"github.com/zeusync/marblecatch/internal/driver"
	"github.com/zeusync/marblecatch/internal/frontend/term"
	"github.com/zeusync/marblecatch/pkg/concurrent"
)

// ProviderSet builds a terminal game from a config and an initialized screen.
var ProviderSet = wire.NewSet(
	wire.FieldsOf(new(*config.Config), "Driver", "Frontend"),
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	ProvideBus,
	ProvideRandom,
	game.NewEngine,
	ProvideGravityCell,
	ProvideTiltSource,
	wire.Bind(new(sensor.Source), new(*sensor.TiltSource)),
	ProvideSystems,
	ProvideDriver,
	ProvideHapticSink,
	ProvideHaptics,
	term.NewRenderer,
	ProvideApp,
	wire.Struct(new(Game), "*"),
)

// Game is the assembled terminal game.
type Game struct {
	Logger   *log.Logger
	Engine   *game.Engine
	Driver   *driver.Driver
	Frontend *term.App
	Haptics  *Haptics
}

// Run drives the simulation and the terminal until ctx is cancelled or the player
// quits. Quitting stops the driver, which in turn unregisters the tilt source.
func (g *Game) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	return concurrent.RunLoops(ctx,
		concurrent.Loop{Name: "driver", Run: g.Driver.Run},
		concurrent.Loop{Name: "frontend", Run: func(ctx context.Context) error {
			defer cancel()
			return g.Frontend.Run(ctx)
		}},
	)
}

// Close detaches feedback and flushes the log.
func (g *Game) Close() {
	g.Haptics.Close()
	_ = g.Logger.Sync()
}

// Haptics owns the feedback sink and its event subscriptions.
type Haptics struct {
	events bus.EventBus
	sink   haptic.Sink
	subs   []bus.Subscription
}

func (h *Haptics) Close() {
	_ = haptic.Unsubscribe(h.events, h.subs)
	if c, ok := h.sink.(interface{ Close() }); ok {
		c.Close()
	}
}

func ProvideLogger(cfg *config.Config) *log.Logger {
	return log.NewWithOutput(log.ParseLevel(cfg.Log.Level), cfg.Log.Output)
}

func ProvideBus() bus.EventBus { return bus.New() }

func ProvideRandom(cfg *config.Config) game.Random { return cfg.NewRand() }

// ProvideGravityCell starts with the device lying flat.
func ProvideGravityCell() *vars.Latest[sensor.Reading] {
	return vars.NewLatest(sensor.Reading{Z: sensor.StandardGravity})
}

func ProvideTiltSource(cfg config.FrontendConfig) *sensor.TiltSource {
	return sensor.NewTiltSource(cfg.TiltStep, cfg.MaxTilt)
}

// ProvideSystems lists the tick systems in execution order.
func ProvideSystems(engine *game.Engine, gravity *vars.Latest[sensor.Reading]) []systems.Phased {
	return []systems.Phased{
		game.NewMotionSystem(engine, func() physics.Vec2 { return gravity.Get().Planar() }),
		game.NewTargetSystem(engine),
	}
}

func ProvideDriver(cfg config.DriverConfig, source sensor.Source, gravity *vars.Latest[sensor.Reading], logger log.Log, phased []systems.Phased, events bus.EventBus) *driver.Driver {
	return driver.New(cfg, source, gravity, logger, phased, driver.WithEventBus(events))
}

// ProvideHapticSink beeps when tones are enabled and an audio device opens.
func ProvideHapticSink(cfg config.FrontendConfig, logger log.Log) haptic.Sink {
	if !cfg.Tone {
		return haptic.Nop{}
	}
	tone := haptic.NewToneSink(880, 0.5)
	if err := tone.Init(); err != nil {
		logger.Warn("audio unavailable, hits will be silent", log.Error(err))
		return haptic.Nop{}
	}
	return tone
}

func ProvideHaptics(events bus.EventBus, sink haptic.Sink) (*Haptics, error) {
	subs, err := haptic.Subscribe(events, sink, haptic.DefaultPattern)
	if err != nil {
		return nil, fmt.Errorf("haptics: %w", err)
	}
	return &Haptics{events: events, sink: sink, subs: subs}, nil
}

func ProvideApp(screen tcell.Screen, engine *game.Engine, tilt *sensor.TiltSource, renderer *term.Renderer, logger log.Log, cfg config.DriverConfig) *term.App {
	return term.NewApp(screen, engine, tilt, renderer, logger, cfg.TickInterval)
}
