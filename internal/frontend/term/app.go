package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/zeusync/marblecatch/internal/core/game"
	"github.com/zeusync/marblecatch/internal/core/observability/log"
	"github.com/zeusync/marblecatch/internal/core/sensor"
)

// flashFrames is how long the HUD stays highlighted after a hit.
const flashFrames = 8

// App is the terminal collaborator: it forwards resizes and key presses to the
// engine and tilt sensor, and redraws a snapshot every frame.
type App struct {
	screen   tcell.Screen
	engine   *game.Engine
	tilt     *sensor.TiltSource
	renderer *Renderer
	logger   log.Log
	frame    time.Duration

	flash int
}

func NewApp(screen tcell.Screen, engine *game.Engine, tilt *sensor.TiltSource, renderer *Renderer, logger log.Log, frame time.Duration) *App {
	return &App{
		screen:   screen,
		engine:   engine,
		tilt:     tilt,
		renderer: renderer,
		logger:   logger.With(log.String("component", "term")),
		frame:    frame,
	}
}

// Run draws until ctx is cancelled or the player quits. The screen must be
// initialized by the caller, who also finalizes it.
func (a *App) Run(ctx context.Context) error {
	a.resize()

	events := make(chan tcell.Event, 64)
	go a.poll(ctx, events)

	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !a.handle(ev) {
				a.logger.Info("player quit")
				return nil
			}
		case <-ticker.C:
			a.draw()
		}
	}
}

func (a *App) poll(ctx context.Context, out chan<- tcell.Event) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handle applies one terminal event. It returns false when the player quits.
func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	case *tcell.EventKey:
		return a.apply(KeyCommand(ev))
	}
	return true
}

func (a *App) apply(cmd Command) bool {
	switch cmd {
	case CmdQuit:
		return false
	case CmdReset:
		a.engine.ResetGame()
	case CmdLevel:
		a.tilt.Level()
	default:
		if dx, dy, ok := tiltSteps(cmd); ok {
			a.tilt.Nudge(dx, dy)
		}
	}
	return true
}

func (a *App) resize() {
	cols, rows := a.screen.Size()
	b := a.renderer.Bounds(cols, rows)
	a.logger.Debug("terminal resized",
		log.Int("cols", cols),
		log.Int("rows", rows))
	if !b.IsZero() {
		a.engine.SetBounds(b)
	}
}

func (a *App) draw() {
	if a.engine.ConsumeHitSignal() {
		a.flash = flashFrames
	}
	a.renderer.Draw(a.screen, a.engine.Snapshot(), a.flash > 0)
	if a.flash > 0 {
		a.flash--
	}
	a.screen.Show()
}
