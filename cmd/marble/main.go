package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/zeusync/marblecatch/internal/config"
	"github.com/zeusync/marblecatch/internal/injector"
)

// defaultLogFile receives logs while the terminal is owned by the game.
const defaultLogFile = "marble.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "marble:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv(".env")
	if err != nil {
		return err
	}
	if cfg.Log.Output == "" || cfg.Log.Output == "stderr" || cfg.Log.Output == "stdout" {
		cfg.Log.Output = defaultLogFile
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	game, err := injector.InitializeGame(cfg, screen)
	if err != nil {
		return err
	}
	defer game.Close()

	return game.Run(ctx)
}
