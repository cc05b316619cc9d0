//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/wire"

	"github.com/zeusync/marblecatch/internal/config"
)

func InitializeGame(cfg *config.Config, screen tcell.Screen) (*Game, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
