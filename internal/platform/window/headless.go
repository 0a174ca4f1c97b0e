//go:build headless

package window

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/columns/internal/config"
	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/registry"
	"github.com/vovakirdan/columns/internal/storage"
)

// Run reports that no window can be opened.
func Run(game registry.Game, _ *storage.Store, _ config.Config, _ core.RuntimeConfig, _ float64, logger *log.Logger) error {
	logger.Error("window front end unavailable", "game", game.ID())
	return ErrHeadless
}
