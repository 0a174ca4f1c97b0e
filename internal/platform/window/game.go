//go:build !headless

package window

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/columns/internal/config"
	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/registry"
	"github.com/vovakirdan/columns/internal/render"
	"github.com/vovakirdan/columns/internal/render/charset"
	"github.com/vovakirdan/columns/internal/render/textures"
	"github.com/vovakirdan/columns/internal/storage"
)

// Held keys repeat after repeatDelay ticks, every repeatInterval ticks.
const (
	repeatDelay    = 12
	repeatInterval = 4
)

// keyBindings maps actions to the keys that trigger them.
var keyBindings = []struct {
	action core.Action
	keys   []ebiten.Key
	repeat bool
}{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, true},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, true},
	{core.ActionRotate, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace}, false},
	{core.ActionDrop, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, true},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, false},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}, false},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}, false},
}

// App runs one game in an Ebitengine window.
type App struct {
	game     registry.Game
	store    *storage.Store
	scores   *scoreKeeper
	logger   *log.Logger
	device   *Device
	renderer *render.Renderer
	ctx      *render.Context
	width    int
	height   int

	rc    core.RuntimeConfig
	state core.GameState
}

// NewApp prepares the device, textures and render context for game.
func NewApp(game registry.Game, store *storage.Store, appCfg config.Config, rc core.RuntimeConfig, logger *log.Logger) (*App, error) {
	cs := charset.New()
	dev, err := NewDevice(appCfg.WindowRect(), textures.Default(cs))
	if err != nil {
		return nil, err
	}
	ctx, err := appCfg.RenderContext(dev, cs)
	if err != nil {
		return nil, err
	}

	win := appCfg.Layout.Window
	a := &App{
		game:     game,
		store:    store,
		scores:   newScoreKeeper(store, logger),
		logger:   logger,
		device:   dev,
		renderer: render.NewRenderer(),
		ctx:      ctx,
		width:    int(win.Width()),
		height:   int(win.Height()),
		rc:       rc,
	}

	if hs, ok := game.(interface{ SetHighScore(int) }); ok && store != nil {
		if best, err := store.HighScore(game.ID()); err == nil {
			hs.SetHighScore(best)
		}
	}
	game.Reset(rc)
	return a, nil
}

// Update implements ebiten.Game: one simulation tick.
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	in := readInput()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	res := a.game.Step(in)
	a.scores.observe(a.game, a.state, res.State)
	a.state = res.State
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.device.SetTarget(screen)
	render.Clear(a.device)
	a.renderer.Draw(a.ctx, a.game.Frame())
}

// Layout implements ebiten.Game. The logical window size is fixed; Ebitengine
// scales it to the real window.
func (a *App) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

// readInput collects the actions triggered this tick.
func readInput() core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if triggered(k, b.repeat) {
				in.Set(b.action)
				break
			}
		}
	}
	return in
}

func triggered(k ebiten.Key, repeat bool) bool {
	if inpututil.IsKeyJustPressed(k) {
		return true
	}
	if !repeat {
		return false
	}
	d := inpututil.KeyPressDuration(k)
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// Run opens a window scaled by scale and plays game until it is closed.
func Run(game registry.Game, store *storage.Store, appCfg config.Config, rc core.RuntimeConfig, scale float64, logger *log.Logger) error {
	app, err := NewApp(game, store, appCfg, rc, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(float64(app.width)*scale), int(float64(app.height)*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(rc.TickRate)

	logger.Debug("window opened", "game", game.ID(), "width", app.width, "height", app.height, "tps", rc.TickRate)
	return ebiten.RunGame(app)
}
