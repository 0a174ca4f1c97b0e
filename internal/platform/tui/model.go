package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/columns/internal/config"
	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/registry"
	"github.com/vovakirdan/columns/internal/render"
	"github.com/vovakirdan/columns/internal/render/charset"
	"github.com/vovakirdan/columns/internal/storage"
)

// Rows below the playfield: status line and help line.
const footerRows = 2

// highScorer is implemented by games that show the stored high score.
type highScorer interface {
	SetHighScore(score int)
}

// statsReporter is implemented by games that report end-of-game statistics.
type statsReporter interface {
	Cleared() int
	MaxChain() int
	Ticks() uint64
}

// Model is the Bubble Tea model for running a columns game.
type Model struct {
	game       registry.Game
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	device     *Device
	renderer   *render.Renderer
	ctx        *render.Context
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game. The terminal
// raster size follows from the configured window and terminal cell size.
func NewModel(game registry.Game, store *storage.Store, appCfg config.Config, rc core.RuntimeConfig, player string) (Model, error) {
	rc = rc.Seeded()

	term := appCfg.Terminal
	win := appCfg.Layout.Window
	screen := core.NewScreen(term.Columns(win), term.Rows(win))
	dev := NewDevice(screen, appCfg.WindowRect(), term.CellWidth, term.CellHeight)

	ctx, err := appCfg.RenderContext(dev, charset.New())
	if err != nil {
		return Model{}, err
	}

	m := Model{
		game:       game,
		store:      store,
		config:     rc,
		player:     player,
		device:     dev,
		renderer:   render.NewRenderer(),
		ctx:        ctx,
		keys:       NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.loadHighScore()
	return m, nil
}

// loadHighScore hands the stored best score to the game, if it wants one.
func (m *Model) loadHighScore() {
	hs, ok := m.game.(highScorer)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		return
	}
	hs.SetHighScore(best)
}

// TickMsg advances the simulation by one tick.
type TickMsg time.Time

// tickCmd schedules the next TickMsg; a non-positive rate falls back to 60.
func tickCmd(rate int) tea.Cmd {
	if rate <= 0 {
		rate = 60
	}
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Keys().Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		// Leaving is only allowed while the game is not running
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
		}
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart with a fresh seed rather than replaying the last game
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.loadHighScore()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveResult(m.result())
		}
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// result describes the finished game for storage.
func (m Model) result() storage.Result {
	r := storage.Result{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  m.gameState.Score,
	}
	if s, ok := m.game.(statsReporter); ok {
		r.Cleared = s.Cleared()
		r.MaxChain = s.MaxChain()
		r.Ticks = int(s.Ticks())
	}
	return r
}

// drawFrame rasterizes the game's current frame into the device screen.
func (m Model) drawFrame() *core.Screen {
	render.Clear(m.device)
	m.renderer.Draw(m.ctx, m.game.Frame())
	return m.device.Screen()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	screen := m.drawFrame()

	dir := filepath.Join(os.Getenv("HOME"), ".columns", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(screen.String()), 0o600)
}

// banner returns the text boxed over the playfield, if any.
func (m Model) banner() string {
	switch {
	case m.gameState.GameOver:
		return "GAME OVER"
	case m.gameState.Paused:
		return "PAUSED"
	}
	return ""
}

// drawBanner boxes text in the middle of the screen.
func drawBanner(s *core.Screen, text string) {
	if text == "" {
		return
	}
	w := len([]rune(text)) + 4
	r := core.NewRect((s.Width()-w)/2, s.Height()/2-1, w, 3)
	s.DrawRect(r, ' ')
	s.DrawBox(r)
	s.DrawTextCentered(r.Y+1, text)
}

// status returns the line shown under the playfield.
func (m Model) status() string {
	switch {
	case m.gameState.GameOver:
		return "GAME OVER - press r to restart"
	case m.gameState.Paused:
		return "PAUSED"
	default:
		return m.game.Title()
	}
}

// tooSmall reports whether the terminal cannot fit the playfield.
func (m Model) tooSmall() bool {
	if m.width == 0 || m.height == 0 {
		return false
	}
	s := m.device.Screen()
	return m.width < s.Width() || m.height < s.Height()+footerRows
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	if m.tooSmall() {
		s := m.device.Screen()
		msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			s.Width(), s.Height()+footerRows, m.width, m.height)
		return warnStyle.Render(msg)
	}

	var b strings.Builder
	screen := m.drawFrame()
	drawBanner(screen, m.banner())
	b.WriteString(RenderScreen(screen))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys.Keys())))

	if m.width == 0 || m.height == 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, appCfg config.Config, rc core.RuntimeConfig) error {
	model, err := NewModel(game, store, appCfg, rc, "")
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
