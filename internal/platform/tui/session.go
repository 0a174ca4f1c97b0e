package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/columns/internal/config"
	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/registry"
	"github.com/vovakirdan/columns/internal/storage"
)

// sessionScreen is the screen a SessionModel is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel chains the menu, a game and the scoreboard in one program.
// The child screens quit their own program when done; the session swallows
// those commands and switches screens instead.
type SessionModel struct {
	store    *storage.Store
	appCfg   config.Config
	config   core.RuntimeConfig
	username string
	logger   *log.Logger

	screen     sessionScreen
	menu       MenuModel
	game       Model
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel starts a session on the menu. username is recorded with
// the scores of the session.
func NewSessionModel(store *storage.Store, appCfg config.Config, rc core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	return SessionModel{
		store:    store,
		appCfg:   appCfg,
		config:   rc,
		username: username,
		logger:   logger,
		menu:     NewMenuModel(store, rc.ScreenW, rc.ScreenH),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update implements tea.Model.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = ws.Width, ws.Height
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenGame:
		next, c := m.game.Update(msg)
		m.game, cmd = next.(Model), c
		if m.game.BackToMenu() {
			m.logger.Debug("game left", "user", m.username, "game", m.game.game.ID(), "score", m.game.gameState.Score)
			return m.showMenu()
		}
		m.quitting = m.game.IsQuitting()

	case screenScores:
		next, c := m.scoreboard.Update(msg)
		m.scoreboard, cmd = next.(ScoreboardModel), c
		if m.scoreboard.IsGoingBack() {
			return m.showMenu()
		}
		m.quitting = m.scoreboard.IsQuitting()

	default:
		next, c := m.menu.Update(msg)
		m.menu, cmd = next.(MenuModel), c
		switch {
		case m.menu.WantsScoreboard():
			return m.showScores()
		case m.menu.Selected() != nil:
			return m.startGame(m.menu.Selected().GameID)
		}
		m.quitting = m.menu.IsQuitting()
	}

	if m.quitting {
		return m, tea.Quit
	}
	return m, cmd
}

// startGame switches to a new game of rule set id with a fresh seed.
func (m SessionModel) startGame(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		m.logger.Error("unknown game", "game", id, "error", err)
		return m.showMenu()
	}

	rc := m.config
	rc.Seed = 0
	model, err := NewModel(game, m.store, m.appCfg, rc, m.username)
	if err != nil {
		m.logger.Error("cannot start game", "game", id, "error", err)
		return m.showMenu()
	}
	model.width, model.height = m.config.ScreenW, m.config.ScreenH
	model.help.Width = m.config.ScreenW

	m.logger.Debug("game started", "user", m.username, "game", id)
	m.game = model
	m.screen = screenGame
	return m, m.game.Init()
}

// showScores switches to the scoreboard.
func (m SessionModel) showScores() (tea.Model, tea.Cmd) {
	m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
	m.screen = screenScores
	return m, m.scoreboard.Init()
}

// showMenu switches to a freshly loaded menu, so new scores show up.
func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.store, m.config.ScreenW, m.config.ScreenH)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View implements tea.Model.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.screen == screenGame:
		return m.game.View()
	case m.screen == screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// RunSession runs the session in the local terminal.
func RunSession(store *storage.Store, appCfg config.Config, rc core.RuntimeConfig, logger *log.Logger) error {
	_, err := tea.NewProgram(NewSessionModel(store, appCfg, rc, "", logger), tea.WithAltScreen()).Run()
	return err
}
