package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/columns/internal/registry"
	"github.com/vovakirdan/columns/internal/storage"
)

// MenuItem is one rule set in the picker.
type MenuItem struct {
	GameID string
	Title  string
	Best   int // stored high score, 0 when unknown
	Played int // finished games on record
}

// MenuModel picks a rule set or opens the scoreboard. It quits its program
// once a choice is made; the caller reads the choice back.
type MenuModel struct {
	items  []MenuItem
	cursor int
	keys   MenuKeyMap
	help   help.Model
	width  int
	height int

	quitting   bool
	selected   *MenuItem
	scoreboard bool
}

// NewMenuModel lists every registered rule set with its stored stats.
func NewMenuModel(store *storage.Store, width, height int) MenuModel {
	var stats map[string]*storage.GameStats
	if store != nil {
		//nolint:errcheck // Missing stats only hide the best scores
		stats, _ = store.AllGamesStats()
	}

	var items []MenuItem
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if s := stats[g.ID]; s != nil {
			item.Best, item.Played = s.HighScore, s.GamesCount
		}
		items = append(items, item)
	}

	h := help.New()
	h.Width = width
	return MenuModel{items: items, keys: DefaultMenuKeyMap(), help: h, width: width, height: height}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.cursor = min(m.cursor+1, max(len(m.items)-1, 0))
		case key.Matches(msg, m.keys.Select) && len(m.items) > 0:
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		case key.Matches(msg, m.keys.Scoreboard):
			m.scoreboard = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  C O L U M N S  "), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf(" %-18s best %06d  played %3d ", item.Title, item.Best, item.Played)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen rule set, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the player asked to leave.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the player asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}
