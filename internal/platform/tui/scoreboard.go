package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/columns/internal/registry"
	"github.com/vovakirdan/columns/internal/storage"
)

// maxScores is the number of results loaded per rule set.
const maxScores = 100

// scoreColumns are the scoreboard table columns.
var scoreColumns = []table.Column{
	{Title: "Rank", Width: 5},
	{Title: "Player", Width: 12},
	{Title: "Score", Width: 8},
	{Title: "Jewels", Width: 7},
	{Title: "Chain", Width: 6},
	{Title: "Date", Width: 13},
}

// scoreTab holds the loaded results of one rule set.
type scoreTab struct {
	info   registry.GameInfo
	stats  *storage.GameStats
	scores []storage.ScoreEntry
	loaded bool
}

// ScoreboardModel shows the stored results, one tab per rule set. Tabs are
// loaded from the store the first time they are shown.
type ScoreboardModel struct {
	store  *storage.Store
	tabs   []scoreTab
	cursor int
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens the scoreboard on the first rule set.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for _, g := range registry.List() {
		m.tabs = append(m.tabs, scoreTab{info: g})
	}
	m.help.Width = width
	m.table = newScoreTable(height)
	m.selectGame(0)
	return m
}

// newScoreTable sizes the table to leave room for the title, tabs and help.
func newScoreTable(height int) table.Model {
	t := table.New(
		table.WithColumns(scoreColumns),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = selectedStyle
	t.SetStyles(s)
	return t
}

// current returns the visible tab, or nil when no rule set is registered.
func (m *ScoreboardModel) current() *scoreTab {
	if len(m.tabs) == 0 {
		return nil
	}
	return &m.tabs[m.cursor]
}

// selectGame shows tab i, wrapping around, and loads it if needed.
func (m *ScoreboardModel) selectGame(i int) {
	n := len(m.tabs)
	if n == 0 {
		return
	}
	m.cursor = (i%n + n) % n

	tab := m.current()
	if !tab.loaded && m.store != nil {
		//nolint:errcheck // A failed read shows an empty tab
		tab.scores, _ = m.store.TopScores(tab.info.ID, maxScores)
		//nolint:errcheck // Same as above
		tab.stats, _ = m.store.GameStats(tab.info.ID)
	}
	tab.loaded = true

	m.table.SetRows(scoreRows(tab.scores))
	m.table.GotoTop()
}

// scoreRows formats results as table rows.
func scoreRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, 0, len(scores))
	for i, s := range scores {
		player := s.Player
		if player == "" {
			player = "-"
		}
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			player,
			fmt.Sprintf("%06d", s.Score),
			strconv.Itoa(s.Cleared),
			strconv.Itoa(s.MaxChain),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	return rows
}

// summary describes the rule set's totals in one line.
func summary(s *storage.GameStats) string {
	if s == nil || s.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d games  avg %.0f  best chain %d  %d jewels",
		s.GamesCount, s.AvgScore, s.BestChain, s.TotalCleared)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.selectGame(m.cursor + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.selectGame(m.cursor - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(msg.Height)
		if tab := m.current(); tab != nil {
			m.table.SetRows(scoreRows(tab.scores))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	tab := m.current()
	title := "HIGH SCORES"
	if tab != nil {
		title += " - " + tab.info.Title
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	names := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		style := inactiveTabStyle
		if i == m.cursor {
			style = activeTabStyle
		}
		names[i] = style.Render(t.info.Title)
	}
	b.WriteString(centerText(strings.Join(names, " "), m.width))
	b.WriteString("\n\n")

	if tab == nil || len(tab.scores) == 0 {
		b.WriteString(panelStyle.Render(emptyStyle.Render("No scores recorded yet.\nClear some jewels to set a high score!")))
	} else {
		b.WriteString(panelStyle.Render(m.table.View()))
		if line := summary(tab.stats); line != "" {
			b.WriteString("\n")
			b.WriteString(helpStyle.Render(line))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// IsGoingBack reports whether the player asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to leave.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
func RunScoreboard(store *storage.Store, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	return err
}
